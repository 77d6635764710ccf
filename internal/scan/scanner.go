package scan

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/lakshaymaurya-felt/vendorkill/internal/core"
	"github.com/lakshaymaurya-felt/vendorkill/internal/errors"
)

// maxWarnings caps how many warnings a single run keeps.
const maxWarnings = 500

// Options controls what the scanner looks for.
type Options struct {
	// Marker is the dependency directory name, e.g. "vendor".
	Marker string

	// Manifests are the file names that prove the marker's parent is a
	// project root. Any one of them is enough.
	Manifests []string

	// MaxDepth counts like find -maxdepth.
	MaxDepth int

	// Exclude lists directory names (case-insensitive) never descended into.
	Exclude []string

	// Jobs bounds how many directories are sized at once.
	Jobs int
}

// Sized is a manifest-backed directory with its disk usage.
type Sized struct {
	Path    string
	Size    int64
	Partial bool
}

// Scanner finds marker directories and measures them.
type Scanner struct {
	fsys         core.FileSystem
	opts         Options
	exclude      map[string]bool
	log          *slog.Logger
	mu           sync.Mutex
	warnings     []error
	measuredDirs atomic.Int64
}

// NewScanner creates a scanner over fsys. A nil logger discards output.
func NewScanner(fsys core.FileSystem, opts Options, logger *slog.Logger) *Scanner {
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.NumCPU()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	excMap := make(map[string]bool, len(opts.Exclude))
	for _, e := range opts.Exclude {
		excMap[strings.ToLower(e)] = true
	}
	return &Scanner{
		fsys:    fsys,
		opts:    opts,
		exclude: excMap,
		log:     logger,
	}
}

// Warnings returns any non-fatal problems met so far.
func (s *Scanner) Warnings() []error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]error(nil), s.warnings...)
}

// MeasuredCount returns the number of directories sized so far.
func (s *Scanner) MeasuredCount() int64 {
	return s.measuredDirs.Load()
}

func (s *Scanner) addWarning(err error) {
	s.log.Warn("scan warning", "err", err)
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.warnings) < maxWarnings {
		s.warnings = append(s.warnings, err)
	}
}

// ResolveRoot turns an optional search root into an absolute path with
// symlinks resolved, defaulting to the working directory. The walk never
// follows links, so a linked root must be resolved up front.
func ResolveRoot(root string) (string, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.NewInvalidRoot(".", err)
		}
		root = wd
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", errors.NewInvalidRoot(root, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.NewInvalidRoot(abs, err)
	}
	return resolved, nil
}

// Find returns every marker directory under root, within MaxDepth, whose
// parent holds one of the manifests. Order is lexical pre-order and stable
// for an unchanged tree.
func (s *Scanner) Find(ctx context.Context, root string) ([]string, error) {
	root, err := ResolveRoot(root)
	if err != nil {
		return nil, err
	}
	if s.opts.MaxDepth < 0 {
		return nil, errors.NewInvalidArgument("maxdepth must be >= 0")
	}

	candidates, warnings, err := s.fsys.ListDirectories(ctx, root, core.ListOptions{
		MaxDepth: s.opts.MaxDepth,
		Match: func(name string) bool {
			return name == s.opts.Marker
		},
		Skip: func(name string) bool {
			return s.exclude[strings.ToLower(name)]
		},
	})
	for _, w := range warnings {
		s.addWarning(w)
	}
	if err != nil {
		return nil, err
	}

	var accepted []string
	for _, c := range candidates {
		if HasManifest(s.fsys, filepath.Dir(c), s.opts.Manifests) {
			accepted = append(accepted, c)
			continue
		}
		s.log.Debug("no manifest next to candidate, skipping", "path", c)
	}

	s.log.Debug("scan finished", "root", root, "candidates", len(candidates), "accepted", len(accepted))
	return accepted, nil
}

// HasManifest reports whether dir directly contains a regular file with one
// of the given names. Content is never read; any stat failure counts as
// absent.
func HasManifest(fsys core.FileSystem, dir string, manifests []string) bool {
	for _, name := range manifests {
		info, err := fsys.Stat(filepath.Join(dir, name))
		if err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}

// Measure sizes each path on a bounded pool. Results keep the order of
// paths. Unreadable entries make a size partial; they never fail the call.
func (s *Scanner) Measure(ctx context.Context, paths []string) ([]Sized, error) {
	results := make([]Sized, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Jobs)

	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			u, err := s.fsys.DiskUsage(gctx, p)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				// The directory vanished or became unreadable after the scan.
				s.addWarning(errors.NewSizePartial(p, 1))
				results[i] = Sized{Path: p, Partial: true}
				return nil
			}
			if u.Partial() {
				s.addWarning(errors.NewSizePartial(p, u.Skipped))
			}
			results[i] = Sized{Path: p, Size: u.Bytes, Partial: u.Partial()}
			s.measuredDirs.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.NewScanFailed("", err)
	}
	return results, nil
}

// Discover runs Find then Measure.
func (s *Scanner) Discover(ctx context.Context, root string) ([]Sized, error) {
	paths, err := s.Find(ctx, root)
	if err != nil {
		return nil, err
	}
	return s.Measure(ctx, paths)
}
