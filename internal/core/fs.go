package core

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/disk"

	"github.com/lakshaymaurya-felt/vendorkill/internal/errors"
)

// FileSystem is everything the pipeline needs from the disk. OSFileSystem is
// the native implementation; tests substitute fakes.
type FileSystem interface {
	// ListDirectories walks root and returns matching directories in lexical
	// pre-order. Unreadable subtrees are returned as warnings.
	ListDirectories(ctx context.Context, root string, opts ListOptions) ([]string, []error, error)

	// DiskUsage returns the allocated size of the tree at path.
	DiskUsage(ctx context.Context, path string) (Usage, error)

	// RemoveTree deletes path and everything below it.
	RemoveTree(path string) error

	// Stat follows symlinks; Lstat does not.
	Stat(path string) (fs.FileInfo, error)
	Lstat(path string) (fs.FileInfo, error)

	// FreeSpace reports the bytes available on the volume holding path.
	FreeSpace(ctx context.Context, path string) (uint64, error)
}

// ListOptions bounds and filters a directory listing.
type ListOptions struct {
	// MaxDepth counts like find -maxdepth: root is 0, its children 1.
	MaxDepth int

	// Match selects directories (other than root) to return. Matched
	// directories are not descended into.
	Match func(name string) bool

	// Skip prunes directories (other than root) that are neither returned
	// nor descended into.
	Skip func(name string) bool
}

// Usage is the result of a disk usage query.
type Usage struct {
	Bytes int64

	// Skipped counts entries that could not be read. When non-zero Bytes is
	// a lower bound.
	Skipped int
}

// Partial reports whether some entries were excluded from the total.
func (u Usage) Partial() bool {
	return u.Skipped > 0
}

// OSFileSystem implements FileSystem with the os and path/filepath packages.
type OSFileSystem struct{}

var errNotDirectory = stderrors.New("not a directory")

// ListDirectories implements FileSystem.
func (OSFileSystem) ListDirectories(ctx context.Context, root string, opts ListOptions) ([]string, []error, error) {
	root = filepath.Clean(root)

	info, err := os.Stat(root)
	if err != nil {
		return nil, nil, errors.NewInvalidRoot(root, err)
	}
	if !info.IsDir() {
		return nil, nil, errors.NewInvalidRoot(root, errNotDirectory)
	}

	var (
		found    []string
		warnings []error
	)

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == root {
				return errors.NewInvalidRoot(root, err)
			}
			// Permission denied or vanished mid-walk: drop the branch.
			warnings = append(warnings, errors.NewPartialScan(path, err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}

		if path != root && opts.Match != nil && opts.Match(d.Name()) {
			found = append(found, path)
			return filepath.SkipDir
		}
		if path != root && opts.Skip != nil && opts.Skip(d.Name()) {
			return filepath.SkipDir
		}
		if depthOf(root, path) >= opts.MaxDepth {
			return filepath.SkipDir
		}
		return nil
	})

	if walkErr != nil {
		var vkErr *errors.VKError
		if stderrors.As(walkErr, &vkErr) {
			return nil, warnings, vkErr
		}
		return nil, warnings, errors.NewScanFailed(root, walkErr)
	}

	return found, warnings, nil
}

// depthOf returns how many path components path lies below root.
func depthOf(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

// DiskUsage implements FileSystem. Every entry in the tree contributes its
// allocated size, directories included; hard-linked files count once.
func (OSFileSystem) DiskUsage(ctx context.Context, path string) (Usage, error) {
	var u Usage
	seen := make(map[fileID]struct{})

	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if d == nil && p == path {
				return err
			}
			u.Skipped++
			return nil
		}

		size, id, linked, statErr := entryUsage(p)
		if statErr != nil {
			u.Skipped++
			return nil
		}
		if linked {
			if _, dup := seen[id]; dup {
				return nil
			}
			seen[id] = struct{}{}
		}
		u.Bytes += size
		return nil
	})
	if err != nil {
		return Usage{}, err
	}

	return u, nil
}

// RemoveTree implements FileSystem.
func (OSFileSystem) RemoveTree(path string) error {
	return os.RemoveAll(path)
}

// Stat implements FileSystem.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// Lstat implements FileSystem.
func (OSFileSystem) Lstat(path string) (fs.FileInfo, error) {
	return os.Lstat(path)
}

// FreeSpace implements FileSystem.
func (OSFileSystem) FreeSpace(ctx context.Context, path string) (uint64, error) {
	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return 0, err
	}
	return usage.Free, nil
}
