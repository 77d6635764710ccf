// Package purge deletes selected vendor directories and drives a full
// discover, select and delete run.
package purge

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/lakshaymaurya-felt/vendorkill/internal/catalog"
	"github.com/lakshaymaurya-felt/vendorkill/internal/core"
	"github.com/lakshaymaurya-felt/vendorkill/internal/errors"
)

// Result is the outcome for one selected entry.
type Result struct {
	Entry   catalog.Entry
	Deleted bool
	// Freed is the measured size of the entry when it was deleted.
	Freed int64
	Err   error
}

// Executor removes directory trees one entry at a time. A failure on one
// entry never stops the rest.
type Executor struct {
	fsys      core.FileSystem
	dryRun    bool
	protected []string
	log       *slog.Logger
}

// NewExecutor creates an executor. protected lists extra paths that must
// never be removed, typically the search root and its ancestors.
func NewExecutor(fsys core.FileSystem, dryRun bool, protected []string, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Executor{
		fsys:      fsys,
		dryRun:    dryRun,
		protected: protected,
		log:       logger,
	}
}

// Delete attempts every entry and returns one result per entry, in order.
// After ctx is cancelled the remaining entries are reported as not deleted.
func (x *Executor) Delete(ctx context.Context, entries []catalog.Entry) []Result {
	results := make([]Result, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			results = append(results, Result{Entry: e, Err: errors.NewDeletionFailed(e.Path, err)})
			continue
		}
		results = append(results, x.deleteOne(e))
	}
	return results
}

func (x *Executor) deleteOne(e catalog.Entry) Result {
	if core.IsProtected(e.Path, x.protected) {
		err := errors.NewProtectedPath(e.Path)
		x.log.Warn("refusing to delete protected path", "path", e.Path)
		return Result{Entry: e, Err: err}
	}

	if err := core.SafeDelete(x.fsys, e.Path, x.dryRun); err != nil {
		x.log.Warn("delete failed", "path", e.Path, "err", err)
		return Result{Entry: e, Err: err}
	}

	x.log.Debug("deleted", "path", e.Path, "bytes", e.Size, "dry_run", x.dryRun)
	return Result{Entry: e, Deleted: true, Freed: e.Size}
}

// Ancestors returns path and every directory above it up to the volume root.
func Ancestors(path string) []string {
	path = filepath.Clean(path)
	out := []string{path}
	for {
		parent := filepath.Dir(path)
		if parent == path {
			return out
		}
		out = append(out, parent)
		path = parent
	}
}

// Totals sums the results that were deleted.
func Totals(results []Result) (count int, freed int64) {
	for _, r := range results {
		if r.Deleted {
			count++
			freed += r.Freed
		}
	}
	return count, freed
}
