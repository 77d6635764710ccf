package core

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
)

// freeSpaceTimeout bounds the volume query so a hung network mount cannot
// stall the end of a run.
const freeSpaceTimeout = 5 * time.Second

// VolumeReport describes free space on the volume holding a path before and
// after deletions.
type VolumeReport struct {
	Path   string
	Before uint64
	After  uint64
}

// Reclaimed returns how many bytes became available, never negative.
func (r VolumeReport) Reclaimed() uint64 {
	if r.After <= r.Before {
		return 0
	}
	return r.After - r.Before
}

// String renders the report, e.g. "12 GiB free -> 13 GiB free (+1.0 GiB)".
func (r VolumeReport) String() string {
	return humanize.IBytes(r.Before) + " free -> " + humanize.IBytes(r.After) +
		" free (+" + humanize.IBytes(r.Reclaimed()) + ")"
}

// MeasureFree queries free space on path's volume. ok is false when the
// volume cannot be queried; callers skip the report in that case.
func MeasureFree(ctx context.Context, fsys FileSystem, path string) (free uint64, ok bool) {
	ctx, cancel := context.WithTimeout(ctx, freeSpaceTimeout)
	defer cancel()

	free, err := fsys.FreeSpace(ctx, path)
	if err != nil {
		return 0, false
	}
	return free, true
}
