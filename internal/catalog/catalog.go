// Package catalog turns measured vendor directories into the numbered list
// an operator chooses from.
package catalog

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/lakshaymaurya-felt/vendorkill/internal/core"
	"github.com/lakshaymaurya-felt/vendorkill/internal/errors"
	"github.com/lakshaymaurya-felt/vendorkill/internal/scan"
)

// Entry is a confirmed, deletable dependency directory. Entries are values
// and never change once built.
type Entry struct {
	// Index is the 1-based position in the catalog and the only way to
	// address an entry for deletion.
	Index int `json:"index"`

	Path string `json:"path"`

	// ProjectName is the name of the directory that owns Path.
	ProjectName string `json:"project"`

	// Size is the allocated size in bytes.
	Size int64 `json:"size_bytes"`

	// Partial is set when Size is a lower bound.
	Partial bool `json:"partial,omitempty"`
}

// HumanSize returns Size formatted for display, marked when partial.
func (e Entry) HumanSize() string {
	s := core.FormatSize(e.Size)
	if e.Partial {
		s = ">= " + s
	}
	return s
}

// Label is the single-line description shown in selection lists.
func (e Entry) Label() string {
	return fmt.Sprintf("%s (%s) [%s]", e.ProjectName, e.HumanSize(), e.Path)
}

// Option is one selectable line keyed by catalog index.
type Option struct {
	Key   int
	Label string
}

// Summary aggregates a catalog.
type Summary struct {
	Count      int    `json:"count"`
	TotalBytes int64  `json:"total_bytes"`
	Human      string `json:"total"`
	Partial    bool   `json:"partial,omitempty"`
}

// Catalog is an ordered, immutable list of entries with a frozen
// index lookup.
type Catalog struct {
	entries []Entry
	byIndex map[int]Entry
}

// Build assigns indices 1..N in the order of sized and returns the catalog.
// The same input always yields the same indices.
func Build(sized []scan.Sized) *Catalog {
	c := &Catalog{
		entries: make([]Entry, 0, len(sized)),
		byIndex: make(map[int]Entry, len(sized)),
	}
	for i, s := range sized {
		e := Entry{
			Index:       i + 1,
			Path:        s.Path,
			ProjectName: filepath.Base(filepath.Dir(s.Path)),
			Size:        s.Size,
			Partial:     s.Partial,
		}
		c.entries = append(c.entries, e)
		c.byIndex[e.Index] = e
	}
	return c
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Empty reports whether nothing was found.
func (c *Catalog) Empty() bool {
	return len(c.entries) == 0
}

// Entries returns a copy of the entries in index order.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Get returns the entry with the given index.
func (c *Catalog) Get(index int) (Entry, bool) {
	e, ok := c.byIndex[index]
	return e, ok
}

// Options returns the selection list in index order.
func (c *Catalog) Options() []Option {
	opts := make([]Option, 0, len(c.entries))
	for _, e := range c.entries {
		opts = append(opts, Option{Key: e.Index, Label: e.Label()})
	}
	return opts
}

// Summary totals the catalog. Sizes are summed as integers and formatted once.
func (c *Catalog) Summary() Summary {
	return Summarize(c.entries)
}

// Summarize totals an arbitrary set of entries.
func Summarize(entries []Entry) Summary {
	sizes := make([]int64, 0, len(entries))
	s := Summary{Count: len(entries)}
	for _, e := range entries {
		sizes = append(sizes, e.Size)
		s.Partial = s.Partial || e.Partial
	}
	s.TotalBytes = core.SumSizes(sizes...)
	s.Human = core.FormatSize(s.TotalBytes)
	return s
}

// Resolve maps selected indices to entries. Every index must lie in 1..N;
// a single bad index rejects the whole selection. Duplicates are dropped
// and the result is in ascending index order.
func (c *Catalog) Resolve(indices []int) ([]Entry, error) {
	seen := make(map[int]bool, len(indices))
	keys := make([]int, 0, len(indices))
	for _, idx := range indices {
		if _, ok := c.byIndex[idx]; !ok {
			return nil, errors.NewInvalidSelection(idx, len(c.entries))
		}
		if seen[idx] {
			continue
		}
		seen[idx] = true
		keys = append(keys, idx)
	}
	sort.Ints(keys)

	selected := make([]Entry, 0, len(keys))
	for _, k := range keys {
		selected = append(selected, c.byIndex[k])
	}
	return selected, nil
}
