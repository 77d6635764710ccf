package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshaymaurya-felt/vendorkill/internal/errors"
	"github.com/lakshaymaurya-felt/vendorkill/internal/scan"
)

func sample() []scan.Sized {
	return []scan.Sized{
		{Path: "/work/proj1/vendor", Size: 10 * 1024 * 1024},
		{Path: "/work/api/vendor", Size: 1536},
		{Path: "/work/legacy/vendor", Size: 500, Partial: true},
	}
}

func TestBuild_AssignsContiguousIndices(t *testing.T) {
	c := Build(sample())

	require.Equal(t, 3, c.Len())
	for i, e := range c.Entries() {
		assert.Equal(t, i+1, e.Index)
	}

	first, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "proj1", first.ProjectName)
	assert.Equal(t, "10 MB", first.HumanSize())
	assert.Equal(t, "proj1 (10 MB) [/work/proj1/vendor]", first.Label())
}

func TestBuild_IsStable(t *testing.T) {
	a := Build(sample())
	b := Build(sample())
	assert.Equal(t, a.Entries(), b.Entries())
}

func TestBuild_Empty(t *testing.T) {
	c := Build(nil)

	assert.True(t, c.Empty())
	assert.Empty(t, c.Options())
	assert.Equal(t, Summary{Human: "0 B"}, c.Summary())
}

func TestEntries_ReturnsCopy(t *testing.T) {
	c := Build(sample())
	entries := c.Entries()
	entries[0].Path = "/tampered"

	e, _ := c.Get(1)
	assert.Equal(t, "/work/proj1/vendor", e.Path)
}

func TestPartialLabel(t *testing.T) {
	c := Build(sample())
	e, _ := c.Get(3)
	assert.Equal(t, "legacy (>= 500 B) [/work/legacy/vendor]", e.Label())
}

func TestOptions(t *testing.T) {
	opts := Build(sample()).Options()

	require.Len(t, opts, 3)
	assert.Equal(t, Option{Key: 2, Label: "api (1.5 KB) [/work/api/vendor]"}, opts[1])
}

func TestSummary(t *testing.T) {
	s := Build(sample()).Summary()

	assert.Equal(t, 3, s.Count)
	assert.Equal(t, int64(10*1024*1024+1536+500), s.TotalBytes)
	assert.Equal(t, "10 MB", s.Human)
	assert.True(t, s.Partial)
}

func TestResolve(t *testing.T) {
	c := Build(sample())

	tests := []struct {
		name    string
		indices []int
		want    []int
	}{
		{"nothing selected", nil, []int{}},
		{"single", []int{2}, []int{2}},
		{"sorted and deduped", []int{3, 1, 3}, []int{1, 3}},
		{"all", []int{1, 2, 3}, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Resolve(tt.indices)
			require.NoError(t, err)

			idx := make([]int, 0, len(got))
			for _, e := range got {
				idx = append(idx, e.Index)
			}
			assert.Equal(t, tt.want, idx)
		})
	}
}

func TestResolve_OutOfRange(t *testing.T) {
	c := Build(sample())

	for _, bad := range []int{0, -1, 4} {
		got, err := c.Resolve([]int{1, bad})
		assert.Nil(t, got)
		assert.True(t, errors.Is(err, errors.ErrInvalidSelection), "index %d: %v", bad, err)
	}
}
