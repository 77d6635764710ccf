package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshaymaurya-felt/vendorkill/internal/errors"
)

func intPtr(v int) *int { return &v }

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultWhenMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	s, err := cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "vendor", s.Marker)
	assert.Equal(t, []string{"composer.json"}, s.Manifests)
	assert.Equal(t, DefaultMaxDepth, s.MaxDepth)
	assert.Positive(t, s.Jobs)
}

func TestLoad_OverridesFromFile(t *testing.T) {
	path := writeConfig(t, `
preset: go
max_depth: 4
jobs: 3
exclude:
  - build
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	s, err := cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "vendor", s.Marker)
	assert.Equal(t, []string{"go.mod"}, s.Manifests)
	assert.Equal(t, 4, s.MaxDepth)
	assert.Equal(t, 3, s.Jobs)
	assert.Contains(t, s.Exclude, "build")
	assert.Contains(t, s.Exclude, ".git")
}

func TestLoad_ZeroDepthIsKept(t *testing.T) {
	cfg, err := Load(writeConfig(t, "max_depth: 0\n"))
	require.NoError(t, err)

	s, err := cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 0, s.MaxDepth)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultPreset, cfg.Preset)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "max_depth: [nope\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfig))
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := Load(writeConfig(t, "maxdepth: 3\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfig))
}

func TestMerge(t *testing.T) {
	base := &Config{
		Preset:    "composer",
		Manifests: []string{"composer.json"},
		MaxDepth:  intPtr(2),
		Jobs:      4,
		Exclude:   []string{".git"},
	}
	overlay := &Config{
		Marker:    "deps",
		Manifests: []string{" deps.json ", ""},
		MaxDepth:  intPtr(0),
		Exclude:   []string{".git", "build"},
	}

	got := Merge(base, overlay)

	assert.Equal(t, "composer", got.Preset)
	assert.Equal(t, "deps", got.Marker)
	assert.Equal(t, []string{"deps.json"}, got.Manifests)
	require.NotNil(t, got.MaxDepth)
	assert.Equal(t, 0, *got.MaxDepth)
	assert.Equal(t, 4, got.Jobs)
	assert.Equal(t, []string{".git", "build"}, got.Exclude)
}

func TestResolve_ExplicitMarkerBeatsPreset(t *testing.T) {
	cfg := &Config{Preset: "node", Marker: "vendor"}

	s, err := cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "vendor", s.Marker)
	assert.Equal(t, []string{"package.json"}, s.Manifests)
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{"unknown preset", &Config{Preset: "maven"}},
		{"negative depth", &Config{MaxDepth: intPtr(-1)}},
		{"marker with separator", &Config{Marker: "a/vendor"}},
		{"manifest with separator", &Config{Manifests: []string{"sub/composer.json"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.Resolve()
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidArgument), "got %v", err)
		})
	}
}

func TestLookupPreset(t *testing.T) {
	p, ok := LookupPreset("Composer")
	require.True(t, ok)
	assert.Equal(t, "vendor", p.Marker)

	_, ok = LookupPreset("nope")
	assert.False(t, ok)

	assert.Equal(t, []string{"bundler", "cocoapods", "composer", "go", "node"}, PresetNames())
}
