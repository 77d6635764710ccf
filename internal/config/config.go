package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/lakshaymaurya-felt/vendorkill/internal/errors"
)

// Config holds user configuration. Zero values mean "not set" so configs
// can be layered with Merge.
type Config struct {
	// Preset names a built-in marker/manifest pair (see GetPresets).
	Preset string `yaml:"preset,omitempty"`

	// Marker overrides the preset's directory name.
	Marker string `yaml:"marker,omitempty"`

	// Manifests overrides the preset's manifest file names.
	Manifests []string `yaml:"manifests,omitempty"`

	// MaxDepth bounds the scan. A pointer because 0 is a valid depth.
	MaxDepth *int `yaml:"max_depth,omitempty"`

	// Jobs is the number of directories sized concurrently.
	Jobs int `yaml:"jobs,omitempty"`

	// Exclude lists directory names the scan never descends into.
	// Case-insensitive.
	Exclude []string `yaml:"exclude,omitempty"`
}

// Settings is a fully resolved configuration.
type Settings struct {
	Marker    string
	Manifests []string
	MaxDepth  int
	Jobs      int
	Exclude   []string
}

// DefaultMaxDepth matches the default of the --maxdepth flag.
const DefaultMaxDepth = 2

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	depth := DefaultMaxDepth
	return &Config{
		Preset:   DefaultPreset,
		MaxDepth: &depth,
		Jobs:     runtime.NumCPU(),
		Exclude:  []string{".git", ".hg", ".svn"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/vendorkill/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "vendorkill", "config.yaml")
}

// Load reads the YAML file at path and layers it over the defaults. An
// empty path means DefaultPath. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	file, err := loadFileRaw(path)
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), file), nil
}

// loadFileRaw parses a config file without applying defaults.
func loadFileRaw(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, errors.NewConfig(path, err)
	}

	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.NewConfig(path, err)
	}
	return cfg, nil
}

// Merge combines base and overlay. Overlay scalars win when set; Manifests
// is replaced as a whole; Exclude is merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.Preset = overlay.Preset
	if result.Preset == "" {
		result.Preset = base.Preset
	}

	result.Marker = overlay.Marker
	if result.Marker == "" {
		result.Marker = base.Marker
	}

	result.Manifests = cleanStringSlice(overlay.Manifests)
	if len(result.Manifests) == 0 {
		result.Manifests = cleanStringSlice(base.Manifests)
	}

	result.MaxDepth = overlay.MaxDepth
	if result.MaxDepth == nil {
		result.MaxDepth = base.MaxDepth
	}

	result.Jobs = overlay.Jobs
	if result.Jobs == 0 {
		result.Jobs = base.Jobs
	}

	result.Exclude = mergeStringSlice(base.Exclude, overlay.Exclude)

	return result
}

// Resolve validates the configuration and fills Marker and Manifests from
// the preset when they were not set explicitly.
func (c *Config) Resolve() (Settings, error) {
	presetName := c.Preset
	if presetName == "" {
		presetName = DefaultPreset
	}
	preset, ok := LookupPreset(presetName)
	if !ok {
		return Settings{}, errors.NewInvalidArgument(fmt.Sprintf(
			"unknown preset %q (available: %s)", presetName, strings.Join(PresetNames(), ", ")))
	}

	s := Settings{
		Marker:    strings.TrimSpace(c.Marker),
		Manifests: cleanStringSlice(c.Manifests),
		MaxDepth:  DefaultMaxDepth,
		Jobs:      c.Jobs,
		Exclude:   mergeStringSlice(nil, c.Exclude),
	}
	if s.Marker == "" {
		s.Marker = preset.Marker
	}
	if len(s.Manifests) == 0 {
		s.Manifests = append([]string(nil), preset.Manifests...)
	}
	if c.MaxDepth != nil {
		s.MaxDepth = *c.MaxDepth
	}
	if s.Jobs <= 0 {
		s.Jobs = runtime.NumCPU()
	}

	if s.MaxDepth < 0 {
		return Settings{}, errors.NewInvalidArgument(fmt.Sprintf("maxdepth must be >= 0, got %d", s.MaxDepth))
	}
	if strings.ContainsRune(s.Marker, filepath.Separator) || strings.ContainsRune(s.Marker, '/') {
		return Settings{}, errors.NewInvalidArgument(fmt.Sprintf("marker must be a directory name, got %q", s.Marker))
	}
	for _, m := range s.Manifests {
		if strings.ContainsRune(m, filepath.Separator) || strings.ContainsRune(m, '/') {
			return Settings{}, errors.NewInvalidArgument(fmt.Sprintf("manifest must be a file name, got %q", m))
		}
	}

	return s, nil
}

// cleanStringSlice trims entries and drops empty ones and duplicates.
func cleanStringSlice(s []string) []string {
	return mergeStringSlice(s, nil)
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, list := range [][]string{a, b} {
		for _, s := range list {
			s = strings.TrimSpace(s)
			if s != "" && !seen[s] {
				seen[s] = true
				result = append(result, s)
			}
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
