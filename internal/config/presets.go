package config

import (
	"sort"
	"strings"
)

// Preset describes where one package manager installs dependencies and
// which file marks the owning project.
type Preset struct {
	// Name is the unique identifier used with --preset.
	Name string

	// Marker is the directory name that holds installed dependencies.
	Marker string

	// Manifests lists file names, any of which must sit next to the marker
	// directory for it to be offered for deletion.
	Manifests []string

	// Description is a human-readable description.
	Description string
}

// DefaultPreset is used when neither the config file nor flags pick one.
const DefaultPreset = "composer"

// GetPresets returns all built-in presets sorted by name.
func GetPresets() []Preset {
	presets := []Preset{
		// ── PHP ─────────────────────────────────────────────────
		{
			Name:        "composer",
			Marker:      "vendor",
			Manifests:   []string{"composer.json"},
			Description: "Composer dependencies (PHP)",
		},

		// ── Go ──────────────────────────────────────────────────
		{
			Name:        "go",
			Marker:      "vendor",
			Manifests:   []string{"go.mod"},
			Description: "Vendored Go modules (go mod vendor)",
		},

		// ── Ruby ────────────────────────────────────────────────
		{
			Name:        "bundler",
			Marker:      "vendor",
			Manifests:   []string{"Gemfile", "gems.rb"},
			Description: "Bundler gems installed with --path vendor",
		},

		// ── JavaScript ──────────────────────────────────────────
		{
			Name:        "node",
			Marker:      "node_modules",
			Manifests:   []string{"package.json"},
			Description: "npm, yarn and pnpm dependencies",
		},

		// ── Swift / Objective-C ─────────────────────────────────
		{
			Name:        "cocoapods",
			Marker:      "Pods",
			Manifests:   []string{"Podfile"},
			Description: "CocoaPods dependencies",
		},
	}

	sort.Slice(presets, func(i, j int) bool {
		return presets[i].Name < presets[j].Name
	})
	return presets
}

// LookupPreset finds a preset by name, case-insensitively.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range GetPresets() {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// PresetNames returns the names of all presets.
func PresetNames() []string {
	presets := GetPresets()
	names := make([]string, 0, len(presets))
	for _, p := range presets {
		names = append(names, p.Name)
	}
	return names
}
