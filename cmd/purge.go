package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/vendorkill/internal/config"
	"github.com/lakshaymaurya-felt/vendorkill/internal/purge"
)

// addDiscoveryFlags registers the flags shared by every command that scans.
func addDiscoveryFlags(c *cobra.Command) {
	c.Flags().Int("maxdepth", config.DefaultMaxDepth, "Descend at most this many levels below the search root")
	c.Flags().Bool("full", false, "Print every directory found, not just the summary")
	c.Flags().String("preset", "", "Ecosystem preset (see 'vk presets')")
	c.Flags().String("marker", "", "Dependency directory name (default from preset: vendor)")
	c.Flags().StringSlice("manifest", nil, "Manifest file that must sit next to the marker (repeatable)")
	c.Flags().StringSlice("exclude", nil, "Directory names never descended into (repeatable)")
	c.Flags().Int("jobs", 0, "Directories sized in parallel (default: number of CPUs)")
}

// loadSettings layers defaults, the config file and explicitly set flags.
func loadSettings(c *cobra.Command) (config.Settings, error) {
	base, err := config.Load(configPath)
	if err != nil {
		return config.Settings{}, err
	}

	flags := c.Flags()
	overlay := &config.Config{}

	if flags.Changed("preset") {
		overlay.Preset, _ = flags.GetString("preset")
		// A preset on the command line beats marker and manifests from the file.
		base.Marker = ""
		base.Manifests = nil
	}
	if flags.Changed("marker") {
		overlay.Marker, _ = flags.GetString("marker")
	}
	if flags.Changed("manifest") {
		overlay.Manifests, _ = flags.GetStringSlice("manifest")
	}
	if flags.Changed("exclude") {
		overlay.Exclude, _ = flags.GetStringSlice("exclude")
	}
	if flags.Changed("maxdepth") {
		depth, _ := flags.GetInt("maxdepth")
		overlay.MaxDepth = &depth
	}
	if flags.Changed("jobs") {
		overlay.Jobs, _ = flags.GetInt("jobs")
	}

	return config.Merge(base, overlay).Resolve()
}

// pipelineOptions builds run options from flags and the optional path
// argument.
func pipelineOptions(c *cobra.Command, args []string) (purge.Options, error) {
	settings, err := loadSettings(c)
	if err != nil {
		return purge.Options{}, err
	}

	opts := purge.Options{Settings: settings}
	if len(args) > 0 {
		opts.Root = args[0]
	}
	opts.Full, _ = c.Flags().GetBool("full")
	return opts, nil
}
