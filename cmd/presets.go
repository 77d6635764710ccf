package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/vendorkill/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List ecosystem presets",
	Long:  "Show the built-in marker and manifest pairs selectable with --preset.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, p := range config.GetPresets() {
			def := ""
			if p.Name == config.DefaultPreset {
				def = " (default)"
			}
			fmt.Fprintf(out, "  %-10s %-13s %-28s %s%s\n",
				p.Name, p.Marker, strings.Join(p.Manifests, ", "), p.Description, def)
		}
	},
}
