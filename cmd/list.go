package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/vendorkill/internal/catalog"
	"github.com/lakshaymaurya-felt/vendorkill/internal/core"
	"github.com/lakshaymaurya-felt/vendorkill/internal/purge"
	"github.com/lakshaymaurya-felt/vendorkill/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "List vendor directories without deleting anything",
	Long:  "Scan like the root command and print every directory found with its size. Never prompts and never deletes.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	addDiscoveryFlags(listCmd)
	listCmd.Flags().Bool("json", false, "Output the catalog as JSON")
}

// listOutput is the --json document.
type listOutput struct {
	Root     string          `json:"root"`
	Marker   string          `json:"marker"`
	Entries  []catalog.Entry `json:"entries"`
	Summary  catalog.Summary `json:"summary"`
	Warnings []string        `json:"warnings,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	opts, err := pipelineOptions(cmd, args)
	if err != nil {
		return err
	}

	p := &purge.Pipeline{
		FS:  core.OSFileSystem{},
		Out: cmd.OutOrStdout(),
		Log: newLogger(cmd.ErrOrStderr()),
	}
	report, err := p.Discover(cmd.Context(), opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	marker := opts.Settings.Marker
	cat := report.Catalog

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		doc := listOutput{
			Root:    report.Root,
			Marker:  marker,
			Entries: cat.Entries(),
			Summary: cat.Summary(),
		}
		for _, w := range report.Warnings {
			doc.Warnings = append(doc.Warnings, w.Error())
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	if cat.Empty() {
		ui.Warnings(out, report.Warnings)
		ui.NoneFound(out, marker)
		return nil
	}
	ui.Detail(out, cat.Entries())
	ui.Summary(out, marker, cat.Summary())
	ui.Warnings(out, report.Warnings)
	return nil
}
