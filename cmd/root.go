package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/vendorkill/internal/core"
	"github.com/lakshaymaurya-felt/vendorkill/internal/errors"
	"github.com/lakshaymaurya-felt/vendorkill/internal/purge"
	"github.com/lakshaymaurya-felt/vendorkill/internal/selector"
)

var (
	// Global flags
	debug      bool
	configPath string

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "vk [path]",
	Short: "Find and delete vendor directories",
	Long: `VendorKill - reclaim disk space taken by dependency directories.

Scans a directory tree for vendor directories that sit next to a project
manifest (composer.json by default), shows how much space each one uses,
and deletes the ones you pick. Deletion is permanent.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPurge,
}

// Execute runs the root command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/vendorkill/config.yaml)")

	addDiscoveryFlags(rootCmd)
	rootCmd.Flags().Bool("dry-run", false, "Preview without deleting")

	// Register all subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger returns a text logger on w. Warnings and errors only, unless
// --debug is set.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runPurge(cmd *cobra.Command, args []string) error {
	opts, err := pipelineOptions(cmd, args)
	if err != nil {
		return err
	}
	opts.DryRun, _ = cmd.Flags().GetBool("dry-run")

	log := newLogger(cmd.ErrOrStderr())
	p := &purge.Pipeline{
		FS:      core.OSFileSystem{},
		Gateway: selector.New(os.Stdin, os.Stdout),
		Out:     cmd.OutOrStdout(),
		Log:     log,
	}
	_, err = p.Run(cmd.Context(), opts)
	if err != nil && !errors.IsFatal(err) {
		// Only fatal conditions change the exit code.
		log.Warn("run finished with errors", "err", err)
		return nil
	}
	return err
}
