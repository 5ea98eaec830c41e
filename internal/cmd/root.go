package cmd

import (
	"github.com/harrison/mindexr/internal/config"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for mindexr
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mindexr",
		Short: "Validated file indexing and bounded text search",
		Long: `mindexr walks a file or a directory tree and either indexes every
eligible file or searches its lines for a query.

Every path is validated before it is read: it must exist, have the expected
kind, stay under the size ceiling and satisfy the permission policy. Searches
run under a wall-clock budget shared by the whole operation.

A query wrapped in slashes (/^func/) is a regular expression; anything else
is a case-sensitive substring.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints the error once, in color
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to a YAML config file (no config file is read by default)")
	cmd.PersistentFlags().String("log-level", "info", "Log verbosity on stderr (trace, debug, info, warn, error)")
	cmd.PersistentFlags().String("log-dir", "", "Directory for per-run log files (disabled when empty)")
	cmd.PersistentFlags().Int64("max-file-size", config.DefaultMaxFileSizeBytes, "Largest file in bytes that will be read")
	cmd.PersistentFlags().Duration("search-timeout", config.DefaultSearchTimeout, "Time budget of one search (e.g. 30s, 2m)")
	cmd.PersistentFlags().Bool("allow-read-only", false, "Accept files without any write permission bit")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	// Add subcommands
	cmd.AddCommand(NewIndexCommand())
	cmd.AddCommand(NewSearchCommand())
	cmd.AddCommand(NewRunCommand())

	return cmd
}
