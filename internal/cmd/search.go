package cmd

import (
	"github.com/harrison/mindexr/internal/executor"
	"github.com/harrison/mindexr/internal/models"
	"github.com/spf13/cobra"
)

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query> (--file <path> | --dir <path>)",
		Short: "Search a file or a directory tree for a query",
		Long: `Search prints every line that matches the query as path:line: text.

The query is a case-sensitive substring, or a regular expression when it is
wrapped in slashes. Surrounding whitespace is ignored and an empty query is
rejected before any file is opened.

The whole search, across every file of a directory, must finish within
--search-timeout. When the budget runs out the walk stops and the command
fails; other per-file failures are reported as warnings and counted.

Examples:
  mindexr search hello --file notes.txt
  mindexr search '/^func /' -D internal/
  mindexr search TODO -D . --search-timeout 2m`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}

	addTargetFlags(cmd)

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	kind, target := targetFromFlags(cmd)

	return execute(cmd, executor.Request{
		Mode:   models.ModeSearch,
		Kind:   kind,
		Target: target,
		Query:  args[0],
	})
}
