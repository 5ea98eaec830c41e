package cmd

import (
	"github.com/harrison/mindexr/internal/executor"
	"github.com/harrison/mindexr/internal/models"
	"github.com/spf13/cobra"
)

// NewIndexCommand creates the index command
func NewIndexCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index (--file <path> | --dir <path>)",
		Short: "Validate and index a file or a directory tree",
		Long: `Index validates a single file, or every regular file below a directory,
and reads each one as UTF-8 text.

Files that fail inside a directory are reported as warnings and counted;
the walk always runs to the end. A single file that fails is an error.

Examples:
  mindexr index --file notes.txt
  mindexr index -D docs/
  mindexr index -D docs/ --max-file-size 1048576 --log-dir ./logs`,
		Args: cobra.NoArgs,
		RunE: runIndex,
	}

	addTargetFlags(cmd)

	return cmd
}

func runIndex(cmd *cobra.Command, args []string) error {
	kind, target := targetFromFlags(cmd)

	return execute(cmd, executor.Request{
		Mode:   models.ModeIndex,
		Kind:   kind,
		Target: target,
	})
}
