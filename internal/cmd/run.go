package cmd

import (
	"github.com/spf13/cobra"
)

// NewRunCommand creates the run command, which groups index and search.
//
//	mindexr run index --dir docs
//	mindexr run search hello --file notes.txt
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run an index or search operation",
		Long: `Run groups the index and search operations. The grouped commands
behave exactly like the top-level ones.`,
	}

	cmd.AddCommand(NewIndexCommand())
	cmd.AddCommand(NewSearchCommand())

	return cmd
}
