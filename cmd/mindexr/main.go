package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harrison/mindexr/internal/cmd"
	"github.com/harrison/mindexr/internal/display"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		prefix := color.New(color.FgRed, color.Bold)
		noColor, _ := rootCmd.PersistentFlags().GetBool("no-color")
		if !display.ColorEnabled(os.Stderr, noColor) {
			prefix.DisableColor()
		}
		fmt.Fprintf(os.Stderr, "%s %v\n", prefix.Sprint("Error:"), err)
		os.Exit(1)
	}
}
