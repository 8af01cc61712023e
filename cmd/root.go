// Package cmd implements the CLI commands for mdtoc using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mdtoc",
	Short: "mdtoc — maintain tables of contents in Markdown files",
	Long: `mdtoc generates a table of contents for Markdown files.

It searches for the text block between the delimiters:

  <!---toc start-->
  ... anything ...
  <!---toc end-->

and replaces the contents of the block with a table of contents built
from the document's headers.

Usage:
  mdtoc update <file.md> [flags]
  mdtoc check <file.md> [flags]
  mdtoc import <url> [flags]`,
	Version: "1.0.0",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
