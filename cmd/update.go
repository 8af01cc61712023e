// Package cmd — update command.
// This is the main command that runs the core pipeline:
// read → extract headers → render TOC → splice between markers → write.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/gaurav-prasanna/mdtoc/core"
	"github.com/gaurav-prasanna/mdtoc/core/extract"
	"github.com/gaurav-prasanna/mdtoc/core/output"
	"github.com/gaurav-prasanna/mdtoc/core/render"
	"github.com/gaurav-prasanna/mdtoc/core/splice"
	"github.com/spf13/cobra"
)

// Rendering flags, shared by update and import.
var (
	flagIndent   int
	flagBullet   string
	flagNoLinks  bool
	flagNoDedupe bool
)

var flagDryRun bool

var updateCmd = &cobra.Command{
	Use:   "update <file.md>",
	Short: "Regenerate the table of contents in a Markdown file",
	Long: `Update extracts the ATX headers from a Markdown file, renders them as an
indented list of anchor links, and overwrites the block between the
<!---toc start--> and <!---toc end--> markers in place.

Examples:
  mdtoc update README.md
  mdtoc update README.md --indent 4 --bullet -
  mdtoc update README.md --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)

	addRenderFlags(updateCmd)
	updateCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the result to stdout instead of writing")
}

// addRenderFlags registers the TOC rendering flags on a command.
func addRenderFlags(c *cobra.Command) {
	c.Flags().IntVar(&flagIndent, "indent", 2, "Spaces of indentation per heading level")
	c.Flags().StringVar(&flagBullet, "bullet", "*", "List marker, '-' or '*'")
	c.Flags().BoolVar(&flagNoLinks, "no-links", false, "Emit plain titles instead of anchor links")
	c.Flags().BoolVar(&flagNoDedupe, "no-dedupe", false, "Do not suffix repeated anchor slugs")
}

// tocOptions validates the rendering flags and builds the options.
func tocOptions() (core.TocOptions, error) {
	if flagIndent < 1 {
		return core.TocOptions{}, fmt.Errorf("--indent must be at least 1 (got %d)", flagIndent)
	}
	if flagBullet != "-" && flagBullet != "*" {
		return core.TocOptions{}, fmt.Errorf("--bullet must be '-' or '*' (got %q)", flagBullet)
	}
	return core.TocOptions{
		Indent:      flagIndent,
		Bullet:      flagBullet,
		Anchors:     !flagNoLinks,
		DedupeSlugs: !flagNoDedupe,
	}, nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	path := expandUser(args[0])

	opts, err := tocOptions()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	doc := string(data)

	headers := extract.New().Extract(doc)
	toc := render.New(opts).Render(headers)

	result, err := splice.Replace(doc, toc)
	if err != nil {
		return spliceError(err, path)
	}

	if flagDryRun {
		fmt.Fprint(os.Stdout, result)
		return nil
	}

	if err := output.Overwrite(path, []byte(result)); err != nil {
		return err
	}
	color.Green("Success: wrote TOC to %s", path)
	return nil
}

// spliceError turns the splice sentinel errors into actionable messages.
func spliceError(err error, path string) error {
	switch {
	case errors.Is(err, splice.ErrMissingMarkers):
		return fmt.Errorf(
			"document missing toc start/end markers\n"+
				"Add these delimiters to your Markdown file:\n\n"+
				"\t%s\n"+
				"\t%s\n\n"+
				"Then, run:\n\n"+
				"\tmdtoc update %s",
			splice.StartMarker, splice.EndMarker, path)
	case errors.Is(err, splice.ErrMultipleMarkers):
		return fmt.Errorf(
			"multiple toc start/end marker pairs detected;"+
				" %s should include only one pair of markers", path)
	default:
		return err
	}
}

// expandUser expands a leading ~ to the user's home directory.
func expandUser(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
