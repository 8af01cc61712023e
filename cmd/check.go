// Package cmd — check command.
// Finds every Markdown link in a document and reports whether it points at
// something valid: in-document fragments are matched against the generated
// TOC anchors, http(s) links are probed over the network.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gaurav-prasanna/mdtoc/core"
	"github.com/gaurav-prasanna/mdtoc/core/extract"
	"github.com/gaurav-prasanna/mdtoc/core/fetch"
	"github.com/gaurav-prasanna/mdtoc/core/render"
	"github.com/gaurav-prasanna/mdtoc/linkcheck"
	"github.com/spf13/cobra"
)

var flagCheckTimeout time.Duration

var checkCmd = &cobra.Command{
	Use:   "check <file.md>",
	Short: "Find all hyperlinks and ensure they point to something valid",
	Long: `Check scans a Markdown file for links.

Fragment links (#some-header) are validated against the anchors the
document's own table of contents would contain. http and https links are
fetched and their response status reported; when such a link carries a
fragment, the fetched page is searched for a matching anchor.

Example:
  mdtoc check README.md`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().DurationVar(&flagCheckTimeout, "timeout", 30*time.Second, "HTTP timeout per link")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := expandUser(args[0])

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	doc := string(data)

	headers := extract.New().Extract(doc)
	anchors := render.New(core.DefaultTocOptions()).Anchors(headers)
	checker := linkcheck.New(fetch.NewWithTimeout(flagCheckTimeout), anchors)

	for _, link := range linkcheck.Links(doc) {
		res := checker.Check(cmd.Context(), link)
		fmt.Fprintf(os.Stdout, "Checking %d:%d [%s](%s) --> %s\n",
			link.Line, link.Col,
			color.YellowString(link.Text),
			color.BlueString(link.Href),
			verdict(res),
		)
	}
	return nil
}

// verdict formats a check result for display.
func verdict(res linkcheck.Result) string {
	switch res.Status {
	case linkcheck.StatusValid:
		return fmt.Sprintf("%s (%s)", color.GreenString("VALID"), res.Detail)
	case linkcheck.StatusInvalid:
		return fmt.Sprintf("%s (%s)", color.RedString("INVALID"), res.Detail)
	case linkcheck.StatusUnreachable:
		return fmt.Sprintf("%s (%s)", color.RedString("UNREACHABLE"), res.Detail)
	default:
		return res.Detail
	}
}
