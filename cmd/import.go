// Package cmd — import command.
// Fetches a web page, extracts its main content, converts it to Markdown,
// and writes it out as a new document with TOC markers and a generated TOC.
package cmd

import (
	"fmt"
	"net/url"

	"github.com/fatih/color"
	"github.com/gaurav-prasanna/mdtoc/core/extract"
	"github.com/gaurav-prasanna/mdtoc/core/fetch"
	"github.com/gaurav-prasanna/mdtoc/core/output"
	"github.com/gaurav-prasanna/mdtoc/core/render"
	"github.com/gaurav-prasanna/mdtoc/core/splice"
	"github.com/gaurav-prasanna/mdtoc/page"
	"github.com/spf13/cobra"
)

var flagOutputDir string

var importCmd = &cobra.Command{
	Use:   "import <url>",
	Short: "Convert a web page into a Markdown file with a generated TOC",
	Long: `Import fetches a webpage, extracts its main content, converts it to
Markdown, and writes it with TOC markers and a freshly generated table of
contents. The filename is derived from the URL (e.g., example_com_docs.md).

Examples:
  mdtoc import https://example.com/docs/intro
  mdtoc import https://example.com --output_dir ./docs`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	addRenderFlags(importCmd)
	importCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
}

func runImport(cmd *cobra.Command, args []string) error {
	rawURL := args[0]

	// Validate URL.
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", rawURL)
	}

	opts, err := tocOptions()
	if err != nil {
		return err
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	// 1. Fetch
	result, err := fetch.New().Fetch(cmd.Context(), rawURL)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	if result.StatusCode < 200 || result.StatusCode >= 300 {
		return fmt.Errorf("fetch: unexpected status %d for %s", result.StatusCode, rawURL)
	}

	// 2. Extract main content
	content, err := page.Extract(result.Body)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	// 3. Convert to Markdown
	markdown, err := page.Normalize(content)
	if err != nil {
		return fmt.Errorf("normalize: %w", err)
	}

	// 4. Compose the document and fill in its TOC
	doc := composeDocument(page.Title(result.Body), markdown)
	headers := extract.New().Extract(doc)
	toc := render.New(opts).Render(headers)
	doc, err = splice.Replace(doc, toc)
	if err != nil {
		return fmt.Errorf("splicing TOC: %w", err)
	}

	path, err := writer.WriteImport(rawURL, []byte(doc))
	if err != nil {
		return err
	}
	color.Green("✓ Written: %s", path)
	return nil
}

// composeDocument lays out the imported page: an H1 from the page title
// (when present), the TOC marker pair, then the converted body.
func composeDocument(title, markdown string) string {
	doc := ""
	if title != "" {
		doc = "# " + title + "\n\n"
	}
	doc += splice.StartMarker + "\n" + splice.EndMarker + "\n\n" + markdown + "\n"
	return doc
}
