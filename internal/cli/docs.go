package cli

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// frontMatter heads every generated page for static site generators.
const frontMatter = `---
title: %s
nav_order: %d
---
`

// docsCmd writes the Markdown reference of the command tree.
var docsCmd = &cobra.Command{
	Use:   "docs <dir>",
	Short: "Generate Markdown reference pages for every command",
	Args:  cobra.ExactArgs(1),
	RunE:  docsExec,
}

func init() {
	rootCmd.AddCommand(docsCmd)
}

// docsExec parses the command tree and outputs one Markdown file per command.
func docsExec(cmd *cobra.Command, args []string) error {
	dir := args[0]
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("docs: %w", err)
	}
	rootCmd.DisableAutoGenTag = true

	return doc.GenMarkdownTreeCustom(rootCmd, dir, filePrepender, linkHandler)
}

// filePrepender adds the front matter; the root page sorts first.
func filePrepender(filename string) string {
	base := baseName(filename)
	title := strings.ReplaceAll(base, "_", " ")
	order := 1
	if base == rootCmd.Name() {
		order = 0
	}

	return fmt.Sprintf(frontMatter, title, order)
}

// linkHandler returns the relative URL of a documentation page.
func linkHandler(filename string) string {
	base := baseName(filename)
	if base == rootCmd.Name() {
		return "/"
	}

	return base
}

func baseName(filename string) string {
	name := filepath.Base(filename)

	return strings.TrimSuffix(name, path.Ext(name))
}
