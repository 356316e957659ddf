package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// newDocsCmd builds the hidden gen-docs command, which renders man pages or
// markdown for the whole command tree.
func newDocsCmd() *cobra.Command {
	var dir, format string

	cmd := &cobra.Command{
		Use:    "gen-docs",
		Short:  "Generate documentation for checksum",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := docGenerator(format)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			return gen(cmd.Root(), dir)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "docs", "output directory")
	cmd.Flags().StringVar(&format, "format", "man", "output format (man or markdown)")
	return cmd
}

func docGenerator(format string) (func(*cobra.Command, string) error, error) {
	switch format {
	case "man":
		header := &doc.GenManHeader{
			Title:   "CHECKSUM",
			Section: "1",
			Source:  "checksum " + version,
		}
		return func(root *cobra.Command, dir string) error {
			return doc.GenManTree(root, header, dir)
		}, nil
	case "markdown", "md":
		return doc.GenMarkdownTree, nil
	default:
		return nil, usagef("unknown format %q (use man or markdown)", format)
	}
}
