// Package cmd implements the langdetect-corpusgen subcommands
package cmd

import (
	"github.com/spf13/cobra"
)

// Root returns the corpusgen root command
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "langdetect-corpusgen",
		Short: "Build the embedded n-gram corpus database for langdetect",
		Long: `langdetect-corpusgen reads a tab-separated sentence dump
(id, lang, text, user) and produces the grams2/grams3/grams5 tables the
langdetect service reads at query time, plus a users_langs seed file
for loading into the live admin store.`,
	}
	root.AddCommand(buildCmd())
	return root
}
