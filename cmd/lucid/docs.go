package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/cloudy-native/lucid/docs"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the documentation",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		raw, _ := cmd.Flags().GetBool("raw")

		if raw || !isTerminal(out) {
			_, err := fmt.Fprint(out, docs.Markdown)
			return err
		}

		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return err
		}

		s, err := r.Render(docs.Markdown)
		if err != nil {
			return err
		}

		_, err = fmt.Fprint(out, s)
		return err
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
	docsCmd.Flags().Bool("raw", false, "Print the markdown without rendering it")
}
