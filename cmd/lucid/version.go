package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudy-native/lucid"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of lucid",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", lucid.Name, lucid.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
