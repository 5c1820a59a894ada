package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cloudy-native/lucid/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start a Model Context Protocol server on stdio",
	Long: `Starts an MCP server on stdin and stdout, exposing tools to compute
periods, sample paths, and encode and decode share codes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// stdout carries the protocol, so logs must stay on stderr.
		logrus.Info("serving mcp on stdio")
		return mcp.NewServer(cfg.BaseURL).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
