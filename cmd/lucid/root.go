package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cloudy-native/lucid/config"
)

// cfg is loaded before any command runs.
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "lucid",
	Short: "Lucid Geometry draws the curves traced by chains of spinning segments",
	Long: `Lucid Geometry computes the closed curve traced by the end of a chain of
segments, each spinning about a world axis at a rational speed. It can serve
the paths over HTTP, export them as meshes, and encode them as share links.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("settings")

		var err error
		cfg, err = config.Load(file)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("log-level") {
			cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
		}
		if cmd.Flags().Changed("log-format") {
			cfg.Log.Format, _ = cmd.Flags().GetString("log-format")
		}

		return setupLogging(cfg.Log)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("settings", "s", "", "YAML settings file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text or json)")
}

// setupLogging configures the standard logrus logger. Logs go to stderr, so
// that command output on stdout can be piped.
func setupLogging(c config.Log) error {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return err
	}

	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)

	switch c.Format {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logrus.SetFormatter(&logrus.TextFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", c.Format)
	}

	return nil
}
