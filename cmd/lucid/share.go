package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cloudy-native/lucid/share"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Encode and decode share codes",
}

var shareEncodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Encode a JSON or YAML state file as a share link",
	Long:  `Encodes a state file, or stdin when no file is given, as a share link.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := "-"
		if len(args) == 1 {
			file = args[0]
		}

		data, err := readFile(cmd, file)
		if err != nil {
			return err
		}

		st, err := parseState(data)
		if err != nil {
			return err
		}

		if codeOnly, _ := cmd.Flags().GetBool("code"); codeOnly {
			code, err := share.Encode(st)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), code)
			return nil
		}

		u, err := share.URL(cfg.BaseURL, st)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), u)
		return nil
	},
}

var shareDecodeCmd = &cobra.Command{
	Use:   "decode <code or link>",
	Short: "Decode a share code or link into a state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := decodeCode(args[0])
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(st)
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(st); err != nil {
			return err
		}
		return enc.Close()
	},
}

func init() {
	rootCmd.AddCommand(shareCmd)
	shareCmd.AddCommand(shareEncodeCmd, shareDecodeCmd)

	shareEncodeCmd.Flags().Bool("code", false, "Print only the code, not a link")

	shareDecodeCmd.Flags().Bool("json", false, "Print JSON rather than YAML")
}
