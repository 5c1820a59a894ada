package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/cloudy-native/lucid/share"
)

// addStateFlags adds the flags which choose a configuration.
func addStateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "Share code, or a share link")
	cmd.Flags().StringP("file", "f", "", "JSON or YAML state file (- for stdin)")
}

// loadState returns the configuration chosen by the flags. With neither, it's
// the default configuration.
func loadState(cmd *cobra.Command) (share.State, error) {
	code, _ := cmd.Flags().GetString("config")
	file, _ := cmd.Flags().GetString("file")

	switch {
	case code != "" && file != "":
		return share.State{}, fmt.Errorf("--config and --file can't be used together")

	case file != "":
		data, err := readFile(cmd, file)
		if err != nil {
			return share.State{}, err
		}
		return parseState(data)

	case code != "":
		return decodeCode(code)
	}

	return share.DefaultState(), nil
}

// decodeCode decodes a share code, or the code in a share link.
func decodeCode(code string) (share.State, error) {
	if !strings.Contains(code, "?") {
		return share.Decode(code)
	}

	st, fallback := share.FromURL(code)
	if fallback {
		return share.State{}, fmt.Errorf("link has no usable %s parameter", share.Param)
	}

	return st, nil
}

func readFile(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	return os.ReadFile(name)
}

// parseState reads a state from YAML. JSON is YAML too, so it reads that as
// well.
func parseState(data []byte) (share.State, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return share.State{}, fmt.Errorf("failed to parse state: %w", err)
	}

	return share.FromMap(raw)
}

// isTerminal returns true if w is a terminal, rather than a file or pipe.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
