package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/cloudy-native/lucid/random"
	"github.com/cloudy-native/lucid/share"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate a random configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		o := random.DefaultOptions()

		if n, _ := cmd.Flags().GetInt("segments"); n != 0 {
			if n < 1 {
				return fmt.Errorf("segments must be positive, got %d", n)
			}
			o.MinSegments, o.MaxSegments = n, n
		}

		seed := rand.Uint64()
		if cmd.Flags().Changed("seed") {
			seed, _ = cmd.Flags().GetUint64("seed")
		}

		st := random.State(rand.New(rand.NewPCG(seed, seed)), o)

		if show, _ := cmd.Flags().GetBool("describe"); show {
			if err := describe(cmd.OutOrStdout(), termenvProfile(cmd), st); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
		}

		u, err := share.URL(cfg.BaseURL, st)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), u)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(randomCmd)
	randomCmd.Flags().Int("segments", 0, "Number of segments (default 2 to 5)")
	randomCmd.Flags().Uint64("seed", 0, "Seed, for a repeatable configuration")
	randomCmd.Flags().BoolP("describe", "d", false, "Describe the configuration too")
}
