package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cloudy-native/lucid/export"
	"github.com/cloudy-native/lucid/mesh"
	"github.com/cloudy-native/lucid/path"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Sample a path and write it out",
	Long: `Samples one period of the path traced by a configuration, and writes the
points as JSON, CSV, or an OBJ polyline, or a tube around them as an OBJ mesh.`,
	Example: `  lucid path --format csv > path.csv
  lucid path --config <code> --format tube --radius 0.1 -o path.obj`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadState(cmd)
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("format")
		format, err := export.ParseFormat(name)
		if err != nil {
			return err
		}

		n, _ := cmd.Flags().GetInt("samples")
		if n == 0 {
			n = cfg.Samples.Default
		}
		if n < 0 {
			return fmt.Errorf("samples must be positive, got %d", n)
		}

		r, err := path.Trace(st.Segments, path.ClampSamples(n, cfg.Samples.Max))
		if err != nil {
			return err
		}

		o := mesh.DefaultTubeOptions()
		o.Radius, _ = cmd.Flags().GetFloat64("radius")
		o.RadialSegments, _ = cmd.Flags().GetInt("radial")

		out := cmd.OutOrStdout()
		if file, _ := cmd.Flags().GetString("output"); file != "" {
			f, err := os.Create(file)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		w := bufio.NewWriter(out)
		if err := export.WritePoints(w, format, r.Points, o); err != nil {
			return err
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)
	addStateFlags(pathCmd)
	pathCmd.Flags().IntP("samples", "n", 0, "Number of samples (default from settings)")
	pathCmd.Flags().String("format", string(export.FormatJSON), "Output format: json, csv, obj or tube")
	pathCmd.Flags().Float64("radius", mesh.DefaultRadius, "Tube radius, for the tube format")
	pathCmd.Flags().Int("radial", mesh.DefaultRadialSegments, "Tube radial segments, for the tube format")
	pathCmd.Flags().StringP("output", "o", "", "Write to a file rather than stdout")
}
