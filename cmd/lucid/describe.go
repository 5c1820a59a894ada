package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/cloudy-native/lucid"
	"github.com/cloudy-native/lucid/mesh"
	"github.com/cloudy-native/lucid/path"
	"github.com/cloudy-native/lucid/share"
	"github.com/cloudy-native/lucid/utils"
)

var axisColors = map[lucid.Axis]string{
	lucid.AxisX: "#ff4d4d",
	lucid.AxisY: "#39d353",
	lucid.AxisZ: "#4d79ff",
}

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Describe a configuration and its period",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadState(cmd)
		if err != nil {
			return err
		}

		return describe(cmd.OutOrStdout(), termenvProfile(cmd), st)
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	addStateFlags(describeCmd)
}

// termenvProfile returns the color profile of stdout, or no colors when it
// isn't a terminal.
func termenvProfile(cmd *cobra.Command) termenv.Profile {
	if !isTerminal(cmd.OutOrStdout()) {
		return termenv.Ascii
	}

	return termenv.ColorProfile()
}

func describe(w io.Writer, p termenv.Profile, st share.State) error {
	bold := func(s string) termenv.Style { return p.String(s).Bold() }

	fmt.Fprintln(w, bold(fmt.Sprintf("%d segments", len(st.Segments))))
	for i, s := range st.Segments {
		axis := p.String(string(s.Axis)).Foreground(p.Color(axisColors[s.Axis]))
		r := s.Speed.Reduced()

		turn := "stationary"
		if !r.Stationary() {
			turn = fmt.Sprintf("%.1f°/unit", utils.Deg(r.Float()))
		}

		fmt.Fprintf(w, "  %d. length %-6g axis %s  speed %-7s %s\n", i+1, s.Length, axis, r, turn)
	}

	period, err := path.ComputePeriod(st.Segments)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %d (%.4f time units)\n", bold("cycles"), period.Cycles, period.Time)

	r, err := path.Trace(st.Segments, path.ClampSamples(cfg.Samples.Default, cfg.Samples.Max))
	if err != nil {
		return err
	}

	b := mesh.ComputeBounds(r.Points)
	size := b.Size()
	fmt.Fprintf(w, "%s %.3f × %.3f × %.3f, radius %.3f\n", bold("bounds"), size[0], size[1], size[2], b.Radius)

	m, _ := share.LookupMaterial(st.Material)
	fmt.Fprintf(w, "%s %s, %s\n", bold("scene"), st.Environment,
		p.String(m.Label).Foreground(p.Color(m.Color)))

	return nil
}
