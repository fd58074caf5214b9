package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"slimtrack/internal/app"
	"slimtrack/internal/domain"
)

const barWidth = 40

func newChartCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "chart [weight|bmi|distribution]",
		Short:     "Draw a text chart of weight, BMI or category distribution",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"weight", "bmi", "distribution"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := "weight"
			if len(args) == 1 {
				kind = args[0]
			}
			return opts.withStack(cmd.Context(), cmd.ErrOrStderr(), func(s *stack) error {
				out := cmd.OutOrStdout()
				ctx := cmd.Context()
				switch kind {
				case "bmi":
					renderSeries(out, "BMI Over Time", s.charts.BMISeries(ctx))
				case "distribution":
					renderDistribution(out, s.charts.Distribution(ctx))
				default:
					renderSeries(out, "Weight Over Time (kg)", s.charts.WeightSeries(ctx))
				}
				return nil
			})
		},
	}
}

// renderSeries draws one horizontal bar per point, scaled between the
// series minimum and maximum.
func renderSeries(w io.Writer, title string, points []app.Point) {
	fmt.Fprintln(w, title)
	if len(points) == 0 {
		fmt.Fprintln(w, "No data to display")
		return
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		lo = math.Min(lo, p.Value)
		hi = math.Max(hi, p.Value)
	}

	for _, p := range points {
		n := barWidth
		if hi > lo {
			n = 1 + int(math.Round((p.Value-lo)/(hi-lo)*float64(barWidth-1)))
		}
		fmt.Fprintf(w, "%s %7.2f %s\n", p.Date.Format(domain.DateLayout), p.Value, strings.Repeat("#", n))
	}
}

// renderDistribution draws one bar per category proportional to its share.
func renderDistribution(w io.Writer, slices []app.Slice) {
	fmt.Fprintln(w, "BMI Category Distribution")
	if len(slices) == 0 {
		fmt.Fprintln(w, "No data to display")
		return
	}
	for _, s := range slices {
		n := int(math.Round(s.Percent / 100 * barWidth))
		fmt.Fprintf(w, "%-12s %3d %5.1f%% %s\n", s.Label, s.Count, s.Percent, strings.Repeat("#", n))
	}
}
