package command

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/arloliu/flatesd/compress"
	"github.com/arloliu/flatesd/flat"
	"github.com/arloliu/flatesd/format"
)

func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <frame-file>",
		Short: "print one row per event of a frame file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			rows, stats, err := inspectFrames(f, logger, compare)
			if err != nil {
				return fmt.Errorf("inspect %s: %w", args[0], err)
			}
			if err := renderEvents(cmd.OutOrStdout(), rows); err != nil {
				return err
			}
			if compare {
				return renderStats(cmd.OutOrStdout(), stats)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&compare, "compare", false, "measure every compression codec on the events")

	return cmd
}

// inspectFrames summarises every event of r. With measure set it also
// compresses each event with every built-in codec and returns the totals
// in codec order.
func inspectFrames(r io.Reader, logger *slog.Logger, measure bool) ([]eventRow, []compress.CompressionStats, error) {
	var rows []eventRow
	totals := make(map[format.CompressionType]*compress.CompressionStats)

	err := forEachFrame(r, logger, func(ev *flat.Event) error {
		rows = append(rows, rowOf(ev))
		if !measure {
			return nil
		}

		for _, ct := range compress.Types() {
			s, err := compress.Measure(ct, ev.Bytes())
			if err != nil {
				return err
			}
			sum, ok := totals[ct]
			if !ok {
				sum = &compress.CompressionStats{Algorithm: ct}
				totals[ct] = sum
			}
			sum.OriginalSize += s.OriginalSize
			sum.CompressedSize += s.CompressedSize
			sum.Duration += s.Duration
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	var stats []compress.CompressionStats
	for _, ct := range compress.Types() {
		if sum, ok := totals[ct]; ok {
			stats = append(stats, *sum)
		}
	}

	return rows, stats, nil
}

type statsRow struct {
	Codec      string  `json:"codec"`
	Original   int64   `json:"original"`
	Compressed int64   `json:"compressed"`
	Ratio      float64 `json:"ratio"`
	Savings    float64 `json:"savings"`
	Duration   string  `json:"duration"`
}

func renderStats(w io.Writer, stats []compress.CompressionStats) error {
	rows := make([]statsRow, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, statsRow{
			Codec:      s.Algorithm.String(),
			Original:   s.OriginalSize,
			Compressed: s.CompressedSize,
			Ratio:      s.CompressionRatio(),
			Savings:    s.SpaceSavings(),
			Duration:   s.Duration.Round(time.Microsecond).String(),
		})
	}
	if isFormatJSON() {
		return writeJSON(w, rows)
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Codec", "Original", "Compressed", "Ratio", "Savings", "Duration"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Codec, r.Original, r.Compressed, fmt.Sprintf("%.3f", r.Ratio), fmt.Sprintf("%.1f%%", r.Savings), r.Duration})
	}
	t.Render()

	return nil
}
