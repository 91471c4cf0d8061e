package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/arloliu/flatesd/flat"
	"github.com/arloliu/flatesd/format"
	"github.com/arloliu/flatesd/frame"
	"github.com/arloliu/flatesd/store"
)

func isFormatJSON() bool {
	return strings.ToLower(GlobalFlags.Format) == FormatJSON
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if GlobalFlags.Debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func parseCompression(name string) (format.CompressionType, error) {
	ct, ok := format.ParseCompressionType(strings.ToLower(name))
	if !ok {
		return 0, fmt.Errorf("unknown compression %q, want one of none, zstd, s2, lz4, snappy", name)
	}

	return ct, nil
}

func openStore(logger *slog.Logger, opts ...store.Option) (*store.Store, error) {
	if dbPath == "" {
		return nil, errors.New("the --db flag MUST be set")
	}

	return store.Open(dbPath, append(opts, store.WithLogger(logger))...)
}

// forEachFrame decodes every event of the frame stream r.
func forEachFrame(r io.Reader, logger *slog.Logger, fn func(*flat.Event) error) error {
	fr, err := frame.NewReader(r, frame.WithLogger(logger))
	if err != nil {
		return err
	}

	for {
		ev, err := fr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(ev); err != nil {
			return err
		}
	}
}

// eventRow is the printable summary of one flat event.
type eventRow struct {
	Key      string `json:"key"`
	Run      int32  `json:"run"`
	Period   uint32 `json:"period"`
	Orbit    uint32 `json:"orbit"`
	BC       uint16 `json:"bc"`
	Fired    string `json:"fired"`
	Vertices string `json:"vertices"`
	Tracks   int    `json:"tracks"`
	V0s      int    `json:"v0s"`
	Size     int    `json:"size"`
}

func rowOf(ev *flat.Event) eventRow {
	var vertices []string
	if _, ok := ev.PrimaryVertexSPD(); ok {
		vertices = append(vertices, "SPD")
	}
	if _, ok := ev.PrimaryVertexTracks(); ok {
		vertices = append(vertices, "Tracks")
	}

	return eventRow{
		Key:      store.KeyOf(ev).String(),
		Run:      ev.RunNumber(),
		Period:   ev.PeriodNumber(),
		Orbit:    ev.OrbitNumber(),
		BC:       ev.BunchCrossNumber(),
		Fired:    strings.Join(strings.Fields(ev.FiredTriggerClasses()), " "),
		Vertices: strings.Join(vertices, ","),
		Tracks:   ev.NumberOfTracks(),
		V0s:      ev.NumberOfV0s(),
		Size:     ev.Size(),
	}
}

func renderEvents(w io.Writer, rows []eventRow) error {
	if isFormatJSON() {
		return writeJSON(w, rows)
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Key", "Run", "Period", "Orbit", "BC", "Fired", "Vertices", "Tracks", "V0s", "Size"})
	total := 0
	for _, r := range rows {
		t.AppendRow(table.Row{r.Key, r.Run, r.Period, r.Orbit, r.BC, r.Fired, r.Vertices, r.Tracks, r.V0s, r.Size})
		total += r.Size
	}
	t.AppendFooter(table.Row{"Total", len(rows), "", "", "", "", "", "", "", total})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 6, WidthMax: 48},
		{Number: 10, Align: text.AlignRight},
	})
	t.Render()

	return nil
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	return t
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
