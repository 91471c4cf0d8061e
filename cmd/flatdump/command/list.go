package command

import (
	"errors"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/arloliu/flatesd/flat"
	"github.com/arloliu/flatesd/store"
)

func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list stored events of a run, or the stored runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("run") && !allRuns {
				return errors.New("the --run or --all flag MUST be set")
			}

			s, err := openStore(newLogger())
			if err != nil {
				return err
			}
			defer s.Close()

			if allRuns {
				return listRuns(cmd.OutOrStdout(), s)
			}

			rows, err := listRun(s, runNumber)
			if err != nil {
				return err
			}

			return renderEvents(cmd.OutOrStdout(), rows)
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "event archive path")
	cmd.Flags().Int32Var(&runNumber, "run", 0, "run number")
	cmd.Flags().BoolVar(&allRuns, "all", false, "list stored runs with their event counts")

	return cmd
}

func listRun(s *store.Store, run int32) ([]eventRow, error) {
	var rows []eventRow
	err := s.Run(run, func(_ store.Key, ev *flat.Event) error {
		rows = append(rows, rowOf(ev))
		return nil
	})

	return rows, err
}

type runRow struct {
	Run    int32 `json:"run"`
	Events int   `json:"events"`
}

func countRuns(s *store.Store) ([]runRow, error) {
	runs, err := s.Runs()
	if err != nil {
		return nil, err
	}

	rows := make([]runRow, 0, len(runs))
	for _, run := range runs {
		n := 0
		err := s.Run(run, func(store.Key, *flat.Event) error {
			n++
			return nil
		})
		if err != nil {
			return nil, err
		}
		rows = append(rows, runRow{Run: run, Events: n})
	}

	return rows, nil
}

func listRuns(w io.Writer, s *store.Store) error {
	rows, err := countRuns(s)
	if err != nil {
		return err
	}
	if isFormatJSON() {
		return writeJSON(w, rows)
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Run", "Events"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Run, r.Events})
	}
	t.AppendFooter(table.Row{"Total", s.Count()})
	t.Render()

	return nil
}
