package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/flatesd/flat"
	"github.com/arloliu/flatesd/format"
	"github.com/arloliu/flatesd/frame"
	"github.com/arloliu/flatesd/store"
)

func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "write the stored events of a run to a frame file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("run") {
				return errors.New("the --run flag MUST be set")
			}
			if output == "" {
				return errors.New("the --output flag MUST be set")
			}
			ct, err := parseCompression(exportCompression)
			if err != nil {
				return err
			}

			s, err := openStore(newLogger())
			if err != nil {
				return err
			}
			defer s.Close()

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()

			bw := bufio.NewWriter(f)
			n, err := exportRun(s, runNumber, bw, ct)
			if err != nil {
				return err
			}
			if err := bw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d events of run %d to %s\n", n, runNumber, output)

			return f.Sync()
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "event archive path")
	cmd.Flags().Int32Var(&runNumber, "run", 0, "run number")
	cmd.Flags().StringVar(&output, "output", "", "frame file to create")
	cmd.Flags().StringVar(&exportCompression, "compression", "none", "frame payload compression")

	return cmd
}

func exportRun(s *store.Store, run int32, w io.Writer, ct format.CompressionType) (int, error) {
	fw, err := frame.NewWriter(w, frame.WithCompression(ct))
	if err != nil {
		return 0, err
	}

	err = s.Run(run, func(_ store.Key, ev *flat.Event) error {
		return fw.Write(ev)
	})

	return fw.Frames(), err
}
