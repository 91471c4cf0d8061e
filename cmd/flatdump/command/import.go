package command

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/flatesd/flat"
	"github.com/arloliu/flatesd/internal/collision"
	"github.com/arloliu/flatesd/internal/hash"
	"github.com/arloliu/flatesd/store"
)

func NewImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <frame-file>...",
		Short: "store every event of one or more frame files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			ct, err := parseCompression(importCompression)
			if err != nil {
				return err
			}
			s, err := openStore(logger, store.WithCompression(ct), store.WithNoSync(noSync))
			if err != nil {
				return err
			}
			defer s.Close()

			tracker := collision.NewTracker[store.Key]()
			var total importStats
			for _, path := range args {
				st, err := importFile(s, tracker, path, logger)
				if err != nil {
					return err
				}
				logger.Info("imported frame file", "path", path, "stored", st.Stored, "duplicates", st.Duplicates)
				total.add(st)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d events into %s, %d duplicates skipped, %d key collisions\n",
				total.Stored, s.Path(), total.Duplicates, total.Collisions)

			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "event archive path")
	cmd.Flags().StringVar(&importCompression, "compression", "zstd", "stored value compression")
	cmd.Flags().BoolVar(&noSync, "no-sync", false, "skip fsync on commit, faster but unsafe on crash")

	return cmd
}

type importStats struct {
	Stored     int
	Duplicates int
	Collisions int
}

func (s *importStats) add(o importStats) {
	s.Stored += o.Stored
	s.Duplicates += o.Duplicates
	s.Collisions += o.Collisions
}

func importFile(s *store.Store, tracker *collision.Tracker[store.Key], path string, logger *slog.Logger) (importStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return importStats{}, err
	}
	defer f.Close()

	st, err := importFrames(s, tracker, f, logger)
	if err != nil {
		return st, fmt.Errorf("import %s: %w", path, err)
	}

	return st, nil
}

// importFrames puts every event of r into s. An event identical to one
// already imported through tracker is skipped; a different event under the
// same key overwrites it and counts as a collision.
func importFrames(s *store.Store, tracker *collision.Tracker[store.Key], r io.Reader, logger *slog.Logger) (importStats, error) {
	var st importStats
	err := forEachFrame(r, logger, func(ev *flat.Event) error {
		key := store.KeyOf(ev)
		switch tracker.Track(key, hash.Checksum(ev.Bytes())) {
		case collision.Duplicate:
			logger.Debug("skipped duplicate event", "key", key.String())
			st.Duplicates++

			return nil
		case collision.Collision:
			logger.Warn("event key collision, overwriting", "key", key.String())
			st.Collisions++
		}

		if _, err := s.Put(ev); err != nil {
			return err
		}
		logger.Debug("stored event", "key", key.String(), "size", ev.Size())
		st.Stored++

		return nil
	})

	return st, err
}
