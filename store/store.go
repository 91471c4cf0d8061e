// Package store keeps flat events in an embedded bbolt database, keyed by run,
// orbit, bunch crossing and period.
//
// Values are frames (see package frame), so every stored event carries its own
// codec id and checksum.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync/atomic"

	bolt "go.etcd.io/bbolt"

	"github.com/arloliu/flatesd/errs"
	"github.com/arloliu/flatesd/flat"
	"github.com/arloliu/flatesd/format"
	"github.com/arloliu/flatesd/frame"
	"github.com/arloliu/flatesd/internal/options"
	"github.com/arloliu/flatesd/internal/pool"
)

const fileMode = 0o600

var eventsBucket = []byte("events")

// Store is an event database. It is safe for concurrent use; bbolt serializes
// writers.
type Store struct {
	db          *bolt.DB
	compression format.CompressionType
	logger      *slog.Logger
	closed      atomic.Bool
}

// Open opens the database at path, creating it if it does not exist.
//
// Parameters:
//   - path: Database file
//   - opts: WithCompression, WithTimeout, WithNoSync and WithLogger
//
// Returns:
//   - *Store: Open store
//   - error: Invalid option, or a bbolt open error
func Open(path string, opts ...Option) (*Store, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, fileMode, &bolt.Options{Timeout: cfg.timeout})
	if err != nil {
		return nil, fmt.Errorf("open event store %s: %w", path, err)
	}
	db.NoSync = cfg.noSync

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(eventsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create events bucket: %w", err)
	}

	cfg.logger.Debug("event store opened", "path", path, "compression", cfg.compression)

	return &Store{db: db, compression: cfg.compression, logger: cfg.logger}, nil
}

// Close closes the database. Calling Close more than once is a no-op.
func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}

	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.db.Path()
}

func (s *Store) view(fn func(b *bolt.Bucket) error) error {
	if s.closed.Load() {
		return errs.ErrStoreClosed
	}

	return s.db.View(func(tx *bolt.Tx) error {
		return fn(tx.Bucket(eventsBucket))
	})
}

func (s *Store) update(fn func(b *bolt.Bucket) error) error {
	if s.closed.Load() {
		return errs.ErrStoreClosed
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return fn(tx.Bucket(eventsBucket))
	})
}

// Put stores e under KeyOf(e), replacing any event with the same key.
func (s *Store) Put(e *flat.Event) (Key, error) {
	key := KeyOf(e)

	value, err := frame.Encode(e.Bytes(), s.compression)
	if err != nil {
		return key, err
	}

	err = s.update(func(b *bolt.Bucket) error {
		return b.Put(key[:], value)
	})
	if err != nil {
		return key, err
	}

	s.logger.Debug("event stored", "key", key, "raw", e.Size(), "stored", len(value))

	return key, nil
}

// PutESD builds a flat event from src in a pooled buffer and stores it.
func (s *Store) PutESD(src flat.Source, fillV0s bool) (Key, error) {
	bb := pool.GetEventBuffer()
	defer pool.PutEventBuffer(bb)

	size := flat.EstimateSize(src, fillV0s)
	bb.Resize(size)

	ev, err := flat.New(bb.Bytes(), flat.WithLogger(s.logger))
	if err != nil {
		return Key{}, err
	}
	if err := ev.SetFromESD(size, src, fillV0s); err != nil {
		return Key{}, err
	}

	return s.Put(ev)
}

// Get loads the event stored under key.
//
// Returns:
//   - *flat.Event: Event in newly allocated memory
//   - error: ErrEventNotFound, ErrStoreClosed, or a frame or flat decoding error
func (s *Store) Get(key Key) (*flat.Event, error) {
	var ev *flat.Event
	err := s.view(func(b *bolt.Bucket) error {
		value := b.Get(key[:])
		if value == nil {
			return fmt.Errorf("%w: %s", errs.ErrEventNotFound, key)
		}

		var err error
		ev, err = s.decode(value)

		return err
	})
	if err != nil {
		return nil, err
	}

	return ev, nil
}

// decode turns a stored value into an event. The frame decoder copies, so the
// event stays valid after the transaction ends.
func (s *Store) decode(value []byte) (*flat.Event, error) {
	raw, _, err := frame.Decode(value)
	if err != nil {
		return nil, err
	}

	return flat.Open(raw, flat.WithLogger(s.logger))
}

// Delete removes the event stored under key.
func (s *Store) Delete(key Key) error {
	return s.update(func(b *bolt.Bucket) error {
		if b.Get(key[:]) == nil {
			return fmt.Errorf("%w: %s", errs.ErrEventNotFound, key)
		}

		return b.Delete(key[:])
	})
}

// ErrStop can be returned by a Run callback to end the iteration early
// without an error.
var ErrStop = errors.New("stop iteration")

// Run calls fn for every event of run in key order.
//
// Iteration stops at the first error returned by fn, which Run returns,
// except for ErrStop which ends it cleanly.
func (s *Store) Run(run int32, fn func(Key, *flat.Event) error) error {
	prefix := runPrefix(run)

	err := s.view(func(b *bolt.Bucket) error {
		c := b.Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			key, err := ParseKey(k)
			if err != nil {
				return err
			}
			ev, err := s.decode(v)
			if err != nil {
				return fmt.Errorf("event %s: %w", key, err)
			}
			if err := fn(key, ev); err != nil {
				return err
			}
		}

		return nil
	})
	if errors.Is(err, ErrStop) {
		return nil
	}

	return err
}

// Runs returns the distinct run numbers present, in ascending order.
func (s *Store) Runs() ([]int32, error) {
	var runs []int32
	err := s.view(func(b *bolt.Bucket) error {
		c := b.Cursor()
		for k, _ := c.First(); k != nil; {
			key, err := ParseKey(k)
			if err != nil {
				return err
			}
			runs = append(runs, key.Run())

			// jump past every key of this run
			next := key.Run()
			if next == math.MaxInt32 {
				break
			}
			k, _ = c.Seek(runPrefix(next + 1))
		}

		return nil
	})

	return runs, err
}

// Count returns the number of stored events, or 0 when the store is closed.
func (s *Store) Count() int {
	var n int
	_ = s.view(func(b *bolt.Bucket) error {
		n = b.Stats().KeyN
		return nil
	})

	return n
}

// Backup writes a consistent copy of the database file to w.
func (s *Store) Backup(w io.Writer) (int64, error) {
	if s.closed.Load() {
		return 0, errs.ErrStoreClosed
	}

	var n int64
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		n, err = tx.WriteTo(w)

		return err
	})

	return n, err
}
