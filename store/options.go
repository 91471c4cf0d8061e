package store

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/arloliu/flatesd/errs"
	"github.com/arloliu/flatesd/format"
	"github.com/arloliu/flatesd/internal/options"
)

// Config holds store settings.
type Config struct {
	compression format.CompressionType
	timeout     time.Duration
	noSync      bool
	logger      *slog.Logger
}

func newConfig() *Config {
	return &Config{
		compression: format.CompressionZstd,
		timeout:     time.Second,
		logger:      slog.New(slog.DiscardHandler),
	}
}

// Option configures a Store.
type Option = options.Option[*Config]

// WithCompression sets the frame codec for stored events. Default is Zstd.
// Existing values keep the codec they were written with.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(c *Config) error {
		if !compression.IsValid() {
			return fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compression)
		}
		c.compression = compression

		return nil
	})
}

// WithTimeout bounds how long Open waits for the database file lock.
func WithTimeout(d time.Duration) Option {
	return options.NoError(func(c *Config) {
		c.timeout = d
	})
}

// WithNoSync skips fsync after each commit. Faster bulk imports at the cost of
// durability on a crash.
func WithNoSync(noSync bool) Option {
	return options.NoError(func(c *Config) {
		c.noSync = noSync
	})
}

// WithLogger sets the logger for store operations.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	})
}
