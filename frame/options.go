package frame

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/flatesd/errs"
	"github.com/arloliu/flatesd/format"
	"github.com/arloliu/flatesd/internal/options"
)

// Config holds writer and reader settings.
type Config struct {
	compression  format.CompressionType
	maxFrameSize int
	logger       *slog.Logger
}

func newConfig() *Config {
	return &Config{
		compression:  format.CompressionNone,
		maxFrameSize: DefaultMaxFrameSize,
		logger:       slog.New(slog.DiscardHandler),
	}
}

// Option configures a Writer or Reader.
type Option = options.Option[*Config]

// WithCompression sets the codec used by a Writer. Readers pick the codec
// from each frame header and ignore this option.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(c *Config) error {
		if !compression.IsValid() {
			return fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compression)
		}
		c.compression = compression

		return nil
	})
}

// WithMaxFrameSize limits the raw and payload sizes a Reader accepts, and the
// event size a Writer produces.
func WithMaxFrameSize(n int) Option {
	return options.New(func(c *Config) error {
		if n <= 0 {
			return fmt.Errorf("%w: max frame size %d", errs.ErrInvalidCapacity, n)
		}
		c.maxFrameSize = n

		return nil
	})
}

// WithLogger sets the logger for frame-level debug messages.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	})
}
