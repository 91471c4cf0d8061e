package flat

import (
	"log/slog"

	"github.com/arloliu/flatesd/internal/options"
)

// Config holds the settings applied when wrapping a buffer.
type Config struct {
	bigEndian bool
	logger    *slog.Logger
}

func newConfig() *Config {
	return &Config{logger: slog.New(slog.DiscardHandler)}
}

// Option configures an Event.
type Option = options.Option[*Config]

// WithLittleEndian encodes the payload in little-endian byte order.
// It is the default option.
func WithLittleEndian() Option {
	return options.NoError(func(c *Config) {
		c.bigEndian = false
	})
}

// WithBigEndian encodes the payload in big-endian byte order.
//
// Open ignores this option: the byte order of an existing buffer is read from
// its header.
func WithBigEndian() Option {
	return options.NoError(func(c *Config) {
		c.bigEndian = true
	})
}

// WithLogger sets the logger used to report build failures at debug level.
// A nil logger keeps the default, which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	})
}
