package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	capacity int
	name     string
	calls    []string
}

var errNegative = errors.New("capacity cannot be negative")

func withCapacity(n int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if n < 0 {
			return errNegative
		}
		c.capacity = n
		c.calls = append(c.calls, "capacity")

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
		c.calls = append(c.calls, "name")
	})
}

func TestApply(t *testing.T) {
	t.Run("Applies in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withName("a"), withCapacity(8), withName("b"))
		require.NoError(t, err)
		require.Equal(t, 8, cfg.capacity)
		require.Equal(t, "b", cfg.name)
		require.Equal(t, []string{"name", "capacity", "name"}, cfg.calls)
	})

	t.Run("Stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withCapacity(-1), withName("never"))
		require.ErrorIs(t, err, errNegative)
		require.Empty(t, cfg.name)
	})

	t.Run("No options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg))
		require.Empty(t, cfg.calls)
	})

	t.Run("Nil option skipped", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg, nil, withName("x")))
		require.Equal(t, "x", cfg.name)
	})
}
