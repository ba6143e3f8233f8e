package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type packConfig struct {
	compression string
	level       int
	legacy      bool
}

var errBadLevel = errors.New("level must be within [1, 4]")

func withLevel(level int) Option[*packConfig] {
	return New(func(c *packConfig) error {
		if level < 1 || level > 4 {
			return errBadLevel
		}
		c.level = level

		return nil
	})
}

func withCompression(name string) Option[*packConfig] {
	return NoError(func(c *packConfig) {
		c.compression = name
	})
}

func withLegacy(enabled bool) Option[*packConfig] {
	return NoError(func(c *packConfig) {
		c.legacy = enabled
	})
}

func TestOption_New(t *testing.T) {
	cfg := &packConfig{}

	require.NoError(t, withLevel(2).apply(cfg))
	require.Equal(t, 2, cfg.level)

	require.ErrorIs(t, withLevel(9).apply(cfg), errBadLevel)
	require.Equal(t, 2, cfg.level, "a rejected option must not modify the target")
}

func TestOption_NoError(t *testing.T) {
	cfg := &packConfig{}

	require.NoError(t, withCompression("zstd").apply(cfg))
	require.NoError(t, withLegacy(true).apply(cfg))
	require.Equal(t, "zstd", cfg.compression)
	require.True(t, cfg.legacy)
}

func TestApply(t *testing.T) {
	t.Run("Applies options in order", func(t *testing.T) {
		cfg := &packConfig{}
		err := Apply(cfg, withCompression("s2"), withLevel(1), withCompression("lz4"))
		require.NoError(t, err)
		require.Equal(t, "lz4", cfg.compression)
		require.Equal(t, 1, cfg.level)
	})

	t.Run("Stops at first error", func(t *testing.T) {
		cfg := &packConfig{}
		err := Apply(cfg, withCompression("s2"), withLevel(0), withLegacy(true))
		require.ErrorIs(t, err, errBadLevel)
		require.Equal(t, "s2", cfg.compression)
		require.False(t, cfg.legacy)
	})

	t.Run("Skips nil options", func(t *testing.T) {
		cfg := &packConfig{}
		require.NoError(t, Apply(cfg, nil, withLegacy(true)))
		require.True(t, cfg.legacy)
	})

	t.Run("No options", func(t *testing.T) {
		cfg := &packConfig{}
		require.NoError(t, Apply(cfg))
		require.Equal(t, packConfig{}, *cfg)
	})
}
