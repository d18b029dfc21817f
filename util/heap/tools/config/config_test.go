package config

import (
	"log/slog"
	"testing"

	testing_util "github.com/navijation/njheap/util/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshal(t *testing.T) {
	dir, cleanup := testing_util.MkdirTemp(t, "TestUnmarshal")
	defer cleanup()

	t.Run("full file", func(t *testing.T) {
		path := testing_util.WriteLines(t, dir, "full.toml",
			`ordering = "length"`,
			`reverse = true`,
			`absent_token = "NULL"`,
			`[logging]`,
			`level = "debug"`,
		)

		cfg, err := Unmarshal(path)
		require.NoError(t, err)
		assert.Equal(t, OrderingLength, cfg.Ordering)
		assert.True(t, cfg.Reverse)
		assert.Equal(t, "NULL", cfg.AbsentToken)
		assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	})

	t.Run("defaults", func(t *testing.T) {
		path := testing_util.WriteLines(t, dir, "empty.toml")

		cfg, err := Unmarshal(path)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
		assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	})

	t.Run("unknown ordering", func(t *testing.T) {
		path := testing_util.WriteLines(t, dir, "bad.toml", `ordering = "random"`)

		_, err := Unmarshal(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("malformed", func(t *testing.T) {
		path := testing_util.WriteLines(t, dir, "malformed.toml", `ordering = `)

		_, err := Unmarshal(path)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := Unmarshal(dir + "/missing.toml")
		assert.Error(t, err)
	})
}
