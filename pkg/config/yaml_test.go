package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/linegrep/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("copies every field", func(t *testing.T) {
		original := &config.Config{
			IgnoreCase:  true,
			Color:       config.ColorNever,
			Format:      config.FormatJSON,
			NoContent:   true,
			LineNumbers: true,
			FilePath:    "poem.txt",
			Query:       "duct",
		}

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, original, clone)
		assert.Equal(t, *original, *clone)

		clone.Query = "changed"
		assert.Equal(t, "duct", original.Query)
	})
}

func TestToYAML(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		var c *config.Config
		out, err := c.ToYAML()
		require.NoError(t, err)
		assert.Nil(t, out)
	})

	t.Run("omits invocation fields", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.FilePath = "secret/path.txt"
		cfg.Query = "needle"

		out, err := cfg.ToYAML()
		require.NoError(t, err)

		text := string(out)
		assert.Contains(t, text, "color: auto")
		assert.Contains(t, text, "format: text")
		assert.Contains(t, text, "ignore_case: false")
		assert.NotContains(t, text, "secret/path.txt")
		assert.NotContains(t, text, "needle")
	})

	t.Run("with header", func(t *testing.T) {
		out, err := config.NewConfig().ToYAMLWithHeader("linegrep configuration\nsecond line")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(out), "# linegrep configuration\n# second line\n\n"))
	})
}

func TestFromYAML(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		original := config.NewConfig()
		original.IgnoreCase = true
		original.Format = config.FormatJSON

		out, err := original.ToYAML()
		require.NoError(t, err)

		parsed, err := config.FromYAML(out)
		require.NoError(t, err)
		assert.Equal(t, original, parsed)
	})

	t.Run("empty document", func(t *testing.T) {
		parsed, err := config.FromYAML([]byte("  \n"))
		require.NoError(t, err)
		assert.Equal(t, &config.Config{}, parsed)
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		_, err := config.FromYAML([]byte("ignore_cases: true\n"))
		require.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.FromYAML([]byte("color: [unterminated\n"))
		require.Error(t, err)
	})
}
