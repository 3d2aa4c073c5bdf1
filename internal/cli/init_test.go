package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/linegrep/pkg/config"
)

func TestInitCommand(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), ".linegrep.yml")

	_, err := execute(t, "init", "--output", path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	cfg, err := config.FromYAML(content)
	require.NoError(t, err)
	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.Equal(t, config.FormatText, cfg.Format)

	_, err = execute(t, "init", "--output", path)
	require.Error(t, err, "existing file is not overwritten without --force")

	_, err = execute(t, "init", "--output", path, "--force")
	require.NoError(t, err)
}
