package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/linegrep/internal/cli"
	"github.com/yaklabco/linegrep/pkg/config"
	"github.com/yaklabco/linegrep/pkg/reporter"
	"github.com/yaklabco/linegrep/pkg/runner"
)

const poem = "Rust:\nsafe, fast, productive.\nPick three.\nTrust me."

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2024-01-01"}
}

// isolateEnv clears every environment input the root command reads.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("IGNORE_CASE", "")
	t.Setenv("NO_COLOR", "")
	for _, name := range []string{"IGNORE_CASE", "COLOR", "FORMAT", "NO_CONTENT", "LINE_NUMBERS"} {
		t.Setenv("LINEGREP_"+name, "")
	}
}

func writePoem(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "poem.txt")
	require.NoError(t, os.WriteFile(path, []byte(poem), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	if args == nil {
		args = []string{}
	}
	cmd := cli.NewRootCommand(testInfo())
	cmd.SetArgs(args)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	return out.String(), err
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	require.NotNil(t, cmd)
	assert.Equal(t, "linegrep", cmd.Name())
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.Equal(t, "1.2.3", cmd.Version)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"init", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, subCmd.Name())
	}
}

func TestRootCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"ignore-case", "format", "no-content", "line-number"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "expected flag %q", name)
	}
	for _, name := range []string{"debug", "config", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "expected global flag %q", name)
	}
	assert.Equal(t, "i", cmd.Flags().Lookup("ignore-case").Shorthand)
	assert.Equal(t, "n", cmd.Flags().Lookup("line-number").Shorthand)
}

func TestSearch_CaseSensitive(t *testing.T) {
	isolateEnv(t)
	path := writePoem(t)

	out, err := execute(t, path, "duct")
	require.NoError(t, err)

	want := "\ncontent:\n" + poem + "\n\nfound:\nsafe, fast, productive.\n"
	assert.Equal(t, want, out)
}

func TestSearch_IgnoreCaseFromEnvironment(t *testing.T) {
	isolateEnv(t)
	t.Setenv("IGNORE_CASE", "1")
	path := writePoem(t)

	out, err := execute(t, "--no-content", path, "rUsT")
	require.NoError(t, err)
	assert.Equal(t, "\nfound:\nRust:\nTrust me.\n", out)
}

func TestSearch_IgnoreCaseEnvironmentRequiresOne(t *testing.T) {
	isolateEnv(t)
	t.Setenv("IGNORE_CASE", "true")
	path := writePoem(t)

	out, err := execute(t, "--no-content", path, "rUsT")
	require.NoError(t, err)
	assert.Equal(t, "\nfound:\n", out)
}

func TestSearch_IgnoreCaseFlag(t *testing.T) {
	isolateEnv(t)
	path := writePoem(t)

	out, err := execute(t, "-i", "-n", "--no-content", path, "PICK")
	require.NoError(t, err)
	assert.Equal(t, "\nfound:\n3:Pick three.\n", out)
}

func TestSearch_ColorAlwaysHighlightsOccurrence(t *testing.T) {
	isolateEnv(t)
	path := writePoem(t)

	out, err := execute(t, "--color", "always", "--no-content", path, "duct")
	require.NoError(t, err)

	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "safe, fast, pro")
	assert.Contains(t, out, "ive.")
}

func TestSearch_JSONFormat(t *testing.T) {
	isolateEnv(t)
	path := writePoem(t)

	out, err := execute(t, "--format", "json", path, "st")
	require.NoError(t, err)

	var got reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, path, got.Path)
	assert.Equal(t, "st", got.Query)
	assert.False(t, got.IgnoreCase)
	require.NotNil(t, got.Content)
	assert.Equal(t, poem, *got.Content)
	assert.Equal(t, 4, got.Summary.Lines)
	assert.Equal(t, 3, got.Summary.Matches)
	require.Len(t, got.Matches, 3)
	assert.Equal(t, 1, got.Matches[0].Line)
	assert.Equal(t, 2, got.Matches[1].Line)
	assert.Equal(t, 4, got.Matches[2].Line)
}

func TestSearch_MissingQueryFailsBeforeFileAccess(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "/definitely/not/here.txt")
	require.Error(t, err)

	var cfgErr *config.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "query", cfgErr.Field)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeFromError(err))
	assert.Empty(t, out)
}

func TestSearch_NoArguments(t *testing.T) {
	isolateEnv(t)

	_, err := execute(t)

	var cfgErr *config.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "file", cfgErr.Field)
}

func TestSearch_UnknownFlagIsUsageError(t *testing.T) {
	isolateEnv(t)

	_, err := execute(t, "--bogus")

	var cfgErr *config.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeFromError(err))
}

func TestSearch_MissingFileIsIOError(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "missing.txt")

	out, err := execute(t, path, "x")
	require.Error(t, err)

	var ioErr *runner.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, path, ioErr.Path)
	assert.Equal(t, cli.ExitIOError, cli.ExitCodeFromError(err))
	assert.Empty(t, out, "nothing is written when the file cannot be read")
}

func TestSearch_InvalidFormatIsConfigurationError(t *testing.T) {
	isolateEnv(t)
	path := writePoem(t)

	out, err := execute(t, "--format", "xml", path, "x")

	var cfgErr *config.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Empty(t, out)
}

func TestRun(t *testing.T) {
	t.Parallel()

	path := writePoem(t)
	cfg := config.NewConfig()
	cfg.FilePath = path
	cfg.Query = "three"
	cfg.NoContent = true
	cfg.Color = config.ColorNever

	var out bytes.Buffer
	require.NoError(t, cli.Run(context.Background(), cfg, &out))
	assert.Equal(t, "\nfound:\nPick three.\n", out.String())
}

func TestVersionCommand(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "linegrep")
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abc123")
}

func TestHelpOutput(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "linegrep <file> <query>")
	assert.Contains(t, out, "--ignore-case")
	assert.Contains(t, out, "init")
}

func TestVersionCommand_Short(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)
}
