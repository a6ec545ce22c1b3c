package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	raw := fmt.Sprintf("storage:\n  driver: sqlite\n  source: %s\n", filepath.Join(dir, "history.sqlite3"))
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(bytes.NewReader(nil))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func Test_OnConvertCommand_ShouldPersistBetweenRuns(t *testing.T) {
	cfg := writeConfig(t)

	out, _, err := execute(t, "--config", cfg, "convert", "10", "eur", "eur")
	require.NoError(t, err)
	assert.Contains(t, out, "10.00 EUR = 10.0000 EUR")

	out, _, err = execute(t, "--config", cfg, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "10.00")
	assert.NotContains(t, out, "No conversions yet")

	_, _, err = execute(t, "--config", cfg, "clear")
	require.NoError(t, err)

	out, _, err = execute(t, "--config", cfg, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No conversions yet")
}

func Test_OnFailedCommand_ShouldReturnError(t *testing.T) {
	cfg := writeConfig(t)

	_, errOut, err := execute(t, "--config", cfg, "convert", "10", "EUR", "XYZ")
	assert.True(t, errors.Is(err, errCommandFailed))
	assert.Contains(t, errOut, "error [unknown_currency]")
}

func Test_OnInteractiveRun_ShouldStopAtEOF(t *testing.T) {
	cfg := writeConfig(t)

	out, _, err := execute(t, "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Currency Converter. Type help for commands.")
}

func Test_OnRefreshWithoutKey_ShouldFail(t *testing.T) {
	cfg := writeConfig(t)

	_, _, err := execute(t, "--config", cfg, "rates", "refresh")
	assert.Error(t, err)
}
