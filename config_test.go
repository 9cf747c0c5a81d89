package sort_suite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadToolConfigDefaults(t *testing.T) {
	config, err := LoadToolConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultToolConfig(), config)
	require.Equal(t, "quick", config.Run.Algorithm)
	require.Equal(t, DefaultLimit, config.Input.Limit)
}

func TestLoadToolConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level = "debug"

[input]
path = "numbers.txt"

[run]
algorithm = "heap"
format = "yaml"

[ledger]
enabled = true
name = "runs.db"
`), 0o644))

	config, err := LoadToolConfig(path)
	require.NoError(t, err)
	require.Equal(t, "debug", config.LogLevel)
	require.Equal(t, "numbers.txt", config.Input.Path)
	require.Equal(t, DefaultLimit, config.Input.Limit, "unset keys keep their default")
	require.Equal(t, "heap", config.Run.Algorithm)
	require.True(t, config.Run.Verify)
	require.Equal(t, FormatYAML, config.Run.Format)
	require.True(t, config.Ledger.Enabled)
	require.Equal(t, "runs.db", config.Ledger.Name)
}

func TestLoadToolConfigRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[run]\nalgorithm = \"bogus\"\n"), 0o644))

	_, err := LoadToolConfig(path)
	require.True(t, errors.Is(err, ErrUnknownAlgorithm))

	_, err = LoadToolConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestToolConfigMerge(t *testing.T) {
	config := DefaultToolConfig()
	override := &ToolConfig{
		Input: InputConfig{Limit: 50},
		Run:   RunConfig{Algorithm: "tim", Print: true},
	}

	require.NoError(t, config.Merge(override))
	require.Equal(t, "data.txt", config.Input.Path)
	require.Equal(t, 50, config.Input.Limit)
	require.Equal(t, "tim", config.Run.Algorithm)
	require.True(t, config.Run.Print)
	require.True(t, config.Run.Verify, "zero override must not switch verify off")
	require.Equal(t, FormatText, config.Run.Format)
	require.Equal(t, []string{"journal_mode(WAL)", "busy_timeout(5000)"}, config.Ledger.SQLitePragmas)

	require.NoError(t, config.Merge(nil))

	err := config.Merge(&ToolConfig{Run: RunConfig{Format: "xml"}})
	require.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestWriteToolConfigReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	config := DefaultToolConfig()
	config.Run.Algorithm = "selection"

	require.NoError(t, WriteToolConfig(path, config))

	loaded, err := LoadToolConfig(path)
	require.NoError(t, err)
	require.Equal(t, config, loaded)
}
