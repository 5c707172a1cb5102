package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpterovtt/tabalign/pkg/config"
)

func TestLoadAppliesProjectFileThenEnvThenOptions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(
		"column_limit: 60\noutput_format: json\n",
	), 0o644))

	result, err := Load(context.Background(), LoadOptions{WorkDir: dir})
	require.NoError(t, err)
	assert.Equal(t, 60, result.Config.ColumnLimit)
	assert.Equal(t, "json", result.Config.OutputFormat)
	assert.Equal(t, filepath.Join(dir, ConfigFileName), result.SourcePath)

	t.Setenv("TABALIGN_COLUMN_LIMIT", "90")
	result, err = Load(context.Background(), LoadOptions{WorkDir: dir})
	require.NoError(t, err)
	assert.Equal(t, 90, result.Config.ColumnLimit, "env overrides the project file")

	limit := 120
	result, err = Load(context.Background(), LoadOptions{WorkDir: dir, ColumnLimit: &limit})
	require.NoError(t, err)
	assert.Equal(t, 120, result.Config.ColumnLimit, "explicit options outrank both file and env")
}

func TestLoadWithoutProjectFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()

	result, err := Load(context.Background(), LoadOptions{WorkDir: dir})
	require.NoError(t, err)
	assert.Empty(t, result.SourcePath)
	assert.Equal(t, config.ScannerAuto, result.Config.DefaultScanner)
	assert.Equal(t, "table", result.Config.OutputFormat)
}

func TestLoadHonorsNoColorEnvironmentVariable(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	dir := t.TempDir()

	result, err := Load(context.Background(), LoadOptions{WorkDir: dir})
	require.NoError(t, err)
	assert.Equal(t, "never", result.Config.Color)
}
