package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "attrkit.yaml", cfg.Registry)
	assert.Equal(t, "table", cfg.Output)
	assert.False(t, cfg.NoColor)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "registry: custom.yaml\noutput: json\nno_color: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".attrkit.yaml"), []byte(content), 0o644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "custom.yaml", cfg.Registry)
	assert.Equal(t, "json", cfg.Output)
	assert.True(t, cfg.NoColor)
}

func TestLoad_InvalidOutput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".attrkit.yaml"), []byte("output: xml\n"), 0o644))
	chdir(t, dir)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}
