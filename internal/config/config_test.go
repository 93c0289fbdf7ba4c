package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Ledger.Path = "books/2024.json"
	cfg.Chart.Width = 60

	path := filepath.Join(t.TempDir(), "fintrack.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "books/2024.json", got.Ledger.Path)
	assert.Equal(t, 60, got.Chart.Width)
	assert.Equal(t, cfg.Categories.Defaults, got.Categories.Defaults)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "transactions.json", cfg.Ledger.Path)
	assert.Equal(t, 40, cfg.Chart.Width)
	assert.Equal(t, []string{"Food", "Salary", "Transport", "Utilities", "Entertainment"}, cfg.Categories.Defaults)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault_Missing(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOrDefault_Existing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fintrack.yaml")

	cfg := Default()
	cfg.Ledger.Path = "custom.json"
	require.NoError(t, Save(path, cfg))

	got, err := LoadOrDefault(path)
	require.NoError(t, err)
	assert.Equal(t, "custom.json", got.Ledger.Path)
}

func TestLoadOrDefault_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fintrack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\nnot yaml: ["), 0o644))

	_, err := LoadOrDefault(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fintrack.yaml")
	err := Save(path, Default())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "path: transactions.json")
	assert.Contains(t, contents, "width: 40")
	assert.Contains(t, contents, "- Food")
	assert.Contains(t, contents, "- Salary")
}
