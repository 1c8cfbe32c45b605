package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDir_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadDir(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("dataset: dinos.db\nseed: 7\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dinos.db", cfg.Dataset)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, "images", cfg.ImagesDir)
	assert.Equal(t, []string{"Pigeon"}, cfg.NonComparable)
	assert.Equal(t, []string{"herbavor", "omnivor", "carnivor"}, cfg.Diets)
}

func TestLoad_EmptyNonComparableListIsKept(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("non_comparable: []\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.NonComparable)
	assert.NotNil(t, cfg.NonComparable)
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.FontPath = "/fonts/a.ttf"
	cfg.Diets = []string{"carnivor"}

	require.NoError(t, Save(filepath.Join(dir, FileName), cfg))

	loaded, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("diets: [unterminated\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
