package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
}

func TestFileAndDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.csv")
	touch(t, file)

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "missing.csv")))

	assert.True(t, DirectoryExists(dir))
	assert.False(t, DirectoryExists(file))
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "deeper")

	require.NoError(t, EnsureDirectoryExists(dir, 0o750))
	assert.True(t, DirectoryExists(dir))
	require.NoError(t, EnsureDirectoryExists(dir, 0o750))
}

func TestOpenAndCreateFile(t *testing.T) {
	dir := t.TempDir()

	_, err := OpenFile(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)

	path := filepath.Join(dir, "out", "result.csv")
	f, err := CreateFile(path, 0o750)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	f, err = OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func TestGlob(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.csv"))
	touch(t, filepath.Join(dir, "a.csv"))
	touch(t, filepath.Join(dir, "notes.txt"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.csv"), 0o750))

	files, err := Glob(filepath.Join(dir, "*.csv"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.csv"), filepath.Join(dir, "b.csv")}, files)

	files, err = Glob(filepath.Join(dir, "*.parquet"))
	require.NoError(t, err)
	assert.Empty(t, files)

	_, err = Glob("[")
	assert.Error(t, err)
}

func TestExtensionAndSibling(t *testing.T) {
	assert.Equal(t, ".csv", Extension("data/Bank.CSV"))
	assert.Equal(t, "", Extension("README"))
	assert.Equal(t, "data/bank.json", SiblingPath("data/bank.csv", ".json"))
	assert.Equal(t, "bank.yaml", SiblingPath("bank", ".yaml"))
}
