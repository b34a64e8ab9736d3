package loader_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/urbanpath/loader"
)

func TestSaveDirLoadDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	files := loader.DefaultFiles()

	require.NoError(t, loader.SaveDir(dir, files, sampleNetwork(), fixedClock))
	for _, name := range []string{files.Stations, files.Routes, files.Closures, files.Accidents} {
		assert.FileExists(t, filepath.Join(dir, name))
		assert.NoFileExists(t, filepath.Join(dir, name+".tmp"))
	}

	n, st, err := loader.LoadDir(dir, files)
	require.NoError(t, err)
	assert.Equal(t, sampleNetwork(), n)
	assert.Zero(t, st.Skipped)
	assert.Equal(t, 3+4+2+2, st.Accepted)
}

func TestLoadDir_OptionalFiles(t *testing.T) {
	dir := t.TempDir()
	files := loader.DefaultFiles()
	require.NoError(t, os.WriteFile(filepath.Join(dir, files.Stations), []byte("1, A, 0, 0\n2, B, 1, 1\n"), 0o644))

	_, _, err := loader.LoadDir(dir, files)
	assert.ErrorIs(t, err, fs.ErrNotExist) // routes are required

	require.NoError(t, os.WriteFile(filepath.Join(dir, files.Routes), []byte("1, 2, 4\n"), 0o644))
	n, _, err := loader.LoadDir(dir, files)
	require.NoError(t, err)
	assert.Len(t, n.Stations, 2)
	assert.Len(t, n.Routes, 1)
	assert.Empty(t, n.Closures)
	assert.Empty(t, n.Accidents)

	assert.ErrorIs(t, loader.SaveDir(dir, files, nil), loader.ErrNilNetwork)
}
