package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, dir string, files ...string) *Watcher {
	t.Helper()
	w, err := NewWatcher(dir, files, WithDebounce(50*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(w.Stop)
	return w
}

func waitChange(t *testing.T, w *Watcher) Change {
	t.Helper()
	select {
	case c := <-w.Changes:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
		return Change{}
	}
}

func TestNewWatcher_NoFiles(t *testing.T) {
	_, err := NewWatcher(t.TempDir(), []string{"", ""})
	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestWatcher_DetectsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rutas.txt")
	require.NoError(t, os.WriteFile(path, []byte("1,2,5\n"), 0o644))
	w := startWatcher(t, dir, "estaciones.txt", "rutas.txt")

	require.NoError(t, os.WriteFile(path, []byte("1,2,7\n"), 0o644))

	c := waitChange(t, w)
	assert.Equal(t, "rutas.txt", c.File)
	assert.Equal(t, ChangeModified, c.Kind)
}

func TestWatcher_BurstIsDebounced(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "estaciones.txt")
	w := startWatcher(t, dir, "estaciones.txt")

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("1,A,0,0\n"), 0o644))
	}

	c := waitChange(t, w)
	assert.Equal(t, "estaciones.txt", c.File)
	select {
	case extra := <-w.Changes:
		t.Errorf("unexpected second event: %+v", extra)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_DetectsRemove(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cierres.txt")
	require.NoError(t, os.WriteFile(path, []byte("ESTACION,1\n"), 0o644))
	w := startWatcher(t, dir, "cierres.txt")

	require.NoError(t, os.Remove(path))

	c := waitChange(t, w)
	assert.Equal(t, ChangeRemoved, c.Kind)
	assert.Equal(t, "removed", c.Kind.String())
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w := startWatcher(t, dir, "rutas.txt")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644))

	select {
	case c := <-w.Changes:
		t.Errorf("unexpected change event: %+v", c)
	case <-time.After(300 * time.Millisecond):
	}
}
