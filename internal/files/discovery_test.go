package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindInputFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.CSV", "c.xlsx", "skip.txt", "noext"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.csv"), 0755))

	d := NewDiscovery(dir)
	found, err := d.FindInputFiles(".")
	require.NoError(t, err)

	names := make([]string, len(found))
	for i, f := range found {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"a.CSV", "b.csv", "c.xlsx"}, names, "sorted by name, extension filter case-insensitive, directories skipped")

	for _, f := range found {
		assert.Equal(t, filepath.Join(dir, f.Name), f.Path)
	}
}

func TestFindInputFiles_AbsoluteDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x.csv"), []byte("x"), 0644))

	d := NewDiscovery("unused-base")
	found, err := d.FindInputFiles(dir)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "x.csv", found[0].Name)
}

func TestFindInputFiles_MissingDir(t *testing.T) {
	d := NewDiscovery(t.TempDir())
	_, err := d.FindInputFiles("does-not-exist")
	assert.Error(t, err)
}
