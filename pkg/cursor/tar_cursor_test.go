package cursor

import (
	"archive/tar"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/datatug/vitug/pkg/files/tarfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTar(t *testing.T, dir string, entries map[string]string, order ...string) string {
	t.Helper()
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	for _, name := range order {
		h := &tar.Header{Name: name, Mode: 0o644, Size: int64(len(entries[name]))}
		if name[len(name)-1] == '/' {
			h.Typeflag = tar.TypeDir
			h.Mode = 0o755
			h.Size = 0
		}
		require.NoError(t, tw.WriteHeader(h))
		if h.Size > 0 {
			_, err := tw.Write([]byte(entries[name]))
			require.NoError(t, err)
		}
	}
	require.NoError(t, tw.Close())
	container := filepath.Join(dir, "sample.tar")
	require.NoError(t, os.WriteFile(container, buf.Bytes(), 0o644))
	return container
}

func sampleTar(t *testing.T) string {
	t.Helper()
	entries := map[string]string{
		"./a/":      "",
		"./a/b.txt": "hello",
		"a/c.txt":   "a much longer body",
		"top.txt":   "top",
		".hidden":   "secret",
		"empty/":    "",
		"x/b.txt":   "other",
	}
	return writeTar(t, t.TempDir(), entries, "./a/", "./a/b.txt", "a/c.txt", "top.txt", ".hidden", "empty/", "x/b.txt")
}

func TestTarCursor_Init(t *testing.T) {
	container := sampleTar(t)
	c := NewTarCursor()
	assert.Nil(t, c.Archive())
	require.NoError(t, c.Init(container))

	assert.Equal(t, KindArchive, c.Kind())
	assert.NotNil(t, c.Archive())
	assert.Equal(t, container, c.StartDir())
	assert.Equal(t, container+"/a/", c.Selected())
	assert.Equal(t, container, c.CurrentDir())
	assert.True(t, c.AtRoot())

	siblings, err := c.CurrentSiblings()
	require.NoError(t, err)
	assert.Equal(t, []string{container + "/a/", container + "/empty/", container + "/top.txt", container + "/x/"}, siblings)
	assert.True(t, c.IsDir(container))
	assert.True(t, c.IsDir(container+"/a/"))
	assert.False(t, c.IsDir(container+"/top.txt"))
}

func TestTarCursor_InitParsesOncePerContainer(t *testing.T) {
	origTarOpen := tarOpen
	defer func() { tarOpen = origTarOpen }()
	var opened []string
	tarOpen = func(container string) (*tarfile.Archive, error) {
		opened = append(opened, container)
		return origTarOpen(container)
	}

	first := sampleTar(t)
	second := writeTar(t, t.TempDir(), map[string]string{"only.txt": "1"}, "only.txt")

	c := NewTarCursor()
	require.NoError(t, c.Init(first))
	require.NoError(t, c.MoveDown(2))
	require.NoError(t, c.Init(first))
	assert.Equal(t, []string{first}, opened)
	assert.Equal(t, first+"/top.txt", c.Selected())

	require.NoError(t, c.Init(second))
	assert.Equal(t, []string{first, second}, opened)
	assert.Equal(t, second+"/only.txt", c.Selected())
	assert.Equal(t, second, c.StartDir())

	tarOpen = func(string) (*tarfile.Archive, error) {
		return nil, errors.New("corrupt")
	}
	assert.ErrorContains(t, c.Init(first), "corrupt")
}

func TestTarCursor_MoveInOut(t *testing.T) {
	container := sampleTar(t)
	c := NewTarCursor()
	require.NoError(t, c.Init(container))

	require.NoError(t, c.MoveIn())
	assert.Equal(t, container+"/a/b.txt", c.Selected())
	assert.Equal(t, container+"/a/", c.CurrentDir())
	assert.Equal(t, container, c.Parent())
	assert.False(t, c.AtRoot())

	require.NoError(t, c.MoveDown(1))
	require.NoError(t, c.MoveIn())
	assert.Equal(t, container+"/a/c.txt", c.Selected())

	require.NoError(t, c.MoveOut())
	assert.Equal(t, container+"/a/", c.Selected())
	assert.True(t, c.AtRoot())

	require.NoError(t, c.MoveOut())
	assert.Equal(t, container+"/a/", c.Selected())

	require.NoError(t, c.MoveIn())
	assert.Equal(t, container+"/a/c.txt", c.Selected())
	require.NoError(t, c.MoveOut())

	t.Run("empty_directory", func(t *testing.T) {
		require.NoError(t, c.MoveDown(1))
		require.NoError(t, c.MoveIn())
		assert.Equal(t, container+"/empty/..", c.Selected())
		assert.Equal(t, container+"/empty/", c.CurrentDir())
		siblings, err := c.CurrentSiblings()
		require.NoError(t, err)
		assert.Nil(t, siblings)
		require.NoError(t, c.MoveTop())
		require.NoError(t, c.MoveBottom())
		require.NoError(t, c.MoveIn())
		assert.Equal(t, container+"/empty/..", c.Selected())
		require.NoError(t, c.MoveOut())
		assert.Equal(t, container+"/empty/", c.Selected())
	})
}

func TestTarCursor_ReadFileContent(t *testing.T) {
	c := NewTarCursor()
	_, err := c.ReadFileContent("/nowhere/a.txt")
	assert.ErrorIs(t, err, tarfile.ErrEntryNotFound)

	container := sampleTar(t)
	require.NoError(t, c.Init(container))
	require.NoError(t, c.MoveIn())

	data, err := c.ReadFileContent(c.Selected())
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	_, err = c.ReadFileContent(container + "/a/missing.txt")
	assert.ErrorIs(t, err, tarfile.ErrEntryNotFound)
}

func TestTarCursor_HiddenAndSorting(t *testing.T) {
	container := sampleTar(t)
	c := NewTarCursor()
	require.NoError(t, c.Init(container))

	c.ToggleHiddenFiles()
	siblings, err := c.CurrentSiblings()
	require.NoError(t, err)
	assert.Equal(t, []string{".hidden", "a", "empty", "top.txt", "x"}, names(siblings))

	c.SetSort(SortByDir)
	siblings, err = c.CurrentSiblings()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "empty", "x", "top.txt", ".hidden"}, names(siblings))

	require.NoError(t, c.MoveIn())
	c.SetSort(SortBySize)
	siblings, err = c.CurrentSiblings()
	require.NoError(t, err)
	assert.Equal(t, []string{"b.txt", "c.txt"}, names(siblings))
}

func TestTarCursor_Search(t *testing.T) {
	container := sampleTar(t)
	c := NewTarCursor()
	require.NoError(t, c.Init(container))

	require.NoError(t, c.Search("TOP"))
	assert.Equal(t, container+"/top.txt", c.Selected())
	pos, err := c.Pos()
	require.NoError(t, err)
	assert.Equal(t, 2, pos)
}

func TestTarCursor_PosMatchesByName(t *testing.T) {
	c := NewTarCursor()
	assert.True(t, c.samePath("/t.tar/a/b.txt", "/t.tar/x/b.txt"))
	assert.True(t, c.samePath("/t.tar/a/", "/t.tar/a"))
	assert.False(t, c.samePath("/t.tar/a/b.txt", "/t.tar/a/c.txt"))

	container := sampleTar(t)
	require.NoError(t, c.Init(container))
	require.NoError(t, c.MoveBottom())
	require.NoError(t, c.MoveIn())
	assert.Equal(t, container+"/x/b.txt", c.Selected())
	pos, err := c.Pos()
	require.NoError(t, err)
	assert.Equal(t, 0, pos)
}
