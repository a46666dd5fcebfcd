package tarfile

import (
	"archive/tar"
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tarEntry struct {
	name    string
	body    string
	dir     bool
	modTime time.Time
}

func writeTar(t *testing.T, entries ...tarEntry) string {
	t.Helper()
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	for _, e := range entries {
		h := &tar.Header{
			Name:    e.name,
			Mode:    0o644,
			Size:    int64(len(e.body)),
			ModTime: e.modTime,
		}
		if e.dir {
			h.Typeflag = tar.TypeDir
			h.Mode = 0o755
			h.Size = 0
		}
		require.NoError(t, tw.WriteHeader(h))
		if !e.dir {
			_, err := tw.Write([]byte(e.body))
			require.NoError(t, err)
		}
	}
	require.NoError(t, tw.Close())
	container := filepath.Join(t.TempDir(), "sample.tar")
	require.NoError(t, os.WriteFile(container, buf.Bytes(), 0o644))
	return container
}

func names(entries []os.DirEntry) []string {
	result := make([]string, len(entries))
	for i, e := range entries {
		result[i] = e.Name()
	}
	return result
}

func TestOpen_BuildsVirtualTree(t *testing.T) {
	container := writeTar(t,
		tarEntry{name: "a/", dir: true},
		tarEntry{name: "a/b.txt", body: "hello"},
		tarEntry{name: "README.md", body: "# readme"},
		tarEntry{name: "a/c/", dir: true},
	)
	a, err := Open(container)
	require.NoError(t, err)
	ctx := context.Background()

	assert.Equal(t, container, a.Path())
	assert.Equal(t, "tar", a.RootURL().Scheme)
	assert.Equal(t, "sample.tar", a.RootTitle())

	root, err := a.ReadDir(ctx, container)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "README.md"}, names(root), "archive order is kept")
	assert.True(t, root[0].IsDir())

	sub, err := a.ReadDir(ctx, container+"/a/")
	require.NoError(t, err)
	assert.Equal(t, []string{"b.txt", "c"}, names(sub))

	subNoSlash, err := a.ReadDir(ctx, container+"/a")
	require.NoError(t, err)
	assert.Equal(t, names(sub), names(subNoSlash))

	empty, err := a.ReadDir(ctx, container+"/a/c/")
	require.NoError(t, err)
	assert.Empty(t, empty)

	unknown, err := a.ReadDir(ctx, container+"/nope/")
	require.NoError(t, err)
	assert.Nil(t, unknown)
}

func TestOpen_InfersImpliedDirectories(t *testing.T) {
	container := writeTar(t,
		tarEntry{name: "./x/y/z.txt", body: "zzz"},
		tarEntry{name: "./"},
	)
	a, err := Open(container)
	require.NoError(t, err)
	ctx := context.Background()

	root, err := a.ReadDir(ctx, container)
	require.NoError(t, err)
	require.Equal(t, []string{"x"}, names(root))
	assert.True(t, root[0].IsDir())

	x, err := a.ReadDir(ctx, container+"/x/")
	require.NoError(t, err)
	assert.Equal(t, []string{"y"}, names(x))

	y, err := a.ReadDir(ctx, container+"/x/y/")
	require.NoError(t, err)
	assert.Equal(t, []string{"z.txt"}, names(y))
}

func TestOpen_Errors(t *testing.T) {
	t.Run("missing_file", func(t *testing.T) {
		_, err := Open(filepath.Join(t.TempDir(), "missing.tar"))
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("corrupt_stream", func(t *testing.T) {
		_, err := Parse("/x.tar", bytes.NewReader(bytes.Repeat([]byte{1}, 1024)))
		assert.Error(t, err)
	})

	t.Run("open_error", func(t *testing.T) {
		origOpen := osOpen
		defer func() { osOpen = origOpen }()
		osOpen = func(name string) (io.ReadCloser, error) {
			return nil, errors.New("open error")
		}
		_, err := Open("/x.tar")
		assert.EqualError(t, err, "failed to open archive: open error")
	})
}

func TestArchive_ReadFile(t *testing.T) {
	container := writeTar(t,
		tarEntry{name: "a/", dir: true},
		tarEntry{name: "a/b.txt", body: "exact bytes\x00\x01"},
		tarEntry{name: "b.txt", body: "other"},
	)
	a, err := Open(container)
	require.NoError(t, err)
	ctx := context.Background()

	data, err := a.ReadFile(ctx, container+"/a/b.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("exact bytes\x00\x01"), data)

	data, err = a.ReadFile(ctx, container+"/b.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("other"), data)

	_, err = a.ReadFile(ctx, container+"/a/missing.txt")
	assert.ErrorIs(t, err, ErrEntryNotFound)

	_, err = a.ReadFile(ctx, "/elsewhere/b.txt")
	assert.ErrorIs(t, err, ErrEntryNotFound)

	_, err = a.ReadFile(ctx, container+"ball/b.txt")
	assert.ErrorIs(t, err, ErrEntryNotFound, "a sibling path sharing the prefix is outside")

	_, err = a.ReadFile(ctx, container)
	assert.ErrorIs(t, err, ErrEntryNotFound, "the root is not a member")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = a.ReadFile(cancelled, container+"/b.txt")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestArchive_Stat(t *testing.T) {
	modTime := time.Date(2023, 5, 6, 7, 8, 9, 0, time.UTC)
	container := writeTar(t,
		tarEntry{name: "a/b.txt", body: "12345", modTime: modTime},
	)
	a, err := Open(container)
	require.NoError(t, err)
	ctx := context.Background()

	info, err := a.Stat(ctx, container)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	info, err = a.Stat(ctx, container+"/a/")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	info, err = a.Stat(ctx, container+"/a/b.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(5), info.Size())
	assert.True(t, info.ModTime().Equal(modTime))
	assert.IsType(t, &tar.Header{}, info.Sys())

	_, err = a.Stat(ctx, container+"/a/none")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestArchive_Paths(t *testing.T) {
	a := &Archive{path: "/data/x.tar"}

	assert.Equal(t, "/data/x.tar", a.Dir("/data/x.tar/a/"))
	assert.Equal(t, "/data/x.tar/a/", a.Dir("/data/x.tar/a/b.txt"))
	assert.Equal(t, "/data/x.tar/a/", a.Dir("/data/x.tar/a/.."))
	assert.Equal(t, "/data", a.Dir("/data/x.tar"))

	assert.True(t, a.Contains("/data/x.tar"))
	assert.True(t, a.Contains("/data/x.tar/a/"))
	assert.False(t, a.Contains("/data/x.tarball"))

	assert.Equal(t, "/", Key("/"))
	assert.Equal(t, "/data/x.tar/a", Key("/data/x.tar/a/"))
}
