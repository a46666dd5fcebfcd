package vitug

import (
	"archive/tar"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/datatug/vitug/pkg/cursor"
	"github.com/datatug/vitug/pkg/files/osfile"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestTree creates:
//
//	Cargo.toml
//	README.md
//	data.tar  (a/b.txt = "hello")
//	empty/
//	src/main.rs
func newTestTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "Cargo.toml"), []byte("[package]\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# readme\n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "empty"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "main.rs"), []byte("fn main() {}\n"), 0o644))

	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: "a/", Typeflag: tar.TypeDir, Mode: 0o755}))
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: "a/b.txt", Mode: 0o644, Size: 5}))
	_, err := tw.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, os.WriteFile(filepath.Join(root, "data.tar"), buf.Bytes(), 0o644))
	return root
}

func newTestDispatcher(t *testing.T, root string, settings Settings) (*Dispatcher, *MockLauncher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	launcher := NewMockLauncher(ctrl)
	files := cursor.NewFileCursor(osfile.NewStore("/"), &fakeWorkDir{})
	d := NewDispatcher(files, cursor.NewTarCursor(), settings, launcher)
	require.NoError(t, d.Start(root))
	return d, launcher
}

func press(t *testing.T, d *Dispatcher, keys string) {
	t.Helper()
	for _, r := range keys {
		require.NoError(t, d.HandleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)))
	}
}

func pressKey(t *testing.T, d *Dispatcher, key tcell.Key) {
	t.Helper()
	require.NoError(t, d.HandleKey(tcell.NewEventKey(key, 0, tcell.ModNone)))
}
