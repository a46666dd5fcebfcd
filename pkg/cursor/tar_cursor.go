package cursor

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/datatug/vitug/pkg/files/tarfile"
)

var tarOpen = tarfile.Open

var _ Cursor = (*TarCursor)(nil)

// TarCursor walks the virtual tree of a tar archive. Directory paths end
// with tarfile.Sep; the archive file itself is the root.
type TarCursor struct {
	navigator
	archive *tarfile.Archive
}

func NewTarCursor() *TarCursor {
	c := &TarCursor{}
	c.navigator = newNavigator(c)
	return c
}

func (c *TarCursor) Kind() Kind {
	return KindArchive
}

// Init parses the archive unless container is the one already open.
func (c *TarCursor) Init(container string) error {
	if c.archive != nil && c.archive.Path() == tarfile.Key(container) {
		return c.start(c.archive.Path())
	}
	archive, err := tarOpen(container)
	if err != nil {
		return err
	}
	c.archive = archive
	c.started = false
	return c.start(archive.Path())
}

func (c *TarCursor) MoveIn() error {
	_, err := c.moveIn()
	return err
}

func (c *TarCursor) MoveOut() error {
	c.moveOut()
	return nil
}

// Archive is nil until Init succeeds.
func (c *TarCursor) Archive() *tarfile.Archive {
	return c.archive
}

// AtRoot reports whether the current directory is the archive itself.
func (c *TarCursor) AtRoot() bool {
	return c.archive != nil && tarfile.Key(c.CurrentDir()) == c.archive.Path()
}

// ReadFileContent extracts one archive member.
func (c *TarCursor) ReadFileContent(p string) ([]byte, error) {
	if c.archive == nil {
		return nil, fmt.Errorf("%w: no archive is open", tarfile.ErrEntryNotFound)
	}
	return c.archive.ReadFile(context.Background(), p)
}

func (c *TarCursor) IsDir(p string) bool {
	if strings.HasSuffix(p, tarfile.Sep) {
		return true
	}
	return c.archive != nil && p == c.archive.Path()
}

func (c *TarCursor) list(dir string) ([]sibling, error) {
	if c.archive == nil {
		return nil, nil
	}
	entries, err := c.archive.ReadDir(context.Background(), dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive directory %s: %w", dir, err)
	}
	siblings := make([]sibling, 0, len(entries))
	for _, entry := range entries {
		s := sibling{
			path:  c.archive.ChildPath(dir, entry),
			name:  entry.Name(),
			isDir: entry.IsDir(),
		}
		if info, err := entry.Info(); err == nil && info != nil {
			s.size = info.Size()
			s.modTime = info.ModTime()
		}
		siblings = append(siblings, s)
	}
	return siblings, nil
}

func (c *TarCursor) dir(p string) string {
	if c.archive == nil {
		return path.Dir(tarfile.Key(p))
	}
	return c.archive.Dir(p)
}

func (c *TarCursor) hasParent(dir string) bool {
	return c.archive != nil && tarfile.Key(dir) != c.archive.Path()
}

func (c *TarCursor) placeholder(dir string) string {
	return tarfile.Key(dir) + tarfile.Sep + Placeholder
}

func (c *TarCursor) key(dir string) string {
	return tarfile.Key(dir)
}

// samePath compares file names only, so equally named entries of different
// directories are treated as the same selection.
func (c *TarCursor) samePath(a, b string) bool {
	return path.Base(tarfile.Key(a)) == path.Base(tarfile.Key(b))
}
