package cursor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/datatug/vitug/pkg/files"
	"github.com/datatug/vitug/pkg/logging"
)

var ErrNotDirectory = errors.New("not a directory")

var filepathAbs = filepath.Abs

var _ Cursor = (*FileCursor)(nil)

// FileCursor walks the local filesystem. Listings are read fresh on every
// call and the working directory follows the current directory.
type FileCursor struct {
	navigator
	store files.Store
	wd    WorkDir
}

func NewFileCursor(store files.Store, wd WorkDir) *FileCursor {
	c := &FileCursor{
		store: store,
		wd:    wd,
	}
	c.navigator = newNavigator(c)
	return c
}

func (c *FileCursor) Kind() Kind {
	return KindFile
}

func (c *FileCursor) Init(container string) error {
	dir, err := filepathAbs(container)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", container, err)
	}
	info, err := c.store.Stat(context.Background(), dir)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}
	if err = c.start(dir); err != nil {
		return err
	}
	return c.chdir()
}

func (c *FileCursor) MoveIn() error {
	moved, err := c.moveIn()
	if err != nil || !moved {
		return err
	}
	return c.chdir()
}

func (c *FileCursor) MoveOut() error {
	if !c.moveOut() {
		return nil
	}
	return c.chdir()
}

func (c *FileCursor) chdir() error {
	dir := c.CurrentDir()
	logging.Debug("chdir", logging.String("dir", dir))
	if err := c.wd.Chdir(dir); err != nil {
		return fmt.Errorf("failed to change working directory to %s: %w", dir, err)
	}
	return nil
}

// IsDir follows symlinks. Paths that can not be stated are not directories.
func (c *FileCursor) IsDir(p string) bool {
	info, err := c.store.Stat(context.Background(), p)
	return err == nil && info.IsDir()
}

func (c *FileCursor) list(dir string) ([]sibling, error) {
	entries, err := c.store.ReadDir(context.Background(), dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	siblings := make([]sibling, 0, len(entries))
	for _, entry := range entries {
		s := sibling{
			path:  filepath.Join(dir, entry.Name()),
			name:  entry.Name(),
			isDir: entry.IsDir(),
		}
		if entry.Type()&os.ModeSymlink != 0 {
			s.isDir = c.IsDir(s.path)
		}
		if info, err := entry.Info(); err == nil && info != nil {
			s.size = info.Size()
			s.modTime = info.ModTime()
		}
		siblings = append(siblings, s)
	}
	return siblings, nil
}

func (c *FileCursor) dir(p string) string {
	return filepath.Dir(p)
}

func (c *FileCursor) hasParent(dir string) bool {
	return filepath.Dir(dir) != dir
}

func (c *FileCursor) placeholder(dir string) string {
	return strings.TrimSuffix(dir, string(os.PathSeparator)) + string(os.PathSeparator) + Placeholder
}

func (c *FileCursor) key(dir string) string {
	return filepath.Clean(dir)
}

func (c *FileCursor) samePath(a, b string) bool {
	return a == b
}
