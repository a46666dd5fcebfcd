// Package tarfile exposes the contents of a tar archive as a read-only
// files.Store.
//
// Paths are synthetic: the archive's own file path is the root and every
// entry lives at "<archive>/<entry>". Directory paths carry a trailing "/"
// because no filesystem metadata exists to tell them apart.
package tarfile

import (
	"archive/tar"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/datatug/vitug/pkg/files"
)

// Sep separates synthetic path segments regardless of the host OS.
const Sep = "/"

var ErrEntryNotFound = errors.New("entry not found in archive")

var osOpen = func(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

var _ files.Store = (*Archive)(nil)

// Archive is the virtual tree of one tar file, built once by Open.
type Archive struct {
	path string
	tree map[string]*files.DirContext
}

// Open parses every header of the archive at container.
func Open(container string) (*Archive, error) {
	f, err := osOpen(container)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Parse(container, f)
}

// Parse builds the virtual tree from a tar stream.
func Parse(container string, r io.Reader) (*Archive, error) {
	a := &Archive{
		path: Key(container),
		tree: make(map[string]*files.DirContext),
	}
	a.tree[a.path] = files.NewDirContext(a.path, nil)

	tr := tar.NewReader(r)
	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read archive %s: %w", container, err)
		}
		a.add(header)
	}
	return a, nil
}

func (a *Archive) add(header *tar.Header) {
	rel, ok := entryPath(header.Name)
	if !ok {
		return
	}
	isDir := header.Typeflag == tar.TypeDir || strings.HasSuffix(header.Name, Sep)

	parent := path.Dir(rel)
	if parent != "." {
		a.ensureDir(parent)
	}
	entry := files.NewDirEntry(path.Base(rel), isDir,
		files.Size(header.Size),
		files.ModTime(header.ModTime),
		files.Sys(header),
	)
	a.dirContext(a.dirKey(parent)).AddChild(entry)
	if isDir {
		a.dirContext(a.dirKey(rel))
	}
}

// ensureDir registers every segment of rel as an implied directory.
func (a *Archive) ensureDir(rel string) {
	parent := path.Dir(rel)
	if parent != "." {
		a.ensureDir(parent)
	}
	a.dirContext(a.dirKey(parent)).AddChild(files.NewDirEntry(path.Base(rel), true))
	a.dirContext(a.dirKey(rel))
}

func (a *Archive) dirKey(rel string) string {
	if rel == "." || rel == "" {
		return a.path
	}
	return a.path + Sep + rel
}

func (a *Archive) dirContext(key string) *files.DirContext {
	dir, ok := a.tree[key]
	if !ok {
		dir = files.NewDirContext(key, nil)
		a.tree[key] = dir
	}
	return dir
}

// entryPath normalises a header name to a clean relative path.
func entryPath(name string) (string, bool) {
	rel := path.Clean(strings.TrimLeft(name, Sep))
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return rel, true
}

// Key strips the trailing separator so "a/" and "a" name the same directory.
func Key(p string) string {
	if p == Sep {
		return p
	}
	return strings.TrimSuffix(p, Sep)
}

// Path returns the container file the tree was built from.
func (a *Archive) Path() string {
	return a.path
}

func (a *Archive) RootURL() url.URL {
	return url.URL{
		Scheme: "tar",
		Path:   a.path,
	}
}

func (a *Archive) RootTitle() string {
	return path.Base(a.path)
}

// ChildPath joins a directory and one of its entries into a synthetic path.
func (a *Archive) ChildPath(dir string, entry os.DirEntry) string {
	p := Key(dir) + Sep + entry.Name()
	if entry.IsDir() {
		p += Sep
	}
	return p
}

// Dir returns the synthetic parent directory of p. Directories inside the
// archive keep their trailing separator, the root does not.
func (a *Archive) Dir(p string) string {
	parent := path.Dir(Key(p))
	if strings.HasPrefix(parent, a.path+Sep) {
		return parent + Sep
	}
	return parent
}

// Contains reports whether p is the root or lies beneath it.
func (a *Archive) Contains(p string) bool {
	key := Key(p)
	return key == a.path || strings.HasPrefix(key, a.path+Sep)
}

// ReadDir lists a directory in archive order. Unknown directories are empty.
func (a *Archive) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir, ok := a.tree[Key(name)]
	if !ok {
		return nil, nil
	}
	return dir.Children(), nil
}

func (a *Archive) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := Key(name)
	if key == a.path {
		return files.NewFileInfo(files.NewDirEntry(path.Base(key), true)), nil
	}
	if parent, ok := a.tree[path.Dir(key)]; ok {
		if entry, ok := parent.Child(path.Base(key)); ok {
			if info, err := entry.Info(); err == nil && info != nil {
				return info, nil
			}
			return files.NewFileInfo(files.NewDirEntry(entry.Name(), entry.IsDir())), nil
		}
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

// ReadFile re-opens the archive and streams to the entry stored at name.
func (a *Archive) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !a.Contains(name) || Key(name) == a.path {
		return nil, fmt.Errorf("%w: %s is outside of %s", ErrEntryNotFound, name, a.path)
	}
	rel := strings.TrimPrefix(Key(name), a.path+Sep)

	f, err := osOpen(a.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	tr := tar.NewReader(f)
	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, rel)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read archive %s: %w", a.path, err)
		}
		if p, ok := entryPath(header.Name); ok && p == rel {
			return io.ReadAll(tr)
		}
	}
}
