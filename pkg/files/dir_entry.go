package files

import (
	"os"
	"strings"
)

func NewDirEntry(name string, isDir bool, o ...FileInfoOption) DirEntry {
	if strings.ContainsAny(name, `/\`) {
		// It's OK to have panic here.
		panic("dir entry name can not have path: " + name)
	}
	dirEntry := DirEntry{
		name:  name,
		isDir: isDir,
	}
	if len(o) > 0 {
		dirEntry.info = NewFileInfo(dirEntry, o...)
	}
	return dirEntry
}

var _ os.DirEntry = (*DirEntry)(nil)

// DirEntry is an os.DirEntry that is not backed by the local filesystem.
type DirEntry struct {
	name  string
	isDir bool
	info  *FileInfo
}

func (d DirEntry) Name() string { return d.name }
func (d DirEntry) IsDir() bool  { return d.isDir }
func (d DirEntry) Type() os.FileMode {
	if d.isDir {
		return os.ModeDir
	}
	return 0
}
func (d DirEntry) Info() (os.FileInfo, error) {
	if d.info == nil {
		return nil, nil
	}
	return d.info, nil
}

// IsHidden reports whether a name follows the dot-file convention.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
