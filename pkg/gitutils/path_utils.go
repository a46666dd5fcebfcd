package gitutils

import (
	"os"
	"path/filepath"
)

var osStat = os.Stat
var filepathAbs = filepath.Abs

// GetRepositoryRoot walks up from dirPath looking for a .git directory.
// It returns an empty string outside of a repository.
func GetRepositoryRoot(dirPath string) string {
	dirPath, err := filepathAbs(dirPath)
	if err != nil {
		return ""
	}
	for {
		if stat, err := osStat(filepath.Join(dirPath, ".git")); err == nil && stat.IsDir() {
			return dirPath
		}
		parent := filepath.Dir(dirPath)
		if parent == dirPath {
			return ""
		}
		dirPath = parent
	}
}
