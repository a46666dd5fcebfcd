package fsutils

import (
	"os"
	"path/filepath"
	"strings"
)

var osStat = os.Stat
var osUserHomeDir = os.UserHomeDir

// DirExists returns false without an error when nothing exists at path.
func DirExists(path string) (bool, error) {
	info, err := osStat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// ExpandHome expands leading ~ to the user's home directory.
func ExpandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := osUserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p[1:], "/"))
}
