package cursor

import "os"

var osChdir = os.Chdir
var osGetwd = os.Getwd

// WorkDir is the working directory external programs are launched from.
// FileCursor moves it along with the current directory.
type WorkDir interface {
	Getwd() (string, error)
	Chdir(dir string) error
}

// OSWorkDir is the process working directory.
type OSWorkDir struct{}

var _ WorkDir = OSWorkDir{}

func (OSWorkDir) Getwd() (string, error) {
	return osGetwd()
}

func (OSWorkDir) Chdir(dir string) error {
	return osChdir(dir)
}
