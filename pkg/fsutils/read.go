package fsutils

import (
	"io"
	"os"
)

var osOpen = os.Open

// ReadFileData reads at most max bytes from the head of the file.
func ReadFileData(name string, max int) (data []byte, err error) {
	var f *os.File
	if f, err = osOpen(name); err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return io.ReadAll(io.LimitReader(f, int64(max)))
}
