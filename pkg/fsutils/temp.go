package fsutils

import (
	"fmt"
	"os"
	"path/filepath"
)

var osCreateTemp = os.CreateTemp
var osRemove = os.Remove

// WriteTempFile stores data in a new temp file whose name ends with the base
// name of name, so programs opening it can still guess the file type.
// The returned cleanup removes the file.
func WriteTempFile(name string, data []byte) (p string, cleanup func(), err error) {
	f, err := osCreateTemp("", "vitug-*-"+filepath.Base(name))
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	p = f.Name()
	cleanup = func() {
		_ = osRemove(p)
	}
	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, fmt.Errorf("failed to write temp file %s: %w", p, err)
	}
	if err = f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("failed to close temp file %s: %w", p, err)
	}
	return p, cleanup, nil
}
