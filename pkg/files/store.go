package files

import (
	"context"
	"net/url"
	"os"
)

//go:generate mockgen -destination=mock_store.go -package=files . Store

// Store lists one backend's directories: the local filesystem or an archive.
type Store interface {
	RootTitle() string
	RootURL() url.URL
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
	Stat(ctx context.Context, name string) (os.FileInfo, error)
}
