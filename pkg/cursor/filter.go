package cursor

import "github.com/datatug/vitug/pkg/files"

// Filter decides which directory entries are listed.
type Filter struct {
	ShowHidden bool
}

func (f Filter) IsVisible(name string) bool {
	if !f.ShowHidden && files.IsHidden(name) {
		return false
	}
	return true
}
