// Package cursor navigates a directory tree one selected entry at a time.
//
// Two backends implement Cursor: FileCursor walks the local filesystem and
// TarCursor walks the virtual tree of a tar archive. Both share the same
// sorting, filtering, search and per-directory selection memory.
package cursor

// Kind tags the backend behind a Cursor.
type Kind int

const (
	KindFile Kind = iota
	KindArchive
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindArchive:
		return "archive"
	default:
		return "unknown"
	}
}

// Sort is the ordering applied to a directory listing.
type Sort int

const (
	SortByName Sort = iota
	SortByDir
	SortBySize
	SortByTime
)

func (s Sort) String() string {
	switch s {
	case SortByName:
		return "name"
	case SortByDir:
		return "dir"
	case SortBySize:
		return "size"
	case SortByTime:
		return "time"
	default:
		return "unknown"
	}
}

// Placeholder is the last segment of the path selected in an empty directory.
const Placeholder = ".."

type Cursor interface {
	Kind() Kind

	// Init starts a session rooted at container. Calling it again with the
	// same container keeps the current state.
	Init(container string) error

	MoveDown(n int) error
	MoveUp(n int) error
	MoveIn() error
	MoveOut() error
	MoveTop() error
	MoveBottom() error

	ToggleHiddenFiles()
	ToggleCaseSensitivity()
	SetSort(s Sort)

	// Search selects the first sibling whose name contains pattern,
	// ignoring case. No match leaves the selection alone.
	Search(pattern string) error
	MatchingSiblings(pattern string) ([]string, error)

	// CurrentSiblings returns nil for an empty directory.
	CurrentSiblings() ([]string, error)
	Pos() (int, error)
	IsDir(p string) bool

	Selected() string
	CurrentDir() string
	Parent() string
	StartDir() string

	ShowHidden() bool
	IgnoreCase() bool
	Sort() Sort
}
