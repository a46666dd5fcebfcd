package vitug

import (
	"path"
	"path/filepath"

	"github.com/datatug/vitug/pkg/cursor"
)

const (
	rowIndent   = "   "
	rowSelected = " > "
	// headerRows precede the first sibling row.
	headerRows = 2
)

// Lines lays out the current directory: a header with its path, a blank
// line and one row per sibling with the selected row marked.
func Lines(c cursor.Cursor) ([]string, error) {
	siblings, err := c.CurrentSiblings()
	if err != nil {
		return nil, err
	}
	pos, err := c.Pos()
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, headerRows+max(len(siblings), 1))
	lines = append(lines, c.CurrentDir(), "")
	if len(siblings) == 0 {
		return append(lines, rowSelected+cursor.Placeholder+"/"), nil
	}
	for i, p := range siblings {
		prefix := rowIndent
		if i == pos {
			prefix = rowSelected
		}
		lines = append(lines, prefix+RowName(c, p))
	}
	return lines, nil
}

// RowName is the last path segment, with "/" appended for directories.
func RowName(c cursor.Cursor, p string) string {
	name := filepath.Base(p)
	if c.Kind() == cursor.KindArchive {
		name = path.Base(p)
	}
	if c.IsDir(p) {
		name += "/"
	}
	return name
}
