package vitug

import (
	"bytes"
	"fmt"
	"path"

	"github.com/datatug/vitug/pkg/chroma2tcell"
	"github.com/datatug/vitug/pkg/cursor"
	"github.com/datatug/vitug/pkg/fsutils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const previewMaxBytes = 10 * 1024

var readFileData = fsutils.ReadFileData

// archiveReader extracts one archive member by its cursor path.
type archiveReader func(p string) ([]byte, error)

type previewer struct {
	*tview.TextView
	path        string
	readArchive archiveReader
}

func newPreviewer(readArchive archiveReader) *previewer {
	p := &previewer{
		readArchive: readArchive,
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetWrap(false).
			SetScrollable(true),
	}
	p.SetBorder(true).SetTitle(" Preview ")
	return p
}

// Preview shows the head of the selected file. Nothing is re-read while
// the selection stays the same.
func (p *previewer) Preview(c cursor.Cursor) {
	selected := c.Selected()
	if selected == p.path {
		return
	}
	p.path = selected
	p.Clear()
	if isPlaceholder(selected) || c.IsDir(selected) {
		return
	}
	data, err := p.read(c, selected)
	if err != nil {
		p.showError(fmt.Sprintf("Failed to read %s: %v", selected, err))
		return
	}
	if bytes.IndexByte(data, 0) >= 0 {
		p.SetTextColor(tcell.ColorGray)
		p.SetText("binary file")
		return
	}
	text, ok, err := chroma2tcell.ColorizeFile(path.Base(selected), string(data))
	if err != nil {
		p.showError(err.Error())
		return
	}
	if !ok {
		text = tview.Escape(text)
	}
	p.SetTextColor(tcell.ColorWhiteSmoke)
	p.SetText(text)
	p.ScrollToBeginning()
}

func (p *previewer) read(c cursor.Cursor, selected string) ([]byte, error) {
	if c.Kind() == cursor.KindArchive {
		data, err := p.readArchive(selected)
		if len(data) > previewMaxBytes {
			data = data[:previewMaxBytes]
		}
		return data, err
	}
	return readFileData(selected, previewMaxBytes)
}

func (p *previewer) showError(text string) {
	p.SetTextColor(tcell.ColorRed)
	p.SetText(tview.Escape(text))
}
