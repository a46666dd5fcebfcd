package vitug

import (
	"fmt"
	"strings"

	"github.com/datatug/vitug/pkg/cursor"
	"github.com/datatug/vitug/pkg/fsutils"
	"github.com/datatug/vitug/pkg/gitutils"
	"github.com/datatug/vitug/pkg/logging"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const mainPage = "main"

var gitBranch = gitutils.Branch

// UI draws the dispatcher's active cursor and forwards keys to it.
type UI struct {
	app      *tview.Application
	d        *Dispatcher
	pages    *tview.Pages
	list     *tview.TextView
	status   *tview.TextView
	preview  *previewer
	branches map[string]string
	err      error
}

func NewUI(app *tview.Application, d *Dispatcher) *UI {
	u := &UI{
		app:      app,
		d:        d,
		branches: make(map[string]string),
	}
	u.list = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetScrollable(true)
	u.status = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	left := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(u.list, 0, 1, true).
		AddItem(u.status, 1, 0, false)
	root := tview.NewFlex().AddItem(left, 0, 1, true)
	if d.Settings().Preview {
		u.preview = newPreviewer(d.archive.ReadFileContent)
		root.AddItem(u.preview, 0, 1, false)
	}
	u.pages = tview.NewPages().AddPage(mainPage, root, true, true)

	d.SetHelpHandler(u.showHelp)
	app.SetRoot(u.pages, true)
	app.SetInputCapture(u.inputCapture)
	return u
}

// Run blocks until the user quits. A navigation error stops the
// application and is returned.
func (u *UI) Run() error {
	if err := u.Render(); err != nil {
		return err
	}
	if err := u.app.Run(); err != nil {
		return err
	}
	return u.err
}

// Err is the error that stopped the application, if any.
func (u *UI) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyCtrlC {
		return event
	}
	if name, _ := u.pages.GetFrontPage(); name == helpPage {
		return event
	}
	if err := u.d.HandleKey(event); err != nil {
		u.fail(err)
		return nil
	}
	if !u.d.Running() {
		u.app.Stop()
		return nil
	}
	if err := u.Render(); err != nil {
		u.fail(err)
	}
	return nil
}

func (u *UI) fail(err error) {
	logging.Error("stopping on error", logging.Err(err))
	u.err = err
	u.app.Stop()
}

// Render redraws the listing, the status line and the preview.
func (u *UI) Render() error {
	c := u.d.Active()
	lines, err := Lines(c)
	if err != nil {
		return err
	}
	pos, err := c.Pos()
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("[yellow::b]" + tview.Escape(lines[0]) + "[-::-]")
	if branch := u.branch(c); branch != "" {
		sb.WriteString("  [gray](" + tview.Escape(branch) + ")[-]")
	}
	sb.WriteString("\n")
	for _, line := range lines[1:] {
		sb.WriteString("\n")
		if line == "" {
			continue
		}
		prefix, name := line[:len(rowIndent)], line[len(rowIndent):]
		color := GetColorByFileExt(name)
		if strings.HasSuffix(name, "/") {
			color = dirColor
		}
		if prefix == rowSelected {
			sb.WriteString(prefix + colorTag(color) + "[::r]" + tview.Escape(name) + "[-::-]")
		} else {
			sb.WriteString(prefix + colorTag(color) + tview.Escape(name) + "[-]")
		}
	}
	u.list.SetText(sb.String())
	u.scrollTo(headerRows + pos)
	u.status.SetText(u.statusText(c))
	if u.preview != nil {
		u.preview.Preview(c)
	}
	return nil
}

func (u *UI) statusText(c cursor.Cursor) string {
	e := u.d.Engine()
	if e.IsSearch() {
		return "/" + tview.Escape(e.SearchTerm())
	}
	caseText := "exact"
	if c.IgnoreCase() {
		caseText = "ignore"
	}
	hiddenText := "off"
	if c.ShowHidden() {
		hiddenText = "on"
	}
	text := fmt.Sprintf("[gray]%s  sort:%s  hidden:%s  case:%s", c.Kind(), c.Sort(), hiddenText, caseText)
	if a := u.d.archive.Archive(); c.Kind() == cursor.KindArchive && a != nil {
		text += "  " + tview.Escape(a.RootTitle())
	}
	if c.Kind() == cursor.KindFile && !c.IsDir(c.Selected()) {
		if info, err := osStat(c.Selected()); err == nil {
			text += "  " + fsutils.GetSizeShortText(info.Size())
		}
	}
	if pending := e.Pending(); pending != "" {
		text += "  " + tview.Escape(pending)
	}
	return text + "[-]"
}

// branch is cached per directory for the lifetime of the UI.
func (u *UI) branch(c cursor.Cursor) string {
	if c.Kind() != cursor.KindFile {
		return ""
	}
	dir := c.CurrentDir()
	if branch, ok := u.branches[dir]; ok {
		return branch
	}
	branch, err := gitBranch(dir)
	if err != nil {
		logging.Warn("failed to read git branch", logging.String("dir", dir), logging.Err(err))
	}
	u.branches[dir] = branch
	return branch
}

func (u *UI) scrollTo(row int) {
	_, _, _, height := u.list.GetInnerRect()
	if height <= 0 {
		return
	}
	offset, _ := u.list.GetScrollOffset()
	switch {
	case row < offset:
		offset = row
	case row >= offset+height:
		offset = row - height + 1
	}
	u.list.ScrollTo(offset, 0)
}

func (u *UI) showHelp() {
	modal, _, _ := newHelpModal(u.hideHelp)
	u.pages.AddPage(helpPage, modal, true, true)
	u.app.SetFocus(modal)
}

func (u *UI) hideHelp() {
	u.pages.RemovePage(helpPage)
	u.app.SetFocus(u.list)
}
