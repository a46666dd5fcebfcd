// Package vitug wires the cursors, the key engine and external programs
// into a terminal directory browser.
package vitug

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/datatug/vitug/pkg/cursor"
	"github.com/datatug/vitug/pkg/engine"
	"github.com/datatug/vitug/pkg/fsutils"
	"github.com/datatug/vitug/pkg/logging"
	"github.com/gdamore/tcell/v2"
)

const archiveExt = ".tar"

var writeTempFile = fsutils.WriteTempFile

// Dispatcher applies engine commands to whichever cursor is active.
// Listing the filesystem and entering archives switch between the two.
type Dispatcher struct {
	files    *cursor.FileCursor
	archive  *cursor.TarCursor
	active   cursor.Kind
	engine   *engine.Engine
	settings Settings
	launcher Launcher
	running  bool
	onHelp   func()
}

func NewDispatcher(files *cursor.FileCursor, archive *cursor.TarCursor, settings Settings, launcher Launcher) *Dispatcher {
	return &Dispatcher{
		files:    files,
		archive:  archive,
		active:   cursor.KindFile,
		engine:   engine.New(),
		settings: settings,
		launcher: launcher,
		running:  true,
	}
}

// Start roots the filesystem cursor at dir.
func (d *Dispatcher) Start(dir string) error {
	return d.files.Init(dir)
}

func (d *Dispatcher) Active() cursor.Cursor {
	if d.active == cursor.KindArchive {
		return d.archive
	}
	return d.files
}

func (d *Dispatcher) Engine() *engine.Engine {
	return d.engine
}

func (d *Dispatcher) Running() bool {
	return d.running
}

func (d *Dispatcher) Settings() Settings {
	return d.settings
}

// SetHelpHandler sets what the "?" command does.
func (d *Dispatcher) SetHelpHandler(f func()) {
	d.onHelp = f
}

// HandleKey feeds one key to the engine and applies what it resolves.
// While searching, each key re-runs the search instead.
func (d *Dispatcher) HandleKey(ev *tcell.EventKey) error {
	op, ok := d.engine.Push(ev)
	if d.engine.IsSearch() {
		if term := d.engine.SearchTerm(); term != "" {
			return d.Active().Search(term)
		}
		return nil
	}
	d.engine.ClearSearchTerm()
	if !ok {
		return nil
	}
	logging.Debug("applying op", logging.String("op", op.Kind.String()), logging.Int("count", op.Count))
	return d.Apply(op)
}

func (d *Dispatcher) Apply(op engine.Op) error {
	c := d.Active()
	switch op.Kind {
	case engine.OpQuit:
		d.running = false
	case engine.OpMoveBottom:
		return c.MoveBottom()
	case engine.OpMoveTop:
		return c.MoveTop()
	case engine.OpMoveDown:
		return c.MoveDown(op.Count)
	case engine.OpMoveUp:
		return c.MoveUp(op.Count)
	case engine.OpMoveOut:
		if d.active == cursor.KindArchive && d.archive.AtRoot() {
			d.active = cursor.KindFile
			return nil
		}
		return c.MoveOut()
	case engine.OpMoveIn:
		return d.open()
	case engine.OpToggleHidden:
		c.ToggleHiddenFiles()
	case engine.OpToggleCase:
		c.ToggleCaseSensitivity()
	case engine.OpSortDir:
		c.SetSort(cursor.SortByDir)
	case engine.OpSortName:
		c.SetSort(cursor.SortByName)
	case engine.OpSortSize:
		c.SetSort(cursor.SortBySize)
	case engine.OpSortTime:
		c.SetSort(cursor.SortByTime)
	case engine.OpSearch:
		d.engine.ToggleSearch()
	case engine.OpPage:
		return d.launchSelected(d.settings.Pager)
	case engine.OpEdit:
		return d.launchSelected(d.settings.Editor)
	case engine.OpShell:
		return d.launcher.Run(d.settings.Shell, d.shellDir())
	case engine.OpHelp:
		if d.onHelp != nil {
			d.onHelp()
		}
	case engine.OpNone, engine.OpAbort:
	}
	return nil
}

func (d *Dispatcher) open() error {
	c := d.Active()
	selected := c.Selected()
	switch {
	case isPlaceholder(selected):
		return nil
	case c.IsDir(selected):
		return c.MoveIn()
	case d.active == cursor.KindFile && strings.EqualFold(filepath.Ext(selected), archiveExt):
		if err := d.archive.Init(selected); err != nil {
			return fmt.Errorf("failed to open archive %s: %w", selected, err)
		}
		d.active = cursor.KindArchive
		logging.Debug("entered archive", logging.String("path", selected))
		return nil
	default:
		return d.launchSelected(d.settings.Viewer)
	}
}

// launchSelected runs prog on the selection. Archive members are copied
// to a temp file first and removed once prog exits.
func (d *Dispatcher) launchSelected(prog string) error {
	c := d.Active()
	selected := c.Selected()
	if isPlaceholder(selected) {
		return nil
	}
	if d.active == cursor.KindFile {
		return d.launcher.Run(prog, selected)
	}
	if c.IsDir(selected) {
		return nil
	}
	data, err := d.archive.ReadFileContent(selected)
	if err != nil {
		return err
	}
	p, cleanup, err := writeTempFile(selected, data)
	if err != nil {
		return err
	}
	defer cleanup()
	return d.launcher.Run(prog, p)
}

// shellDir is the current directory, or the archive's own directory
// while browsing an archive.
func (d *Dispatcher) shellDir() string {
	if d.active == cursor.KindArchive {
		return filepath.Dir(d.archive.StartDir())
	}
	return d.files.CurrentDir()
}

func isPlaceholder(p string) bool {
	return filepath.Base(p) == cursor.Placeholder
}
