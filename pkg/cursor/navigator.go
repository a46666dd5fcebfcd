package cursor

import (
	"cmp"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

type sibling struct {
	path    string
	name    string
	isDir   bool
	size    int64
	modTime time.Time
}

// backend is what a Cursor implementation plugs into navigator.
type backend interface {
	list(dir string) ([]sibling, error)
	IsDir(p string) bool
	dir(p string) string
	hasParent(dir string) bool
	placeholder(dir string) string
	key(dir string) string
	samePath(a, b string) bool
}

// navigator holds the state and algorithms shared by both cursors.
type navigator struct {
	backend    backend
	filter     Filter
	ignoreCase bool
	sortMode   Sort
	memory     map[string]string
	startDir   string
	selected   string
	started    bool
}

func newNavigator(b backend) navigator {
	return navigator{
		backend: b,
		memory:  make(map[string]string),
	}
}

func (n *navigator) Selected() string {
	return n.selected
}

func (n *navigator) CurrentDir() string {
	return n.backend.dir(n.selected)
}

func (n *navigator) Parent() string {
	return n.backend.dir(n.CurrentDir())
}

func (n *navigator) StartDir() string {
	return n.startDir
}

func (n *navigator) ShowHidden() bool {
	return n.filter.ShowHidden
}

func (n *navigator) IgnoreCase() bool {
	return n.ignoreCase
}

func (n *navigator) Sort() Sort {
	return n.sortMode
}

func (n *navigator) ToggleHiddenFiles() {
	n.filter.ShowHidden = !n.filter.ShowHidden
}

func (n *navigator) ToggleCaseSensitivity() {
	n.ignoreCase = !n.ignoreCase
}

func (n *navigator) SetSort(s Sort) {
	n.sortMode = s
}

// start resets the session unless it is already rooted at dir.
func (n *navigator) start(dir string) error {
	if n.started && n.backend.key(dir) == n.backend.key(n.startDir) {
		return nil
	}
	siblings, err := n.siblings(dir)
	if err != nil {
		return err
	}
	n.startDir = dir
	n.memory = make(map[string]string)
	n.selected = n.firstOrPlaceholder(dir, siblings)
	n.started = true
	return nil
}

func (n *navigator) firstOrPlaceholder(dir string, siblings []sibling) string {
	if len(siblings) == 0 {
		return n.backend.placeholder(dir)
	}
	return siblings[0].path
}

func (n *navigator) siblings(dir string) ([]sibling, error) {
	all, err := n.backend.list(dir)
	if err != nil {
		return nil, err
	}
	visible := make([]sibling, 0, len(all))
	for _, s := range all {
		if n.filter.IsVisible(s.name) {
			visible = append(visible, s)
		}
	}
	sortSiblings(visible, n.sortMode)
	if n.ignoreCase {
		sortFolded(visible)
	}
	return visible, nil
}

func (n *navigator) pos(siblings []sibling) int {
	for i, s := range siblings {
		if n.backend.samePath(n.selected, s.path) {
			return i
		}
	}
	return 0
}

func (n *navigator) CurrentSiblings() ([]string, error) {
	siblings, err := n.siblings(n.CurrentDir())
	if err != nil || len(siblings) == 0 {
		return nil, err
	}
	paths := make([]string, len(siblings))
	for i, s := range siblings {
		paths[i] = s.path
	}
	return paths, nil
}

func (n *navigator) Pos() (int, error) {
	siblings, err := n.siblings(n.CurrentDir())
	if err != nil {
		return 0, err
	}
	return n.pos(siblings), nil
}

func (n *navigator) MoveDown(count int) error {
	return n.moveBy(count)
}

func (n *navigator) MoveUp(count int) error {
	return n.moveBy(-count)
}

func (n *navigator) moveBy(delta int) error {
	siblings, err := n.siblings(n.CurrentDir())
	if err != nil || len(siblings) == 0 {
		return err
	}
	i := max(0, min(n.pos(siblings)+delta, len(siblings)-1))
	n.selected = siblings[i].path
	return nil
}

func (n *navigator) MoveTop() error {
	siblings, err := n.siblings(n.CurrentDir())
	if err != nil || len(siblings) == 0 {
		return err
	}
	n.selected = siblings[0].path
	return nil
}

func (n *navigator) MoveBottom() error {
	siblings, err := n.siblings(n.CurrentDir())
	if err != nil || len(siblings) == 0 {
		return err
	}
	n.selected = siblings[len(siblings)-1].path
	return nil
}

// moveIn descends into the selected directory and reports whether it did.
func (n *navigator) moveIn() (bool, error) {
	target := n.selected
	current := n.CurrentDir()
	if isPlaceholder(target) || !n.backend.IsDir(target) || n.backend.key(target) == n.backend.key(current) {
		return false, nil
	}
	next, ok := n.memory[n.backend.key(target)]
	if !ok {
		siblings, err := n.siblings(target)
		if err != nil {
			return false, err
		}
		next = n.firstOrPlaceholder(target, siblings)
	}
	n.memory[n.backend.key(current)] = target
	n.selected = next
	return true, nil
}

// moveOut ascends to the parent directory and reports whether it did.
func (n *navigator) moveOut() bool {
	current := n.CurrentDir()
	if !n.backend.hasParent(current) {
		return false
	}
	n.memory[n.backend.key(current)] = n.selected
	if remembered, ok := n.memory[n.backend.key(n.Parent())]; ok {
		n.selected = remembered
	} else {
		n.selected = current
	}
	return true
}

func (n *navigator) MatchingSiblings(pattern string) ([]string, error) {
	siblings, err := n.siblings(n.CurrentDir())
	if err != nil {
		return nil, err
	}
	fold := cases.Fold()
	needle := fold.String(pattern)
	var matches []string
	// Names only, so a pattern never matches the directory part of every path.
	for _, s := range siblings {
		if strings.Contains(fold.String(s.name), needle) {
			matches = append(matches, s.path)
		}
	}
	return matches, nil
}

func (n *navigator) Search(pattern string) error {
	if pattern == "" {
		return nil
	}
	matches, err := n.MatchingSiblings(pattern)
	if err != nil || len(matches) == 0 {
		return err
	}
	n.selected = matches[0]
	return nil
}

func isPlaceholder(p string) bool {
	return path.Base(filepath.ToSlash(p)) == Placeholder
}

func sortSiblings(siblings []sibling, mode Sort) {
	switch mode {
	case SortByDir:
		slices.SortStableFunc(siblings, func(a, b sibling) int {
			switch {
			case a.isDir == b.isDir:
				return 0
			case a.isDir:
				return -1
			default:
				return 1
			}
		})
	case SortByName:
		slices.SortStableFunc(siblings, func(a, b sibling) int {
			return strings.Compare(a.name, b.name)
		})
	case SortBySize:
		slices.SortStableFunc(siblings, func(a, b sibling) int {
			return cmp.Compare(a.size, b.size)
		})
	case SortByTime:
		slices.SortStableFunc(siblings, func(a, b sibling) int {
			return a.modTime.Compare(b.modTime)
		})
	}
}

// sortFolded is a second stable pass, not a tie-break of the primary order.
func sortFolded(siblings []sibling) {
	fold := cases.Fold()
	keys := make(map[string]string, len(siblings))
	for _, s := range siblings {
		keys[s.path] = fold.String(s.path)
	}
	slices.SortStableFunc(siblings, func(a, b sibling) int {
		return strings.Compare(keys[a.path], keys[b.path])
	})
}
