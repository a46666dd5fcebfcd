package engine

// OpKind names one command the dispatcher can apply.
type OpKind int

const (
	OpNone OpKind = iota
	OpQuit
	OpMoveBottom
	OpMoveTop
	OpMoveDown
	OpMoveUp
	OpMoveOut
	OpMoveIn
	OpToggleHidden
	OpToggleCase
	OpSortDir
	OpSortName
	OpSortSize
	OpSortTime
	OpSearch
	OpPage
	OpEdit
	OpShell
	OpHelp
	OpAbort
)

var opNames = map[OpKind]string{
	OpNone:         "none",
	OpQuit:         "quit",
	OpMoveBottom:   "move_bottom",
	OpMoveTop:      "move_top",
	OpMoveDown:     "move_down",
	OpMoveUp:       "move_up",
	OpMoveOut:      "move_out",
	OpMoveIn:       "move_in",
	OpToggleHidden: "toggle_hidden",
	OpToggleCase:   "toggle_case",
	OpSortDir:      "sort_dir",
	OpSortName:     "sort_name",
	OpSortSize:     "sort_size",
	OpSortTime:     "sort_time",
	OpSearch:       "search",
	OpPage:         "page",
	OpEdit:         "edit",
	OpShell:        "shell",
	OpHelp:         "help",
	OpAbort:        "abort",
}

func (k OpKind) String() string {
	if name, ok := opNames[k]; ok {
		return name
	}
	return "unknown"
}

// Op is a resolved command. Count is at least 1 and only differs from 1
// for OpMoveDown and OpMoveUp.
type Op struct {
	Kind  OpKind
	Count int
}

// single maps the runes that resolve on their own.
var single = map[rune]OpKind{
	'q': OpQuit,
	'G': OpMoveBottom,
	'j': OpMoveDown,
	'k': OpMoveUp,
	'h': OpMoveOut,
	'l': OpMoveIn,
	'.': OpToggleHidden,
	'~': OpToggleCase,
	'd': OpSortDir,
	'n': OpSortName,
	's': OpSortSize,
	't': OpSortTime,
	'/': OpSearch,
	'p': OpPage,
	'e': OpEdit,
	'!': OpShell,
	'?': OpHelp,
}
