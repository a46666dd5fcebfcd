// Package engine turns key events into navigation commands using a small
// vim-like grammar: single-key commands, a repeat count before j and k,
// "gg", and a search mode that collects a term.
package engine

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
)

type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
)

func (m Mode) String() string {
	if m == ModeSearch {
		return "search"
	}
	return "normal"
}

// maxPending is the longest buffer a new rune may still extend.
const maxPending = 2

// Engine is not safe for concurrent use.
type Engine struct {
	mode    Mode
	pending []rune
	term    []rune
}

func New() *Engine {
	return &Engine{}
}

func (e *Engine) Mode() Mode {
	return e.mode
}

func (e *Engine) IsSearch() bool {
	return e.mode == ModeSearch
}

func (e *Engine) SearchTerm() string {
	return string(e.term)
}

func (e *Engine) ClearSearchTerm() {
	e.term = nil
}

func (e *Engine) ToggleSearch() {
	if e.mode == ModeSearch {
		e.mode = ModeNormal
	} else {
		e.mode = ModeSearch
	}
	e.pending = nil
}

// Pending returns the unresolved runes typed so far in normal mode.
func (e *Engine) Pending() string {
	return string(e.pending)
}

// Push feeds one key event. The returned flag is false when nothing resolved.
func (e *Engine) Push(ev *tcell.EventKey) (Op, bool) {
	if e.mode == ModeSearch {
		return e.pushSearch(ev)
	}
	switch ev.Key() {
	case tcell.KeyRune:
		return e.pushRune(ev.Rune())
	case tcell.KeyDown:
		return e.resolve(OpMoveDown)
	case tcell.KeyUp:
		return e.resolve(OpMoveUp)
	case tcell.KeyLeft:
		return e.resolve(OpMoveOut)
	case tcell.KeyRight, tcell.KeyEnter:
		return e.resolve(OpMoveIn)
	default:
		e.pending = nil
		return Op{Kind: OpNone}, false
	}
}

func (e *Engine) resolve(kind OpKind) (Op, bool) {
	e.pending = nil
	return Op{Kind: kind, Count: 1}, true
}

func (e *Engine) pushSearch(ev *tcell.EventKey) (Op, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		e.term = append(e.term, ev.Rune())
		return Op{Kind: OpNone}, false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(e.term) == 0 {
			return e.abort()
		}
		e.term = e.term[:len(e.term)-1]
		return Op{Kind: OpNone}, false
	case tcell.KeyEscape, tcell.KeyEnter:
		return e.abort()
	default:
		return Op{Kind: OpNone}, false
	}
}

func (e *Engine) abort() (Op, bool) {
	e.term = nil
	e.mode = ModeNormal
	return Op{Kind: OpAbort, Count: 1}, true
}

func (e *Engine) pushRune(r rune) (Op, bool) {
	e.pending = append(e.pending, r)
	last := e.pending[len(e.pending)-1]
	before := e.pending[:len(e.pending)-1]
	op := probe(last, before)
	if op.Kind != OpNone {
		e.pending = nil
		return op, true
	}
	if len(before) > maxPending {
		// The overflowing rune may still start a new sequence.
		e.pending = nil
		if continuesSequence(last) {
			e.pending = []rune{last}
		}
		return op, false
	}
	if !continuesSequence(last) {
		e.pending = nil
	}
	return op, false
}

// probe resolves r against what was typed before it.
func probe(r rune, before []rune) Op {
	if r == 'g' {
		if len(before) > 0 && before[len(before)-1] == 'g' {
			return Op{Kind: OpMoveTop, Count: 1}
		}
		return Op{Kind: OpNone}
	}
	kind, ok := single[r]
	if !ok {
		return Op{Kind: OpNone}
	}
	op := Op{Kind: kind, Count: 1}
	if kind == OpMoveDown || kind == OpMoveUp {
		op.Count = count(before)
	}
	return op
}

func count(before []rune) int {
	n, err := strconv.Atoi(string(before))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func continuesSequence(r rune) bool {
	return r == 'g' || (r >= '0' && r <= '9')
}
