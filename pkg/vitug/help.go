package vitug

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const helpPage = "help"

const helpText = `j/k, arrows  Move down/up, with a count: 5j
gg / G       Top / bottom
h / l        Leave / enter directory or .tar
Enter        Enter or view
.            Show/hide hidden files
~            Toggle ignore case
d n s t      Sort by dir, name, size, time
/            Search, Esc or Enter to finish
p / e        Page / edit selected file
!            Shell in current directory
?            This help
q            Quit`

// newHelpModal returns a centered help box. onClose is called on Esc, ?, q
// or the Close button.
func newHelpModal(onClose func()) (modal tview.Primitive, helpView *tview.TextView, button *tview.Button) {
	helpView = tview.NewTextView().
		SetText(helpText).
		SetTextAlign(tview.AlignLeft)
	helpView.SetBackgroundColor(tcell.ColorDarkBlue)

	inputCapture := func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == '?' || event.Rune() == 'q' {
			onClose()
			return nil
		}
		return event
	}
	helpView.SetInputCapture(inputCapture)

	button = tview.NewButton("Close").SetSelectedFunc(onClose)
	button.SetBackgroundColor(tcell.ColorDarkBlue)
	button.SetInputCapture(inputCapture)

	helpFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(helpView, 0, 1, false).
		AddItem(button, 1, 0, true)
	helpFlex.SetBorder(true).
		SetTitle(" vitug - Help ").
		SetTitleAlign(tview.AlignCenter)
	helpFlex.SetBackgroundColor(tcell.ColorDarkBlue)

	modal = tview.NewGrid().
		SetColumns(0, 56, 0).
		SetRows(0, 16, 0).
		AddItem(helpFlex, 1, 1, 1, 1, 0, 0, true)
	return modal, helpView, button
}
