package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/tetroterm/pkg/tetromino"
	"github.com/rivo/tview"
)

const helpText = "x/up: right  z/down: left  space: next  r: reset  q: quit"

// Viewer is the interactive terminal UI
type Viewer struct {
	App    *tview.Application
	Board  *tview.Box
	Status *tview.TextView
	Layout *tview.Flex
	Theme  Theme
	State  *State
}

func NewViewer(theme Theme, seed int64) *Viewer {
	app := tview.NewApplication()

	board := tview.NewBox().
		SetBorder(true).
		SetTitle(" tetroterm ")

	status := tview.NewTextView().
		SetDynamicColors(true)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(board, 0, 1, true).
		AddItem(status, 1, 0, false)

	v := &Viewer{
		App:    app,
		Board:  board,
		Status: status,
		Layout: layout,
		Theme:  theme,
		State:  NewState(seed),
	}

	board.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		v.Draw(screen, x+leftMargin, y+topMargin)
		return x, y, width, height
	})
	app.SetInputCapture(v.HandleKey)
	v.renderStatus()

	return v
}

func (v *Viewer) Run() error {
	return v.App.SetRoot(v.Layout, true).Run()
}

// Draw paints the active piece, the next piece and the templates with the top
// left corner at x, y
func (v *Viewer) Draw(s tcell.Screen, x, y int) {
	st := v.State

	DrawLabel(s, x, y, "active "+st.Active.Type.String(), true, v.Theme)
	_, h := DrawPiece(s, x, y+1, st.Active, v.Theme)

	next, _ := tetromino.Canonical(st.Bag.Next())
	DrawLabel(s, x+slotWidth, y, "next "+next.Type.String(), false, v.Theme)
	if _, nh := DrawPiece(s, x+slotWidth, y+1, &next, v.Theme); nh > h {
		h = nh
	}

	DrawMsgLabel(s, x+2*slotWidth, y+1, st.Msg, v.Theme)

	row := y + h + 2
	for i := range st.Templates {
		p := &st.Templates[i]
		DrawLabel(s, x+i*slotWidth, row, p.Type.String(), p.Type == st.Active.Type, v.Theme)
		DrawPiece(s, x+i*slotWidth, row+1, p, v.Theme)
	}
}

// HandleKey applies a key press to the state. Keys it does not handle are
// passed on to the focused primitive.
func (v *Viewer) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		v.App.Stop()
		return nil
	case tcell.KeyUp:
		v.State.RotateRight()
	case tcell.KeyDown:
		v.State.RotateLeft()
	case tcell.KeyRune:
		switch event.Rune() {
		case 'x':
			v.State.RotateRight()
		case 'z':
			v.State.RotateLeft()
		case ' ':
			v.State.TakeNext()
		case 'r':
			v.State.Reset()
		case 'q':
			v.App.Stop()
			return nil
		default:
			return event
		}
	default:
		return event
	}

	v.renderStatus()
	return nil
}

func (v *Viewer) renderStatus() {
	v.Status.SetText(fmt.Sprintf("[::b]%s[::-] turns %d  next %s  %s",
		v.State.Active.Type, v.State.Turns, v.State.Bag.Next(), helpText))
}
