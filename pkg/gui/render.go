package gui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/tetroterm/pkg/tetromino"
)

const (
	leftMargin = 2
	topMargin  = 1
	// A square is two columns wide so pieces look square in a terminal.
	blockWidth = 2
	// Horizontal room for one 4x4 box plus a gap.
	slotWidth = 4*blockWidth + 2
)

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range []rune(text) {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawBlock fills one square of a piece's bounding box
func drawBlock(s tcell.Screen, col, row int, style tcell.Style) {
	for i := 0; i < blockWidth; i++ {
		s.SetContent(col+i, row, ' ', nil, style)
	}
}

// DrawPiece draws the bounding box of p with its top left corner at x, y and
// returns the screen width and height it covered.
func DrawPiece(s tcell.Screen, x, y int, p *tetromino.Piece, t Theme) (int, int) {
	empty := tcell.StyleDefault.Background(t.Box)
	filled := tcell.StyleDefault.Background(PieceColor(p.Color))

	occupancy := p.Shape.Occupancy()
	for row := range occupancy {
		for col, set := range occupancy[row] {
			style := empty
			if set {
				style = filled
			}
			drawBlock(s, x+col*blockWidth, y+row, style)
		}
	}

	w, h := p.Shape.Size()
	return w * blockWidth, h
}

// DrawLabel writes a piece caption, highlighted when selected
func DrawLabel(s tcell.Screen, x, y int, text string, selected bool, t Theme) {
	style := tcell.StyleDefault.Foreground(t.Label)
	if selected {
		style = style.Foreground(t.Selected).Bold(true)
	}
	drawText(s, x, y, style, text)
}

// DrawMsgLabel displays a message below the pieces
func DrawMsgLabel(s tcell.Screen, x, y int, msg string, t Theme) {
	drawText(s, x, y, tcell.StyleDefault.Foreground(t.Msg), msg)
}
