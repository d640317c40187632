package pkg

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/qnkhuat/tetroterm/pkg/tetromino"
)

const (
	printBlock = "██"
	printEmpty = "  "
	// PrintSlot is the width of one piece in PrintPieces output
	PrintSlot = 4*len(printEmpty) + 2
)

func pieceColor(p *tetromino.Piece) *color.Color {
	r, g, b := p.Color.RGB255()
	return color.RGB(int(r), int(g), int(b))
}

// PrintPieces writes the pieces as colored blocks, up to columns pieces side
// by side
func PrintPieces(w io.Writer, pieces []*tetromino.Piece, columns int) error {
	if columns < 1 {
		columns = 1
	}

	var b strings.Builder
	for start := 0; start < len(pieces); start += columns {
		end := start + columns
		if end > len(pieces) {
			end = len(pieces)
		}
		group := pieces[start:end]

		if start > 0 {
			b.WriteString("\n")
		}

		var line strings.Builder
		for _, p := range group {
			fmt.Fprintf(&line, "%-*s", PrintSlot, p.Type)
		}
		b.WriteString(strings.TrimRight(line.String(), " ") + "\n")

		for row := 0; row < 4; row++ {
			line.Reset()
			for _, p := range group {
				occupancy := p.Shape.Occupancy()
				block := pieceColor(p)
				for col := 0; col < 4; col++ {
					if row < len(occupancy) && col < len(occupancy[row]) && occupancy[row][col] {
						block.Fprint(&line, printBlock)
					} else {
						line.WriteString(printEmpty)
					}
				}
				line.WriteString("  ")
			}
			b.WriteString(strings.TrimRight(line.String(), " ") + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
