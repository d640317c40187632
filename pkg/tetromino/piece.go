package tetromino

import (
	"errors"
	"fmt"
	"strings"
)

type PieceType int

const (
	PieceI PieceType = iota
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceT
	PieceZ
)

const pieceTypeCount = 7

var ErrUnknownPiece = errors.New("unknown piece type")

var pieceNames = [pieceTypeCount]string{"I", "J", "L", "O", "S", "T", "Z"}

// The S and Z colors are swapped relative to the common guideline palette.
var pieceColors = [pieceTypeCount]Color{
	PieceI: Cyan,
	PieceJ: Blue,
	PieceL: Orange,
	PieceO: Yellow,
	PieceS: Red,
	PieceT: Purple,
	PieceZ: Green,
}

// PieceTypes returns the seven piece identities in I, J, L, O, S, T, Z order.
func PieceTypes() []PieceType {
	return []PieceType{PieceI, PieceJ, PieceL, PieceO, PieceS, PieceT, PieceZ}
}

func (t PieceType) Valid() bool {
	return t >= PieceI && t <= PieceZ
}

func (t PieceType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("PieceType(%d)", int(t))
	}
	return pieceNames[t]
}

// Color returns the fixed color of the piece type.
func (t PieceType) Color() Color {
	if !t.Valid() {
		return Color{}
	}
	return pieceColors[t]
}

// ParsePieceType accepts a piece letter in either case.
func ParsePieceType(s string) (PieceType, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range pieceNames {
		if n == name {
			return PieceType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPiece, s)
}

// Piece is a playable tetromino: a shape bound to its color. Pieces carry no
// lock; callers sharing one *Piece between goroutines serialize rotation
// themselves.
type Piece struct {
	Type  PieceType
	Shape Shape
	Color Color
}

var canonicalPieces = buildPieces()

func buildPieces() [pieceTypeCount]Piece {
	var pieces [pieceTypeCount]Piece
	for _, t := range PieceTypes() {
		pieces[t] = Piece{Type: t, Shape: canonicalShapes[t], Color: pieceColors[t]}
	}
	return pieces
}

// NewPiece returns a live copy of the template for t. The template itself is
// never exposed, so rotating the copy leaves every other piece untouched.
func NewPiece(t PieceType) (*Piece, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPiece, int(t))
	}

	p := canonicalPieces[t]
	return &p, nil
}

// Canonical returns a copy of the template piece for t.
func Canonical(t PieceType) (Piece, bool) {
	if !t.Valid() {
		return Piece{}, false
	}
	return canonicalPieces[t], true
}

func (p *Piece) RotateRight() {
	p.Shape.RotateRight()
}

func (p *Piece) RotateLeft() {
	p.Shape.RotateLeft()
}

// Reset returns the piece to its spawn orientation.
func (p *Piece) Reset() {
	p.Shape = canonicalShapes[p.Type]
}

func (p *Piece) Points() [CellCount]Point {
	return p.Shape.Points()
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s %s %s", p.Type, p.Color, p.Shape)
}
