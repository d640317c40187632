package tetromino

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// CellCount is the number of cells in every tetromino.
const CellCount = 4

var (
	ErrDimensions = errors.New("occupancy matrix must have 3 or 4 rows of 3 or 4 columns")
	ErrCellCount  = errors.New("occupancy matrix must mark exactly 4 cells")
)

// Shape is the four cells of a piece in its local frame. WideX and TallY
// record whether the source matrix had four columns and four rows; they
// decide how each Position decodes and do not change when the shape rotates.
type Shape struct {
	Cells [CellCount]Cell
	WideX bool
	TallY bool
}

var occupancy = [pieceTypeCount][][]bool{
	PieceI: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	PieceJ: {
		{true, false, false},
		{true, true, true},
		{false, false, false},
	},
	PieceL: {
		{false, false, true},
		{true, true, true},
		{false, false, false},
	},
	PieceO: {
		{false, false, false, false},
		{false, true, true, false},
		{false, true, true, false},
		{false, false, false, false},
	},
	PieceS: {
		{false, true, true},
		{true, true, false},
		{false, false, false},
	},
	PieceT: {
		{false, true, false},
		{true, true, true},
		{false, false, false},
	},
	PieceZ: {
		{true, true, false},
		{false, true, true},
		{false, false, false},
	},
}

var canonicalShapes = buildShapes()

func buildShapes() [pieceTypeCount]Shape {
	var shapes [pieceTypeCount]Shape
	for t := range occupancy {
		shapes[t] = mustShape(occupancy[t])
	}
	return shapes
}

// NewShape builds a shape from a matrix whose true entries mark the occupied
// squares. Cells are collected in row-major order.
func NewShape(matrix [][]bool) (Shape, error) {
	rows := len(matrix)
	if rows != 3 && rows != 4 {
		return Shape{}, fmt.Errorf("%w: got %d rows", ErrDimensions, rows)
	}
	cols := len(matrix[0])
	if cols != 3 && cols != 4 {
		return Shape{}, fmt.Errorf("%w: got %d columns", ErrDimensions, cols)
	}

	s := Shape{WideX: cols == 4, TallY: rows == 4}

	var n int
	for y, row := range matrix {
		if len(row) != cols {
			return Shape{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensions, y, len(row), cols)
		}

		for x, filled := range row {
			if !filled {
				continue
			}
			if n == CellCount {
				return Shape{}, fmt.Errorf("%w: found more than %d", ErrCellCount, CellCount)
			}

			s.Cells[n] = Cell{X: positionAt(x, cols), Y: positionAt(y, rows)}
			n++
		}
	}

	if n != CellCount {
		return Shape{}, fmt.Errorf("%w: found %d", ErrCellCount, n)
	}

	return s, nil
}

func mustShape(matrix [][]bool) Shape {
	s, err := NewShape(matrix)
	if err != nil {
		panic(fmt.Sprintf("tetromino: invalid canonical shape: %s", err))
	}
	return s
}

// CanonicalShape returns a copy of the template shape of t.
func CanonicalShape(t PieceType) (Shape, bool) {
	if !t.Valid() {
		return Shape{}, false
	}
	return canonicalShapes[t], true
}

func (s *Shape) RotateRight() {
	for i := 0; i < CellCount; i++ {
		s.Cells[i].RotateRight()
	}
	s.canonical()
}

func (s *Shape) RotateLeft() {
	for i := 0; i < CellCount; i++ {
		s.Cells[i].RotateLeft()
	}
	s.canonical()
}

func (s *Shape) canonical() {
	for i := 0; i < CellCount; i++ {
		s.Cells[i].X.canonical(s.WideX)
		s.Cells[i].Y.canonical(s.TallY)
	}
}

// Square reports whether the bounding box has as many rows as columns.
// Rotation only decodes exactly for square boxes.
func (s Shape) Square() bool {
	return s.WideX == s.TallY
}

// Size returns the width and height of the bounding box.
func (s Shape) Size() (int, int) {
	w, h := 3, 3
	if s.WideX {
		w = 4
	}
	if s.TallY {
		h = 4
	}
	return w, h
}

func (s Shape) Points() [CellCount]Point {
	var ps [CellCount]Point
	for i, c := range s.Cells {
		ps[i] = c.Point(s.WideX, s.TallY)
	}
	return ps
}

func (s Shape) pointSet() Points {
	ps := s.Points()
	return Points(ps[:])
}

// Equal reports whether both shapes cover the same squares of the same box.
func (s Shape) Equal(other Shape) bool {
	if s.WideX != other.WideX || s.TallY != other.TallY {
		return false
	}
	return s.pointSet().Equal(other.pointSet())
}

// Congruent reports whether both shapes cover the same squares up to
// translation.
func (s Shape) Congruent(other Shape) bool {
	return s.pointSet().Origin().Equal(other.pointSet().Origin())
}

// Occupancy decodes the shape back into a matrix.
func (s Shape) Occupancy() [][]bool {
	w, h := s.Size()

	m := make([][]bool, h)
	for y := range m {
		m[y] = make([]bool, w)
	}
	for _, p := range s.Points() {
		m[p.Y][p.X] = true
	}

	return m
}

func (s Shape) Render() string {
	var b strings.Builder

	for _, row := range s.Occupancy() {
		for _, filled := range row {
			if filled {
				b.WriteRune('X')
			} else {
				b.WriteRune('.')
			}
		}
		b.WriteRune('\n')
	}

	return b.String()
}

func (s Shape) String() string {
	ps := s.pointSet()
	sort.Sort(ps)

	var b strings.Builder
	for i := range ps {
		if i > 0 {
			b.WriteRune(',')
		}
		b.WriteString(ps[i].String())
	}

	return b.String()
}
