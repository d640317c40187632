package tetromino

import (
	"strconv"
	"strings"
)

// Point is a decoded cell location: X is the column and Y the row of the
// piece's bounding box, both counted from the top left corner.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	var b strings.Builder
	b.WriteRune('(')
	b.WriteString(strconv.Itoa(p.X))
	b.WriteRune(',')
	b.WriteString(strconv.Itoa(p.Y))
	b.WriteRune(')')

	return b.String()
}

type Points []Point

func (ps Points) Len() int      { return len(ps) }
func (ps Points) Swap(i, j int) { ps[i], ps[j] = ps[j], ps[i] }
func (ps Points) Less(i, j int) bool {
	return ps[i].Y < ps[j].Y || (ps[i].Y == ps[j].Y && ps[i].X < ps[j].X)
}

func (ps Points) HasPoint(p Point) bool {
	for _, pp := range ps {
		if pp == p {
			return true
		}
	}

	return false
}

// Origin translates the points so that the smallest X and Y are zero.
func (ps Points) Origin() Points {
	if len(ps) == 0 {
		return nil
	}

	minx, miny := ps[0].X, ps[0].Y
	for i := 1; i < len(ps); i++ {
		if ps[i].X < minx {
			minx = ps[i].X
		}
		if ps[i].Y < miny {
			miny = ps[i].Y
		}
	}

	moved := make(Points, len(ps))
	for i := range ps {
		moved[i] = Point{ps[i].X - minx, ps[i].Y - miny}
	}

	return moved
}

// Equal reports whether both sets hold the same points, in any order.
func (ps Points) Equal(other Points) bool {
	if len(ps) != len(other) {
		return false
	}

	for i := range other {
		if !ps.HasPoint(other[i]) {
			return false
		}
	}

	return true
}
