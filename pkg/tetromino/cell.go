package tetromino

import "fmt"

// Cell is one occupied square of a shape, relative to the shape's center.
type Cell struct {
	X, Y Position
}

// rotateRight maps (x, y) to (y, -x).
func rotateRight(x, y Position) (Position, Position) {
	return y, x.negated()
}

// rotateLeft maps (x, y) to (-y, x).
func rotateLeft(x, y Position) (Position, Position) {
	return y.negated(), x
}

// RotateRight turns the cell a quarter turn, (x, y) -> (y, -x).
func (c *Cell) RotateRight() {
	c.X, c.Y = rotateRight(c.X, c.Y)
}

// RotateLeft undoes RotateRight, (x, y) -> (-y, x).
func (c *Cell) RotateLeft() {
	c.X, c.Y = rotateLeft(c.X, c.Y)
}

// Point decodes the cell into bounding box indices.
func (c Cell) Point(wideX, tallY bool) Point {
	return Point{c.X.Index(wideX), c.Y.Index(tallY)}
}

func (c Cell) String() string {
	return fmt.Sprintf("{x:%s y:%s}", c.X.sign(), c.Y.sign())
}

func (p Position) sign() string {
	s := "+"
	if p.Negative {
		s = "-"
	}
	if p.Shifted {
		return s + "far"
	}
	return s + "near"
}
