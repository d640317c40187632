package tetromino

// Position is one axis coordinate of a cell, measured from the center of the
// bounding box. Negative picks the side of the center line and Shifted picks
// the grid line farther from it.
//
// The same pair decodes differently on a four line axis and a three line
// axis, which is why a Shape records WideX and TallY.
type Position struct {
	Negative bool
	Shifted  bool
}

// Negate mirrors the position across the center line.
func (p *Position) Negate() {
	p.Negative = !p.Negative
}

func (p Position) negated() Position {
	p.Negate()
	return p
}

// positionAt encodes grid line i of an axis that is size lines long.
func positionAt(i, size int) Position {
	p := Position{Negative: i < size/2}
	if size == 4 {
		p.Shifted = i == 0 || i == size-1
	} else {
		p.Shifted = i != size/2
	}

	return p
}

// Index returns the grid line the position denotes. long selects a four line
// axis, otherwise the axis has three lines.
func (p Position) Index(long bool) int {
	if long {
		switch {
		case p.Negative && p.Shifted:
			return 0
		case p.Negative:
			return 1
		case p.Shifted:
			return 3
		default:
			return 2
		}
	}

	switch {
	case !p.Shifted:
		return 1
	case p.Negative:
		return 0
	default:
		return 2
	}
}

// Offset returns the signed distance from the center line in half cells.
func (p Position) Offset(long bool) int {
	if long {
		return 2*p.Index(true) - 3
	}
	return 2*p.Index(false) - 2
}

// canonical gives the center line of a three line axis its single encoding.
// Negation flips the sign of the center, which has no side.
func (p *Position) canonical(long bool) {
	if !long && !p.Shifted {
		p.Negative = false
	}
}
