package tetromino

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pieceColorTests = map[PieceType]struct {
	Color Color
	Hex   string
}{
	PieceI: {Cyan, "#00ffff"},
	PieceJ: {Blue, "#0000ff"},
	PieceL: {Orange, "#ffa600"},
	PieceO: {Yellow, "#ffff00"},
	PieceS: {Red, "#ff0000"},
	PieceT: {Purple, "#ff00ff"},
	PieceZ: {Green, "#00ff00"},
}

func TestPieceColors(t *testing.T) {
	hexes := make(map[string]PieceType)

	for _, pt := range PieceTypes() {
		p, err := NewPiece(pt)
		require.NoError(t, err)

		want := pieceColorTests[pt]
		assert.Equal(t, want.Color, p.Color, "%s color", pt)
		assert.Equal(t, want.Color, pt.Color())
		assert.Equal(t, want.Hex, p.Color.Hex(), "%s hex", pt)

		hexes[p.Color.Hex()] = pt
	}

	assert.Len(t, hexes, len(PieceTypes()), "piece colors are not distinct")
}

func TestPieceTypes(t *testing.T) {
	var names string
	for _, pt := range PieceTypes() {
		assert.True(t, pt.Valid())
		names += pt.String()
	}
	assert.Equal(t, "IJLOSTZ", names)

	assert.False(t, PieceType(-1).Valid())
	assert.False(t, PieceType(7).Valid())
	assert.Equal(t, "PieceType(7)", PieceType(7).String())
	assert.Equal(t, Color{}, PieceType(7).Color())
}

func TestParsePieceType(t *testing.T) {
	pt, err := ParsePieceType(" t ")
	require.NoError(t, err)
	assert.Equal(t, PieceT, pt)

	pt, err = ParsePieceType("Z")
	require.NoError(t, err)
	assert.Equal(t, PieceZ, pt)

	_, err = ParsePieceType("X")
	assert.True(t, errors.Is(err, ErrUnknownPiece))
}

func TestNewPieceUnknown(t *testing.T) {
	for _, pt := range []PieceType{-1, 7, 100} {
		p, err := NewPiece(pt)
		assert.Nil(t, p)
		assert.True(t, errors.Is(err, ErrUnknownPiece), "type %d", int(pt))

		_, ok := Canonical(pt)
		assert.False(t, ok)
	}
}

func TestPieceRotationLeavesSiblings(t *testing.T) {
	for _, pt := range PieceTypes() {
		template, ok := Canonical(pt)
		require.True(t, ok)

		a, err := NewPiece(pt)
		require.NoError(t, err)
		b, err := NewPiece(pt)
		require.NoError(t, err)

		a.RotateRight()
		a.RotateRight()
		a.RotateLeft()

		again, _ := Canonical(pt)
		assert.Equal(t, template, again, "%s template changed", pt)
		assert.Equal(t, template, *b, "%s sibling changed", pt)

		shape, _ := CanonicalShape(pt)
		assert.Equal(t, template.Shape, shape)

		if pt != PieceO {
			assert.False(t, a.Shape.Equal(template.Shape), "%s did not rotate", pt)
		}
		assert.Equal(t, template.Color, a.Color)
	}
}

func TestPieceReset(t *testing.T) {
	p, err := NewPiece(PieceL)
	require.NoError(t, err)

	p.RotateLeft()
	p.Reset()

	template, _ := Canonical(PieceL)
	assert.Equal(t, template, *p)
	assert.Equal(t, template.Shape.Points(), p.Points())
}

func TestPieceString(t *testing.T) {
	p, err := NewPiece(PieceO)
	require.NoError(t, err)

	assert.Equal(t, "O #ffff00 (1,1),(2,1),(1,2),(2,2)", p.String())
}
