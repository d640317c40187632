package pkg

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/qnkhuat/tetroterm/pkg/tetromino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSnapshots(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSnapshots(&buf, []tetromino.PieceType{tetromino.PieceI, tetromino.PieceT}))

	var snapshots []MessagePiece
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var transport MessageTransport
		require.NoError(t, Decode(scanner.Bytes(), &transport))
		assert.Equal(t, TypeMessagePiece, transport.MsgType)

		var m MessagePiece
		require.NoError(t, Decode(transport.Data, &m))
		snapshots = append(snapshots, m)
	}
	require.Len(t, snapshots, 8)

	first := snapshots[0]
	assert.Equal(t, "I", first.Piece)
	assert.Equal(t, "#00ffff", first.Color)
	assert.Equal(t, 0, first.Turns)
	assert.True(t, first.WideX)
	assert.True(t, first.TallY)
	assert.Equal(t, []tetromino.Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}}, first.Cells)

	// A quarter turn stands the bar up in column 1.
	for _, p := range snapshots[1].Cells {
		assert.Equal(t, 1, p.X)
	}

	for i, m := range snapshots[4:] {
		assert.Equal(t, "T", m.Piece)
		assert.Equal(t, i, m.Turns)
		assert.False(t, m.WideX)
	}
}

func TestMessageType(t *testing.T) {
	assert.Equal(t, "TypeMessagePiece", MessagePiece{}.Type().String())
	assert.Equal(t, "TypeMessageTransport", MessageTransport{}.Type().String())
	assert.Equal(t, "Unknown MessageType", MessageType(9).String())
}
