package pkg

import (
	"encoding/json"
	"io"
	"log"

	"github.com/qnkhuat/tetroterm/pkg/tetromino"
)

type MessageType int

const (
	TypeMessagePiece MessageType = iota
	TypeMessageTransport
)

func (m MessageType) String() string {
	switch m {
	case TypeMessagePiece:
		return "TypeMessagePiece"
	case TypeMessageTransport:
		return "TypeMessageTransport"
	default:
		return "Unknown MessageType"
	}
}

type MessageInterface interface {
	Type() MessageType
	Encode() json.RawMessage
}

// MessageTransport wraps any message with its type so readers can pick the
// matching struct before decoding Data
type MessageTransport struct {
	MsgType MessageType
	Data    json.RawMessage
}

func (m MessageTransport) Type() MessageType {
	return TypeMessageTransport
}

func (m MessageTransport) Encode() json.RawMessage {
	return Encode(m)
}

// MessagePiece is a snapshot of one piece in one orientation
type MessagePiece struct {
	Piece string
	Color string
	Turns int
	WideX bool
	TallY bool
	Cells []tetromino.Point
}

func NewMessagePiece(p *tetromino.Piece, turns int) MessagePiece {
	points := p.Points()
	return MessagePiece{
		Piece: p.Type.String(),
		Color: p.Color.Hex(),
		Turns: turns,
		WideX: p.Shape.WideX,
		TallY: p.Shape.TallY,
		Cells: points[:],
	}
}

func (m MessagePiece) Type() MessageType {
	return TypeMessagePiece
}

func (m MessagePiece) Encode() json.RawMessage {
	return Encode(m)
}

func Encode(v interface{}) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		log.Panic(err)
	}
	return data
}

func Decode(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// WriteMessage writes m inside a transport as one line of JSON
func WriteMessage(w io.Writer, m MessageInterface) error {
	b := Encode(MessageTransport{MsgType: m.Type(), Data: m.Encode()})
	b = append(b, '\n')

	_, err := w.Write(b)
	return err
}

// WriteSnapshots writes every piece in each of its four orientations
func WriteSnapshots(w io.Writer, types []tetromino.PieceType) error {
	for _, t := range types {
		p, err := tetromino.NewPiece(t)
		if err != nil {
			return err
		}

		for turns := 0; turns < 4; turns++ {
			if err := WriteMessage(w, NewMessagePiece(p, turns)); err != nil {
				return err
			}
			p.RotateRight()
		}
	}

	return nil
}
