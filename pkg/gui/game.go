package gui

import (
	"log"

	"github.com/qnkhuat/tetroterm/pkg/tetromino"
)

// State encapsulates everything the viewer shows
type State struct {
	Active    *tetromino.Piece  // Piece being rotated
	Bag       *tetromino.Bag    // Supply of upcoming pieces
	Templates []tetromino.Piece // Spawn orientation of every piece
	Turns     int               // Net quarter turns applied to Active, right positive
	Msg       string            // Last message shown under the pieces
}

func NewState(seed int64) *State {
	st := &State{Bag: tetromino.NewBag(seed)}

	for _, t := range tetromino.PieceTypes() {
		p, _ := tetromino.Canonical(t)
		st.Templates = append(st.Templates, p)
	}

	st.TakeNext()

	return st
}

func (st *State) RotateRight() {
	st.Active.RotateRight()
	st.Turns = (st.Turns + 1) % 4
	st.Msg = "rotated right"
	log.Printf("Rotate right: %s", st.Active)
}

func (st *State) RotateLeft() {
	st.Active.RotateLeft()
	st.Turns = (st.Turns + 3) % 4
	st.Msg = "rotated left"
	log.Printf("Rotate left: %s", st.Active)
}

func (st *State) Reset() {
	st.Active.Reset()
	st.Turns = 0
	st.Msg = "reset"
}

// TakeNext replaces the active piece with the next one from the bag
func (st *State) TakeNext() {
	st.Active = st.Bag.Take()
	st.Turns = 0
	st.Msg = "took " + st.Active.Type.String()
	log.Printf("Take: %s", st.Active.Type)
}
