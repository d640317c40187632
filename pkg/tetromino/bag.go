package tetromino

import (
	"math/rand"
	"sync"
)

// Bag deals piece types in shuffled runs of all seven, so every identity
// appears once before any repeats.
type Bag struct {
	Types    []PieceType
	Original []PieceType

	randomizer *rand.Rand

	i int
	*sync.Mutex
}

func NewBag(seed int64) *Bag {
	b := &Bag{Original: PieceTypes(), randomizer: rand.New(rand.NewSource(seed)), Mutex: new(sync.Mutex)}

	b.shuffle()

	return b
}

// Take returns a new piece of the next type and advances the bag.
func (b *Bag) Take() *Piece {
	b.Lock()
	defer b.Unlock()

	t := b.Types[b.i]
	if b.i == len(b.Types)-1 {
		b.shuffle()

		b.i = 0
	} else {
		b.i++
	}

	p, _ := NewPiece(t)
	return p
}

// Next returns the type Take will deal without advancing.
func (b *Bag) Next() PieceType {
	b.Lock()
	defer b.Unlock()

	return b.Types[b.i]
}

func (b *Bag) shuffle() {
	if b.Types == nil {
		b.Types = make([]PieceType, len(b.Original))
	}
	copy(b.Types, b.Original)

	b.randomizer.Shuffle(len(b.Types), func(i, j int) { b.Types[i], b.Types[j] = b.Types[j], b.Types[i] })
}
