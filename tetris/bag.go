package tetris

import "math/rand/v2"

// bag supplies upcoming pieces using the 7-bag system: pieces are drawn
// from shuffled sets containing one of each kind, so no kind repeats
// within any seven draws measured from a bag boundary.
type bag struct {
	queue          []*Piece
	rng            *rand.Rand
	spawnX, spawnY int
}

// newBag creates a bag pre-filled with two shuffled sets, so the queue
// starts with a full bag of lookahead beyond the first draw.
func newBag(rng *rand.Rand, spawnX, spawnY int) *bag {
	b := &bag{rng: rng, spawnX: spawnX, spawnY: spawnY}
	b.refill()
	b.refill()
	return b
}

// refill appends one uniformly shuffled set of all seven kinds to the
// queue tail.
func (b *bag) refill() {
	kinds := [NumKinds]ShapeKind{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}
	b.rng.Shuffle(len(kinds), func(i, j int) {
		kinds[i], kinds[j] = kinds[j], kinds[i]
	})
	for _, kind := range kinds {
		b.queue = append(b.queue, &Piece{Kind: kind, X: b.spawnX, Y: b.spawnY})
	}
}

// draw pops the next piece. The queue is topped up first whenever it
// holds less than a full set, so it never starves.
func (b *bag) draw() *Piece {
	if len(b.queue) < NumKinds {
		b.refill()
	}
	p := b.queue[0]
	b.queue = b.queue[1:]
	return p
}

// upcoming returns the kinds of the next n queued pieces.
func (b *bag) upcoming(n int) []ShapeKind {
	if n > len(b.queue) {
		n = len(b.queue)
	}
	kinds := make([]ShapeKind, n)
	for i := range kinds {
		kinds[i] = b.queue[i].Kind
	}
	return kinds
}
