// Package game holds small hand-written implementations of classic card
// games. They exist to cross-check the generic interpreter: a genome that
// claims to be War must produce the same game, card for card, as the direct
// version here.
package game

import (
	"github.com/signalnine/deckforge/gosim/engine"
)

// War is a direct two-player War simulation. Each round both players flip
// their front card and the higher rank takes both, ties going to the second
// player to flip. Captured cards go to the back of the winner's hand in
// flip order.
type War struct {
	Hands [2][]engine.Card
}

// NewWar starts a game from pre-dealt hands. The hands are copied, so the
// caller's slices stay untouched.
func NewWar(hand0, hand1 []engine.Card) *War {
	w := &War{}
	w.Hands[0] = append([]engine.Card(nil), hand0...)
	w.Hands[1] = append([]engine.Card(nil), hand1...)
	return w
}

// PlayRound flips one card from each hand and awards both to the round
// winner. It returns false when either hand is empty and no round can be
// played.
func (w *War) PlayRound() bool {
	if len(w.Hands[0]) == 0 || len(w.Hands[1]) == 0 {
		return false
	}

	c0 := w.Hands[0][0]
	c1 := w.Hands[1][0]
	w.Hands[0] = w.Hands[0][1:]
	w.Hands[1] = w.Hands[1][1:]

	winner := 1
	if c0.Value() > c1.Value() {
		winner = 0
	}
	w.Hands[winner] = append(w.Hands[winner], c0, c1)
	return true
}

// Winner returns the player holding every card, or -1 while the game is
// still live.
func (w *War) Winner() int {
	for i, hand := range w.Hands {
		if len(hand) == engine.DeckSize {
			return i
		}
	}
	return -1
}
