// Package engine is the generic rule interpreter: it enumerates legal moves,
// applies them, and evaluates win conditions for any game described by a
// genome.GameGenome. All state transitions are functional; callers never see
// in-place mutation across move boundaries.
package engine

import "fmt"

// Card is an immutable (rank, suit) pair.
// Rank 0-12 maps to A,2-10,J,Q,K. Suit 0-3 maps to H,D,C,S.
type Card struct {
	Rank uint8
	Suit uint8
}

// Suit constants.
const (
	SuitHearts   uint8 = 0
	SuitDiamonds uint8 = 1
	SuitClubs    uint8 = 2
	SuitSpades   uint8 = 3
)

// Rank constants for the indexes that get referenced by name.
const (
	RankAce   uint8 = 0
	RankJack  uint8 = 10
	RankQueen uint8 = 11
	RankKing  uint8 = 12
)

// DeckSize is the standard deck size; genomes never add or remove cards.
const DeckSize = 52

var rankNames = [13]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
var suitNames = [4]string{"H", "D", "C", "S"}

// Value returns the comparison value of the card's rank, ace high:
// 2=2 ... 10=10, J=11, Q=12, K=13, A=14. This is the single rank ordering
// used by tableau battles, trick resolution, and poker evaluation (poker
// additionally treats the ace as 1 for the wheel straight).
func (c Card) Value() int {
	if c.Rank == RankAce {
		return 14
	}
	return int(c.Rank) + 1
}

// IsRed reports whether the card is a red suit (hearts or diamonds).
func (c Card) IsRed() bool {
	return c.Suit == SuitHearts || c.Suit == SuitDiamonds
}

// String formats the card as e.g. "AS" or "10H".
func (c Card) String() string {
	if c.Rank > 12 || c.Suit > 3 {
		return fmt.Sprintf("?%d/%d", c.Rank, c.Suit)
	}
	return rankNames[c.Rank] + suitNames[c.Suit]
}

// NewDeck returns a standard 52-card deck in canonical suit-major order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for suit := uint8(0); suit < 4; suit++ {
		for rank := uint8(0); rank < 13; rank++ {
			deck = append(deck, Card{Rank: rank, Suit: suit})
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the deck using a deterministic LCG.
// Identical seeds always produce identical orderings.
func ShuffleDeck(deck []Card, seed uint64) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)

	rng := seed
	for i := len(out) - 1; i > 0; i-- {
		rng = rng*6364136223846793005 + 1442695040888963407
		j := int(rng % uint64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}
