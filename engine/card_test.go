package engine

import (
	"testing"
)

func TestCardValue(t *testing.T) {
	cases := []struct {
		card Card
		want int
	}{
		{Card{Rank: RankAce, Suit: SuitSpades}, 14},
		{Card{Rank: 1, Suit: SuitHearts}, 2},
		{Card{Rank: 9, Suit: SuitClubs}, 10},
		{Card{Rank: RankJack, Suit: SuitDiamonds}, 11},
		{Card{Rank: RankQueen, Suit: SuitHearts}, 12},
		{Card{Rank: RankKing, Suit: SuitSpades}, 13},
	}
	for _, tc := range cases {
		if got := tc.card.Value(); got != tc.want {
			t.Errorf("%v.Value() = %d, want %d", tc.card, got, tc.want)
		}
	}
}

func TestCardString(t *testing.T) {
	if got := (Card{Rank: RankAce, Suit: SuitSpades}).String(); got != "AS" {
		t.Errorf("ace of spades = %q, want AS", got)
	}
	if got := (Card{Rank: 9, Suit: SuitHearts}).String(); got != "10H" {
		t.Errorf("ten of hearts = %q, want 10H", got)
	}
}

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	if len(deck) != DeckSize {
		t.Fatalf("deck size = %d, want %d", len(deck), DeckSize)
	}
	seen := map[Card]bool{}
	for _, card := range deck {
		if seen[card] {
			t.Errorf("duplicate card %v", card)
		}
		seen[card] = true
	}
}

func TestShuffleDeterministic(t *testing.T) {
	deck := NewDeck()

	a := ShuffleDeck(deck, 42)
	b := ShuffleDeck(deck, 42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d: %v vs %v", i, a[i], b[i])
		}
	}

	c := ShuffleDeck(deck, 43)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical orderings")
	}

	// Shuffle is a permutation and does not touch the input.
	seen := map[Card]bool{}
	for _, card := range a {
		seen[card] = true
	}
	if len(seen) != DeckSize {
		t.Errorf("shuffle lost cards: %d unique", len(seen))
	}
	if deck[0] != (Card{Rank: 0, Suit: 0}) {
		t.Error("shuffle mutated its input")
	}
}
