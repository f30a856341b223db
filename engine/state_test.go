package engine

import (
	"testing"

	"github.com/signalnine/deckforge/gosim/genome"
)

// testState builds a bare state with n players holding empty hands.
func testState(n int) *GameState {
	players := make([]PlayerState, n)
	for i := range players {
		players[i].Bid = NoBid
	}
	return &GameState{Players: players, PlayDirection: 1}
}

func TestNewGameDeals(t *testing.T) {
	g := genome.CreateCrazyEightsGenome()
	s := NewGame(g, 7)

	if len(s.Players) != 2 {
		t.Fatalf("players = %d, want 2", len(s.Players))
	}
	for i := range s.Players {
		if len(s.Players[i].Hand) != 7 {
			t.Errorf("player %d hand = %d, want 7", i, len(s.Players[i].Hand))
		}
	}
	if len(s.Discard) != 1 {
		t.Errorf("discard = %d, want 1", len(s.Discard))
	}
	if len(s.Deck) != 52-14-1 {
		t.Errorf("deck = %d, want 37", len(s.Deck))
	}
	if s.TotalCards() != DeckSize {
		t.Errorf("total cards = %d, want %d", s.TotalCards(), DeckSize)
	}
	if s.PlayDirection != 1 {
		t.Errorf("play direction = %d, want 1", s.PlayDirection)
	}
}

func TestNewGameWarTableau(t *testing.T) {
	g := genome.CreateWarGenome()
	s := NewGame(g, 1)

	if len(s.Tableau) != 1 {
		t.Fatalf("tableau piles = %d, want 1", len(s.Tableau))
	}
	for i := range s.Players {
		if len(s.Players[i].Hand) != 26 {
			t.Errorf("player %d hand = %d, want 26", i, len(s.Players[i].Hand))
		}
	}
	if len(s.Deck) != 0 {
		t.Errorf("deck = %d, want 0", len(s.Deck))
	}
}

func TestNewGameSameSeedSameDeal(t *testing.T) {
	g := genome.CreateHeartsGenome()
	a := NewGame(g, 99)
	b := NewGame(g, 99)
	for p := range a.Players {
		for i := range a.Players[p].Hand {
			if a.Players[p].Hand[i] != b.Players[p].Hand[i] {
				t.Fatalf("player %d card %d differs", p, i)
			}
		}
	}
}

func TestNewGameStartingChips(t *testing.T) {
	g := genome.CreateDrawPokerGenome()
	s := NewGame(g, 3)
	for i := range s.Players {
		if s.Players[i].Chips != 100 {
			t.Errorf("player %d chips = %d, want 100", i, s.Players[i].Chips)
		}
		if s.Players[i].Bid != NoBid {
			t.Errorf("player %d bid = %d, want NoBid", i, s.Players[i].Bid)
		}
	}
}

func TestTopDiscardAndTableauTop(t *testing.T) {
	s := testState(2)
	if _, ok := s.TopDiscard(); ok {
		t.Error("empty discard reported a top card")
	}
	if _, ok := s.TableauTop(); ok {
		t.Error("empty tableau reported a top card")
	}

	s.Discard = []Card{{Rank: 2, Suit: 0}, {Rank: 5, Suit: 1}}
	top, ok := s.TopDiscard()
	if !ok || top != (Card{Rank: 5, Suit: 1}) {
		t.Errorf("top discard = %v, %v", top, ok)
	}

	s.Tableau = [][]Card{{{Rank: 8, Suit: 3}}}
	top, ok = s.TableauTop()
	if !ok || top != (Card{Rank: 8, Suit: 3}) {
		t.Errorf("tableau top = %v, %v", top, ok)
	}
}

func TestWithPlayerDoesNotMutate(t *testing.T) {
	s := testState(2)
	s.Players[0].Hand = []Card{{Rank: 3, Suit: 0}}

	changed := s.Players[0]
	changed.Score = 10
	s2 := s.withPlayer(0, changed)

	if s.Players[0].Score != 0 {
		t.Error("withPlayer mutated the original state")
	}
	if s2.Players[0].Score != 10 {
		t.Error("withPlayer lost the replacement")
	}
}

func TestRemoveCardAtPreservesInput(t *testing.T) {
	pile := []Card{{Rank: 0, Suit: 0}, {Rank: 1, Suit: 1}, {Rank: 2, Suit: 2}}
	out, card := removeCardAt(pile, 1)

	if card != (Card{Rank: 1, Suit: 1}) {
		t.Errorf("removed %v", card)
	}
	if len(out) != 2 || out[0] != pile[0] || out[1] != pile[2] {
		t.Errorf("out = %v", out)
	}
	if len(pile) != 3 || pile[1] != (Card{Rank: 1, Suit: 1}) {
		t.Error("removeCardAt mutated its input")
	}
}
