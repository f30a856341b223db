package engine

import (
	"testing"

	"github.com/signalnine/deckforge/gosim/genome"
)

func kindCount(moves []Move, kind MoveKind) int {
	n := 0
	for _, m := range moves {
		if m.Kind == kind {
			n++
		}
	}
	return n
}

func hasAction(moves []Move, action BettingAction) bool {
	for _, m := range moves {
		if m.Kind == MoveBetting && m.Action == action {
			return true
		}
	}
	return false
}

func TestPlayMovesFilteredByCondition(t *testing.T) {
	g := genome.CreateCrazyEightsGenome()
	s := testState(2)
	s.CurrentPhase = 1
	s.Discard = []Card{{Rank: 4, Suit: SuitHearts}} // 5H on top
	s.Players[0].Hand = []Card{
		{Rank: 9, Suit: SuitHearts}, // suit match
		{Rank: 4, Suit: SuitClubs},  // rank match
		{Rank: 1, Suit: SuitSpades}, // neither
		{Rank: 7, Suit: SuitSpades}, // wild eight
	}

	moves := GenerateLegalMoves(s, g)
	if len(moves) != 3 {
		t.Fatalf("legal moves = %d, want 3: %v", len(moves), moves)
	}
	wantIdx := map[int]bool{0: true, 1: true, 3: true}
	for _, m := range moves {
		if m.Kind != MovePlayCard {
			t.Errorf("unexpected kind %v", m.Kind)
		}
		if !wantIdx[m.CardIndex] {
			t.Errorf("unexpected card index %d", m.CardIndex)
		}
	}
}

func TestPlayMovesPassIfUnable(t *testing.T) {
	g := genome.CreateCrazyEightsGenome()
	s := testState(2)
	s.CurrentPhase = 1
	s.Discard = []Card{{Rank: 4, Suit: SuitHearts}}
	s.Players[0].Hand = []Card{{Rank: 1, Suit: SuitSpades}}

	moves := GenerateLegalMoves(s, g)
	if len(moves) != 1 || moves[0].Kind != MovePass {
		t.Fatalf("moves = %v, want a single pass", moves)
	}
}

func TestPlayMovesMandatoryWithoutEscape(t *testing.T) {
	g := genome.CreateCrazyEightsGenome()
	phase := g.TurnStructure.Phases[1].(*genome.PlayPhase)
	phase.PassIfUnable = false

	s := testState(2)
	s.CurrentPhase = 1
	s.Discard = []Card{{Rank: 4, Suit: SuitHearts}}
	s.Players[0].Hand = []Card{{Rank: 1, Suit: SuitSpades}}

	if moves := GenerateLegalMoves(s, g); len(moves) != 0 {
		t.Errorf("mandatory phase without escape yielded %v", moves)
	}
}

func TestDiscardMovesOptionalPass(t *testing.T) {
	g := genome.CreateGoFishGenome()
	s := testState(2)
	s.CurrentPhase = 1
	s.Players[0].Hand = []Card{{Rank: 0, Suit: 0}, {Rank: 1, Suit: 1}}

	moves := GenerateLegalMoves(s, g)
	if kindCount(moves, MoveDiscardCard) != 2 {
		t.Errorf("discard moves = %d, want 2", kindCount(moves, MoveDiscardCard))
	}
	if kindCount(moves, MovePass) != 1 {
		t.Errorf("expected an optional pass: %v", moves)
	}
}

func TestTrickMovesMustFollowSuit(t *testing.T) {
	g := genome.CreateHeartsGenome()
	s := testState(4)
	s.CurrentTrick = []TrickCard{{PlayerID: 3, Card: Card{Rank: 4, Suit: SuitClubs}}}
	s.Players[0].Hand = []Card{
		{Rank: 9, Suit: SuitClubs},
		{Rank: 2, Suit: SuitHearts},
		{Rank: RankKing, Suit: SuitClubs},
	}

	moves := GenerateLegalMoves(s, g)
	if len(moves) != 2 {
		t.Fatalf("moves = %v, want the two clubs", moves)
	}
	for _, m := range moves {
		if s.Players[0].Hand[m.CardIndex].Suit != SuitClubs {
			t.Errorf("move %v does not follow suit", m)
		}
	}
}

func TestTrickMovesVoidInLeadSuit(t *testing.T) {
	g := genome.CreateHeartsGenome()
	s := testState(4)
	s.CurrentTrick = []TrickCard{{PlayerID: 3, Card: Card{Rank: 4, Suit: SuitClubs}}}
	s.Players[0].Hand = []Card{
		{Rank: 2, Suit: SuitHearts},
		{Rank: 5, Suit: SuitSpades},
	}

	moves := GenerateLegalMoves(s, g)
	if len(moves) != 2 {
		t.Errorf("void player should play anything, got %v", moves)
	}
}

func TestTrickMovesBreakingSuitNotLeadable(t *testing.T) {
	g := genome.CreateHeartsGenome()
	s := testState(4)
	s.Players[0].Hand = []Card{
		{Rank: 2, Suit: SuitHearts},
		{Rank: 5, Suit: SuitSpades},
	}

	moves := GenerateLegalMoves(s, g)
	if len(moves) != 1 || s.Players[0].Hand[moves[0].CardIndex].Suit != SuitSpades {
		t.Fatalf("unbroken hearts should not be leadable: %v", moves)
	}

	s.HeartsBroken = true
	if moves := GenerateLegalMoves(s, g); len(moves) != 2 {
		t.Errorf("broken hearts should be leadable, got %v", moves)
	}
}

func TestTrickMovesAllHeartsForcedLead(t *testing.T) {
	g := genome.CreateHeartsGenome()
	s := testState(4)
	s.Players[0].Hand = []Card{
		{Rank: 2, Suit: SuitHearts},
		{Rank: 9, Suit: SuitHearts},
	}

	if moves := GenerateLegalMoves(s, g); len(moves) != 2 {
		t.Errorf("a hand of only hearts must still lead, got %v", moves)
	}
}

func TestClaimMoves(t *testing.T) {
	g := genome.CreateCheatGenome()
	s := testState(3)
	s.Players[0].Hand = []Card{{Rank: 0, Suit: 0}, {Rank: 1, Suit: 1}}

	moves := GenerateLegalMoves(s, g)
	if len(moves) != 2 || kindCount(moves, MoveMakeClaim) != 2 {
		t.Fatalf("expected one claim per card, got %v", moves)
	}

	// With a pending claim, only non-claimers may respond.
	s.CurrentClaim = &Claim{ClaimerID: 0, ClaimedRank: 3, ClaimedCount: 1}
	if moves := GenerateLegalMoves(s, g); len(moves) != 0 {
		t.Errorf("claimer should have no response moves, got %v", moves)
	}

	s.ActivePlayer = 1
	moves = GenerateLegalMoves(s, g)
	if kindCount(moves, MoveChallenge) != 1 || kindCount(moves, MoveAcceptClaim) != 1 {
		t.Errorf("responder moves = %v, want challenge and accept", moves)
	}
}

func TestDrawMoves(t *testing.T) {
	g := genome.CreateCrazyEightsGenome()
	s := testState(2)
	s.Deck = []Card{{Rank: 0, Suit: 0}}

	moves := GenerateLegalMoves(s, g)
	if kindCount(moves, MoveDraw) != 1 || kindCount(moves, MoveDrawPass) != 1 {
		t.Errorf("optional draw with stock = %v", moves)
	}

	s.Deck = nil
	moves = GenerateLegalMoves(s, g)
	if kindCount(moves, MoveDraw) != 0 {
		t.Errorf("empty deck still offered a draw: %v", moves)
	}
	if kindCount(moves, MoveDrawPass) != 1 {
		t.Errorf("optional draw should still offer a pass: %v", moves)
	}
}

func TestDrawMovesMandatoryOpponentHand(t *testing.T) {
	g := genome.CreateGoFishGenome()
	s := testState(2)
	s.Players[1].Hand = []Card{{Rank: 3, Suit: 2}}

	moves := GenerateLegalMoves(s, g)
	if len(moves) != 1 || moves[0].Kind != MoveDraw {
		t.Fatalf("moves = %v, want a single mandatory draw", moves)
	}

	s.Players[1].Hand = nil
	if moves := GenerateLegalMoves(s, g); len(moves) != 0 {
		t.Errorf("empty opponent hand yielded %v", moves)
	}
}

func TestBiddingMoves(t *testing.T) {
	g := genome.CreateSpadesGenome()
	s := testState(4)
	s.Players[0].Hand = make([]Card, 3)

	moves := GenerateLegalMoves(s, g)
	// Bids 0..3 plus nil.
	if kindCount(moves, MoveBid) != 5 {
		t.Fatalf("bid moves = %v, want 0..3 and nil", moves)
	}
	nilBids := 0
	for _, m := range moves {
		if m.BidNil {
			nilBids++
		}
	}
	if nilBids != 1 {
		t.Errorf("nil bids = %d, want 1", nilBids)
	}

	s.Players[0].Bid = 2
	moves = GenerateLegalMoves(s, g)
	if len(moves) != 1 || moves[0].Kind != MovePass {
		t.Errorf("a player who already bid should only pass, got %v", moves)
	}
}

func TestGenerateLegalMovesPhaseOutOfRange(t *testing.T) {
	g := genome.CreateWarGenome()
	s := testState(2)
	s.CurrentPhase = 5
	if moves := GenerateLegalMoves(s, g); moves != nil {
		t.Errorf("out-of-range phase yielded %v", moves)
	}
}
