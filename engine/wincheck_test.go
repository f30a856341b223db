package engine

import (
	"testing"

	"github.com/signalnine/deckforge/gosim/genome"
)

func TestEmptyHandWin(t *testing.T) {
	g := genome.CreateCrazyEightsGenome()
	s := testState(2)
	s.Players[0].Hand = []Card{{Rank: 0, Suit: 0}}
	s.Players[1].Hand = nil

	winner, over := CheckWinConditions(s, g)
	if !over || winner != 1 {
		t.Errorf("winner = %d over=%v, want 1 true", winner, over)
	}
}

func TestCaptureAllWin(t *testing.T) {
	g := genome.CreateWarGenome()
	s := testState(2)
	s.Players[0].Hand = NewDeck()

	winner, over := CheckWinConditions(s, g)
	if !over || winner != 0 {
		t.Errorf("winner = %d over=%v, want 0 true", winner, over)
	}

	s.Players[0].Hand = s.Players[0].Hand[:51]
	if _, over := CheckWinConditions(s, g); over {
		t.Error("51 cards should not win capture_all")
	}
}

func TestFirstToScoreWin(t *testing.T) {
	g := &genome.GameGenome{
		PlayerCount:   2,
		WinConditions: []genome.WinCondition{{Type: genome.WinTypeFirstToScore, Threshold: 50}},
	}
	s := testState(2)
	s.Players[0].Hand = []Card{{Rank: 0, Suit: 0}}
	s.Players[1].Hand = []Card{{Rank: 1, Suit: 0}}
	s.Players[1].Score = 55

	winner, over := CheckWinConditions(s, g)
	if !over || winner != 1 {
		t.Errorf("winner = %d over=%v, want 1 true", winner, over)
	}
}

func TestLowScoreThresholdWin(t *testing.T) {
	g := genome.CreateHeartsGenome()
	s := testState(4)
	for i := range s.Players {
		s.Players[i].Hand = []Card{{Rank: uint8(i), Suit: 0}}
	}
	s.Players[0].Score = 30 // crossed the threshold
	s.Players[2].Score = 3

	winner, over := CheckWinConditions(s, g)
	if !over || winner != 2 {
		t.Errorf("winner = %d over=%v, want the lowest score", winner, over)
	}
}

func TestAllHandsEmptyWin(t *testing.T) {
	g := genome.CreateHeartsGenome()
	s := testState(4)
	s.Players[1].Score = -5

	winner, over := CheckWinConditions(s, g)
	if !over || winner != 1 {
		t.Errorf("winner = %d over=%v, want 1 true", winner, over)
	}
}

func TestBestHandWinGated(t *testing.T) {
	g := genome.CreateDrawPokerGenome()
	s := testState(2)
	s.Players[0].Hand = hand(
		Card{Rank: 4, Suit: 0}, Card{Rank: 4, Suit: 1}, Card{Rank: 6, Suit: 2},
		Card{Rank: 8, Suit: 3}, Card{Rank: RankKing, Suit: 0})
	s.Players[1].Hand = hand(
		Card{Rank: 9, Suit: 0}, Card{Rank: 9, Suit: 1}, Card{Rank: 9, Suit: 2},
		Card{Rank: 2, Suit: 3}, Card{Rank: 5, Suit: 0})

	// Too early: the opening plies have not passed.
	s.Turn = 1
	if _, over := CheckWinConditions(s, g); over {
		t.Error("best_hand should not trigger before the opening plies")
	}

	s.Turn = 4
	winner, over := CheckWinConditions(s, g)
	if !over || winner != 1 {
		t.Errorf("winner = %d over=%v, want 1 true", winner, over)
	}

	// Incomplete hands hold the showdown off.
	s.Players[0].Hand = s.Players[0].Hand[:4]
	if _, over := CheckWinConditions(s, g); over {
		t.Error("best_hand should wait for full hands")
	}
}

func TestBestHandUsesDeclaredPatterns(t *testing.T) {
	// Patterns rank a pair above a flush, the opposite of poker order.
	g := &genome.GameGenome{
		PlayerCount:   2,
		WinConditions: []genome.WinCondition{{Type: genome.WinTypeBestHand}},
		HandEval: &genome.HandEvaluation{
			Method: genome.EvalMethodPatternMatch,
			Patterns: []genome.HandPattern{
				{Name: "pair", Priority: 5, RequiredCount: 5, SameRankGroups: []uint8{2}},
				{Name: "flush", Priority: 1, RequiredCount: 5, SameSuitCount: 5},
			},
		},
	}
	s := testState(2)
	s.Turn = 10
	s.Players[0].Hand = hand(
		Card{Rank: 1, Suit: SuitHearts}, Card{Rank: 3, Suit: SuitHearts}, Card{Rank: 5, Suit: SuitHearts},
		Card{Rank: 7, Suit: SuitHearts}, Card{Rank: 9, Suit: SuitHearts})
	s.Players[1].Hand = hand(
		Card{Rank: 3, Suit: SuitClubs}, Card{Rank: 3, Suit: SuitSpades}, Card{Rank: 6, Suit: SuitHearts},
		Card{Rank: 8, Suit: SuitDiamonds}, Card{Rank: 11, Suit: SuitClubs})

	winner, over := CheckWinConditions(s, g)
	if !over || winner != 1 {
		t.Errorf("winner = %d over=%v, the pair outranks the flush under these patterns", winner, over)
	}
}

func TestBestHandPatternsFallBackToPoker(t *testing.T) {
	g := &genome.GameGenome{
		PlayerCount:   2,
		WinConditions: []genome.WinCondition{{Type: genome.WinTypeBestHand}},
		HandEval: &genome.HandEvaluation{
			Method: genome.EvalMethodPatternMatch,
			Patterns: []genome.HandPattern{
				{Name: "quads", Priority: 1, RequiredCount: 5, SameRankGroups: []uint8{4}},
			},
		},
	}
	s := testState(2)
	s.Turn = 10
	s.Players[0].Hand = hand(
		Card{Rank: 1, Suit: SuitHearts}, Card{Rank: 4, Suit: SuitClubs}, Card{Rank: 6, Suit: SuitSpades},
		Card{Rank: 8, Suit: SuitDiamonds}, Card{Rank: 11, Suit: SuitHearts})
	s.Players[1].Hand = hand(
		Card{Rank: 9, Suit: SuitClubs}, Card{Rank: 9, Suit: SuitSpades}, Card{Rank: 2, Suit: SuitHearts},
		Card{Rank: 5, Suit: SuitDiamonds}, Card{Rank: 12, Suit: SuitClubs})

	// Neither hand holds four of a kind, so poker ranking decides.
	winner, over := CheckWinConditions(s, g)
	if !over || winner != 1 {
		t.Errorf("winner = %d over=%v, want the pair to win on poker ranking", winner, over)
	}
}

func TestMostCapturedWin(t *testing.T) {
	g := &genome.GameGenome{
		PlayerCount:   2,
		WinConditions: []genome.WinCondition{{Type: genome.WinTypeMostCaptured}},
	}
	s := testState(2)
	s.Players[0].Score = 8
	s.Players[1].Score = 3

	winner, over := CheckWinConditions(s, g)
	if !over || winner != 0 {
		t.Errorf("winner = %d over=%v, want 0 true", winner, over)
	}

	s.Deck = []Card{{Rank: 0, Suit: 0}}
	if _, over := CheckWinConditions(s, g); over {
		t.Error("most_captured should wait for the deck to empty")
	}
}

func TestWinConditionOrder(t *testing.T) {
	// Both conditions hold; the first declared one decides the winner.
	g := &genome.GameGenome{
		PlayerCount: 2,
		WinConditions: []genome.WinCondition{
			{Type: genome.WinTypeFirstToScore, Threshold: 10},
			{Type: genome.WinTypeEmptyHand},
		},
	}
	s := testState(2)
	s.Players[0].Hand = nil // empty hand for player 0
	s.Players[1].Hand = []Card{{Rank: 0, Suit: 0}}
	s.Players[1].Score = 20 // threshold for player 1

	winner, over := CheckWinConditions(s, g)
	if !over || winner != 1 {
		t.Errorf("winner = %d over=%v, want the first condition to decide", winner, over)
	}
}

func TestUnknownWinConditionSkipped(t *testing.T) {
	g := &genome.GameGenome{
		PlayerCount: 2,
		WinConditions: []genome.WinCondition{
			{Type: genome.WinConditionType(200)},
			{Type: genome.WinTypeEmptyHand},
		},
	}
	s := testState(2)
	s.Players[0].Hand = nil
	s.Players[1].Hand = []Card{{Rank: 0, Suit: 0}}

	winner, over := CheckWinConditions(s, g)
	if !over || winner != 0 {
		t.Errorf("winner = %d over=%v, unknown conditions should be skipped", winner, over)
	}
}
