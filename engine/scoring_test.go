package engine

import (
	"testing"

	"github.com/signalnine/deckforge/gosim/genome"
)

func TestScoreCardEventOnPlay(t *testing.T) {
	g := &genome.GameGenome{
		PlayerCount: 2,
		CardScoring: []genome.CardScoringRule{
			{Suit: SuitHearts, Rank: genome.RankNone, Points: 2, Trigger: genome.TriggerPlay},
		},
		TurnStructure: genome.TurnStructure{
			Phases: []genome.Phase{&genome.PlayPhase{
				Target: genome.LocationDiscard, MinCards: 1, MaxCards: 1, Mandatory: true,
			}},
		},
	}
	s := testState(2)
	s.Players[0].Hand = []Card{{Rank: 4, Suit: SuitHearts}}

	s = ApplyMove(s, Move{Kind: MovePlayCard, PhaseIndex: 0, CardIndex: 0, Target: genome.LocationDiscard}, g)
	if s.Players[0].Score != 2 {
		t.Errorf("score = %d, want 2 for playing a heart", s.Players[0].Score)
	}
}

func TestScoreContractsMade(t *testing.T) {
	g := genome.CreateSpadesGenome()
	s := testState(4)
	s.Players[0].Bid = 3
	s.Players[0].TricksWon = 4

	s = ScoreContracts(s, g)
	// 3 tricks at 10 each plus 1 overtrick point.
	if s.Players[0].Score != 31 {
		t.Errorf("score = %d, want 31", s.Players[0].Score)
	}
	if s.Players[0].Bags != 1 {
		t.Errorf("bags = %d, want 1", s.Players[0].Bags)
	}
	if s.Players[0].Bid != NoBid || s.Players[0].TricksWon != 0 {
		t.Error("bid state not reset for the next hand")
	}
}

func TestScoreContractsFailed(t *testing.T) {
	g := genome.CreateSpadesGenome()
	s := testState(4)
	s.Players[1].Bid = 5
	s.Players[1].TricksWon = 2

	s = ScoreContracts(s, g)
	if s.Players[1].Score != -50 {
		t.Errorf("score = %d, want -50", s.Players[1].Score)
	}
}

func TestScoreContractsNil(t *testing.T) {
	g := genome.CreateSpadesGenome()
	s := testState(4)
	s.Players[0].Bid = 0
	s.Players[0].BidNil = true
	s.Players[1].Bid = 0
	s.Players[1].BidNil = true
	s.Players[1].TricksWon = 1

	s = ScoreContracts(s, g)
	if s.Players[0].Score != 100 {
		t.Errorf("made nil score = %d, want 100", s.Players[0].Score)
	}
	if s.Players[1].Score != -100 {
		t.Errorf("broken nil score = %d, want -100", s.Players[1].Score)
	}
	if s.Players[0].BidNil || s.Players[1].BidNil {
		t.Error("nil flags not reset")
	}
}

func TestScoreContractsBagPenalty(t *testing.T) {
	g := genome.CreateSpadesGenome()
	s := testState(4)
	s.Players[0].Bags = 9
	s.Players[0].Bid = 2
	s.Players[0].TricksWon = 3

	s = ScoreContracts(s, g)
	// 20 for the contract, 1 overtrick, then the 10-bag penalty of 100.
	if s.Players[0].Score != -79 {
		t.Errorf("score = %d, want -79", s.Players[0].Score)
	}
	if s.Players[0].Bags != 0 {
		t.Errorf("bags = %d, want 0 after the penalty", s.Players[0].Bags)
	}
}

func TestScoreContractsSkipsNonBidders(t *testing.T) {
	g := genome.CreateSpadesGenome()
	s := testState(4)
	s.Players[2].TricksWon = 5 // never bid

	s = ScoreContracts(s, g)
	if s.Players[2].Score != 0 {
		t.Errorf("score = %d, non-bidders should not be settled", s.Players[2].Score)
	}
}

func TestScoreContractsNoBiddingPhase(t *testing.T) {
	g := genome.CreateHeartsGenome()
	s := testState(4)
	s.Players[0].Bid = 3
	s.Players[0].TricksWon = 3

	s2 := ScoreContracts(s, g)
	if s2 != s {
		t.Error("genomes without bidding should pass through untouched")
	}
}

func TestContractSettlesWhenHandsRunOut(t *testing.T) {
	g := genome.CreateSpadesGenome()
	s := testState(4)
	for i := range s.Players {
		s.Players[i].Bid = 0
		s.Players[i].Hand = nil
	}
	s.Players[3].Bid = 1
	s.Players[3].Hand = []Card{{Rank: RankAce, Suit: SuitSpades}}
	s.Players[3].TricksWon = 0
	s.ActivePlayer = 3
	s.CurrentPhase = 1
	s.CurrentTrick = []TrickCard{
		{PlayerID: 0, Card: Card{Rank: 2, Suit: SuitClubs}},
		{PlayerID: 1, Card: Card{Rank: 3, Suit: SuitClubs}},
		{PlayerID: 2, Card: Card{Rank: 4, Suit: SuitClubs}},
	}

	s = ApplyMove(s, Move{Kind: MoveTrickPlay, PhaseIndex: 1, CardIndex: 0}, g)

	// The ace of spades trumps, the last trick empties every hand, and the
	// one-trick contract settles immediately: 4 trick points plus 10 for
	// the made contract.
	if s.Players[3].Score != 14 {
		t.Errorf("score = %d, want 14", s.Players[3].Score)
	}
	if s.Players[3].Bid != NoBid {
		t.Error("bids should reset after settlement")
	}
}

func TestWarCaptureScoring(t *testing.T) {
	g := genome.CreateWarGenome()
	g.CardScoring = []genome.CardScoringRule{
		{Suit: genome.SuitNone, Rank: genome.RankNone, Points: 1, Trigger: genome.TriggerCapture},
	}
	s := testState(2)
	s.Players[1].Hand = []Card{{Rank: 2, Suit: SuitClubs}, {Rank: 4, Suit: SuitDiamonds}}
	s.Tableau = [][]Card{{{Rank: RankKing, Suit: SuitHearts}}}
	s.ActivePlayer = 1

	s = ApplyMove(s, Move{Kind: MovePlayCard, PhaseIndex: 0, CardIndex: 0, Target: genome.LocationTableau}, g)

	// The king takes the battle, so both pile cards score for player 0.
	if s.Players[0].Score != 2 {
		t.Errorf("capture score = %d, want 2", s.Players[0].Score)
	}
	if s.Players[1].Score != 0 {
		t.Errorf("loser score = %d, want 0", s.Players[1].Score)
	}
}

func TestScoreHandEnd(t *testing.T) {
	g := &genome.GameGenome{
		PlayerCount: 2,
		CardScoring: []genome.CardScoringRule{
			{Suit: genome.SuitNone, Rank: genome.RankNone, Points: -1, Trigger: genome.TriggerHandEnd},
		},
	}
	s := testState(2)
	s.Players[0].Hand = []Card{{Rank: 0, Suit: 0}, {Rank: 1, Suit: 0}}
	s.Players[1].Hand = nil

	s = ScoreHandEnd(s, g)
	if s.Players[0].Score != -2 {
		t.Errorf("deadwood score = %d, want -2", s.Players[0].Score)
	}
	if s.Players[1].Score != 0 {
		t.Errorf("empty hand score = %d, want 0", s.Players[1].Score)
	}
}

func TestGoingOutScoresDeadwood(t *testing.T) {
	g := &genome.GameGenome{
		PlayerCount: 2,
		CardScoring: []genome.CardScoringRule{
			{Suit: genome.SuitNone, Rank: genome.RankNone, Points: -1, Trigger: genome.TriggerHandEnd},
		},
		TurnStructure: genome.TurnStructure{
			Phases: []genome.Phase{&genome.PlayPhase{
				Target: genome.LocationDiscard, MinCards: 1, MaxCards: 1, Mandatory: true,
			}},
		},
	}
	s := testState(2)
	s.Players[0].Hand = []Card{{Rank: 4, Suit: SuitHearts}}
	s.Players[1].Hand = []Card{
		{Rank: 2, Suit: SuitClubs}, {Rank: 9, Suit: SuitClubs}, {Rank: 12, Suit: SuitSpades},
	}

	s = ApplyMove(s, Move{Kind: MovePlayCard, PhaseIndex: 0, CardIndex: 0, Target: genome.LocationDiscard}, g)

	if s.Players[1].Score != -3 {
		t.Errorf("deadwood = %d, want -3 when the opponent goes out", s.Players[1].Score)
	}
	if s.Players[0].Score != 0 {
		t.Errorf("score = %d, going out leaves no deadwood", s.Players[0].Score)
	}
}

func TestDeadwoodWaitsForLastCard(t *testing.T) {
	g := &genome.GameGenome{
		PlayerCount: 2,
		CardScoring: []genome.CardScoringRule{
			{Suit: genome.SuitNone, Rank: genome.RankNone, Points: -1, Trigger: genome.TriggerHandEnd},
		},
		TurnStructure: genome.TurnStructure{
			Phases: []genome.Phase{&genome.PlayPhase{
				Target: genome.LocationDiscard, MinCards: 1, MaxCards: 1, Mandatory: true,
			}},
		},
	}
	s := testState(2)
	s.Players[0].Hand = []Card{{Rank: 4, Suit: SuitHearts}, {Rank: 6, Suit: SuitHearts}}
	s.Players[1].Hand = []Card{{Rank: 2, Suit: SuitClubs}}

	s = ApplyMove(s, Move{Kind: MovePlayCard, PhaseIndex: 0, CardIndex: 0, Target: genome.LocationDiscard}, g)

	if s.Players[0].Score != 0 || s.Players[1].Score != 0 {
		t.Errorf("scores = %d/%d, hand-end rules must wait for a hand to empty",
			s.Players[0].Score, s.Players[1].Score)
	}
}
