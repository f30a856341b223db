package simulation

import (
	"math/rand"
	"testing"

	"github.com/signalnine/deckforge/gosim/engine"
	"github.com/signalnine/deckforge/gosim/genome"
)

func TestParsePolicy(t *testing.T) {
	cases := []struct {
		name string
		want PolicyType
	}{
		{"random", PolicyRandom},
		{"", PolicyRandom},
		{"greedy", PolicyGreedy},
		{"mcts", PolicyMCTS},
	}
	for _, c := range cases {
		got, err := ParsePolicy(c.name)
		if err != nil || got != c.want {
			t.Errorf("ParsePolicy(%q) = %v, %v", c.name, got, err)
		}
	}
	if _, err := ParsePolicy("minimax"); err == nil {
		t.Error("unknown policy names should error")
	}
}

func TestGreedyPrefersHighCard(t *testing.T) {
	g := genome.CreateCrazyEightsGenome()
	s := engine.NewGame(g, 1)
	s.Players[0].Hand = []engine.Card{
		{Rank: 1, Suit: engine.SuitHearts},        // 2H
		{Rank: engine.RankKing, Suit: engine.SuitHearts}, // KH
		{Rank: 5, Suit: engine.SuitHearts},        // 6H
	}
	moves := []engine.Move{
		{Kind: engine.MovePlayCard, CardIndex: 0},
		{Kind: engine.MovePlayCard, CardIndex: 1},
		{Kind: engine.MovePlayCard, CardIndex: 2},
	}

	p := NewPolicy(PolicyGreedy, 0, rand.New(rand.NewSource(1)))
	if m := p.Choose(s, g, moves); m.CardIndex != 1 {
		t.Errorf("greedy chose card %d, want the king at 1", m.CardIndex)
	}
}

func TestGreedyCallsOverFolding(t *testing.T) {
	g := genome.CreateDrawPokerGenome()
	s := engine.NewGame(g, 1)
	moves := []engine.Move{
		{Kind: engine.MoveBetting, Action: engine.ActionFold},
		{Kind: engine.MoveBetting, Action: engine.ActionCall},
		{Kind: engine.MoveBetting, Action: engine.ActionRaise},
	}

	p := NewPolicy(PolicyGreedy, 0, rand.New(rand.NewSource(1)))
	if m := p.Choose(s, g, moves); m.Action != engine.ActionCall {
		t.Errorf("greedy chose %v, want call", m.Action)
	}
}

func TestGreedyPrefersCardPlayOverPass(t *testing.T) {
	g := genome.CreateCrazyEightsGenome()
	s := engine.NewGame(g, 1)
	s.Players[0].Hand = []engine.Card{{Rank: 3, Suit: engine.SuitClubs}}
	moves := []engine.Move{
		{Kind: engine.MovePass},
		{Kind: engine.MovePlayCard, CardIndex: 0},
	}

	p := NewPolicy(PolicyGreedy, 0, rand.New(rand.NewSource(1)))
	if m := p.Choose(s, g, moves); m.Kind != engine.MovePlayCard {
		t.Error("greedy should play a card rather than pass")
	}
}

func TestMCTSPolicyAnswersBettingFromOfferedMoves(t *testing.T) {
	g := genome.CreateDrawPokerGenome()
	s := engine.NewGame(g, 3)
	s.CurrentBet = 10
	s.Pot = 10
	moves := []engine.Move{
		{Kind: engine.MoveBetting, Action: engine.ActionFold},
		{Kind: engine.MoveBetting, Action: engine.ActionCall},
		{Kind: engine.MoveBetting, Action: engine.ActionRaise},
		{Kind: engine.MoveBetting, Action: engine.ActionAllIn},
	}

	p := NewPolicy(PolicyMCTS, 40, rand.New(rand.NewSource(7)))
	for i := 0; i < 20; i++ {
		chosen := p.Choose(s, g, moves)
		found := false
		for _, m := range moves {
			if m == chosen {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("mcts policy returned %+v, not among the offered betting moves", chosen)
		}
	}
}

func TestMCTSPolicyReturnsLegalMove(t *testing.T) {
	g := genome.CreateCrazyEightsGenome()
	s := engine.NewGame(g, 5)
	moves := engine.GenerateLegalMoves(s, g)

	p := NewPolicy(PolicyMCTS, 40, rand.New(rand.NewSource(2)))
	chosen := p.Choose(s, g, moves)
	found := false
	for _, m := range moves {
		if m == chosen {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("mcts policy returned %+v, not a legal move", chosen)
	}
}
