package simulation

import (
	"fmt"
	"math/rand"

	"github.com/signalnine/deckforge/gosim/engine"
	"github.com/signalnine/deckforge/gosim/genome"
	"github.com/signalnine/deckforge/gosim/mcts"
)

// PolicyType selects a move-choosing strategy for simulated players.
type PolicyType uint8

const (
	PolicyRandom PolicyType = iota
	PolicyGreedy
	PolicyMCTS
)

func (p PolicyType) String() string {
	switch p {
	case PolicyRandom:
		return "random"
	case PolicyGreedy:
		return "greedy"
	case PolicyMCTS:
		return "mcts"
	}
	return "unknown"
}

// ParsePolicy maps a policy name from the command line or worker protocol
// to its type.
func ParsePolicy(name string) (PolicyType, error) {
	switch name {
	case "random", "":
		return PolicyRandom, nil
	case "greedy":
		return PolicyGreedy, nil
	case "mcts":
		return PolicyMCTS, nil
	}
	return PolicyRandom, fmt.Errorf("unknown policy %q", name)
}

// Policy picks one move from a non-empty legal move list.
type Policy interface {
	Choose(s *engine.GameState, g *genome.GameGenome, moves []engine.Move) engine.Move
}

// NewPolicy builds a policy of the given type. mctsIterations is ignored for
// non-MCTS policies; zero selects a default budget.
func NewPolicy(t PolicyType, mctsIterations int, rng *rand.Rand) Policy {
	switch t {
	case PolicyGreedy:
		return &greedyPolicy{}
	case PolicyMCTS:
		if mctsIterations <= 0 {
			mctsIterations = 200
		}
		return &mctsPolicy{iterations: mctsIterations, rng: rng}
	}
	return &randomPolicy{rng: rng}
}

type randomPolicy struct {
	rng *rand.Rand
}

func (p *randomPolicy) Choose(_ *engine.GameState, _ *genome.GameGenome, moves []engine.Move) engine.Move {
	return moves[p.rng.Intn(len(moves))]
}

// greedyPolicy sheds the highest cards it can and avoids folding. It knows
// nothing about the genome's win conditions, which keeps it cheap enough
// for large fitness batches. Ties break toward the earliest move, so greedy
// play is fully deterministic.
type greedyPolicy struct{}

func (p *greedyPolicy) Choose(s *engine.GameState, g *genome.GameGenome, moves []engine.Move) engine.Move {
	best := moves[0]
	bestScore := p.score(s, best)
	for _, m := range moves[1:] {
		if score := p.score(s, m); score > bestScore {
			bestScore = score
			best = m
		}
	}
	return best
}

func (p *greedyPolicy) score(s *engine.GameState, m engine.Move) int {
	switch m.Kind {
	case engine.MovePlayCard, engine.MoveDiscardCard, engine.MoveTrickPlay, engine.MoveMakeClaim:
		hand := s.Players[s.ActivePlayer].Hand
		if m.CardIndex < len(hand) {
			return 10 + hand[m.CardIndex].Value()
		}
		return 10
	case engine.MoveDraw:
		return 5
	case engine.MoveBetting:
		switch m.Action {
		case engine.ActionCheck, engine.ActionCall:
			return 8
		case engine.ActionBet, engine.ActionRaise:
			return 4
		case engine.ActionAllIn:
			return 1
		default: // fold
			return 0
		}
	case engine.MoveChallenge:
		return 3
	case engine.MoveBid:
		// Bid roughly a third of the hand.
		want := len(s.Players[s.ActivePlayer].Hand) / 3
		if m.BidNil {
			return 0
		}
		if m.BidAmount == want {
			return 6
		}
		return 2
	}
	return 1
}

type mctsPolicy struct {
	iterations int
	rng        *rand.Rand
}

func (p *mctsPolicy) Choose(s *engine.GameState, g *genome.GameGenome, moves []engine.Move) engine.Move {
	// The search macro-steps betting rounds internally, so a search started
	// mid-round would answer for the phase after the round. Betting actions
	// are picked from the offered list directly.
	if moves[0].Kind == engine.MoveBetting {
		return moves[p.rng.Intn(len(moves))]
	}
	move, ok := mcts.Search(s, g, p.iterations, mcts.DefaultExploration, p.rng)
	if !ok {
		return moves[p.rng.Intn(len(moves))]
	}
	return move
}
