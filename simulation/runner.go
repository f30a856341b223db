// Package simulation plays genomes to completion in batches, producing the
// aggregate statistics a fitness function consumes. Games are independent
// and states immutable, so batches parallelize without coordination.
package simulation

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/signalnine/deckforge/gosim/engine"
	"github.com/signalnine/deckforge/gosim/genome"
)

// DefaultMaxTurns caps games whose genome declares no turn limit.
const DefaultMaxTurns = 1000

// GameMetrics counts decision-quality signals over one game. The evolution
// driver feeds these into fitness: a game with no real decisions, or one
// where players never touch each other, is a boring genome.
type GameMetrics struct {
	TotalDecisions    uint64 `json:"total_decisions"`    // decision points with 2+ legal moves
	ForcedDecisions   uint64 `json:"forced_decisions"`   // decision points with exactly 1
	TotalValidMoves   uint64 `json:"total_valid_moves"`  // sum of branching factors
	TotalActions      uint64 `json:"total_actions"`      // non-pass moves taken
	TotalInteractions uint64 `json:"total_interactions"` // moves that touch an opponent
}

func (m *GameMetrics) add(o GameMetrics) {
	m.TotalDecisions += o.TotalDecisions
	m.ForcedDecisions += o.ForcedDecisions
	m.TotalValidMoves += o.TotalValidMoves
	m.TotalActions += o.TotalActions
	m.TotalInteractions += o.TotalInteractions
}

// GameResult is the outcome of one simulated game.
type GameResult struct {
	Winner     int         `json:"winner"` // player index, -1 for a draw
	Turns      int         `json:"turns"`
	DurationNs uint64      `json:"duration_ns"`
	Err        string      `json:"error,omitempty"` // non-empty when the interpreter faulted
	Metrics    GameMetrics `json:"metrics"`
}

// AggregatedStats summarizes a batch for the wire format.
type AggregatedStats struct {
	TotalGames    uint32      `json:"total_games"`
	WinsPerPlayer []uint32    `json:"wins_per_player"`
	Draws         uint32      `json:"draws"`
	Errors        uint32      `json:"errors"`
	AvgTurns      float32     `json:"avg_turns"`
	MedianTurns   uint32      `json:"median_turns"`
	AvgDurationNs uint64      `json:"avg_duration_ns"`
	Metrics       GameMetrics `json:"metrics"`
}

// RunSingleGame plays one game with every seat driven by the same policy.
// Interpreter panics on malformed genomes are converted to an error result
// so one bad genome cannot take down a batch.
func RunSingleGame(g *genome.GameGenome, policy Policy, seed uint64) (result GameResult) {
	start := time.Now()
	result.Winner = -1
	defer func() {
		result.DurationNs = uint64(time.Since(start).Nanoseconds())
		if r := recover(); r != nil {
			result.Err = fmt.Sprintf("panic: %v", r)
		}
	}()

	s := engine.NewGame(g, seed)
	detector := NewStuckDetector(g.TurnStructure.MaxTurns, len(s.Players))

	for {
		if winner, over := engine.CheckWinConditions(s, g); over {
			result.Winner = winner
			result.Turns = s.Turn
			return result
		}
		if _, stuck := detector.Check(s); stuck {
			result.Turns = s.Turn
			return result // draw, not an error
		}

		if phase, ok := currentBettingPhase(s, g); ok {
			s = engine.RunBettingRound(s, phase, s.CurrentPhase, g, func(bs *engine.GameState, moves []engine.Move) engine.Move {
				m := policy.Choose(bs, g, moves)
				recordDecision(&result.Metrics, bs, m, moves)
				detector.RecordMove(m)
				return m
			})
			if engine.CountActivePlayers(s) == 1 {
				s = engine.ResolveShowdown(s)
			}
			continue
		}

		moves := engine.GenerateLegalMoves(s, g)
		if len(moves) == 0 {
			result.Err = "no legal moves"
			result.Turns = s.Turn
			return result
		}

		m := policy.Choose(s, g, moves)
		recordDecision(&result.Metrics, s, m, moves)
		detector.RecordMove(m)
		s = engine.ApplyMove(s, m, g)
	}
}

func currentBettingPhase(s *engine.GameState, g *genome.GameGenome) (*genome.BettingPhase, bool) {
	if s.CurrentPhase < 0 || s.CurrentPhase >= len(g.TurnStructure.Phases) {
		return nil, false
	}
	phase, ok := g.TurnStructure.Phases[s.CurrentPhase].(*genome.BettingPhase)
	return phase, ok
}

func recordDecision(m *GameMetrics, s *engine.GameState, chosen engine.Move, moves []engine.Move) {
	m.TotalValidMoves += uint64(len(moves))
	if len(moves) > 1 {
		m.TotalDecisions++
	} else {
		m.ForcedDecisions++
	}
	if !chosen.IsPass() {
		m.TotalActions++
	}
	if isInteraction(s, chosen) {
		m.TotalInteractions++
	}
}

// isInteraction reports whether a move affects an opponent directly:
// challenges and claims, chips into a contested pot, or cards taken from
// another hand.
func isInteraction(s *engine.GameState, m engine.Move) bool {
	switch m.Kind {
	case engine.MoveChallenge, engine.MoveMakeClaim:
		return true
	case engine.MoveTrickPlay:
		return len(s.CurrentTrick) > 0
	case engine.MoveBetting:
		return m.Action != engine.ActionCheck && m.Action != engine.ActionFold
	case engine.MoveDraw:
		return m.Target == genome.LocationOpponentHand
	}
	return false
}

// Simulate is the top-level batch entry point: play numGames with the given
// policy, using every CPU.
func Simulate(g *genome.GameGenome, numGames int, ptype PolicyType, seed uint64) AggregatedStats {
	return RunBatchParallel(g, numGames, ptype, 0, seed, 0)
}

// RunBatch plays numGames serially. Per-game seeds derive from the batch
// seed, and each game's policy gets its own generator seeded from the game
// seed, so serial and parallel batches of the same seed agree exactly.
func RunBatch(g *genome.GameGenome, numGames int, ptype PolicyType, mctsIterations int, seed uint64) AggregatedStats {
	rng := rand.New(rand.NewSource(int64(seed)))
	results := make([]GameResult, numGames)
	for i := range results {
		gameSeed := rng.Uint64()
		policy := NewPolicy(ptype, mctsIterations, rand.New(rand.NewSource(int64(gameSeed))))
		results[i] = RunSingleGame(g, policy, gameSeed)
	}
	return Aggregate(results, g.Players())
}

// Aggregate folds per-game results into batch statistics.
func Aggregate(results []GameResult, players int) AggregatedStats {
	stats := AggregatedStats{
		TotalGames:    uint32(len(results)),
		WinsPerPlayer: make([]uint32, players),
	}
	if len(results) == 0 {
		return stats
	}

	turns := make([]int, 0, len(results))
	var turnSum, durSum uint64
	for _, r := range results {
		if r.Err != "" {
			stats.Errors++
			continue
		}
		if r.Winner >= 0 && r.Winner < players {
			stats.WinsPerPlayer[r.Winner]++
		} else {
			stats.Draws++
		}
		turns = append(turns, r.Turns)
		turnSum += uint64(r.Turns)
		durSum += r.DurationNs
		stats.Metrics.add(r.Metrics)
	}

	if len(turns) > 0 {
		stats.AvgTurns = float32(turnSum) / float32(len(turns))
		stats.AvgDurationNs = durSum / uint64(len(turns))
		sort.Ints(turns)
		stats.MedianTurns = uint32(turns[len(turns)/2])
	}
	return stats
}
