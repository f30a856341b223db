package mcts

import (
	"math/rand"

	"github.com/signalnine/deckforge/gosim/engine"
	"github.com/signalnine/deckforge/gosim/genome"
)

// DefaultExploration is the standard UCT exploration constant, sqrt(2).
const DefaultExploration = 1.414

// Search runs UCT from the given state and returns the most promising move.
// Betting rounds are resolved with random actions rather than searched, so
// the tree branches only over deliberate card decisions. Returns false when
// the position has no legal moves.
func Search(s *engine.GameState, g *genome.GameGenome, iterations int, exploration float64, rng *rand.Rand) (engine.Move, bool) {
	if exploration == 0 {
		exploration = DefaultExploration
	}

	rootState := resolveBetting(s, g, rng)
	rootMoves := engine.GenerateLegalMoves(rootState, g)
	if len(rootMoves) == 0 {
		return engine.Move{}, false
	}

	root := &Node{
		State:    rootState,
		Untried:  rootMoves,
		PlayerID: rootState.ActivePlayer,
	}

	for i := 0; i < iterations; i++ {
		node := root

		// Selection.
		for !isTerminal(node, g) && node.IsFullyExpanded() {
			next := node.BestChild(exploration)
			if next == nil {
				break
			}
			node = next
		}

		// Expansion.
		if !isTerminal(node, g) && len(node.Untried) > 0 {
			node = expand(node, g, rng)
		}

		// Playout and backpropagation.
		winner := playout(node.State, g, rng)
		backpropagate(node, winner)
	}

	best := root.MostVisitedChild()
	if best == nil || !best.HasMove {
		return rootMoves[rng.Intn(len(rootMoves))], true
	}
	return best.Move, true
}

func isTerminal(n *Node, g *genome.GameGenome) bool {
	if n.State == nil {
		return true
	}
	_, over := engine.CheckWinConditions(n.State, g)
	return over
}

func expand(node *Node, g *genome.GameGenome, rng *rand.Rand) *Node {
	idx := rng.Intn(len(node.Untried))
	move := node.Untried[idx]
	node.Untried[idx] = node.Untried[len(node.Untried)-1]
	node.Untried = node.Untried[:len(node.Untried)-1]

	childState := engine.ApplyMove(node.State, move, g)
	childState = resolveBetting(childState, g, rng)

	child := &Node{
		State:    childState,
		Move:     move,
		HasMove:  true,
		Parent:   node,
		Untried:  engine.GenerateLegalMoves(childState, g),
		PlayerID: node.State.ActivePlayer,
	}
	node.Children = append(node.Children, child)
	return child
}

// playout plays random moves until the game ends, someone gets stuck, or
// twice the genome's turn limit passes. Returns the winner or -1.
func playout(s *engine.GameState, g *genome.GameGenome, rng *rand.Rand) int {
	maxTurns := g.TurnStructure.MaxTurns
	if maxTurns <= 0 {
		maxTurns = 500
	}

	for s.Turn < maxTurns*2 {
		if winner, over := engine.CheckWinConditions(s, g); over {
			return winner
		}

		s = resolveBetting(s, g, rng)
		moves := engine.GenerateLegalMoves(s, g)
		if len(moves) == 0 {
			return -1
		}
		s = engine.ApplyMove(s, moves[rng.Intn(len(moves))], g)
	}
	return -1
}

func backpropagate(node *Node, winner int) {
	for node != nil {
		node.Visits++
		if winner >= 0 && winner == node.PlayerID {
			node.Wins++
		}
		node = node.Parent
	}
}

// resolveBetting plays out any betting phases with random legal actions,
// awarding the pot when everyone else folds. The phase-count guard keeps a
// degenerate all-betting genome from looping.
func resolveBetting(s *engine.GameState, g *genome.GameGenome, rng *rand.Rand) *engine.GameState {
	for guard := 0; guard <= len(g.TurnStructure.Phases); guard++ {
		if s.CurrentPhase < 0 || s.CurrentPhase >= len(g.TurnStructure.Phases) {
			return s
		}
		phase, ok := g.TurnStructure.Phases[s.CurrentPhase].(*genome.BettingPhase)
		if !ok {
			return s
		}
		s = engine.RunBettingRound(s, phase, s.CurrentPhase, g, func(_ *engine.GameState, moves []engine.Move) engine.Move {
			return moves[rng.Intn(len(moves))]
		})
		if engine.CountActivePlayers(s) == 1 {
			s = engine.ResolveShowdown(s)
		}
	}
	return s
}
