// Package mcts implements UCT search over interpreter states. States are
// immutable snapshots, so tree nodes hold them directly without cloning.
package mcts

import (
	"math"

	"github.com/signalnine/deckforge/gosim/engine"
)

// Node is one node in the search tree. PlayerID is the player who moved
// into this state, which is the perspective its win statistics use.
type Node struct {
	State    *engine.GameState
	Move     engine.Move
	HasMove  bool
	Parent   *Node
	Children []*Node
	Untried  []engine.Move
	Visits   int
	Wins     float64
	PlayerID int
}

// UCB1 scores a node for tree selection. Unvisited nodes score infinite so
// every child is tried once before any is revisited.
func (n *Node) UCB1(exploration float64) float64 {
	if n.Visits == 0 {
		return math.Inf(1)
	}
	exploit := n.Wins / float64(n.Visits)
	explore := exploration * math.Sqrt(math.Log(float64(n.Parent.Visits))/float64(n.Visits))
	return exploit + explore
}

// BestChild returns the child with the highest UCB1 value.
func (n *Node) BestChild(exploration float64) *Node {
	if len(n.Children) == 0 {
		return nil
	}
	best := n.Children[0]
	bestValue := best.UCB1(exploration)
	for _, child := range n.Children[1:] {
		if value := child.UCB1(exploration); value > bestValue {
			bestValue = value
			best = child
		}
	}
	return best
}

// MostVisitedChild returns the child explored most often, the move the
// search ultimately recommends.
func (n *Node) MostVisitedChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	best := n.Children[0]
	for _, child := range n.Children[1:] {
		if child.Visits > best.Visits {
			best = child
		}
	}
	return best
}

// IsFullyExpanded reports whether every legal move has a child node.
func (n *Node) IsFullyExpanded() bool {
	return len(n.Untried) == 0
}
