package engine

import (
	"fmt"

	"github.com/signalnine/deckforge/gosim/genome"
)

// MoveKind tags the variant of a Move. Non-card actions (challenge, pass,
// draw) are explicit kinds rather than sentinel card indexes.
type MoveKind uint8

const (
	MovePlayCard MoveKind = iota
	MoveDiscardCard
	MovePass
	MoveTrickPlay
	MoveMakeClaim
	MoveChallenge
	MoveAcceptClaim
	MoveDraw
	MoveDrawPass
	MoveBetting
	MoveBid
)

// BettingAction enumerates poker betting actions.
type BettingAction uint8

const (
	ActionCheck BettingAction = iota
	ActionBet
	ActionCall
	ActionRaise
	ActionAllIn
	ActionFold
)

func (a BettingAction) String() string {
	switch a {
	case ActionCheck:
		return "check"
	case ActionBet:
		return "bet"
	case ActionCall:
		return "call"
	case ActionRaise:
		return "raise"
	case ActionAllIn:
		return "all_in"
	case ActionFold:
		return "fold"
	}
	return "unknown"
}

// Move is one legal action for the active player.
// CardIndex is meaningful only for card-play kinds; Action only for
// MoveBetting; BidAmount/BidNil only for MoveBid.
type Move struct {
	Kind       MoveKind
	PhaseIndex int
	CardIndex  int
	Target     genome.Location
	Action     BettingAction
	BidAmount  int
	BidNil     bool
}

// IsPass reports whether the move changes no cards or chips.
func (m Move) IsPass() bool {
	switch m.Kind {
	case MovePass, MoveDrawPass, MoveAcceptClaim:
		return true
	case MoveBetting:
		return m.Action == ActionCheck
	}
	return false
}

func (m Move) String() string {
	switch m.Kind {
	case MovePlayCard:
		return fmt.Sprintf("play card %d", m.CardIndex)
	case MoveDiscardCard:
		return fmt.Sprintf("discard card %d", m.CardIndex)
	case MovePass:
		return "pass"
	case MoveTrickPlay:
		return fmt.Sprintf("play card %d to trick", m.CardIndex)
	case MoveMakeClaim:
		return fmt.Sprintf("claim with card %d", m.CardIndex)
	case MoveChallenge:
		return "challenge claim"
	case MoveAcceptClaim:
		return "accept claim"
	case MoveDraw:
		return "draw"
	case MoveDrawPass:
		return "stand"
	case MoveBetting:
		return m.Action.String()
	case MoveBid:
		if m.BidNil {
			return "bid nil"
		}
		return fmt.Sprintf("bid %d", m.BidAmount)
	}
	return "unknown"
}
