package engine

import (
	"github.com/signalnine/deckforge/gosim/genome"
)

// CardAllowed checks whether a candidate card satisfies a play-validity
// condition. Genome wild ranks are always allowed. A nil condition allows
// every card, and relative conditions with no reference card available
// (empty discard, empty tableau) allow the play rather than deadlock it.
func CardAllowed(s *GameState, g *genome.GameGenome, cond *genome.Condition, card Card) bool {
	if g.IsWild(card.Rank) {
		return true
	}
	return evalCardCondition(s, cond, card)
}

func evalCardCondition(s *GameState, cond *genome.Condition, card Card) bool {
	if cond == nil {
		return true
	}
	if len(cond.Any) > 0 {
		for i := range cond.Any {
			if evalCardCondition(s, &cond.Any[i], card) {
				return true
			}
		}
		return false
	}
	if len(cond.All) > 0 {
		for i := range cond.All {
			if !evalCardCondition(s, &cond.All[i], card) {
				return false
			}
		}
		return true
	}

	switch cond.Type {
	case genome.CondMatchesSuit:
		ref, ok := referenceCard(s, cond.Reference)
		if !ok {
			return true // no reference card = any card valid
		}
		return card.Suit == ref.Suit
	case genome.CondMatchesRank:
		ref, ok := referenceCard(s, cond.Reference)
		if !ok {
			return true
		}
		return card.Rank == ref.Rank
	case genome.CondIsRank:
		return card.Rank == cond.Rank
	case genome.CondIsSuit:
		return card.Suit == cond.Suit
	case genome.CondBeatsTop:
		// Equal rank is allowed (President-style stacking).
		ref, ok := referenceCard(s, cond.Reference)
		if !ok {
			return true
		}
		return card.Value() >= ref.Value()
	default:
		return evalStateCondition(s, cond)
	}
}

// EvalStateCondition evaluates a condition against the game state rather
// than a candidate card. Unknown condition types pass, so mutated genomes
// with unrecognized conditions still simulate.
func EvalStateCondition(s *GameState, cond *genome.Condition) bool {
	if cond == nil {
		return true
	}
	if len(cond.Any) > 0 {
		for i := range cond.Any {
			if EvalStateCondition(s, &cond.Any[i]) {
				return true
			}
		}
		return false
	}
	if len(cond.All) > 0 {
		for i := range cond.All {
			if !EvalStateCondition(s, &cond.All[i]) {
				return false
			}
		}
		return true
	}
	return evalStateCondition(s, cond)
}

func evalStateCondition(s *GameState, cond *genome.Condition) bool {
	switch cond.Type {
	case genome.CondLocationSize:
		return compareInt(locationSize(s, cond.RefLoc), cond.Operator, cond.Value)
	case genome.CondHandSize:
		return compareInt(len(s.Players[s.ActivePlayer].Hand), cond.Operator, cond.Value)
	case genome.CondHasSetOfN:
		return HasSetOfN(s.Players[s.ActivePlayer].Hand, cond.Value)
	case genome.CondHasMatchingPair:
		return HasMatchingPair(s.Players[s.ActivePlayer].Hand)
	default:
		return true
	}
}

func referenceCard(s *GameState, ref genome.CardRef) (Card, bool) {
	switch ref {
	case genome.RefTableauTop:
		return s.TableauTop()
	default:
		return s.TopDiscard()
	}
}

func locationSize(s *GameState, loc genome.Location) int {
	switch loc {
	case genome.LocationDeck:
		return len(s.Deck)
	case genome.LocationDiscard:
		return len(s.Discard)
	case genome.LocationTableau:
		if len(s.Tableau) == 0 {
			return 0
		}
		return len(s.Tableau[0])
	case genome.LocationHand:
		return len(s.Players[s.ActivePlayer].Hand)
	case genome.LocationOpponentHand:
		opponent := (s.ActivePlayer + 1) % len(s.Players)
		return len(s.Players[opponent].Hand)
	}
	return 0
}

func compareInt(got int, op genome.Operator, want int) bool {
	switch op {
	case genome.OpEQ:
		return got == want
	case genome.OpNE:
		return got != want
	case genome.OpLT:
		return got < want
	case genome.OpGT:
		return got > want
	case genome.OpLE:
		return got <= want
	case genome.OpGE:
		return got >= want
	}
	return false
}
