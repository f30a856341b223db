package engine

import (
	"github.com/signalnine/deckforge/gosim/genome"
)

// allOpponents is the resolveTarget sentinel for effects that hit every
// other player.
const allOpponents = -1

// resolveTarget maps a target selector to a concrete player index relative
// to the active player and play direction. LEFT/RIGHT use fixed seat offsets
// and ignore direction. ALL_OPPONENTS returns the allOpponents sentinel.
func resolveTarget(s *GameState, target genome.TargetSelector) int {
	current := s.ActivePlayer
	n := len(s.Players)
	dir := s.PlayDirection

	switch target {
	case genome.TargetSelf:
		return current
	case genome.TargetNextPlayer:
		return (current + dir + n) % n
	case genome.TargetPrevPlayer:
		return (current - dir + n) % n
	case genome.TargetAllOpponents:
		return allOpponents
	case genome.TargetLeftOpponent:
		return (current + 1) % n
	case genome.TargetRightOpponent:
		return (current - 1 + n) % n
	}
	return (current + 1) % n
}

// ApplyEffect applies a rank-triggered special effect. Unknown effect types
// are ignored so mutated genomes keep simulating.
func ApplyEffect(s *GameState, effect genome.SpecialEffect) *GameState {
	value := int(effect.Value)

	switch effect.Effect {
	case genome.EffectSkipNext, genome.EffectBlockNext:
		return addSkips(s, value)

	case genome.EffectReverse:
		cp := s.clone()
		cp.PlayDirection = -s.PlayDirection
		return cp

	case genome.EffectDrawCards:
		return forEachTarget(s, effect.Target, func(s *GameState, id int) *GameState {
			return drawFromDeck(s, id, value)
		})

	case genome.EffectExtraTurn:
		// Skipping everyone else lands the turn back on the current player.
		cp := s.clone()
		cp.SkipCount = len(s.Players) - 1
		return cp

	case genome.EffectForceDiscard:
		return forEachTarget(s, effect.Target, func(s *GameState, id int) *GameState {
			return forceDiscard(s, id, value)
		})

	case genome.EffectSwapHands:
		return swapHands(s, effect.Target)

	case genome.EffectStealCard:
		return stealCards(s, effect.Target, value)

	case genome.EffectWildCard, genome.EffectPeekHand:
		// Wild ranks act during move generation; peeking is display-only.
		return s
	}
	return s
}

// addSkips accumulates pending skips, capped at player_count-1 so a skip
// can never orbit past the table.
func addSkips(s *GameState, value int) *GameState {
	cp := s.clone()
	cp.SkipCount = s.SkipCount + value
	if max := len(s.Players) - 1; cp.SkipCount > max {
		cp.SkipCount = max
	}
	return cp
}

// forEachTarget applies fn to the resolved target, or to every opponent
// when the selector is ALL_OPPONENTS.
func forEachTarget(s *GameState, target genome.TargetSelector, fn func(*GameState, int) *GameState) *GameState {
	targetID := resolveTarget(s, target)
	if targetID == allOpponents {
		for i := range s.Players {
			if i != s.ActivePlayer {
				s = fn(s, i)
			}
		}
		return s
	}
	return fn(s, targetID)
}

func drawFromDeck(s *GameState, playerID, count int) *GameState {
	if count > len(s.Deck) {
		count = len(s.Deck)
	}
	if count <= 0 {
		return s
	}
	player := s.Players[playerID]
	player.Hand = appendCards(player.Hand, s.Deck[:count]...)
	cp := s.withPlayer(playerID, player)
	cp.Deck = s.Deck[count:]
	return cp
}

// forceDiscard discards from the end of the hand: deterministic, so replays
// stay identical.
func forceDiscard(s *GameState, playerID, count int) *GameState {
	player := s.Players[playerID]
	if count > len(player.Hand) {
		count = len(player.Hand)
	}
	if count <= 0 {
		return s
	}
	cut := len(player.Hand) - count
	discarded := player.Hand[cut:]
	player.Hand = player.Hand[:cut]
	cp := s.withPlayer(playerID, player)
	cp.Discard = appendCards(s.Discard, discarded...)
	return cp
}

// swapHands exchanges hands with the single resolved target. No-op for
// ALL_OPPONENTS and self.
func swapHands(s *GameState, target genome.TargetSelector) *GameState {
	targetID := resolveTarget(s, target)
	if targetID == allOpponents || targetID == s.ActivePlayer {
		return s
	}
	active := s.Players[s.ActivePlayer]
	other := s.Players[targetID]
	active.Hand, other.Hand = other.Hand, active.Hand
	return s.withPlayers(s.ActivePlayer, active, targetID, other)
}

// stealCards takes cards from the end of the target's hand. No-op for
// ALL_OPPONENTS and self.
func stealCards(s *GameState, target genome.TargetSelector, count int) *GameState {
	targetID := resolveTarget(s, target)
	if targetID == allOpponents || targetID == s.ActivePlayer {
		return s
	}
	victim := s.Players[targetID]
	if count > len(victim.Hand) {
		count = len(victim.Hand)
	}
	if count <= 0 {
		return s
	}
	cut := len(victim.Hand) - count
	taken := victim.Hand[cut:]
	active := s.Players[s.ActivePlayer]
	active.Hand = appendCards(active.Hand, taken...)
	victim.Hand = victim.Hand[:cut]
	return s.withPlayers(s.ActivePlayer, active, targetID, victim)
}
