package engine

import (
	"github.com/signalnine/deckforge/gosim/genome"
)

// ApplyMove applies a move and returns the resulting state. Moves referencing
// a phase index beyond the genome's phase list return the state unchanged.
// Betting moves only move chips; the caller owns betting-round completion
// and advances the phase when the round ends (see RunBettingRound).
func ApplyMove(s *GameState, m Move, g *genome.GameGenome) *GameState {
	if m.PhaseIndex < 0 || m.PhaseIndex >= len(g.TurnStructure.Phases) {
		return s
	}
	current := s.ActivePlayer
	handBefore := len(s.Players[current].Hand)

	switch phase := g.TurnStructure.Phases[m.PhaseIndex].(type) {
	case *genome.PlayPhase:
		if m.Kind == MovePlayCard && m.CardIndex >= 0 && m.CardIndex < len(s.Players[current].Hand) {
			card := s.Players[current].Hand[m.CardIndex]
			s = playCard(s, current, m.CardIndex, m.Target)

			// Two-player tableau play is a War battle.
			if m.Target == genome.LocationTableau && len(s.Players) == 2 {
				s = resolveWarBattle(s, g)
			}

			if effect := g.EffectForRank(card.Rank); effect != nil {
				s = ApplyEffect(s, *effect)
			}
			s = scoreCardEvent(s, g, current, card, genome.TriggerPlay)
		}

	case *genome.DiscardPhase:
		if m.Kind == MoveDiscardCard && m.CardIndex >= 0 {
			s = playCard(s, current, m.CardIndex, m.Target)
		}

	case *genome.TrickPhase:
		return applyTrickMove(s, m, phase, g)

	case *genome.ClaimPhase:
		switch m.Kind {
		case MoveMakeClaim:
			s = makeClaim(s, current, m.CardIndex)
		case MoveChallenge:
			if s.CurrentClaim != nil {
				s = resolveChallenge(s, current)
				// The challenger stays active and makes the next claim.
				cp := s.clone()
				cp.Turn = s.Turn + 1
				return cp
			}
		case MoveAcceptClaim:
			cp := s.clone()
			cp.CurrentClaim = nil
			cp.Turn = s.Turn + 1
			return cp
		}

	case *genome.DrawPhase:
		if m.Kind == MoveDraw {
			for i := 0; i < phase.Count; i++ {
				s = drawCard(s, current, phase.Source)
			}
		}

	case *genome.BettingPhase:
		if m.Kind == MoveBetting {
			return ApplyBettingMove(s, m.Action, phase)
		}

	case *genome.BiddingPhase:
		if m.Kind == MoveBid {
			player := s.Players[current]
			if m.BidNil {
				player.Bid = 0
				player.BidNil = true
			} else {
				player.Bid = m.BidAmount
			}
			s = s.withPlayer(current, player)
		}
	}

	// Going out ends the hand: remaining cards in every hand score their
	// hand-end rules (rummy-style deadwood).
	if handBefore > 0 && len(s.Players[current].Hand) == 0 {
		s = ScoreHandEnd(s, g)
	}

	return advance(s, g)
}

// advance moves to the next phase; when the phase list wraps, the next
// player (honoring play direction and pending skips) takes over. The turn
// counter increments on every advance since it is a ply counter, and stuck
// detection depends on it moving.
func advance(s *GameState, g *genome.GameGenome) *GameState {
	cp := s.clone()
	cp.Turn = s.Turn + 1
	cp.CurrentPhase = s.CurrentPhase + 1
	if cp.CurrentPhase >= len(g.TurnStructure.Phases) {
		cp.CurrentPhase = 0
		cp.ActivePlayer, cp.SkipCount = nextActivePlayer(s)
	}
	return cp
}

// nextActivePlayer steps one seat in the play direction plus any pending
// skips, and reports the consumed skip count (always zero after advancing).
func nextActivePlayer(s *GameState) (int, int) {
	n := len(s.Players)
	steps := (1 + s.SkipCount) * s.PlayDirection
	next := (s.ActivePlayer + steps) % n
	if next < 0 {
		next += n
	}
	return next, 0
}

// playCard moves a card from a player's hand to the target zone.
// An invalid card index leaves the state unchanged.
func playCard(s *GameState, playerID, cardIndex int, target genome.Location) *GameState {
	player := s.Players[playerID]
	if cardIndex < 0 || cardIndex >= len(player.Hand) {
		return s
	}

	newHand, card := removeCardAt(player.Hand, cardIndex)
	player.Hand = newHand
	s = s.withPlayer(playerID, player)

	cp := s.clone()
	switch target {
	case genome.LocationDiscard:
		cp.Discard = appendCards(s.Discard, card)
	case genome.LocationTableau:
		tableau := s.Tableau
		if len(tableau) == 0 {
			tableau = [][]Card{nil}
		}
		newTableau := make([][]Card, len(tableau))
		copy(newTableau, tableau)
		newTableau[0] = appendCards(tableau[0], card)
		cp.Tableau = newTableau
	case genome.LocationDeck:
		cp.Deck = appendCards(s.Deck, card)
	default:
		return s
	}
	return cp
}

// drawCard moves one card from the source zone into the player's hand.
// Empty sources leave the state unchanged.
func drawCard(s *GameState, playerID int, source genome.Location) *GameState {
	player := s.Players[playerID]

	switch source {
	case genome.LocationDeck:
		if len(s.Deck) == 0 {
			return s
		}
		card := s.Deck[0]
		player.Hand = appendCards(player.Hand, card)
		cp := s.withPlayer(playerID, player)
		cp.Deck = s.Deck[1:]
		return cp

	case genome.LocationDiscard:
		if len(s.Discard) == 0 {
			return s
		}
		card := s.Discard[len(s.Discard)-1]
		player.Hand = appendCards(player.Hand, card)
		cp := s.withPlayer(playerID, player)
		cp.Discard = s.Discard[:len(s.Discard)-1]
		return cp

	case genome.LocationOpponentHand:
		opponentID := (playerID + 1) % len(s.Players)
		opponent := s.Players[opponentID]
		if len(opponent.Hand) == 0 {
			return s
		}
		// Take from the end of the hand: deterministic stand-in for a
		// blind pick.
		card := opponent.Hand[len(opponent.Hand)-1]
		opponent.Hand = opponent.Hand[:len(opponent.Hand)-1]
		player.Hand = appendCards(player.Hand, card)
		return s.withPlayers(playerID, player, opponentID, opponent)
	}
	return s
}

// resolveWarBattle compares the last two tableau cards after both players
// have played; the higher rank takes the whole pile into hand. Ties go to
// whichever player is currently active. Captured cards fire capture scoring
// rules for the winner.
func resolveWarBattle(s *GameState, g *genome.GameGenome) *GameState {
	if len(s.Tableau) == 0 || len(s.Tableau[0]) < 2 {
		return s
	}
	pile := s.Tableau[0]
	first := pile[len(pile)-2]
	second := pile[len(pile)-1]

	var winner int
	switch {
	case first.Value() > second.Value():
		winner = 0
	case second.Value() > first.Value():
		winner = 1
	default:
		winner = s.ActivePlayer
	}

	player := s.Players[winner]
	player.Hand = appendCards(player.Hand, pile...)
	s = s.withPlayer(winner, player)
	for _, card := range pile {
		s = scoreCardEvent(s, g, winner, card, genome.TriggerCapture)
	}

	cp := s.clone()
	newTableau := make([][]Card, len(s.Tableau))
	copy(newTableau, s.Tableau)
	newTableau[0] = nil
	cp.Tableau = newTableau
	return cp
}
