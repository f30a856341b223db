package engine

import (
	"github.com/signalnine/deckforge/gosim/genome"
)

// applyTrickMove plays a card into the current trick. While the trick is
// incomplete the next seat acts within the same phase; once every player has
// contributed a card the trick resolves and the winner leads.
func applyTrickMove(s *GameState, m Move, phase *genome.TrickPhase, g *genome.GameGenome) *GameState {
	current := s.ActivePlayer
	if m.Kind != MoveTrickPlay || m.CardIndex < 0 || m.CardIndex >= len(s.Players[current].Hand) {
		return advance(s, g)
	}

	player := s.Players[current]
	newHand, card := removeCardAt(player.Hand, m.CardIndex)
	player.Hand = newHand
	s = s.withPlayer(current, player)

	cp := s.clone()
	trick := make([]TrickCard, len(s.CurrentTrick), len(s.CurrentTrick)+1)
	copy(trick, s.CurrentTrick)
	cp.CurrentTrick = append(trick, TrickCard{PlayerID: current, Card: card})
	if phase.BreakingSuit != genome.SuitNone && card.Suit == phase.BreakingSuit {
		cp.HeartsBroken = true
	}
	s = cp

	if len(s.CurrentTrick) >= len(s.Players) {
		return resolveTrick(s, phase, g)
	}

	// Trick incomplete: pass to the next seat, same phase. Trick rotation
	// is plain seat order regardless of play direction.
	cp = s.clone()
	cp.ActivePlayer = (s.ActivePlayer + 1) % len(s.Players)
	cp.Turn = s.Turn + 1
	return cp
}

// resolveTrick decides the trick winner, scores the captured cards, clears
// the trick, and hands the lead to the winner.
//
// Comparison rules: trump beats non-trump; two trumps compare by rank in the
// high_card_wins direction; two non-trumps compare only when both follow the
// lead suit, a lead-suit card beats a non-follower unconditionally, and when
// neither follows the lead the earlier card stands.
func resolveTrick(s *GameState, phase *genome.TrickPhase, g *genome.GameGenome) *GameState {
	if len(s.CurrentTrick) == 0 {
		return s
	}

	leadSuit := s.CurrentTrick[0].Card.Suit
	trumpSuit := phase.TrumpSuit

	winnerIdx := 0
	winnerCard := s.CurrentTrick[0].Card
	winnerIsTrump := trumpSuit != genome.SuitNone && winnerCard.Suit == trumpSuit

	for i := 1; i < len(s.CurrentTrick); i++ {
		card := s.CurrentTrick[i].Card
		cardIsTrump := trumpSuit != genome.SuitNone && card.Suit == trumpSuit

		beats := false
		switch {
		case cardIsTrump && !winnerIsTrump:
			beats = true
		case cardIsTrump && winnerIsTrump:
			beats = rankBeats(card, winnerCard, phase.HighCardWins)
		case !cardIsTrump && !winnerIsTrump:
			if card.Suit == leadSuit && winnerCard.Suit == leadSuit {
				beats = rankBeats(card, winnerCard, phase.HighCardWins)
			} else if card.Suit == leadSuit && winnerCard.Suit != leadSuit {
				beats = true
			}
		}

		if beats {
			winnerIdx = i
			winnerCard = card
			winnerIsTrump = cardIsTrump
		}
	}

	winnerID := s.CurrentTrick[winnerIdx].PlayerID
	trickCards := make([]Card, len(s.CurrentTrick))
	for i, tc := range s.CurrentTrick {
		trickCards[i] = tc.Card
	}

	winner := s.Players[winnerID]
	winner.Score += trickPoints(g, trickCards)
	winner.TricksWon++
	s = s.withPlayer(winnerID, winner)

	cp := s.clone()
	cp.CurrentTrick = nil
	cp.ActivePlayer = winnerID
	cp.Turn = s.Turn + 1
	cp.CurrentPhase = s.CurrentPhase + 1
	if cp.CurrentPhase >= len(g.TurnStructure.Phases) {
		cp.CurrentPhase = 0
	}
	s = cp

	if allHandsEmpty(s) {
		s = ScoreContracts(s, g)
	}
	return s
}

func rankBeats(card, winner Card, highCardWins bool) bool {
	if highCardWins {
		return card.Value() > winner.Value()
	}
	return card.Value() < winner.Value()
}

// trickPoints scores a captured trick. Genome trick-win scoring rules
// override the one-point-per-card fallback when present.
func trickPoints(g *genome.GameGenome, cards []Card) int {
	hasRule := false
	points := 0
	for _, rule := range g.CardScoring {
		if rule.Trigger != genome.TriggerTrickWin {
			continue
		}
		hasRule = true
		for _, card := range cards {
			if ruleMatches(rule, card) {
				points += int(rule.Points)
			}
		}
	}
	if !hasRule {
		return len(cards)
	}
	return points
}

func ruleMatches(rule genome.CardScoringRule, card Card) bool {
	if rule.Suit != genome.SuitNone && rule.Suit != card.Suit {
		return false
	}
	if rule.Rank != genome.RankNone && rule.Rank != card.Rank {
		return false
	}
	return true
}

func allHandsEmpty(s *GameState) bool {
	for i := range s.Players {
		if len(s.Players[i].Hand) > 0 {
			return false
		}
	}
	return true
}
