package engine

import (
	"github.com/signalnine/deckforge/gosim/genome"
)

// scoreCardEvent applies card scoring rules that fire on a specific trigger
// for one card, crediting the given player.
func scoreCardEvent(s *GameState, g *genome.GameGenome, playerID int, card Card, trigger genome.ScoringTrigger) *GameState {
	points := 0
	for _, rule := range g.CardScoring {
		if rule.Trigger == trigger && ruleMatches(rule, card) {
			points += int(rule.Points)
		}
	}
	if points == 0 {
		return s
	}
	player := s.Players[playerID]
	player.Score += points
	return s.withPlayer(playerID, player)
}

// ScoreContracts settles a finished bidding hand: each player's bid is
// compared against tricks won using the genome's bidding phase scoring
// parameters, then bids and trick counts reset for the next hand.
// Genomes without a bidding phase are untouched.
func ScoreContracts(s *GameState, g *genome.GameGenome) *GameState {
	var bidding *genome.BiddingPhase
	for _, phase := range g.TurnStructure.Phases {
		if b, ok := phase.(*genome.BiddingPhase); ok {
			bidding = b
			break
		}
	}
	if bidding == nil {
		return s
	}

	cp := s.clone()
	players := make([]PlayerState, len(s.Players))
	copy(players, s.Players)

	for i := range players {
		p := &players[i]
		if p.Bid == NoBid {
			continue
		}

		if p.BidNil {
			if p.TricksWon == 0 {
				p.Score += bidding.NilBonus
			} else {
				p.Score -= bidding.NilPenalty
			}
		} else if p.TricksWon >= p.Bid {
			p.Score += p.Bid * bidding.PointsPerTrickBid
			overtricks := p.TricksWon - p.Bid
			p.Score += overtricks * bidding.OvertrickPoints

			p.Bags += overtricks
			if bidding.BagLimit > 0 && p.Bags >= bidding.BagLimit {
				p.Score -= bidding.BagPenalty
				p.Bags -= bidding.BagLimit
			}
		} else {
			p.Score -= p.Bid * bidding.FailedContractPenalty
		}

		p.Bid = NoBid
		p.BidNil = false
		p.TricksWon = 0
	}

	cp.Players = players
	return cp
}

// ScoreHandEnd applies hand-end scoring rules to every card remaining in
// each player's hand (rummy-style deadwood counting).
func ScoreHandEnd(s *GameState, g *genome.GameGenome) *GameState {
	hasRule := false
	for _, rule := range g.CardScoring {
		if rule.Trigger == genome.TriggerHandEnd {
			hasRule = true
			break
		}
	}
	if !hasRule {
		return s
	}

	cp := s.clone()
	players := make([]PlayerState, len(s.Players))
	copy(players, s.Players)
	for i := range players {
		for _, card := range players[i].Hand {
			for _, rule := range g.CardScoring {
				if rule.Trigger == genome.TriggerHandEnd && ruleMatches(rule, card) {
					players[i].Score += int(rule.Points)
				}
			}
		}
	}
	cp.Players = players
	return cp
}
