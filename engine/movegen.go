package engine

import (
	"github.com/signalnine/deckforge/gosim/genome"
)

// GenerateLegalMoves enumerates every legal move for the active player in
// the current phase. It returns nil when the phase index is out of range
// (defensive against mutated genomes) or when nothing is legal; callers
// treat an empty result as a pass or stuck condition.
func GenerateLegalMoves(s *GameState, g *genome.GameGenome) []Move {
	phaseIdx := s.CurrentPhase
	if phaseIdx < 0 || phaseIdx >= len(g.TurnStructure.Phases) {
		return nil
	}

	var moves []Move
	switch phase := g.TurnStructure.Phases[phaseIdx].(type) {
	case *genome.BettingPhase:
		moves = GenerateBettingMoves(s, phase, s.ActivePlayer, phaseIdx)
	case *genome.PlayPhase:
		moves = appendPlayMoves(moves, s, g, phase, phaseIdx)
	case *genome.DiscardPhase:
		moves = appendDiscardMoves(moves, s, phase, phaseIdx)
	case *genome.TrickPhase:
		moves = appendTrickMoves(moves, s, phase, phaseIdx)
	case *genome.ClaimPhase:
		moves = appendClaimMoves(moves, s, phase, phaseIdx)
	case *genome.DrawPhase:
		moves = appendDrawMoves(moves, s, phase, phaseIdx)
	case *genome.BiddingPhase:
		moves = appendBiddingMoves(moves, s, phase, phaseIdx)
	}
	return moves
}

func appendPlayMoves(moves []Move, s *GameState, g *genome.GameGenome, phase *genome.PlayPhase, phaseIdx int) []Move {
	// Multi-card plays are not generated; a phase demanding them yields
	// only a pass when it allows one.
	if phase.MinCards <= 1 && phase.MaxCards >= 1 {
		hand := s.Players[s.ActivePlayer].Hand
		for idx, card := range hand {
			if !CardAllowed(s, g, phase.ValidPlayCondition, card) {
				continue
			}
			moves = append(moves, Move{
				Kind:       MovePlayCard,
				PhaseIndex: phaseIdx,
				CardIndex:  idx,
				Target:     phase.Target,
			})
		}
	}

	if len(moves) == 0 && (phase.PassIfUnable || !phase.Mandatory) {
		moves = append(moves, Move{Kind: MovePass, PhaseIndex: phaseIdx, Target: phase.Target})
	}
	return moves
}

func appendDiscardMoves(moves []Move, s *GameState, phase *genome.DiscardPhase, phaseIdx int) []Move {
	hand := s.Players[s.ActivePlayer].Hand
	for idx := range hand {
		moves = append(moves, Move{
			Kind:       MoveDiscardCard,
			PhaseIndex: phaseIdx,
			CardIndex:  idx,
			Target:     phase.Target,
		})
	}
	if !phase.Mandatory {
		moves = append(moves, Move{Kind: MovePass, PhaseIndex: phaseIdx, Target: phase.Target})
	}
	return moves
}

func appendTrickMoves(moves []Move, s *GameState, phase *genome.TrickPhase, phaseIdx int) []Move {
	hand := s.Players[s.ActivePlayer].Hand
	if len(hand) == 0 {
		return moves
	}

	if len(s.CurrentTrick) == 0 {
		// Leading. The breaking suit cannot be led until broken, unless
		// the hand holds nothing else.
		for idx, card := range hand {
			if phase.BreakingSuit != genome.SuitNone && card.Suit == phase.BreakingSuit && !s.HeartsBroken {
				hasOther := false
				for _, c := range hand {
					if c.Suit != phase.BreakingSuit {
						hasOther = true
						break
					}
				}
				if hasOther {
					continue
				}
			}
			moves = append(moves, Move{
				Kind:       MoveTrickPlay,
				PhaseIndex: phaseIdx,
				CardIndex:  idx,
				Target:     genome.LocationTableau,
			})
		}
		return moves
	}

	// Following.
	leadSuit := s.CurrentTrick[0].Card.Suit
	if phase.LeadSuitRequired {
		hasLead := false
		for _, card := range hand {
			if card.Suit == leadSuit {
				hasLead = true
				break
			}
		}
		if hasLead {
			for idx, card := range hand {
				if card.Suit == leadSuit {
					moves = append(moves, Move{
						Kind:       MoveTrickPlay,
						PhaseIndex: phaseIdx,
						CardIndex:  idx,
						Target:     genome.LocationTableau,
					})
				}
			}
			return moves
		}
	}
	for idx := range hand {
		moves = append(moves, Move{
			Kind:       MoveTrickPlay,
			PhaseIndex: phaseIdx,
			CardIndex:  idx,
			Target:     genome.LocationTableau,
		})
	}
	return moves
}

func appendClaimMoves(moves []Move, s *GameState, _ *genome.ClaimPhase, phaseIdx int) []Move {
	if s.CurrentClaim == nil {
		hand := s.Players[s.ActivePlayer].Hand
		for idx := range hand {
			moves = append(moves, Move{
				Kind:       MoveMakeClaim,
				PhaseIndex: phaseIdx,
				CardIndex:  idx,
				Target:     genome.LocationDiscard,
			})
		}
		return moves
	}

	// An active claim: any player other than the claimer may challenge
	// or accept.
	if s.ActivePlayer != s.CurrentClaim.ClaimerID {
		moves = append(moves,
			Move{Kind: MoveChallenge, PhaseIndex: phaseIdx, Target: genome.LocationDiscard},
			Move{Kind: MoveAcceptClaim, PhaseIndex: phaseIdx, Target: genome.LocationDiscard},
		)
	}
	return moves
}

func appendDrawMoves(moves []Move, s *GameState, phase *genome.DrawPhase, phaseIdx int) []Move {
	canDraw := false
	switch phase.Source {
	case genome.LocationDeck:
		canDraw = len(s.Deck) > 0
	case genome.LocationDiscard:
		canDraw = len(s.Discard) > 0
	case genome.LocationOpponentHand:
		opponent := (s.ActivePlayer + 1) % len(s.Players)
		canDraw = len(s.Players[opponent].Hand) > 0
	}

	if canDraw {
		moves = append(moves, Move{Kind: MoveDraw, PhaseIndex: phaseIdx, Target: phase.Source})
	}
	if !phase.Mandatory {
		moves = append(moves, Move{Kind: MoveDrawPass, PhaseIndex: phaseIdx, Target: phase.Source})
	}
	return moves
}

func appendBiddingMoves(moves []Move, s *GameState, phase *genome.BiddingPhase, phaseIdx int) []Move {
	player := s.Players[s.ActivePlayer]
	if player.Bid != NoBid {
		// Already bid this hand, nothing to decide.
		moves = append(moves, Move{Kind: MovePass, PhaseIndex: phaseIdx})
		return moves
	}

	low := phase.MinBid
	if low < 0 {
		low = 0
	}
	high := phase.MaxBid
	if high > len(player.Hand) {
		high = len(player.Hand)
	}
	for amount := low; amount <= high; amount++ {
		moves = append(moves, Move{Kind: MoveBid, PhaseIndex: phaseIdx, BidAmount: amount})
	}
	if phase.AllowNil {
		moves = append(moves, Move{Kind: MoveBid, PhaseIndex: phaseIdx, BidNil: true})
	}
	return moves
}
