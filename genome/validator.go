package genome

import "fmt"

// ValidationError describes one coherence problem in a genome.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateGenome checks a genome for structural problems and semantic
// incoherence before simulation. The interpreter survives incoherent
// genomes, but simulating them wastes a batch, so evolution rejects them
// up front.
func ValidateGenome(g *GameGenome) []ValidationError {
	var errs []ValidationError
	add := func(field, format string, args ...interface{}) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if g.Players() < 2 || g.Players() > 8 {
		add("player_count", "must be between 2 and 8, got %d", g.PlayerCount)
	}
	if g.Setup.CardsPerPlayer <= 0 {
		add("setup.cards_per_player", "must be positive")
	}
	dealt := g.Setup.CardsPerPlayer*g.Players() + g.Setup.InitialDiscardCount
	if dealt > 52 {
		add("setup", "deals %d cards, more than a 52-card deck holds", dealt)
	}
	if len(g.TurnStructure.Phases) == 0 {
		add("turn_structure.phases", "at least one phase is required")
	}
	if len(g.WinConditions) == 0 {
		add("win_conditions", "at least one win condition is required")
	}

	hasBetting := false
	hasBidding := false
	hasTrick := false
	for i, phase := range g.TurnStructure.Phases {
		field := fmt.Sprintf("turn_structure.phases[%d]", i)
		switch p := phase.(type) {
		case *DrawPhase:
			if p.Count <= 0 {
				add(field, "draw count must be positive")
			}
		case *PlayPhase:
			if p.MinCards > p.MaxCards {
				add(field, "min_cards %d exceeds max_cards %d", p.MinCards, p.MaxCards)
			}
		case *BettingPhase:
			hasBetting = true
			if p.MinBet <= 0 {
				add(field, "min_bet must be positive")
			}
			if p.MaxRaises < 0 {
				add(field, "max_raises must not be negative")
			}
		case *BiddingPhase:
			hasBidding = true
			if p.MinBid > p.MaxBid {
				add(field, "min_bid %d exceeds max_bid %d", p.MinBid, p.MaxBid)
			}
		case *TrickPhase:
			hasTrick = true
		}
	}

	winTypes := map[WinConditionType]bool{}
	for _, wc := range g.WinConditions {
		winTypes[wc.Type] = true
	}

	// Score-based wins need a score source: scoring rules, tricks, or a
	// bidding contract.
	if winTypes[WinTypeHighScore] || winTypes[WinTypeLowScore] || winTypes[WinTypeFirstToScore] {
		if len(g.CardScoring) == 0 && !hasTrick && !hasBidding {
			add("win_conditions", "score-based win has no scoring mechanic")
		}
	}

	// Capture wins need a capture mechanic.
	if winTypes[WinTypeCaptureAll] || winTypes[WinTypeMostCaptured] {
		if g.Setup.TableauMode != TableauModeWar && len(g.CardScoring) == 0 {
			add("win_conditions", "capture win has no capture mechanic")
		}
	}

	// A best-hand showdown needs 5-card hands to exist.
	if winTypes[WinTypeBestHand] && g.Setup.CardsPerPlayer != 5 {
		add("win_conditions", "best_hand win requires 5-card hands, setup deals %d", g.Setup.CardsPerPlayer)
	}

	if hasBetting && g.Setup.StartingChips <= 0 {
		add("setup.starting_chips", "betting phase requires starting chips")
	}
	if hasBidding && !hasTrick {
		add("turn_structure.phases", "bidding phase requires a trick phase to resolve contracts")
	}

	if g.HandEval != nil {
		for _, pattern := range g.HandEval.Patterns {
			if pattern.RequiredCount == 0 || len(pattern.SameRankGroups) == 0 {
				continue
			}
			sum := 0
			for _, n := range pattern.SameRankGroups {
				sum += int(n)
			}
			if sum > int(pattern.RequiredCount) {
				add("hand_evaluation", "pattern %q: same_rank_groups sum %d exceeds required_count %d",
					pattern.Name, sum, pattern.RequiredCount)
			}
		}
	}

	return errs
}

// IsValid reports whether the genome passes all validation checks.
func IsValid(g *GameGenome) bool {
	return len(ValidateGenome(g)) == 0
}
