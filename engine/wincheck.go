package engine

import (
	"github.com/signalnine/deckforge/gosim/genome"
)

// CheckWinConditions evaluates the genome's win conditions in declared order
// and returns the first satisfied condition's winner. Unrecognized condition
// types are skipped so future condition kinds stay forward-compatible.
func CheckWinConditions(s *GameState, g *genome.GameGenome) (int, bool) {
	for _, wc := range g.WinConditions {
		switch wc.Type {
		case genome.WinTypeEmptyHand:
			for id := range s.Players {
				if len(s.Players[id].Hand) == 0 {
					return id, true
				}
			}

		case genome.WinTypeCaptureAll:
			for id := range s.Players {
				if len(s.Players[id].Hand) == DeckSize {
					return id, true
				}
			}

		case genome.WinTypeFirstToScore:
			for id := range s.Players {
				if s.Players[id].Score >= int(wc.Threshold) {
					return id, true
				}
			}

		case genome.WinTypeHighScore:
			if anyScoreAtLeast(s, int(wc.Threshold)) {
				return highestScore(s), true
			}

		case genome.WinTypeLowScore:
			// Hearts-style: someone crossing the threshold ends the game
			// and the lowest score wins.
			if anyScoreAtLeast(s, int(wc.Threshold)) {
				return lowestScore(s), true
			}

		case genome.WinTypeAllHandsEmpty:
			if allHandsEmpty(s) {
				return lowestScore(s), true
			}

		case genome.WinTypeBestHand:
			// Only after the opening deal/draw plies have passed, and only
			// when everyone holds a full 5-card hand.
			if s.Turn >= len(s.Players)*2 && allHandsAre(s, 5) {
				if winner := findBestHandWinner(s, g); winner >= 0 {
					return winner, true
				}
			}

		case genome.WinTypeMostCaptured:
			if len(s.Deck) == 0 && allHandsEmpty(s) {
				return highestScore(s), true
			}
		}
	}
	return -1, false
}

// findBestHandWinner ranks hands with the genome's declared patterns when it
// uses pattern matching, falling back to standard poker ranking. Poker
// ranking also breaks pattern-priority ties.
func findBestHandWinner(s *GameState, g *genome.GameGenome) int {
	eval := g.HandEval
	if eval == nil || eval.Method != genome.EvalMethodPatternMatch || len(eval.Patterns) == 0 {
		return FindBestPokerWinner(s)
	}

	best := -1
	bestPriority := -1
	for i := range s.Players {
		priority := BestPatternPriority(s.Players[i].Hand, eval)
		switch {
		case priority > bestPriority:
			best, bestPriority = i, priority
		case priority == bestPriority && best >= 0:
			a := EvaluatePokerHand(s.Players[i].Hand)
			b := EvaluatePokerHand(s.Players[best].Hand)
			if ComparePokerHands(a, b) > 0 {
				best = i
			}
		}
	}
	if bestPriority < 0 {
		// No hand matched any declared pattern.
		return FindBestPokerWinner(s)
	}
	return best
}

func anyScoreAtLeast(s *GameState, threshold int) bool {
	for id := range s.Players {
		if s.Players[id].Score >= threshold {
			return true
		}
	}
	return false
}

func highestScore(s *GameState) int {
	winner := 0
	for id := range s.Players {
		if s.Players[id].Score > s.Players[winner].Score {
			winner = id
		}
	}
	return winner
}

func lowestScore(s *GameState) int {
	winner := 0
	for id := range s.Players {
		if s.Players[id].Score < s.Players[winner].Score {
			winner = id
		}
	}
	return winner
}

func allHandsAre(s *GameState, size int) bool {
	for id := range s.Players {
		if len(s.Players[id].Hand) != size {
			return false
		}
	}
	return true
}
