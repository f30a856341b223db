package engine

import (
	"sort"

	"github.com/signalnine/deckforge/gosim/genome"
)

// HasSetOfN reports whether the hand holds n cards of the same rank
// (a Go Fish book when n is 4).
func HasSetOfN(hand []Card, n int) bool {
	if n <= 0 {
		return len(hand) > 0
	}
	var counts [13]int
	for _, card := range hand {
		counts[card.Rank]++
		if counts[card.Rank] >= n {
			return true
		}
	}
	return false
}

// HasRunOfN reports whether the hand holds n cards of sequential rank,
// duplicates allowed inside the run.
func HasRunOfN(hand []Card, n int) bool {
	if len(hand) < n {
		return false
	}
	values := make([]int, len(hand))
	for i, card := range hand {
		values[i] = card.Value()
	}
	sort.Ints(values)

	runLength := 1
	for i := 1; i < len(values); i++ {
		switch values[i] - values[i-1] {
		case 1:
			runLength++
			if runLength >= n {
				return true
			}
		case 0:
			// Duplicate rank keeps the run alive.
		default:
			runLength = 1
		}
	}
	return false
}

// HasMatchingPair reports whether the hand holds two cards of the same rank
// and the same color (an Old Maid pair).
func HasMatchingPair(hand []Card) bool {
	for i := 0; i < len(hand); i++ {
		for j := i + 1; j < len(hand); j++ {
			if hand[i].Rank == hand[j].Rank && hand[i].IsRed() == hand[j].IsRed() {
				return true
			}
		}
	}
	return false
}

// MatchesPattern reports whether a hand satisfies a declared hand pattern:
// card count, same-suit count, sequence length, same-rank groupings, and
// required ranks must all hold.
func MatchesPattern(hand []Card, pattern genome.HandPattern) bool {
	if pattern.RequiredCount > 0 && len(hand) != int(pattern.RequiredCount) {
		return false
	}

	if pattern.SameSuitCount > 0 {
		var suitCounts [4]int
		best := 0
		for _, card := range hand {
			suitCounts[card.Suit]++
			if suitCounts[card.Suit] > best {
				best = suitCounts[card.Suit]
			}
		}
		if best < int(pattern.SameSuitCount) {
			return false
		}
	}

	if pattern.SequenceLength > 0 {
		if !HasRunOfN(hand, int(pattern.SequenceLength)) {
			if !pattern.SequenceWrap || !hasWheelRun(hand, int(pattern.SequenceLength)) {
				return false
			}
		}
	}

	if len(pattern.SameRankGroups) > 0 {
		var counts [13]int
		for _, card := range hand {
			counts[card.Rank]++
		}
		groups := make([]int, 0, 13)
		for _, c := range counts {
			if c > 1 {
				groups = append(groups, c)
			}
		}
		sort.Sort(sort.Reverse(sort.IntSlice(groups)))
		if len(groups) < len(pattern.SameRankGroups) {
			return false
		}
		for i, want := range pattern.SameRankGroups {
			if groups[i] < int(want) {
				return false
			}
		}
	}

	for _, rank := range pattern.RequiredRanks {
		found := false
		for _, card := range hand {
			if card.Rank == rank {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// hasWheelRun checks runs that treat the ace as 1 (A-2-3-4-5 style).
func hasWheelRun(hand []Card, n int) bool {
	if len(hand) < n {
		return false
	}
	values := make([]int, len(hand))
	for i, card := range hand {
		if card.Rank == RankAce {
			values[i] = 1
		} else {
			values[i] = card.Value()
		}
	}
	sort.Ints(values)

	runLength := 1
	for i := 1; i < len(values); i++ {
		switch values[i] - values[i-1] {
		case 1:
			runLength++
			if runLength >= n {
				return true
			}
		case 0:
		default:
			runLength = 1
		}
	}
	return false
}

// BestPatternPriority returns the highest-priority pattern the hand matches,
// or -1 when none match.
func BestPatternPriority(hand []Card, eval *genome.HandEvaluation) int {
	if eval == nil {
		return -1
	}
	best := -1
	for _, pattern := range eval.Patterns {
		if int(pattern.Priority) > best && MatchesPattern(hand, pattern) {
			best = int(pattern.Priority)
		}
	}
	return best
}
