package engine

import "sort"

// HandCategory orders standard 5-card poker hands, higher is better.
type HandCategory int

const (
	HighCard HandCategory = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

func (c HandCategory) String() string {
	switch c {
	case HighCard:
		return "high card"
	case OnePair:
		return "one pair"
	case TwoPair:
		return "two pair"
	case ThreeOfAKind:
		return "three of a kind"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case StraightFlush:
		return "straight flush"
	}
	return "unknown"
}

// PokerHand is an evaluated hand: a category plus tie-break kickers,
// highest significance first.
type PokerHand struct {
	Category HandCategory
	Kickers  []int
}

// EvaluatePokerHand ranks a 5-card hand. Straight detection includes the
// A-2-3-4-5 wheel, with the ace counting as 1 in that hand only. Kickers for
// grouped hands are rank values sorted by (group size, rank) descending.
// Hands that are not exactly 5 cards evaluate as an empty high card.
func EvaluatePokerHand(cards []Card) PokerHand {
	if len(cards) != 5 {
		return PokerHand{Category: HighCard}
	}

	values := make([]int, 5)
	for i, card := range cards {
		values[i] = card.Value()
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	isFlush := true
	for _, card := range cards[1:] {
		if card.Suit != cards[0].Suit {
			isFlush = false
			break
		}
	}

	isStraight := true
	for i := 1; i < 5; i++ {
		if values[i] != values[0]-i {
			isStraight = false
			break
		}
	}
	if !isStraight && values[0] == 14 && values[1] == 5 && values[2] == 4 && values[3] == 3 && values[4] == 2 {
		isStraight = true
		values = []int{5, 4, 3, 2, 1}
	}

	counts := map[int]int{}
	for _, v := range values {
		counts[v]++
	}

	type group struct{ count, rank int }
	groups := make([]group, 0, len(counts))
	for rank, count := range counts {
		groups = append(groups, group{count, rank})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})
	kickers := make([]int, len(groups))
	for i, g := range groups {
		kickers[i] = g.rank
	}

	shape := make([]int, len(groups))
	for i, g := range groups {
		shape[i] = g.count
	}

	switch {
	case isStraight && isFlush:
		return PokerHand{StraightFlush, []int{values[0]}}
	case shapeIs(shape, 4, 1):
		return PokerHand{FourOfAKind, kickers}
	case shapeIs(shape, 3, 2):
		return PokerHand{FullHouse, kickers}
	case isFlush:
		return PokerHand{Flush, values}
	case isStraight:
		return PokerHand{Straight, []int{values[0]}}
	case shapeIs(shape, 3, 1, 1):
		return PokerHand{ThreeOfAKind, kickers}
	case shapeIs(shape, 2, 2, 1):
		return PokerHand{TwoPair, kickers}
	case shapeIs(shape, 2, 1, 1, 1):
		return PokerHand{OnePair, kickers}
	}
	return PokerHand{HighCard, values}
}

func shapeIs(shape []int, want ...int) bool {
	if len(shape) != len(want) {
		return false
	}
	for i := range shape {
		if shape[i] != want[i] {
			return false
		}
	}
	return true
}

// ComparePokerHands returns 1 when a wins, -1 when b wins, 0 for a tie.
func ComparePokerHands(a, b PokerHand) int {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return 1
		}
		return -1
	}
	for i := 0; i < len(a.Kickers) && i < len(b.Kickers); i++ {
		if a.Kickers[i] != b.Kickers[i] {
			if a.Kickers[i] > b.Kickers[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// FindBestPokerWinner returns the player holding the best 5-card hand.
// Players whose hand is not exactly 5 cards are skipped. Ties keep the
// earliest contender. Returns -1 when no player qualifies.
func FindBestPokerWinner(s *GameState) int {
	best := -1
	var bestHand PokerHand
	for i := range s.Players {
		if len(s.Players[i].Hand) != 5 {
			continue
		}
		hand := EvaluatePokerHand(s.Players[i].Hand)
		if best == -1 || ComparePokerHands(hand, bestHand) > 0 {
			best = i
			bestHand = hand
		}
	}
	return best
}
