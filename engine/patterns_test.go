package engine

import (
	"testing"

	"github.com/signalnine/deckforge/gosim/genome"
)

func TestHasSetOfN(t *testing.T) {
	h := hand(
		Card{Rank: 3, Suit: 0}, Card{Rank: 3, Suit: 1},
		Card{Rank: 3, Suit: 2}, Card{Rank: 7, Suit: 0})

	if !HasSetOfN(h, 3) {
		t.Error("three threes should satisfy set of 3")
	}
	if HasSetOfN(h, 4) {
		t.Error("three threes should not satisfy set of 4")
	}
	if !HasSetOfN(h, 1) {
		t.Error("any card satisfies set of 1")
	}
}

func TestHasRunOfN(t *testing.T) {
	run := hand(
		Card{Rank: 4, Suit: 0}, Card{Rank: 5, Suit: 1}, Card{Rank: 6, Suit: 2})
	if !HasRunOfN(run, 3) {
		t.Error("5-6-7 should be a run of 3")
	}

	withDup := hand(
		Card{Rank: 4, Suit: 0}, Card{Rank: 5, Suit: 1},
		Card{Rank: 5, Suit: 2}, Card{Rank: 6, Suit: 3})
	if !HasRunOfN(withDup, 3) {
		t.Error("duplicates inside a run should not break it")
	}

	gap := hand(
		Card{Rank: 4, Suit: 0}, Card{Rank: 6, Suit: 1}, Card{Rank: 8, Suit: 2})
	if HasRunOfN(gap, 3) {
		t.Error("gapped ranks are not a run")
	}
}

func TestHasMatchingPair(t *testing.T) {
	samColor := hand(
		Card{Rank: 3, Suit: SuitHearts}, Card{Rank: 3, Suit: SuitDiamonds})
	if !HasMatchingPair(samColor) {
		t.Error("two red threes are a matching pair")
	}

	crossColor := hand(
		Card{Rank: 3, Suit: SuitHearts}, Card{Rank: 3, Suit: SuitSpades})
	if HasMatchingPair(crossColor) {
		t.Error("a red and a black three are not a matching pair")
	}
}

func TestMatchesPattern(t *testing.T) {
	flushFive := hand(
		Card{Rank: 1, Suit: SuitClubs}, Card{Rank: 4, Suit: SuitClubs},
		Card{Rank: 6, Suit: SuitClubs}, Card{Rank: 8, Suit: SuitClubs},
		Card{Rank: RankKing, Suit: SuitClubs})

	if !MatchesPattern(flushFive, genome.HandPattern{RequiredCount: 5, SameSuitCount: 5}) {
		t.Error("five clubs should match a 5-card flush pattern")
	}
	if MatchesPattern(flushFive, genome.HandPattern{RequiredCount: 4}) {
		t.Error("five cards should not match a required count of 4")
	}

	fullHouse := hand(
		Card{Rank: 4, Suit: 0}, Card{Rank: 4, Suit: 1}, Card{Rank: 4, Suit: 2},
		Card{Rank: 8, Suit: 3}, Card{Rank: 8, Suit: 0})
	pattern := genome.HandPattern{RequiredCount: 5, SameRankGroups: []uint8{3, 2}}
	if !MatchesPattern(fullHouse, pattern) {
		t.Error("a full house should match groups 3+2")
	}
	if MatchesPattern(flushFive, pattern) {
		t.Error("a flush should not match groups 3+2")
	}

	wheel := hand(
		Card{Rank: RankAce, Suit: 0}, Card{Rank: 1, Suit: 1}, Card{Rank: 2, Suit: 2},
		Card{Rank: 3, Suit: 3}, Card{Rank: 4, Suit: 0})
	seq := genome.HandPattern{RequiredCount: 5, SequenceLength: 5}
	if MatchesPattern(wheel, seq) {
		t.Error("the wheel needs sequence_wrap to count as a run")
	}
	seq.SequenceWrap = true
	if !MatchesPattern(wheel, seq) {
		t.Error("sequence_wrap should admit the ace-low run")
	}

	required := genome.HandPattern{RequiredRanks: []uint8{RankQueen}}
	if MatchesPattern(flushFive, required) {
		t.Error("no queen in hand, required rank should fail")
	}
	if !MatchesPattern(flushFive, genome.HandPattern{RequiredRanks: []uint8{RankKing}}) {
		t.Error("the king should satisfy its required rank")
	}
}

func TestBestPatternPriority(t *testing.T) {
	eval := &genome.HandEvaluation{
		Patterns: []genome.HandPattern{
			{Name: "pair", Priority: 1, SameRankGroups: []uint8{2}},
			{Name: "trips", Priority: 3, SameRankGroups: []uint8{3}},
		},
	}

	trips := hand(
		Card{Rank: 4, Suit: 0}, Card{Rank: 4, Suit: 1}, Card{Rank: 4, Suit: 2})
	if got := BestPatternPriority(trips, eval); got != 3 {
		t.Errorf("priority = %d, want 3", got)
	}

	pair := hand(Card{Rank: 4, Suit: 0}, Card{Rank: 4, Suit: 1})
	if got := BestPatternPriority(pair, eval); got != 1 {
		t.Errorf("priority = %d, want 1", got)
	}

	nothing := hand(Card{Rank: 4, Suit: 0}, Card{Rank: 7, Suit: 1})
	if got := BestPatternPriority(nothing, eval); got != -1 {
		t.Errorf("priority = %d, want -1", got)
	}
	if got := BestPatternPriority(pair, nil); got != -1 {
		t.Errorf("nil evaluation priority = %d, want -1", got)
	}
}
