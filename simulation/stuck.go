package simulation

import (
	"hash/fnv"

	"github.com/signalnine/deckforge/gosim/engine"
)

// Evolved genomes routinely produce games that never end: pass loops,
// two players trading the same card forever, betting rounds nobody can
// close. StuckDetector spots these so a batch can record a draw instead
// of spinning until the turn cap.
type StuckDetector struct {
	maxTurns   int
	maxRepeats int
	maxPasses  int
	seen       map[uint64]int
	passes     int
}

// NewStuckDetector sizes its thresholds from the genome turn limit and
// player count.
func NewStuckDetector(maxTurns, players int) *StuckDetector {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &StuckDetector{
		maxTurns:   maxTurns,
		maxRepeats: 3,
		maxPasses:  players * 4,
		seen:       make(map[uint64]int),
	}
}

// RecordMove tracks consecutive pass-like moves.
func (d *StuckDetector) RecordMove(m engine.Move) {
	if m.IsPass() {
		d.passes++
	} else {
		d.passes = 0
	}
}

// Check reports whether the game should be abandoned as a draw, and why.
func (d *StuckDetector) Check(s *engine.GameState) (string, bool) {
	if s.Turn >= d.maxTurns {
		return "turn limit", true
	}
	if d.passes >= d.maxPasses {
		return "pass loop", true
	}
	h := stateHash(s)
	d.seen[h]++
	if d.seen[h] >= d.maxRepeats {
		return "repeated position", true
	}
	return "", false
}

// stateHash fingerprints everything that distinguishes positions except the
// ply counter. Leaving Turn out is the point: a position that recurs with
// only the counter advanced is a loop.
func stateHash(s *engine.GameState) uint64 {
	h := fnv.New64a()
	buf := make([]byte, 0, 64)

	put := func(v int) {
		buf = append(buf[:0],
			byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
		h.Write(buf)
	}

	for i := range s.Players {
		p := &s.Players[i]
		put(len(p.Hand))
		put(p.Score)
		put(p.Chips)
		put(p.CurrentBet)
		flags := 0
		if p.HasFolded {
			flags |= 1
		}
		if p.IsAllIn {
			flags |= 2
		}
		put(flags)
	}
	put(len(s.Deck))
	put(len(s.Discard))
	if top := len(s.Discard) - 1; top >= 0 {
		put(int(s.Discard[top].Rank)<<8 | int(s.Discard[top].Suit))
	}
	put(s.ActivePlayer)
	put(s.CurrentPhase)
	put(s.Pot)
	put(s.CurrentBet)
	put(len(s.CurrentTrick))
	put(s.PlayDirection)
	return h.Sum64()
}
