// Package wire encodes batch statistics as FlatBuffers for the evolution
// driver. The table is tiny and its schema is frozen, so the builder calls
// are written out directly instead of generating bindings.
package wire

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/signalnine/deckforge/gosim/simulation"
)

// Table slot order. Appending new fields at the end keeps old readers
// working; existing slots must never move.
const (
	slotTotalGames = iota
	slotWinsPerPlayer
	slotDraws
	slotErrors
	slotAvgTurns
	slotMedianTurns
	slotAvgDurationNs
	slotTotalDecisions
	slotForcedDecisions
	slotTotalValidMoves
	slotTotalActions
	slotTotalInteractions

	numSlots
)

// EncodeStats serializes aggregated batch statistics.
func EncodeStats(stats *simulation.AggregatedStats) []byte {
	b := flatbuffers.NewBuilder(256)

	b.StartVector(4, len(stats.WinsPerPlayer), 4)
	for i := len(stats.WinsPerPlayer) - 1; i >= 0; i-- {
		b.PrependUint32(stats.WinsPerPlayer[i])
	}
	wins := b.EndVector(len(stats.WinsPerPlayer))

	b.StartObject(numSlots)
	b.PrependUint32Slot(slotTotalGames, stats.TotalGames, 0)
	b.PrependUOffsetTSlot(slotWinsPerPlayer, wins, 0)
	b.PrependUint32Slot(slotDraws, stats.Draws, 0)
	b.PrependUint32Slot(slotErrors, stats.Errors, 0)
	b.PrependFloat32Slot(slotAvgTurns, stats.AvgTurns, 0)
	b.PrependUint32Slot(slotMedianTurns, stats.MedianTurns, 0)
	b.PrependUint64Slot(slotAvgDurationNs, stats.AvgDurationNs, 0)
	b.PrependUint64Slot(slotTotalDecisions, stats.Metrics.TotalDecisions, 0)
	b.PrependUint64Slot(slotForcedDecisions, stats.Metrics.ForcedDecisions, 0)
	b.PrependUint64Slot(slotTotalValidMoves, stats.Metrics.TotalValidMoves, 0)
	b.PrependUint64Slot(slotTotalActions, stats.Metrics.TotalActions, 0)
	b.PrependUint64Slot(slotTotalInteractions, stats.Metrics.TotalInteractions, 0)
	root := b.EndObject()

	b.Finish(root)
	return b.FinishedBytes()
}

// DecodeStats parses a buffer produced by EncodeStats. Missing slots decode
// as zero, matching FlatBuffers default semantics.
func DecodeStats(buf []byte) (*simulation.AggregatedStats, error) {
	if len(buf) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("stats buffer too short: %d bytes", len(buf))
	}
	tab := &flatbuffers.Table{
		Bytes: buf,
		Pos:   flatbuffers.GetUOffsetT(buf),
	}

	stats := &simulation.AggregatedStats{
		TotalGames:    tableUint32(tab, slotTotalGames),
		Draws:         tableUint32(tab, slotDraws),
		Errors:        tableUint32(tab, slotErrors),
		AvgTurns:      tableFloat32(tab, slotAvgTurns),
		MedianTurns:   tableUint32(tab, slotMedianTurns),
		AvgDurationNs: tableUint64(tab, slotAvgDurationNs),
		Metrics: simulation.GameMetrics{
			TotalDecisions:    tableUint64(tab, slotTotalDecisions),
			ForcedDecisions:   tableUint64(tab, slotForcedDecisions),
			TotalValidMoves:   tableUint64(tab, slotTotalValidMoves),
			TotalActions:      tableUint64(tab, slotTotalActions),
			TotalInteractions: tableUint64(tab, slotTotalInteractions),
		},
	}

	if o := slotOffset(tab, slotWinsPerPlayer); o != 0 {
		n := tab.VectorLen(o)
		start := tab.Vector(o)
		stats.WinsPerPlayer = make([]uint32, n)
		for i := 0; i < n; i++ {
			stats.WinsPerPlayer[i] = tab.GetUint32(start + flatbuffers.UOffsetT(i)*4)
		}
	}
	return stats, nil
}

func slotOffset(tab *flatbuffers.Table, slot int) flatbuffers.UOffsetT {
	return flatbuffers.UOffsetT(tab.Offset(flatbuffers.VOffsetT(4 + 2*slot)))
}

func tableUint32(tab *flatbuffers.Table, slot int) uint32 {
	if o := slotOffset(tab, slot); o != 0 {
		return tab.GetUint32(o + tab.Pos)
	}
	return 0
}

func tableUint64(tab *flatbuffers.Table, slot int) uint64 {
	if o := slotOffset(tab, slot); o != 0 {
		return tab.GetUint64(o + tab.Pos)
	}
	return 0
}

func tableFloat32(tab *flatbuffers.Table, slot int) float32 {
	if o := slotOffset(tab, slot); o != 0 {
		return tab.GetFloat32(o + tab.Pos)
	}
	return 0
}
