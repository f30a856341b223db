package genome

import (
	"testing"
)

func TestCloneIsDeep(t *testing.T) {
	original := CreateCrazyEightsGenome()
	original.Effects = []SpecialEffect{
		{TriggerRank: RankTwo, Effect: EffectDrawCards, Target: TargetNextPlayer, Value: 2},
	}

	clone := original.Clone()

	if clone == original {
		t.Fatal("clone returned the same pointer")
	}
	if clone.GenomeID != original.GenomeID {
		t.Errorf("genome_id = %q, want %q", clone.GenomeID, original.GenomeID)
	}
	if len(clone.TurnStructure.Phases) != len(original.TurnStructure.Phases) {
		t.Fatalf("phases = %d, want %d", len(clone.TurnStructure.Phases), len(original.TurnStructure.Phases))
	}

	// Mutating the clone must not leak into the original.
	clone.Effects[0].Value = 99
	if original.Effects[0].Value != 2 {
		t.Error("mutating clone effects changed the original")
	}

	clone.Setup.WildCards[0] = RankKing
	if original.Setup.WildCards[0] != RankEight {
		t.Error("mutating clone wild cards changed the original")
	}

	clonePlay := clone.TurnStructure.Phases[1].(*PlayPhase)
	clonePlay.ValidPlayCondition.Any[0].Type = CondBeatsTop
	origPlay := original.TurnStructure.Phases[1].(*PlayPhase)
	if origPlay.ValidPlayCondition.Any[0].Type != CondMatchesSuit {
		t.Error("mutating clone condition changed the original")
	}
}

func TestCloneNil(t *testing.T) {
	var g *GameGenome
	if g.Clone() != nil {
		t.Error("cloning nil genome should return nil")
	}
}

func TestEffectForRank(t *testing.T) {
	g := CreateUnoStyleGenome()

	effect := g.EffectForRank(RankQueen)
	if effect == nil {
		t.Fatal("expected an effect for queens")
	}
	if effect.Effect != EffectReverse {
		t.Errorf("effect = %v, want reverse", effect.Effect)
	}

	if g.EffectForRank(RankSeven) != nil {
		t.Error("expected no effect for sevens")
	}
}

func TestPlayersDefault(t *testing.T) {
	g := &GameGenome{}
	if got := g.Players(); got != 2 {
		t.Errorf("Players() = %d, want default 2", got)
	}
	g.PlayerCount = 4
	if got := g.Players(); got != 4 {
		t.Errorf("Players() = %d, want 4", got)
	}
}

func TestIsWild(t *testing.T) {
	g := CreateCrazyEightsGenome()
	if !g.IsWild(RankEight) {
		t.Error("eights should be wild in crazy eights")
	}
	if g.IsWild(RankKing) {
		t.Error("kings should not be wild")
	}
}
