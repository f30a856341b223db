// Package genome defines the declarative rule description for an evolved card
// game. A GameGenome is produced and mutated by the external evolution layer
// and consumed read-only by the interpreter in the engine package.
package genome

// Phase is the interface for all turn phases.
// Each phase kind implements this interface for polymorphic handling.
type Phase interface {
	PhaseType() uint8
	phaseMarker() // unexported to prevent external implementations
}

// PhaseType constants.
const (
	PhaseTypeDraw    uint8 = 1
	PhaseTypePlay    uint8 = 2
	PhaseTypeDiscard uint8 = 3
	PhaseTypeTrick   uint8 = 4
	PhaseTypeBetting uint8 = 5
	PhaseTypeClaim   uint8 = 6
	PhaseTypeBidding uint8 = 7
)

// Location identifies a card zone a phase reads from or writes to.
type Location uint8

const (
	LocationDeck         Location = 0
	LocationHand         Location = 1
	LocationDiscard      Location = 2
	LocationTableau      Location = 3
	LocationOpponentHand Location = 4
)

// SuitNone and RankNone mark "unset" in optional genome fields
// (trump suit, breaking suit, any-suit scoring rules).
const (
	SuitNone uint8 = 255
	RankNone uint8 = 255
)

// Operator is a comparison operator used by state conditions.
type Operator uint8

const (
	OpEQ Operator = iota
	OpNE
	OpLT
	OpGT
	OpLE
	OpGE
)

// ConditionType selects what a condition inspects.
type ConditionType uint8

const (
	// Card conditions, evaluated per candidate card during move generation.
	CondMatchesSuit ConditionType = iota // candidate suit == reference card suit
	CondMatchesRank                      // candidate rank == reference card rank
	CondIsRank                           // candidate rank == Rank
	CondIsSuit                           // candidate suit == Suit
	CondBeatsTop                         // candidate outranks the reference card

	// State conditions, evaluated against the whole game state.
	CondLocationSize    // size of RefLoc compared to Value
	CondHandSize        // active player's hand size compared to Value
	CondHasSetOfN       // active player holds Value cards of one rank
	CondHasMatchingPair // active player holds a same-rank same-color pair
)

// CardRef names the card a relative card condition compares against.
type CardRef uint8

const (
	RefTopDiscard CardRef = 0
	RefTableauTop CardRef = 1
)

// Condition constrains which cards are legal to play or when a phase applies.
// A nil *Condition always passes. If Any or All is non-empty the condition is
// compound and its own Type is ignored.
type Condition struct {
	Type      ConditionType
	Operator  Operator
	Value     int
	Rank      uint8   // for CondIsRank
	Suit      uint8   // for CondIsSuit
	Reference CardRef // for CondMatchesSuit/Rank and CondBeatsTop
	RefLoc    Location
	Any       []Condition // satisfied when any sub-condition passes
	All       []Condition // satisfied when every sub-condition passes
}

// DrawPhase draws cards from a source zone into the active player's hand.
type DrawPhase struct {
	Source    Location
	Count     int
	Mandatory bool // if false a pass move is offered alongside the draw
}

func (p *DrawPhase) PhaseType() uint8 { return PhaseTypeDraw }
func (p *DrawPhase) phaseMarker()     {}

// PlayPhase plays cards from hand to a target zone.
type PlayPhase struct {
	Target             Location
	MinCards           int
	MaxCards           int
	Mandatory          bool
	PassIfUnable       bool
	ValidPlayCondition *Condition
}

func (p *PlayPhase) PhaseType() uint8 { return PhaseTypePlay }
func (p *PlayPhase) phaseMarker()     {}

// DiscardPhase discards one card from hand.
type DiscardPhase struct {
	Target    Location
	Mandatory bool // if false a pass move is offered
}

func (p *DiscardPhase) PhaseType() uint8 { return PhaseTypeDiscard }
func (p *DiscardPhase) phaseMarker()     {}

// TrickPhase is one round of trick-taking play.
type TrickPhase struct {
	LeadSuitRequired bool  // must follow the lead suit if able
	TrumpSuit        uint8 // SuitNone = no trump
	HighCardWins     bool  // false means lowest card wins
	BreakingSuit     uint8 // SuitNone = none; suit that cannot be led until broken
}

func (p *TrickPhase) PhaseType() uint8 { return PhaseTypeTrick }
func (p *TrickPhase) phaseMarker()     {}

// BettingPhase is a poker-style betting round.
type BettingPhase struct {
	MinBet    int
	MaxRaises int // cap on raises per round, prevents infinite loops
}

func (p *BettingPhase) PhaseType() uint8 { return PhaseTypeBetting }
func (p *BettingPhase) phaseMarker()     {}

// ClaimPhase is a bluffing phase (Cheat/BS). The claimed rank is derived
// from the turn counter rather than chosen freely by the player.
type ClaimPhase struct {
	SequentialRank bool // claimed rank cycles A,2,...,K with the turn counter
	AllowChallenge bool // opponents may challenge the previous claim
	PilePenalty    bool // challenge loser collects the discard pile
}

func (p *ClaimPhase) PhaseType() uint8 { return PhaseTypeClaim }
func (p *ClaimPhase) phaseMarker()     {}

// BiddingPhase is contract bidding (Spades-style). The scoring parameters are
// applied when the hand ends.
type BiddingPhase struct {
	MinBid   int
	MaxBid   int
	AllowNil bool

	PointsPerTrickBid     int // points per trick bid when contract is made
	OvertrickPoints       int // points per overtrick (bag)
	FailedContractPenalty int // penalty multiplier for failing the contract
	NilBonus              int
	NilPenalty            int
	BagLimit              int // bags accumulated before penalty applies
	BagPenalty            int
}

func (p *BiddingPhase) PhaseType() uint8 { return PhaseTypeBidding }
func (p *BiddingPhase) phaseMarker()     {}

// WinConditionType constants.
type WinConditionType uint8

const (
	WinTypeEmptyHand     WinConditionType = 0
	WinTypeHighScore     WinConditionType = 1
	WinTypeFirstToScore  WinConditionType = 2
	WinTypeCaptureAll    WinConditionType = 3
	WinTypeLowScore      WinConditionType = 4
	WinTypeAllHandsEmpty WinConditionType = 5
	WinTypeBestHand      WinConditionType = 6
	WinTypeMostCaptured  WinConditionType = 7
)

// WinCondition defines how the game ends and who wins.
type WinCondition struct {
	Type      WinConditionType
	Threshold int32 // score threshold for score-based wins
}

// TargetSelector names which player an effect applies to, relative to the
// active player and the current play direction.
type TargetSelector uint8

const (
	TargetSelf          TargetSelector = 0
	TargetNextPlayer    TargetSelector = 1
	TargetPrevPlayer    TargetSelector = 2
	TargetAllOpponents  TargetSelector = 3
	TargetLeftOpponent  TargetSelector = 4 // fixed seat +1, ignores direction
	TargetRightOpponent TargetSelector = 5 // fixed seat -1, ignores direction
)

// EffectType constants for rank-triggered card effects.
type EffectType uint8

const (
	EffectSkipNext     EffectType = 0
	EffectReverse      EffectType = 1
	EffectDrawCards    EffectType = 2
	EffectExtraTurn    EffectType = 3
	EffectForceDiscard EffectType = 4
	EffectWildCard     EffectType = 5 // handled during move generation, no state change
	EffectBlockNext    EffectType = 6
	EffectSwapHands    EffectType = 7
	EffectStealCard    EffectType = 8
	EffectPeekHand     EffectType = 9 // information-only, no state change
)

// SpecialEffect defines what happens when a card of TriggerRank is played.
type SpecialEffect struct {
	TriggerRank uint8 // 0-12 for A-K
	Effect      EffectType
	Target      TargetSelector
	Value       uint8 // effect-specific (cards to draw, turns to skip)
}

// ScoringTrigger defines when a card scoring rule applies.
type ScoringTrigger uint8

const (
	TriggerTrickWin ScoringTrigger = 0
	TriggerCapture  ScoringTrigger = 1
	TriggerPlay     ScoringTrigger = 2
	TriggerHandEnd  ScoringTrigger = 3
)

// CardScoringRule defines points for specific cards.
// Suit or Rank of 255 matches any suit/rank.
type CardScoringRule struct {
	Suit    uint8
	Rank    uint8
	Points  int16 // may be negative (Hearts penalties)
	Trigger ScoringTrigger
}

// HandEvaluationMethod defines how hands are compared.
type HandEvaluationMethod uint8

const (
	EvalMethodNone         HandEvaluationMethod = 0
	EvalMethodHighCard     HandEvaluationMethod = 1
	EvalMethodPatternMatch HandEvaluationMethod = 2
)

// HandPattern defines a poker-style hand pattern for pattern matching.
type HandPattern struct {
	Name           string
	Priority       uint8 // higher priority wins
	RequiredCount  uint8
	SameSuitCount  uint8
	SequenceLength uint8
	SequenceWrap   bool    // sequence may use the ace-low wheel
	SameRankGroups []uint8 // e.g. [3,2] for a full house
	RequiredRanks  []uint8
}

// HandEvaluation defines how to evaluate and compare hands.
type HandEvaluation struct {
	Method   HandEvaluationMethod
	Patterns []HandPattern
}

// TableauMode defines how the shared tableau is used.
type TableauMode uint8

const (
	TableauModeNone TableauMode = 0
	TableauModeWar  TableauMode = 1
)

// SetupRules defines initial game setup.
type SetupRules struct {
	CardsPerPlayer      int
	InitialDiscardCount int     // cards flipped from deck to discard at start
	StartingChips       int     // 0 = no betting
	TrumpSuit           uint8   // SuitNone = none
	WildCards           []uint8 // ranks that are always legal to play
	TableauMode         TableauMode
}

// TurnStructure defines the phases of each turn.
type TurnStructure struct {
	Phases        []Phase
	IsTrickBased  bool
	TricksPerHand int
	MaxTurns      int
}

// GameGenome is the complete game definition.
// This is the top-level struct that fully describes an evolved card game.
type GameGenome struct {
	SchemaVersion string
	GenomeID      string
	Generation    int
	Setup         SetupRules
	TurnStructure TurnStructure
	Effects       []SpecialEffect
	WinConditions []WinCondition
	CardScoring   []CardScoringRule
	HandEval      *HandEvaluation
	PlayerCount   int
}

// EffectForRank returns the effect triggered by the given rank, or nil.
// The first matching entry wins when duplicates exist.
func (g *GameGenome) EffectForRank(rank uint8) *SpecialEffect {
	for i := range g.Effects {
		if g.Effects[i].TriggerRank == rank {
			return &g.Effects[i]
		}
	}
	return nil
}

// Players returns the declared player count, defaulting to 2.
func (g *GameGenome) Players() int {
	if g.PlayerCount < 2 {
		return 2
	}
	return g.PlayerCount
}

// IsWild reports whether rank is listed in the setup wild cards.
func (g *GameGenome) IsWild(rank uint8) bool {
	for _, w := range g.Setup.WildCards {
		if w == rank {
			return true
		}
	}
	return false
}

// Clone creates a deep copy of the genome.
func (g *GameGenome) Clone() *GameGenome {
	if g == nil {
		return nil
	}

	clone := &GameGenome{
		SchemaVersion: g.SchemaVersion,
		GenomeID:      g.GenomeID,
		Generation:    g.Generation,
		Setup:         g.Setup,
		PlayerCount:   g.PlayerCount,
	}
	if g.Setup.WildCards != nil {
		clone.Setup.WildCards = append([]uint8(nil), g.Setup.WildCards...)
	}

	clone.TurnStructure = TurnStructure{
		IsTrickBased:  g.TurnStructure.IsTrickBased,
		TricksPerHand: g.TurnStructure.TricksPerHand,
		MaxTurns:      g.TurnStructure.MaxTurns,
	}
	if g.TurnStructure.Phases != nil {
		clone.TurnStructure.Phases = make([]Phase, len(g.TurnStructure.Phases))
		for i, phase := range g.TurnStructure.Phases {
			clone.TurnStructure.Phases[i] = clonePhase(phase)
		}
	}

	if g.Effects != nil {
		clone.Effects = append([]SpecialEffect(nil), g.Effects...)
	}
	if g.WinConditions != nil {
		clone.WinConditions = append([]WinCondition(nil), g.WinConditions...)
	}
	if g.CardScoring != nil {
		clone.CardScoring = append([]CardScoringRule(nil), g.CardScoring...)
	}
	if g.HandEval != nil {
		clone.HandEval = cloneHandEvaluation(g.HandEval)
	}

	return clone
}

// clonePhase creates a deep copy of a phase.
func clonePhase(p Phase) Phase {
	switch phase := p.(type) {
	case *DrawPhase:
		cp := *phase
		return &cp
	case *PlayPhase:
		cp := *phase
		cp.ValidPlayCondition = cloneCondition(phase.ValidPlayCondition)
		return &cp
	case *DiscardPhase:
		cp := *phase
		return &cp
	case *TrickPhase:
		cp := *phase
		return &cp
	case *BettingPhase:
		cp := *phase
		return &cp
	case *ClaimPhase:
		cp := *phase
		return &cp
	case *BiddingPhase:
		cp := *phase
		return &cp
	default:
		return nil
	}
}

func cloneCondition(c *Condition) *Condition {
	if c == nil {
		return nil
	}
	cp := *c
	if c.Any != nil {
		cp.Any = make([]Condition, len(c.Any))
		for i := range c.Any {
			cp.Any[i] = *cloneCondition(&c.Any[i])
		}
	}
	if c.All != nil {
		cp.All = make([]Condition, len(c.All))
		for i := range c.All {
			cp.All[i] = *cloneCondition(&c.All[i])
		}
	}
	return &cp
}

// cloneHandEvaluation creates a deep copy of hand evaluation config.
func cloneHandEvaluation(h *HandEvaluation) *HandEvaluation {
	clone := &HandEvaluation{Method: h.Method}
	if h.Patterns != nil {
		clone.Patterns = make([]HandPattern, len(h.Patterns))
		for i, p := range h.Patterns {
			cp := p
			if p.SameRankGroups != nil {
				cp.SameRankGroups = append([]uint8(nil), p.SameRankGroups...)
			}
			if p.RequiredRanks != nil {
				cp.RequiredRanks = append([]uint8(nil), p.RequiredRanks...)
			}
			clone.Patterns[i] = cp
		}
	}
	return clone
}
