package genome

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The JSON wire format matches the Python evolution system's genome
// documents: snake_case fields, flat phase objects tagged by "type", and
// symbolic names for suits, ranks, effects, and targets.

type gameGenomeJSON struct {
	SchemaVersion  string              `json:"schema_version,omitempty"`
	GenomeID       string              `json:"genome_id,omitempty"`
	Generation     int                 `json:"generation,omitempty"`
	Setup          setupRulesJSON      `json:"setup"`
	TurnStructure  turnStructureJSON   `json:"turn_structure"`
	SpecialEffects []specialEffectJSON `json:"special_effects,omitempty"`
	WinConditions  []winConditionJSON  `json:"win_conditions"`
	CardScoring    []cardScoringJSON   `json:"card_scoring,omitempty"`
	HandEval       *handEvalJSON       `json:"hand_evaluation,omitempty"`
	PlayerCount    int                 `json:"player_count,omitempty"`
}

type setupRulesJSON struct {
	CardsPerPlayer      int      `json:"cards_per_player"`
	InitialDiscardCount int      `json:"initial_discard_count,omitempty"`
	StartingChips       int      `json:"starting_chips,omitempty"`
	TrumpSuit           string   `json:"trump_suit,omitempty"`
	WildCards           []string `json:"wild_cards,omitempty"`
	TableauMode         string   `json:"tableau_mode,omitempty"`
}

type turnStructureJSON struct {
	Phases        []phaseJSON `json:"phases"`
	IsTrickBased  bool        `json:"is_trick_based,omitempty"`
	TricksPerHand int         `json:"tricks_per_hand,omitempty"`
	MaxTurns      int         `json:"max_turns,omitempty"`
}

// phaseJSON is the flat phase representation tagged by Type.
type phaseJSON struct {
	Type string `json:"type"`

	Source             string         `json:"source,omitempty"`
	Target             string         `json:"target,omitempty"`
	Count              int            `json:"count,omitempty"`
	Mandatory          bool           `json:"mandatory,omitempty"`
	MinCards           int            `json:"min_cards,omitempty"`
	MaxCards           int            `json:"max_cards,omitempty"`
	PassIfUnable       bool           `json:"pass_if_unable,omitempty"`
	ValidPlayCondition *conditionJSON `json:"valid_play_condition,omitempty"`

	LeadSuitRequired bool   `json:"lead_suit_required,omitempty"`
	TrumpSuit        string `json:"trump_suit,omitempty"`
	HighCardWins     bool   `json:"high_card_wins,omitempty"`
	BreakingSuit     string `json:"breaking_suit,omitempty"`

	MinBet    int `json:"min_bet,omitempty"`
	MaxRaises int `json:"max_raises,omitempty"`

	SequentialRank bool `json:"sequential_rank,omitempty"`
	AllowChallenge bool `json:"allow_challenge,omitempty"`
	PilePenalty    bool `json:"pile_penalty,omitempty"`

	MinBid                int  `json:"min_bid,omitempty"`
	MaxBid                int  `json:"max_bid,omitempty"`
	AllowNil              bool `json:"allow_nil,omitempty"`
	PointsPerTrickBid     int  `json:"points_per_trick_bid,omitempty"`
	OvertrickPoints       int  `json:"overtrick_points,omitempty"`
	FailedContractPenalty int  `json:"failed_contract_penalty,omitempty"`
	NilBonus              int  `json:"nil_bonus,omitempty"`
	NilPenalty            int  `json:"nil_penalty,omitempty"`
	BagLimit              int  `json:"bag_limit,omitempty"`
	BagPenalty            int  `json:"bag_penalty,omitempty"`
}

type conditionJSON struct {
	Type      string          `json:"type,omitempty"`
	Operator  string          `json:"operator,omitempty"`
	Value     int             `json:"value,omitempty"`
	Rank      string          `json:"rank,omitempty"`
	Suit      string          `json:"suit,omitempty"`
	Reference string          `json:"reference,omitempty"`
	RefLoc    string          `json:"ref_loc,omitempty"`
	Any       []conditionJSON `json:"any,omitempty"`
	All       []conditionJSON `json:"all,omitempty"`
}

type specialEffectJSON struct {
	TriggerRank string `json:"trigger_rank"`
	EffectType  string `json:"effect_type"`
	Target      string `json:"target"`
	Value       int    `json:"value,omitempty"`
}

type winConditionJSON struct {
	Type      string `json:"type"`
	Threshold int32  `json:"threshold,omitempty"`
}

type cardScoringJSON struct {
	Suit    string `json:"suit,omitempty"`
	Rank    string `json:"rank,omitempty"`
	Points  int16  `json:"points"`
	Trigger string `json:"trigger"`
}

type handEvalJSON struct {
	Method   string            `json:"method"`
	Patterns []handPatternJSON `json:"patterns,omitempty"`
}

type handPatternJSON struct {
	Name           string   `json:"name"`
	Priority       uint8    `json:"priority"`
	RequiredCount  uint8    `json:"required_count,omitempty"`
	SameSuitCount  uint8    `json:"same_suit_count,omitempty"`
	SequenceLength uint8    `json:"sequence_length,omitempty"`
	SequenceWrap   bool     `json:"sequence_wrap,omitempty"`
	SameRankGroups []uint8  `json:"same_rank_groups,omitempty"`
	RequiredRanks  []string `json:"required_ranks,omitempty"`
}

// LoadGenomeFromJSON deserializes a genome document.
func LoadGenomeFromJSON(data []byte) (*GameGenome, error) {
	var g GameGenome
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("load genome: %w", err)
	}
	return &g, nil
}

// SaveGenomeToJSON serializes a genome document.
func SaveGenomeToJSON(g *GameGenome) ([]byte, error) {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("save genome: %w", err)
	}
	return data, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (g *GameGenome) UnmarshalJSON(data []byte) error {
	var jg gameGenomeJSON
	if err := json.Unmarshal(data, &jg); err != nil {
		return fmt.Errorf("unmarshal genome: %w", err)
	}

	g.SchemaVersion = jg.SchemaVersion
	g.GenomeID = jg.GenomeID
	g.Generation = jg.Generation
	g.PlayerCount = jg.PlayerCount

	g.Setup = SetupRules{
		CardsPerPlayer:      jg.Setup.CardsPerPlayer,
		InitialDiscardCount: jg.Setup.InitialDiscardCount,
		StartingChips:       jg.Setup.StartingChips,
		TrumpSuit:           parseSuit(jg.Setup.TrumpSuit),
		TableauMode:         parseTableauMode(jg.Setup.TableauMode),
	}
	for _, r := range jg.Setup.WildCards {
		if rank := parseRank(r); rank != RankNone {
			g.Setup.WildCards = append(g.Setup.WildCards, rank)
		}
	}

	g.TurnStructure = TurnStructure{
		IsTrickBased:  jg.TurnStructure.IsTrickBased,
		TricksPerHand: jg.TurnStructure.TricksPerHand,
		MaxTurns:      jg.TurnStructure.MaxTurns,
	}
	g.TurnStructure.Phases = make([]Phase, 0, len(jg.TurnStructure.Phases))
	for i, pj := range jg.TurnStructure.Phases {
		phase, err := parsePhase(pj)
		if err != nil {
			return fmt.Errorf("phase %d: %w", i, err)
		}
		g.TurnStructure.Phases = append(g.TurnStructure.Phases, phase)
	}

	g.Effects = nil
	for _, ej := range jg.SpecialEffects {
		g.Effects = append(g.Effects, SpecialEffect{
			TriggerRank: parseRank(ej.TriggerRank),
			Effect:      parseEffectType(ej.EffectType),
			Target:      parseTarget(ej.Target),
			Value:       uint8(ej.Value),
		})
	}

	g.WinConditions = make([]WinCondition, len(jg.WinConditions))
	for i, wc := range jg.WinConditions {
		g.WinConditions[i] = WinCondition{
			Type:      parseWinConditionType(wc.Type),
			Threshold: wc.Threshold,
		}
	}

	g.CardScoring = nil
	for _, cj := range jg.CardScoring {
		g.CardScoring = append(g.CardScoring, CardScoringRule{
			Suit:    parseSuit(cj.Suit),
			Rank:    parseRank(cj.Rank),
			Points:  cj.Points,
			Trigger: parseScoringTrigger(cj.Trigger),
		})
	}

	if jg.HandEval != nil {
		he := &HandEvaluation{Method: parseEvalMethod(jg.HandEval.Method)}
		for _, pj := range jg.HandEval.Patterns {
			pattern := HandPattern{
				Name:           pj.Name,
				Priority:       pj.Priority,
				RequiredCount:  pj.RequiredCount,
				SameSuitCount:  pj.SameSuitCount,
				SequenceLength: pj.SequenceLength,
				SequenceWrap:   pj.SequenceWrap,
				SameRankGroups: pj.SameRankGroups,
			}
			for _, r := range pj.RequiredRanks {
				pattern.RequiredRanks = append(pattern.RequiredRanks, parseRank(r))
			}
			he.Patterns = append(he.Patterns, pattern)
		}
		g.HandEval = he
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (g *GameGenome) MarshalJSON() ([]byte, error) {
	jg := gameGenomeJSON{
		SchemaVersion: g.SchemaVersion,
		GenomeID:      g.GenomeID,
		Generation:    g.Generation,
		PlayerCount:   g.PlayerCount,
		Setup: setupRulesJSON{
			CardsPerPlayer:      g.Setup.CardsPerPlayer,
			InitialDiscardCount: g.Setup.InitialDiscardCount,
			StartingChips:       g.Setup.StartingChips,
			TrumpSuit:           suitToString(g.Setup.TrumpSuit),
			TableauMode:         tableauModeToString(g.Setup.TableauMode),
		},
		TurnStructure: turnStructureJSON{
			IsTrickBased:  g.TurnStructure.IsTrickBased,
			TricksPerHand: g.TurnStructure.TricksPerHand,
			MaxTurns:      g.TurnStructure.MaxTurns,
		},
	}
	for _, r := range g.Setup.WildCards {
		jg.Setup.WildCards = append(jg.Setup.WildCards, rankToString(r))
	}

	jg.TurnStructure.Phases = make([]phaseJSON, 0, len(g.TurnStructure.Phases))
	for i, phase := range g.TurnStructure.Phases {
		pj, err := marshalPhase(phase)
		if err != nil {
			return nil, fmt.Errorf("phase %d: %w", i, err)
		}
		jg.TurnStructure.Phases = append(jg.TurnStructure.Phases, pj)
	}

	for _, e := range g.Effects {
		jg.SpecialEffects = append(jg.SpecialEffects, specialEffectJSON{
			TriggerRank: rankToString(e.TriggerRank),
			EffectType:  effectTypeToString(e.Effect),
			Target:      targetToString(e.Target),
			Value:       int(e.Value),
		})
	}

	jg.WinConditions = make([]winConditionJSON, len(g.WinConditions))
	for i, wc := range g.WinConditions {
		jg.WinConditions[i] = winConditionJSON{
			Type:      winConditionTypeToString(wc.Type),
			Threshold: wc.Threshold,
		}
	}

	for _, rule := range g.CardScoring {
		jg.CardScoring = append(jg.CardScoring, cardScoringJSON{
			Suit:    suitToString(rule.Suit),
			Rank:    rankToString(rule.Rank),
			Points:  rule.Points,
			Trigger: scoringTriggerToString(rule.Trigger),
		})
	}

	if g.HandEval != nil {
		he := &handEvalJSON{Method: evalMethodToString(g.HandEval.Method)}
		for _, p := range g.HandEval.Patterns {
			pj := handPatternJSON{
				Name:           p.Name,
				Priority:       p.Priority,
				RequiredCount:  p.RequiredCount,
				SameSuitCount:  p.SameSuitCount,
				SequenceLength: p.SequenceLength,
				SequenceWrap:   p.SequenceWrap,
				SameRankGroups: p.SameRankGroups,
			}
			for _, r := range p.RequiredRanks {
				pj.RequiredRanks = append(pj.RequiredRanks, rankToString(r))
			}
			he.Patterns = append(he.Patterns, pj)
		}
		jg.HandEval = he
	}

	return json.Marshal(jg)
}

func parsePhase(pj phaseJSON) (Phase, error) {
	// Accepts both "draw" and Python class names like "DrawPhase".
	phaseType := strings.ToLower(pj.Type)
	phaseType = strings.TrimSuffix(phaseType, "phase")

	switch phaseType {
	case "draw":
		count := pj.Count
		if count == 0 {
			count = 1
		}
		return &DrawPhase{
			Source:    parseLocation(pj.Source),
			Count:     count,
			Mandatory: pj.Mandatory,
		}, nil
	case "play":
		return &PlayPhase{
			Target:             parseLocation(pj.Target),
			MinCards:           pj.MinCards,
			MaxCards:           pj.MaxCards,
			Mandatory:          pj.Mandatory,
			PassIfUnable:       pj.PassIfUnable,
			ValidPlayCondition: parseCondition(pj.ValidPlayCondition),
		}, nil
	case "discard":
		return &DiscardPhase{
			Target:    parseLocation(pj.Target),
			Mandatory: pj.Mandatory,
		}, nil
	case "trick":
		return &TrickPhase{
			LeadSuitRequired: pj.LeadSuitRequired,
			TrumpSuit:        parseSuit(pj.TrumpSuit),
			HighCardWins:     pj.HighCardWins,
			BreakingSuit:     parseSuit(pj.BreakingSuit),
		}, nil
	case "betting":
		return &BettingPhase{
			MinBet:    pj.MinBet,
			MaxRaises: pj.MaxRaises,
		}, nil
	case "claim":
		return &ClaimPhase{
			SequentialRank: pj.SequentialRank,
			AllowChallenge: pj.AllowChallenge,
			PilePenalty:    pj.PilePenalty,
		}, nil
	case "bidding":
		return &BiddingPhase{
			MinBid:                pj.MinBid,
			MaxBid:                pj.MaxBid,
			AllowNil:              pj.AllowNil,
			PointsPerTrickBid:     pj.PointsPerTrickBid,
			OvertrickPoints:       pj.OvertrickPoints,
			FailedContractPenalty: pj.FailedContractPenalty,
			NilBonus:              pj.NilBonus,
			NilPenalty:            pj.NilPenalty,
			BagLimit:              pj.BagLimit,
			BagPenalty:            pj.BagPenalty,
		}, nil
	}
	return nil, fmt.Errorf("unknown phase type %q", pj.Type)
}

func marshalPhase(phase Phase) (phaseJSON, error) {
	switch p := phase.(type) {
	case *DrawPhase:
		return phaseJSON{
			Type:      "draw",
			Source:    locationToString(p.Source),
			Count:     p.Count,
			Mandatory: p.Mandatory,
		}, nil
	case *PlayPhase:
		return phaseJSON{
			Type:               "play",
			Target:             locationToString(p.Target),
			MinCards:           p.MinCards,
			MaxCards:           p.MaxCards,
			Mandatory:          p.Mandatory,
			PassIfUnable:       p.PassIfUnable,
			ValidPlayCondition: marshalCondition(p.ValidPlayCondition),
		}, nil
	case *DiscardPhase:
		return phaseJSON{
			Type:      "discard",
			Target:    locationToString(p.Target),
			Mandatory: p.Mandatory,
		}, nil
	case *TrickPhase:
		return phaseJSON{
			Type:             "trick",
			LeadSuitRequired: p.LeadSuitRequired,
			TrumpSuit:        suitToString(p.TrumpSuit),
			HighCardWins:     p.HighCardWins,
			BreakingSuit:     suitToString(p.BreakingSuit),
		}, nil
	case *BettingPhase:
		return phaseJSON{
			Type:      "betting",
			MinBet:    p.MinBet,
			MaxRaises: p.MaxRaises,
		}, nil
	case *ClaimPhase:
		return phaseJSON{
			Type:           "claim",
			SequentialRank: p.SequentialRank,
			AllowChallenge: p.AllowChallenge,
			PilePenalty:    p.PilePenalty,
		}, nil
	case *BiddingPhase:
		return phaseJSON{
			Type:                  "bidding",
			MinBid:                p.MinBid,
			MaxBid:                p.MaxBid,
			AllowNil:              p.AllowNil,
			PointsPerTrickBid:     p.PointsPerTrickBid,
			OvertrickPoints:       p.OvertrickPoints,
			FailedContractPenalty: p.FailedContractPenalty,
			NilBonus:              p.NilBonus,
			NilPenalty:            p.NilPenalty,
			BagLimit:              p.BagLimit,
			BagPenalty:            p.BagPenalty,
		}, nil
	}
	return phaseJSON{}, fmt.Errorf("unknown phase %T", phase)
}

func parseCondition(cj *conditionJSON) *Condition {
	if cj == nil {
		return nil
	}
	cond := &Condition{
		Type:      parseConditionType(cj.Type),
		Operator:  parseOperator(cj.Operator),
		Value:     cj.Value,
		Rank:      parseRank(cj.Rank),
		Suit:      parseSuit(cj.Suit),
		Reference: parseCardRef(cj.Reference),
		RefLoc:    parseLocation(cj.RefLoc),
	}
	for i := range cj.Any {
		cond.Any = append(cond.Any, *parseCondition(&cj.Any[i]))
	}
	for i := range cj.All {
		cond.All = append(cond.All, *parseCondition(&cj.All[i]))
	}
	return cond
}

func marshalCondition(c *Condition) *conditionJSON {
	if c == nil {
		return nil
	}
	cj := &conditionJSON{
		Type:      conditionTypeToString(c.Type),
		Operator:  operatorToString(c.Operator),
		Value:     c.Value,
		Rank:      rankToString(c.Rank),
		Suit:      suitToString(c.Suit),
		Reference: cardRefToString(c.Reference),
		RefLoc:    locationToString(c.RefLoc),
	}
	for i := range c.Any {
		cj.Any = append(cj.Any, *marshalCondition(&c.Any[i]))
	}
	for i := range c.All {
		cj.All = append(cj.All, *marshalCondition(&c.All[i]))
	}
	return cj
}

func parseLocation(s string) Location {
	switch strings.ToLower(s) {
	case "deck":
		return LocationDeck
	case "hand":
		return LocationHand
	case "discard":
		return LocationDiscard
	case "tableau":
		return LocationTableau
	case "opponent_hand":
		return LocationOpponentHand
	}
	return LocationDiscard
}

func locationToString(loc Location) string {
	switch loc {
	case LocationDeck:
		return "deck"
	case LocationHand:
		return "hand"
	case LocationDiscard:
		return "discard"
	case LocationTableau:
		return "tableau"
	case LocationOpponentHand:
		return "opponent_hand"
	}
	return "discard"
}

func parseSuit(s string) uint8 {
	switch strings.ToLower(s) {
	case "hearts", "h":
		return 0
	case "diamonds", "d":
		return 1
	case "clubs", "c":
		return 2
	case "spades", "s":
		return 3
	}
	return SuitNone
}

func suitToString(suit uint8) string {
	switch suit {
	case 0:
		return "hearts"
	case 1:
		return "diamonds"
	case 2:
		return "clubs"
	case 3:
		return "spades"
	}
	return ""
}

var rankStrings = [13]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

func parseRank(s string) uint8 {
	for i, name := range rankStrings {
		if strings.EqualFold(s, name) {
			return uint8(i)
		}
	}
	return RankNone
}

func rankToString(rank uint8) string {
	if rank > 12 {
		return ""
	}
	return rankStrings[rank]
}

func parseTableauMode(s string) TableauMode {
	if strings.ToLower(s) == "war" {
		return TableauModeWar
	}
	return TableauModeNone
}

func tableauModeToString(mode TableauMode) string {
	if mode == TableauModeWar {
		return "war"
	}
	return ""
}

func parseWinConditionType(s string) WinConditionType {
	switch strings.ToLower(s) {
	case "empty_hand":
		return WinTypeEmptyHand
	case "high_score":
		return WinTypeHighScore
	case "first_to_score":
		return WinTypeFirstToScore
	case "capture_all":
		return WinTypeCaptureAll
	case "low_score":
		return WinTypeLowScore
	case "all_hands_empty":
		return WinTypeAllHandsEmpty
	case "best_hand":
		return WinTypeBestHand
	case "most_captured":
		return WinTypeMostCaptured
	}
	// Unknown win conditions survive a round trip as a value the
	// evaluator ignores.
	return WinConditionType(255)
}

func winConditionTypeToString(t WinConditionType) string {
	switch t {
	case WinTypeEmptyHand:
		return "empty_hand"
	case WinTypeHighScore:
		return "high_score"
	case WinTypeFirstToScore:
		return "first_to_score"
	case WinTypeCaptureAll:
		return "capture_all"
	case WinTypeLowScore:
		return "low_score"
	case WinTypeAllHandsEmpty:
		return "all_hands_empty"
	case WinTypeBestHand:
		return "best_hand"
	case WinTypeMostCaptured:
		return "most_captured"
	}
	return "unknown"
}

func parseEffectType(s string) EffectType {
	switch strings.ToLower(s) {
	case "skip_next":
		return EffectSkipNext
	case "reverse", "reverse_direction":
		return EffectReverse
	case "draw_cards":
		return EffectDrawCards
	case "extra_turn":
		return EffectExtraTurn
	case "force_discard":
		return EffectForceDiscard
	case "wild_card", "wild":
		return EffectWildCard
	case "block_next":
		return EffectBlockNext
	case "swap_hands":
		return EffectSwapHands
	case "steal_card":
		return EffectStealCard
	case "peek_hand":
		return EffectPeekHand
	}
	return EffectWildCard
}

func effectTypeToString(e EffectType) string {
	switch e {
	case EffectSkipNext:
		return "skip_next"
	case EffectReverse:
		return "reverse_direction"
	case EffectDrawCards:
		return "draw_cards"
	case EffectExtraTurn:
		return "extra_turn"
	case EffectForceDiscard:
		return "force_discard"
	case EffectWildCard:
		return "wild_card"
	case EffectBlockNext:
		return "block_next"
	case EffectSwapHands:
		return "swap_hands"
	case EffectStealCard:
		return "steal_card"
	case EffectPeekHand:
		return "peek_hand"
	}
	return "wild_card"
}

func parseTarget(s string) TargetSelector {
	switch strings.ToLower(s) {
	case "self":
		return TargetSelf
	case "next_player":
		return TargetNextPlayer
	case "prev_player", "previous_player":
		return TargetPrevPlayer
	case "all_opponents":
		return TargetAllOpponents
	case "left_opponent":
		return TargetLeftOpponent
	case "right_opponent":
		return TargetRightOpponent
	}
	return TargetNextPlayer
}

func targetToString(t TargetSelector) string {
	switch t {
	case TargetSelf:
		return "self"
	case TargetNextPlayer:
		return "next_player"
	case TargetPrevPlayer:
		return "prev_player"
	case TargetAllOpponents:
		return "all_opponents"
	case TargetLeftOpponent:
		return "left_opponent"
	case TargetRightOpponent:
		return "right_opponent"
	}
	return "next_player"
}

func parseScoringTrigger(s string) ScoringTrigger {
	switch strings.ToLower(s) {
	case "trick_win":
		return TriggerTrickWin
	case "capture":
		return TriggerCapture
	case "play":
		return TriggerPlay
	case "hand_end":
		return TriggerHandEnd
	}
	return TriggerTrickWin
}

func scoringTriggerToString(t ScoringTrigger) string {
	switch t {
	case TriggerTrickWin:
		return "trick_win"
	case TriggerCapture:
		return "capture"
	case TriggerPlay:
		return "play"
	case TriggerHandEnd:
		return "hand_end"
	}
	return "trick_win"
}

func parseConditionType(s string) ConditionType {
	switch strings.ToLower(s) {
	case "matches_suit":
		return CondMatchesSuit
	case "matches_rank":
		return CondMatchesRank
	case "is_rank":
		return CondIsRank
	case "is_suit":
		return CondIsSuit
	case "beats_top":
		return CondBeatsTop
	case "location_size":
		return CondLocationSize
	case "hand_size":
		return CondHandSize
	case "has_set_of_n":
		return CondHasSetOfN
	case "has_matching_pair":
		return CondHasMatchingPair
	}
	return CondMatchesSuit
}

func conditionTypeToString(t ConditionType) string {
	switch t {
	case CondMatchesSuit:
		return "matches_suit"
	case CondMatchesRank:
		return "matches_rank"
	case CondIsRank:
		return "is_rank"
	case CondIsSuit:
		return "is_suit"
	case CondBeatsTop:
		return "beats_top"
	case CondLocationSize:
		return "location_size"
	case CondHandSize:
		return "hand_size"
	case CondHasSetOfN:
		return "has_set_of_n"
	case CondHasMatchingPair:
		return "has_matching_pair"
	}
	return "matches_suit"
}

func parseOperator(s string) Operator {
	switch strings.ToUpper(s) {
	case "EQ", "==":
		return OpEQ
	case "NE", "!=":
		return OpNE
	case "LT", "<":
		return OpLT
	case "GT", ">":
		return OpGT
	case "LE", "<=":
		return OpLE
	case "GE", ">=":
		return OpGE
	}
	return OpEQ
}

func operatorToString(op Operator) string {
	switch op {
	case OpEQ:
		return "EQ"
	case OpNE:
		return "NE"
	case OpLT:
		return "LT"
	case OpGT:
		return "GT"
	case OpLE:
		return "LE"
	case OpGE:
		return "GE"
	}
	return "EQ"
}

func parseCardRef(s string) CardRef {
	if strings.ToLower(s) == "tableau_top" {
		return RefTableauTop
	}
	return RefTopDiscard
}

func cardRefToString(ref CardRef) string {
	if ref == RefTableauTop {
		return "tableau_top"
	}
	return "top_discard"
}

func parseEvalMethod(s string) HandEvaluationMethod {
	switch strings.ToLower(s) {
	case "high_card":
		return EvalMethodHighCard
	case "pattern_match":
		return EvalMethodPatternMatch
	}
	return EvalMethodNone
}

func evalMethodToString(m HandEvaluationMethod) string {
	switch m {
	case EvalMethodHighCard:
		return "high_card"
	case EvalMethodPatternMatch:
		return "pattern_match"
	}
	return "none"
}
