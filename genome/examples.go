package genome

// Suit constants for example genomes, matching the engine's encoding.
const (
	SuitHearts   uint8 = 0
	SuitDiamonds uint8 = 1
	SuitClubs    uint8 = 2
	SuitSpades   uint8 = 3
)

// Rank index constants (0=A, 1=2, ... 12=K).
const (
	RankAce   uint8 = 0
	RankTwo   uint8 = 1
	RankSeven uint8 = 6
	RankEight uint8 = 7
	RankJack  uint8 = 10
	RankQueen uint8 = 11
	RankKing  uint8 = 12
)

// CreateWarGenome creates the War card game genome.
// War is a pure luck game with zero meaningful decisions.
func CreateWarGenome() *GameGenome {
	return &GameGenome{
		SchemaVersion: "1.0",
		GenomeID:      "war-baseline",
		PlayerCount:   2,
		Setup: SetupRules{
			CardsPerPlayer: 26,
			TableauMode:    TableauModeWar,
		},
		TurnStructure: TurnStructure{
			Phases: []Phase{
				&PlayPhase{
					Target:    LocationTableau,
					MinCards:  1,
					MaxCards:  1,
					Mandatory: true,
				},
			},
			MaxTurns: 500,
		},
		WinConditions: []WinCondition{
			{Type: WinTypeCaptureAll},
		},
	}
}

// CreateBettingWarGenome creates War with a betting round before each play.
func CreateBettingWarGenome() *GameGenome {
	g := CreateWarGenome()
	g.GenomeID = "war-betting"
	g.Setup.StartingChips = 100
	g.TurnStructure.Phases = append(
		[]Phase{&BettingPhase{MinBet: 5, MaxRaises: 3}},
		g.TurnStructure.Phases...,
	)
	return g
}

// CreateHeartsGenome creates classic 4-player Hearts.
// Must follow suit, hearts can't be led until broken, lowest score wins.
func CreateHeartsGenome() *GameGenome {
	return &GameGenome{
		SchemaVersion: "1.0",
		GenomeID:      "hearts",
		PlayerCount:   4,
		Setup: SetupRules{
			CardsPerPlayer: 13,
		},
		TurnStructure: TurnStructure{
			Phases: []Phase{
				&TrickPhase{
					LeadSuitRequired: true,
					TrumpSuit:        SuitNone,
					HighCardWins:     true,
					BreakingSuit:     SuitHearts,
				},
			},
			IsTrickBased:  true,
			TricksPerHand: 13,
			MaxTurns:      400,
		},
		CardScoring: []CardScoringRule{
			{Suit: SuitHearts, Rank: RankNone, Points: 1, Trigger: TriggerTrickWin},
			{Suit: SuitSpades, Rank: RankQueen, Points: 13, Trigger: TriggerTrickWin},
		},
		WinConditions: []WinCondition{
			{Type: WinTypeLowScore, Threshold: 26},
			{Type: WinTypeAllHandsEmpty},
		},
	}
}

// CreateSpadesGenome creates Spades with contract bidding.
// Fixed spade trump, bid once per hand, contract scoring at hand end.
func CreateSpadesGenome() *GameGenome {
	return &GameGenome{
		SchemaVersion: "1.0",
		GenomeID:      "spades",
		PlayerCount:   4,
		Setup: SetupRules{
			CardsPerPlayer: 13,
			TrumpSuit:      SuitSpades,
		},
		TurnStructure: TurnStructure{
			Phases: []Phase{
				&BiddingPhase{
					MinBid:                0,
					MaxBid:                13,
					AllowNil:              true,
					PointsPerTrickBid:     10,
					OvertrickPoints:       1,
					FailedContractPenalty: 10,
					NilBonus:              100,
					NilPenalty:            100,
					BagLimit:              10,
					BagPenalty:            100,
				},
				&TrickPhase{
					LeadSuitRequired: true,
					TrumpSuit:        SuitSpades,
					HighCardWins:     true,
					BreakingSuit:     SuitSpades,
				},
			},
			IsTrickBased:  true,
			TricksPerHand: 13,
			MaxTurns:      600,
		},
		WinConditions: []WinCondition{
			{Type: WinTypeHighScore, Threshold: 100},
			{Type: WinTypeAllHandsEmpty},
		},
	}
}

// CreateCrazyEightsGenome creates Crazy 8s.
// Match suit or rank of the top discard, 8s are wild, first empty hand wins.
func CreateCrazyEightsGenome() *GameGenome {
	return &GameGenome{
		SchemaVersion: "1.0",
		GenomeID:      "crazy-eights",
		PlayerCount:   2,
		Setup: SetupRules{
			CardsPerPlayer:      7,
			InitialDiscardCount: 1,
			WildCards:           []uint8{RankEight},
		},
		TurnStructure: TurnStructure{
			Phases: []Phase{
				&DrawPhase{Source: LocationDeck, Count: 1},
				&PlayPhase{
					Target:       LocationDiscard,
					MinCards:     1,
					MaxCards:     1,
					Mandatory:    true,
					PassIfUnable: true,
					ValidPlayCondition: &Condition{
						Any: []Condition{
							{Type: CondMatchesSuit, Reference: RefTopDiscard},
							{Type: CondMatchesRank, Reference: RefTopDiscard},
						},
					},
				},
			},
			MaxTurns: 300,
		},
		WinConditions: []WinCondition{
			{Type: WinTypeEmptyHand},
		},
	}
}

// CreateUnoStyleGenome creates Crazy 8s with rank-triggered effects
// (skip, reverse, draw two).
func CreateUnoStyleGenome() *GameGenome {
	g := CreateCrazyEightsGenome()
	g.GenomeID = "uno-style"
	g.PlayerCount = 4
	g.Effects = []SpecialEffect{
		{TriggerRank: RankTwo, Effect: EffectDrawCards, Target: TargetNextPlayer, Value: 2},
		{TriggerRank: RankJack, Effect: EffectSkipNext, Target: TargetNextPlayer, Value: 1},
		{TriggerRank: RankQueen, Effect: EffectReverse, Target: TargetSelf},
		{TriggerRank: RankAce, Effect: EffectExtraTurn, Target: TargetSelf},
	}
	return g
}

// CreateCheatGenome creates a Cheat/BS bluffing game. Claims are sequential
// by rank, challengeable, and the challenge loser takes the pile.
func CreateCheatGenome() *GameGenome {
	return &GameGenome{
		SchemaVersion: "1.0",
		GenomeID:      "cheat",
		PlayerCount:   3,
		Setup: SetupRules{
			CardsPerPlayer: 17,
		},
		TurnStructure: TurnStructure{
			Phases: []Phase{
				&ClaimPhase{
					SequentialRank: true,
					AllowChallenge: true,
					PilePenalty:    true,
				},
			},
			MaxTurns: 400,
		},
		WinConditions: []WinCondition{
			{Type: WinTypeEmptyHand},
		},
	}
}

// CreateGoFishGenome creates simplified Go Fish: draw from the opponent's
// hand, discard freely, first empty hand wins.
func CreateGoFishGenome() *GameGenome {
	return &GameGenome{
		SchemaVersion: "1.0",
		GenomeID:      "go-fish",
		PlayerCount:   2,
		Setup: SetupRules{
			CardsPerPlayer: 7,
		},
		TurnStructure: TurnStructure{
			Phases: []Phase{
				&DrawPhase{Source: LocationOpponentHand, Count: 1, Mandatory: true},
				&DiscardPhase{Target: LocationDiscard},
			},
			MaxTurns: 300,
		},
		WinConditions: []WinCondition{
			{Type: WinTypeEmptyHand},
		},
	}
}

// CreateDrawPokerGenome creates five-card draw with one betting round per
// turn cycle and a best-hand showdown win.
func CreateDrawPokerGenome() *GameGenome {
	return &GameGenome{
		SchemaVersion: "1.0",
		GenomeID:      "draw-poker",
		PlayerCount:   2,
		Setup: SetupRules{
			CardsPerPlayer: 5,
			StartingChips:  100,
		},
		TurnStructure: TurnStructure{
			Phases: []Phase{
				&BettingPhase{MinBet: 5, MaxRaises: 3},
				&DiscardPhase{Target: LocationDiscard},
				&DrawPhase{Source: LocationDeck, Count: 1},
			},
			MaxTurns: 200,
		},
		WinConditions: []WinCondition{
			{Type: WinTypeBestHand},
		},
	}
}

// AllExampleGenomes returns every example, keyed by genome ID.
func AllExampleGenomes() map[string]*GameGenome {
	examples := []*GameGenome{
		CreateWarGenome(),
		CreateBettingWarGenome(),
		CreateHeartsGenome(),
		CreateSpadesGenome(),
		CreateCrazyEightsGenome(),
		CreateUnoStyleGenome(),
		CreateCheatGenome(),
		CreateGoFishGenome(),
		CreateDrawPokerGenome(),
	}
	out := make(map[string]*GameGenome, len(examples))
	for _, g := range examples {
		out[g.GenomeID] = g
	}
	return out
}
