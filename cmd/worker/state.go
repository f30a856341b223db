package main

import (
	"github.com/signalnine/deckforge/gosim/engine"
)

// serializedState is the snake_case JSON mirror of engine.GameState used on
// the wire. It stays flat and explicit so the driver side never has to track
// Go field renames.
type serializedState struct {
	Players       []serializedPlayer    `json:"players"`
	Deck          []serializedCard      `json:"deck"`
	Discard       []serializedCard      `json:"discard"`
	Tableau       [][]serializedCard    `json:"tableau,omitempty"`
	Turn          int                   `json:"turn"`
	ActivePlayer  int                   `json:"active_player"`
	CurrentPhase  int                   `json:"current_phase"`
	Pot           int                   `json:"pot"`
	CurrentBet    int                   `json:"current_bet"`
	RaiseCount    int                   `json:"raise_count"`
	CurrentTrick  []serializedTrickCard `json:"current_trick,omitempty"`
	HeartsBroken  bool                  `json:"hearts_broken"`
	Claim         *serializedClaim      `json:"claim,omitempty"`
	SkipCount     int                   `json:"skip_count"`
	PlayDirection int                   `json:"play_direction"`
}

type serializedPlayer struct {
	Hand       []serializedCard `json:"hand"`
	Score      int              `json:"score"`
	Chips      int              `json:"chips"`
	CurrentBet int              `json:"current_bet"`
	HasFolded  bool             `json:"has_folded"`
	IsAllIn    bool             `json:"is_all_in"`
	Bid        int              `json:"bid"`
	BidNil     bool             `json:"bid_nil"`
	TricksWon  int              `json:"tricks_won"`
	Bags       int              `json:"bags"`
}

type serializedCard struct {
	Rank uint8 `json:"rank"` // 0-12 (A,2-10,J,Q,K)
	Suit uint8 `json:"suit"` // 0-3 (H,D,C,S)
}

type serializedTrickCard struct {
	PlayerID int            `json:"player_id"`
	Card     serializedCard `json:"card"`
}

type serializedClaim struct {
	ClaimerID    int              `json:"claimer_id"`
	ClaimedRank  uint8            `json:"claimed_rank"`
	ClaimedCount int              `json:"claimed_count"`
	CardsPlayed  []serializedCard `json:"cards_played"`
}

func newSerializedState(s *engine.GameState) *serializedState {
	out := &serializedState{
		Players:       make([]serializedPlayer, len(s.Players)),
		Deck:          cardsOut(s.Deck),
		Discard:       cardsOut(s.Discard),
		Turn:          s.Turn,
		ActivePlayer:  s.ActivePlayer,
		CurrentPhase:  s.CurrentPhase,
		Pot:           s.Pot,
		CurrentBet:    s.CurrentBet,
		RaiseCount:    s.RaiseCount,
		HeartsBroken:  s.HeartsBroken,
		SkipCount:     s.SkipCount,
		PlayDirection: s.PlayDirection,
	}
	for i, p := range s.Players {
		out.Players[i] = serializedPlayer{
			Hand:       cardsOut(p.Hand),
			Score:      p.Score,
			Chips:      p.Chips,
			CurrentBet: p.CurrentBet,
			HasFolded:  p.HasFolded,
			IsAllIn:    p.IsAllIn,
			Bid:        p.Bid,
			BidNil:     p.BidNil,
			TricksWon:  p.TricksWon,
			Bags:       p.Bags,
		}
	}
	for _, pile := range s.Tableau {
		out.Tableau = append(out.Tableau, cardsOut(pile))
	}
	for _, tc := range s.CurrentTrick {
		out.CurrentTrick = append(out.CurrentTrick, serializedTrickCard{
			PlayerID: tc.PlayerID,
			Card:     serializedCard{Rank: tc.Card.Rank, Suit: tc.Card.Suit},
		})
	}
	if s.CurrentClaim != nil {
		out.Claim = &serializedClaim{
			ClaimerID:    s.CurrentClaim.ClaimerID,
			ClaimedRank:  s.CurrentClaim.ClaimedRank,
			ClaimedCount: s.CurrentClaim.ClaimedCount,
			CardsPlayed:  cardsOut(s.CurrentClaim.CardsPlayed),
		}
	}
	return out
}

func (ss *serializedState) toState() *engine.GameState {
	s := &engine.GameState{
		Players:       make([]engine.PlayerState, len(ss.Players)),
		Deck:          cardsIn(ss.Deck),
		Discard:       cardsIn(ss.Discard),
		Turn:          ss.Turn,
		ActivePlayer:  ss.ActivePlayer,
		CurrentPhase:  ss.CurrentPhase,
		Pot:           ss.Pot,
		CurrentBet:    ss.CurrentBet,
		RaiseCount:    ss.RaiseCount,
		HeartsBroken:  ss.HeartsBroken,
		SkipCount:     ss.SkipCount,
		PlayDirection: ss.PlayDirection,
	}
	if s.PlayDirection == 0 {
		s.PlayDirection = 1
	}
	for i, p := range ss.Players {
		s.Players[i] = engine.PlayerState{
			Hand:       cardsIn(p.Hand),
			Score:      p.Score,
			Chips:      p.Chips,
			CurrentBet: p.CurrentBet,
			HasFolded:  p.HasFolded,
			IsAllIn:    p.IsAllIn,
			Bid:        p.Bid,
			BidNil:     p.BidNil,
			TricksWon:  p.TricksWon,
			Bags:       p.Bags,
		}
	}
	for _, pile := range ss.Tableau {
		s.Tableau = append(s.Tableau, cardsIn(pile))
	}
	for _, tc := range ss.CurrentTrick {
		s.CurrentTrick = append(s.CurrentTrick, engine.TrickCard{
			PlayerID: tc.PlayerID,
			Card:     engine.Card{Rank: tc.Card.Rank, Suit: tc.Card.Suit},
		})
	}
	if ss.Claim != nil {
		s.CurrentClaim = &engine.Claim{
			ClaimerID:    ss.Claim.ClaimerID,
			ClaimedRank:  ss.Claim.ClaimedRank,
			ClaimedCount: ss.Claim.ClaimedCount,
			CardsPlayed:  cardsIn(ss.Claim.CardsPlayed),
		}
	}
	return s
}

func cardsOut(cards []engine.Card) []serializedCard {
	out := make([]serializedCard, len(cards))
	for i, c := range cards {
		out[i] = serializedCard{Rank: c.Rank, Suit: c.Suit}
	}
	return out
}

func cardsIn(cards []serializedCard) []engine.Card {
	out := make([]engine.Card, len(cards))
	for i, c := range cards {
		out[i] = engine.Card{Rank: c.Rank, Suit: c.Suit}
	}
	return out
}
