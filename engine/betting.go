package engine

import (
	"github.com/signalnine/deckforge/gosim/genome"
)

// GenerateBettingMoves enumerates legal betting actions for a player.
// Folded, all-in, and broke players cannot act and get no moves.
func GenerateBettingMoves(s *GameState, phase *genome.BettingPhase, playerID, phaseIdx int) []Move {
	player := s.Players[playerID]
	if player.HasFolded || player.IsAllIn || player.Chips <= 0 {
		return nil
	}

	var moves []Move
	add := func(a BettingAction) {
		moves = append(moves, Move{Kind: MoveBetting, PhaseIndex: phaseIdx, Action: a})
	}

	toCall := s.CurrentBet - player.CurrentBet
	if toCall <= 0 {
		add(ActionCheck)
		if player.Chips >= phase.MinBet {
			add(ActionBet)
		} else if player.Chips > 0 {
			add(ActionAllIn)
		}
		return moves
	}

	if player.Chips >= toCall {
		add(ActionCall)
		if player.Chips >= toCall+phase.MinBet && s.RaiseCount < phase.MaxRaises {
			add(ActionRaise)
		}
	}
	if player.Chips > 0 && player.Chips < toCall {
		add(ActionAllIn)
	}
	add(ActionFold)
	return moves
}

// ApplyBettingMove applies one betting action for the active player.
// It never advances phase or turn; round completion is the caller's job.
func ApplyBettingMove(s *GameState, action BettingAction, phase *genome.BettingPhase) *GameState {
	player := s.Players[s.ActivePlayer]

	switch action {
	case ActionCheck:
		return s

	case ActionBet:
		player.Chips -= phase.MinBet
		player.CurrentBet = phase.MinBet
		player.IsAllIn = player.Chips <= 0
		cp := s.withPlayer(s.ActivePlayer, player)
		cp.Pot = s.Pot + phase.MinBet
		cp.CurrentBet = phase.MinBet
		return cp

	case ActionCall:
		toCall := s.CurrentBet - player.CurrentBet
		if toCall < 0 {
			toCall = 0
		}
		player.Chips -= toCall
		player.CurrentBet = s.CurrentBet
		player.IsAllIn = player.Chips <= 0
		cp := s.withPlayer(s.ActivePlayer, player)
		cp.Pot = s.Pot + toCall
		return cp

	case ActionRaise:
		toCall := s.CurrentBet - player.CurrentBet
		raiseAmount := toCall + phase.MinBet
		newCurrentBet := s.CurrentBet + phase.MinBet
		player.Chips -= raiseAmount
		player.CurrentBet = newCurrentBet
		player.IsAllIn = player.Chips <= 0
		cp := s.withPlayer(s.ActivePlayer, player)
		cp.Pot = s.Pot + raiseAmount
		cp.CurrentBet = newCurrentBet
		cp.RaiseCount = s.RaiseCount + 1
		return cp

	case ActionAllIn:
		amount := player.Chips
		player.Chips = 0
		player.CurrentBet += amount
		player.IsAllIn = true
		cp := s.withPlayer(s.ActivePlayer, player)
		cp.Pot = s.Pot + amount
		// An under-calling all-in never lowers the bet to match.
		if player.CurrentBet > s.CurrentBet {
			cp.CurrentBet = player.CurrentBet
		}
		return cp

	case ActionFold:
		player.HasFolded = true
		return s.withPlayer(s.ActivePlayer, player)
	}
	return s
}

// CountActivePlayers counts players who have not folded.
func CountActivePlayers(s *GameState) int {
	count := 0
	for i := range s.Players {
		if !s.Players[i].HasFolded {
			count++
		}
	}
	return count
}

// CountActingPlayers counts players who can still take betting actions:
// not folded, not all-in, and holding chips.
func CountActingPlayers(s *GameState) int {
	count := 0
	for i := range s.Players {
		p := &s.Players[i]
		if !p.HasFolded && !p.IsAllIn && p.Chips > 0 {
			count++
		}
	}
	return count
}

// AllBetsMatched reports whether every player still able to act has matched
// the current bet.
func AllBetsMatched(s *GameState) bool {
	for i := range s.Players {
		p := &s.Players[i]
		if !p.HasFolded && !p.IsAllIn && p.CurrentBet != s.CurrentBet {
			return false
		}
	}
	return true
}

// RunBettingRound plays out a complete betting round, asking choose to pick
// among the legal actions for each player in seat order. The round ends when
// only one player remains, when nobody can act and bets are matched, or when
// everyone flagged as needing to act has acted with bets matched. Any
// bet/raise/bet-increasing all-in reopens the action for the other players.
// Per-round bet state is reset and the phase advances before returning.
func RunBettingRound(s *GameState, phase *genome.BettingPhase, phaseIdx int, g *genome.GameGenome, choose func(*GameState, []Move) Move) *GameState {
	n := len(s.Players)
	needsToAct := make([]bool, n)
	for i := range s.Players {
		p := &s.Players[i]
		needsToAct[i] = !p.HasFolded && !p.IsAllIn && p.Chips > 0
	}

	// Hard cap so a degenerate genome cannot spin forever.
	maxActions := n * (phase.MaxRaises + 2) * 2
	actor := s.ActivePlayer

	for actions := 0; actions < maxActions; actions++ {
		if bettingRoundDone(s, needsToAct) {
			break
		}

		p := &s.Players[actor]
		if p.HasFolded || p.IsAllIn || p.Chips <= 0 || !needsToAct[actor] {
			actor = (actor + 1) % n
			continue
		}

		cp := s.clone()
		cp.ActivePlayer = actor
		s = cp

		moves := GenerateBettingMoves(s, phase, actor, phaseIdx)
		if len(moves) == 0 {
			needsToAct[actor] = false
			actor = (actor + 1) % n
			continue
		}

		move := choose(s, moves)
		prevBet := s.CurrentBet
		s = ApplyBettingMove(s, move.Action, phase)
		needsToAct[actor] = false

		if s.CurrentBet > prevBet {
			// Action reopens for everyone else who can still act.
			for i := range s.Players {
				if i == actor {
					continue
				}
				q := &s.Players[i]
				needsToAct[i] = !q.HasFolded && !q.IsAllIn && q.Chips > 0
			}
		}
		actor = (actor + 1) % n
	}

	// Round over: per-round bets reset, pot stays.
	cp := s.clone()
	players := make([]PlayerState, n)
	copy(players, s.Players)
	for i := range players {
		players[i].CurrentBet = 0
	}
	cp.Players = players
	cp.CurrentBet = 0
	cp.RaiseCount = 0
	return advance(cp, g)
}

func bettingRoundDone(s *GameState, needsToAct []bool) bool {
	if CountActivePlayers(s) <= 1 {
		return true
	}
	if CountActingPlayers(s) == 0 && AllBetsMatched(s) {
		return true
	}
	for i := range needsToAct {
		if needsToAct[i] {
			p := &s.Players[i]
			if !p.HasFolded && !p.IsAllIn && p.Chips > 0 {
				return false
			}
		}
	}
	return AllBetsMatched(s)
}

// ResolveShowdown awards the pot. With one non-folded player the pot is
// theirs; otherwise the best five-card poker hand among non-folded players
// wins, falling back to the first contender when hands are not comparable.
func ResolveShowdown(s *GameState) *GameState {
	remaining := CountActivePlayers(s)
	if remaining == 0 || s.Pot == 0 {
		return s
	}

	winner := -1
	if remaining == 1 {
		for i := range s.Players {
			if !s.Players[i].HasFolded {
				winner = i
				break
			}
		}
	} else {
		var best PokerHand
		for i := range s.Players {
			if s.Players[i].HasFolded {
				continue
			}
			hand := EvaluatePokerHand(s.Players[i].Hand)
			if winner == -1 || ComparePokerHands(hand, best) > 0 {
				winner = i
				best = hand
			}
		}
	}

	if winner < 0 {
		return s
	}
	return AwardPot(s, winner)
}

// AwardPot moves the pot into a player's chip stack.
func AwardPot(s *GameState, playerID int) *GameState {
	player := s.Players[playerID]
	player.Chips += s.Pot
	cp := s.withPlayer(playerID, player)
	cp.Pot = 0
	return cp
}
