package engine

// makeClaim plays a card face-down to the discard pile under a declared
// rank. The claimed rank is not chosen by the player: it cycles A,2,...,K
// with the turn counter, so rank = turn mod 13.
func makeClaim(s *GameState, playerID, cardIndex int) *GameState {
	hand := s.Players[playerID].Hand
	if cardIndex < 0 || cardIndex >= len(hand) {
		return s
	}

	player := s.Players[playerID]
	newHand, card := removeCardAt(player.Hand, cardIndex)
	player.Hand = newHand
	s = s.withPlayer(playerID, player)

	cp := s.clone()
	cp.Discard = appendCards(s.Discard, card)
	cp.CurrentClaim = &Claim{
		ClaimerID:    playerID,
		ClaimedRank:  uint8(s.Turn % 13),
		ClaimedCount: 1,
		CardsPlayed:  []Card{card},
	}
	return cp
}

// resolveChallenge settles a challenged claim. The claim is truthful when
// every card actually played matches the claimed rank. The loser (the
// challenger on a truthful claim, otherwise the claimer) takes the entire
// discard pile into hand; claim and discard are cleared either way.
func resolveChallenge(s *GameState, challengerID int) *GameState {
	claim := s.CurrentClaim
	if claim == nil {
		return s
	}

	truthful := true
	for _, card := range claim.CardsPlayed {
		if card.Rank != claim.ClaimedRank {
			truthful = false
			break
		}
	}

	loserID := claim.ClaimerID
	if truthful {
		loserID = challengerID
	}

	loser := s.Players[loserID]
	loser.Hand = appendCards(loser.Hand, s.Discard...)
	s = s.withPlayer(loserID, loser)

	cp := s.clone()
	cp.Discard = nil
	cp.CurrentClaim = nil
	return cp
}
