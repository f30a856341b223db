package engine

import (
	"github.com/signalnine/deckforge/gosim/genome"
)

// NoBid marks a player who has not yet bid in a bidding phase.
const NoBid = -1

// PlayerState holds one player's cards, score, and betting state.
type PlayerState struct {
	Hand       []Card
	Score      int
	Chips      int
	CurrentBet int // committed this betting round, resets each round
	HasFolded  bool
	IsAllIn    bool

	// Contract bidding state, unused outside bidding genomes.
	Bid       int // NoBid until set
	BidNil    bool
	TricksWon int
	Bags      int
}

// TrickCard is one card played into the current trick.
type TrickCard struct {
	PlayerID int
	Card     Card
}

// Claim records a face-down play with a declared rank, pending acceptance
// or challenge.
type Claim struct {
	ClaimerID    int
	ClaimedRank  uint8
	ClaimedCount int
	CardsPlayed  []Card
}

// GameState is an immutable snapshot of a game in progress. Transitions
// produce new snapshots; shared slices are never mutated in place, which
// makes replays deterministic and parallel simulation safe without locks.
type GameState struct {
	Players       []PlayerState
	Deck          []Card   // front = next draw
	Discard       []Card   // back = top card
	Tableau       [][]Card // shared piles for War/capture mechanics
	Turn          int      // ply counter, incremented on most transitions
	ActivePlayer  int
	CurrentPhase  int
	Pot           int
	CurrentBet    int
	RaiseCount    int
	CurrentTrick  []TrickCard
	HeartsBroken  bool // set once a breaking-suit card hits a trick, never cleared
	CurrentClaim  *Claim
	SkipCount     int // pending skips consumed on player advancement
	PlayDirection int // +1 or -1
}

// NewGame creates the initial state for a genome: shuffled deck, dealt hands,
// starting chips, and the tableau layout the genome asks for.
func NewGame(g *genome.GameGenome, seed uint64) *GameState {
	numPlayers := g.Players()
	deck := ShuffleDeck(NewDeck(), seed)

	players := make([]PlayerState, numPlayers)
	perPlayer := g.Setup.CardsPerPlayer
	if perPlayer*numPlayers > len(deck) {
		perPlayer = len(deck) / numPlayers
	}
	for i := range players {
		hand := make([]Card, perPlayer)
		copy(hand, deck[:perPlayer])
		deck = deck[perPlayer:]
		players[i] = PlayerState{
			Hand:  hand,
			Chips: g.Setup.StartingChips,
			Bid:   NoBid,
		}
	}

	var discard []Card
	for i := 0; i < g.Setup.InitialDiscardCount && len(deck) > 0; i++ {
		discard = append(discard, deck[0])
		deck = deck[1:]
	}

	var tableau [][]Card
	if g.Setup.TableauMode == genome.TableauModeWar {
		tableau = [][]Card{nil}
	}

	return &GameState{
		Players:       players,
		Deck:          deck,
		Discard:       discard,
		Tableau:       tableau,
		PlayDirection: 1,
	}
}

// clone returns a shallow copy. Slices are shared until a transition
// replaces them, so callers must never modify a slice they did not allocate.
func (s *GameState) clone() *GameState {
	cp := *s
	return &cp
}

// withPlayer returns a copy of the state with one player replaced.
func (s *GameState) withPlayer(id int, p PlayerState) *GameState {
	cp := s.clone()
	players := make([]PlayerState, len(s.Players))
	copy(players, s.Players)
	players[id] = p
	cp.Players = players
	return cp
}

// withPlayers returns a copy with two players replaced in one allocation.
func (s *GameState) withPlayers(idA int, pA PlayerState, idB int, pB PlayerState) *GameState {
	cp := s.clone()
	players := make([]PlayerState, len(s.Players))
	copy(players, s.Players)
	players[idA] = pA
	players[idB] = pB
	cp.Players = players
	return cp
}

// appendCards returns a fresh pile with the cards appended. The input pile's
// backing array is never reused, so prior snapshots stay intact.
func appendCards(pile []Card, cards ...Card) []Card {
	out := make([]Card, len(pile), len(pile)+len(cards))
	copy(out, pile)
	return append(out, cards...)
}

// removeCardAt returns a fresh pile without the card at index i, and the card.
func removeCardAt(pile []Card, i int) ([]Card, Card) {
	card := pile[i]
	out := make([]Card, 0, len(pile)-1)
	out = append(out, pile[:i]...)
	out = append(out, pile[i+1:]...)
	return out, card
}

// TotalCards counts every card in the state across all zones. It is constant
// for the lifetime of a game.
func (s *GameState) TotalCards() int {
	total := len(s.Deck) + len(s.Discard) + len(s.CurrentTrick)
	for i := range s.Players {
		total += len(s.Players[i].Hand)
	}
	for _, pile := range s.Tableau {
		total += len(pile)
	}
	return total
}

// TopDiscard returns the top discard card, or false when the pile is empty.
func (s *GameState) TopDiscard() (Card, bool) {
	if len(s.Discard) == 0 {
		return Card{}, false
	}
	return s.Discard[len(s.Discard)-1], true
}

// TableauTop returns the top card of the first tableau pile, or false.
func (s *GameState) TableauTop() (Card, bool) {
	if len(s.Tableau) == 0 || len(s.Tableau[0]) == 0 {
		return Card{}, false
	}
	pile := s.Tableau[0]
	return pile[len(pile)-1], true
}
