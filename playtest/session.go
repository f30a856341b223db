// Package playtest runs an evolved genome as an interactive terminal game,
// the quickest way to judge whether a high-fitness genome is actually fun.
// The human plays seat 0 against policy-driven opponents.
package playtest

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/signalnine/deckforge/gosim/engine"
	"github.com/signalnine/deckforge/gosim/genome"
	"github.com/signalnine/deckforge/gosim/simulation"
)

// ErrQuit is returned when the player leaves the game with "q".
var ErrQuit = fmt.Errorf("player quit")

// Session is one interactive game. Out and ReadLine are swappable for
// scripted sessions in tests.
type Session struct {
	Genome    *genome.GameGenome
	Seed      uint64
	HumanSeat int
	AI        simulation.Policy

	Out      io.Writer
	ReadLine func() (string, error)
}

// NewSession wires a session to the real terminal.
func NewSession(g *genome.GameGenome, seed uint64, ai simulation.Policy) *Session {
	return &Session{
		Genome: g,
		Seed:   seed,
		AI:     ai,
		Out:    os.Stdout,
		ReadLine: func() (string, error) {
			return pterm.DefaultInteractiveTextInput.Show("move")
		},
	}
}

// Run plays the game to completion and reports the result.
func (sess *Session) Run() error {
	g := sess.Genome
	s := engine.NewGame(g, sess.Seed)
	detector := simulation.NewStuckDetector(g.TurnStructure.MaxTurns, len(s.Players))

	for {
		if winner, over := engine.CheckWinConditions(s, g); over {
			sess.render(s)
			if winner == sess.HumanSeat {
				fmt.Fprint(sess.Out, pterm.Success.Sprintln("you win"))
			} else {
				fmt.Fprint(sess.Out, pterm.Info.Sprintfln("player %d wins", winner))
			}
			return nil
		}
		if reason, stuck := detector.Check(s); stuck {
			fmt.Fprint(sess.Out, pterm.Warning.Sprintfln("game abandoned: %s", reason))
			return nil
		}

		if phase, ok := bettingPhase(s, g); ok {
			var quit error
			s = engine.RunBettingRound(s, phase, s.CurrentPhase, g, func(bs *engine.GameState, moves []engine.Move) engine.Move {
				if quit != nil {
					return moves[0]
				}
				m, err := sess.chooseMove(bs, moves)
				if err != nil {
					quit = err
					return moves[0]
				}
				detector.RecordMove(m)
				return m
			})
			if quit != nil {
				return quit
			}
			if engine.CountActivePlayers(s) == 1 {
				s = engine.ResolveShowdown(s)
			}
			continue
		}

		moves := engine.GenerateLegalMoves(s, g)
		if len(moves) == 0 {
			fmt.Fprint(sess.Out, pterm.Warning.Sprintln("no legal moves, game abandoned"))
			return nil
		}

		m, err := sess.chooseMove(s, moves)
		if err != nil {
			return err
		}
		detector.RecordMove(m)
		s = engine.ApplyMove(s, m, g)
	}
}

func (sess *Session) chooseMove(s *engine.GameState, moves []engine.Move) (engine.Move, error) {
	if s.ActivePlayer != sess.HumanSeat {
		m := sess.AI.Choose(s, sess.Genome, moves)
		fmt.Fprint(sess.Out, pterm.Info.Sprintfln("player %d: %s", s.ActivePlayer, m))
		return m, nil
	}

	sess.render(s)
	for i, m := range moves {
		fmt.Fprintf(sess.Out, "  [%d] %s\n", i, describeMove(s, m))
	}

	for {
		line, err := sess.ReadLine()
		if err != nil {
			return engine.Move{}, err
		}
		line = strings.TrimSpace(line)
		if line == "q" {
			return engine.Move{}, ErrQuit
		}
		idx, err := strconv.Atoi(line)
		if err != nil || idx < 0 || idx >= len(moves) {
			fmt.Fprint(sess.Out, pterm.Warning.Sprintfln("enter a number 0-%d, or q to quit", len(moves)-1))
			continue
		}
		return moves[idx], nil
	}
}

// render draws the table: one panel per opponent, the shared zones, and the
// human's hand with card indexes.
func (sess *Session) render(s *engine.GameState) {
	var rows [][]pterm.Panel

	var seats []pterm.Panel
	for i := range s.Players {
		p := &s.Players[i]
		if i == sess.HumanSeat {
			continue
		}
		body := fmt.Sprintf("cards: %d\nscore: %d", len(p.Hand), p.Score)
		if sess.Genome.Setup.StartingChips > 0 {
			body += fmt.Sprintf("\nchips: %d", p.Chips)
		}
		title := fmt.Sprintf("player %d", i)
		if i == s.ActivePlayer {
			title += " *"
		}
		seats = append(seats, pterm.Panel{
			Data: pterm.DefaultBox.WithTitle(title).Sprint(body),
		})
	}
	rows = append(rows, seats)

	table := fmt.Sprintf("deck: %d  discard: %s", len(s.Deck), topCardLabel(s.Discard))
	if s.Pot > 0 {
		table += fmt.Sprintf("  pot: %d", s.Pot)
	}
	if len(s.CurrentTrick) > 0 {
		var played []string
		for _, tc := range s.CurrentTrick {
			played = append(played, fmt.Sprintf("p%d:%s", tc.PlayerID, tc.Card))
		}
		table += "  trick: " + strings.Join(played, " ")
	}
	rows = append(rows, []pterm.Panel{{
		Data: pterm.DefaultBox.WithTitle("table").WithLeftPadding(2).WithRightPadding(2).Sprint(table),
	}})

	hand := sess.handLabel(s)
	rows = append(rows, []pterm.Panel{{
		Data: pterm.DefaultBox.WithTitle("your hand").WithLeftPadding(2).WithRightPadding(2).Sprint(hand),
	}})

	if out, err := pterm.DefaultPanel.WithPanels(rows).Srender(); err == nil {
		fmt.Fprint(sess.Out, out)
	}
}

func (sess *Session) handLabel(s *engine.GameState) string {
	p := &s.Players[sess.HumanSeat]
	if len(p.Hand) == 0 {
		return "(empty)"
	}
	var parts []string
	for i, c := range p.Hand {
		parts = append(parts, fmt.Sprintf("%d:%s", i, c))
	}
	label := strings.Join(parts, " ")
	label += fmt.Sprintf("\nscore: %d", p.Score)
	if sess.Genome.Setup.StartingChips > 0 {
		label += fmt.Sprintf("  chips: %d  bet: %d", p.Chips, p.CurrentBet)
	}
	return label
}

// describeMove expands card-play moves with the card they would play; the
// bare Move string only carries the index.
func describeMove(s *engine.GameState, m engine.Move) string {
	switch m.Kind {
	case engine.MovePlayCard, engine.MoveDiscardCard, engine.MoveTrickPlay, engine.MoveMakeClaim:
		hand := s.Players[s.ActivePlayer].Hand
		if m.CardIndex >= 0 && m.CardIndex < len(hand) {
			return fmt.Sprintf("%s (%s)", m, hand[m.CardIndex])
		}
	}
	return m.String()
}

func bettingPhase(s *engine.GameState, g *genome.GameGenome) (*genome.BettingPhase, bool) {
	if s.CurrentPhase < 0 || s.CurrentPhase >= len(g.TurnStructure.Phases) {
		return nil, false
	}
	phase, ok := g.TurnStructure.Phases[s.CurrentPhase].(*genome.BettingPhase)
	return phase, ok
}

func topCardLabel(pile []engine.Card) string {
	if len(pile) == 0 {
		return "-"
	}
	return pile[len(pile)-1].String()
}
