// Package main provides the deckforge-worker binary for isolated simulation.
// It reads JSON commands from stdin and writes JSON responses to stdout.
// This provides crash isolation: a buggy genome takes down the worker, not
// the evolution driver.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/signalnine/deckforge/gosim/engine"
	"github.com/signalnine/deckforge/gosim/genome"
	"github.com/signalnine/deckforge/gosim/simulation"
)

// Command represents an incoming JSON command from the driver.
type Command struct {
	Action    string          `json:"action"`
	Genome    json.RawMessage `json:"genome,omitempty"`
	State     json.RawMessage `json:"state,omitempty"`
	MoveIndex int             `json:"move_index,omitempty"`
	AIType    string          `json:"ai_type,omitempty"`
	Seed      int64           `json:"seed,omitempty"`
	NumGames  int             `json:"num_games,omitempty"`
	Workers   int             `json:"workers,omitempty"`
}

// Response represents the JSON response sent back to the driver.
type Response struct {
	Success  bool                        `json:"success"`
	Error    string                      `json:"error,omitempty"`
	State    json.RawMessage             `json:"state,omitempty"`
	Moves    []MoveInfo                  `json:"moves,omitempty"`
	GameOver bool                        `json:"game_over,omitempty"`
	Winner   int                         `json:"winner"`
	AIMove   *MoveInfo                   `json:"ai_move,omitempty"`
	Stats    *simulation.AggregatedStats `json:"stats,omitempty"`
	Problems []string                    `json:"problems,omitempty"`
}

// MoveInfo describes one legal move.
type MoveInfo struct {
	Index     int    `json:"index"`
	Label     string `json:"label"`
	Type      string `json:"type"`
	CardIndex int    `json:"card_index"` // index into the hand, -1 if not card-specific
}

// Session state between commands. Commands may also carry explicit state for
// stateless operation.
var (
	currentGenome *genome.GameGenome
	currentState  *engine.GameState
)

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	// Large states and genomes need a bigger line buffer.
	buf := make([]byte, 1024*1024)
	scanner.Buffer(buf, len(buf))

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var cmd Command
		if err := json.Unmarshal(line, &cmd); err != nil {
			writeResponse(out, &Response{Winner: -1, Error: fmt.Sprintf("invalid JSON: %v", err)})
			continue
		}
		writeResponse(out, handleCommand(&cmd))
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error reading stdin: %v\n", err)
		os.Exit(1)
	}
}

func handleCommand(cmd *Command) (resp *Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = &Response{Winner: -1, Error: fmt.Sprintf("panic: %v", r)}
		}
	}()

	switch cmd.Action {
	case "ping":
		return &Response{Success: true, Winner: -1}
	case "start_game":
		return handleStartGame(cmd)
	case "apply_move":
		return handleApplyMove(cmd)
	case "get_ai_move":
		return handleGetAIMove(cmd)
	case "validate_genome":
		return handleValidateGenome(cmd)
	case "simulate":
		return handleSimulate(cmd)
	default:
		return &Response{Winner: -1, Error: fmt.Sprintf("unknown action: %s", cmd.Action)}
	}
}

func handleStartGame(cmd *Command) *Response {
	g, err := genome.LoadGenomeFromJSON(cmd.Genome)
	if err != nil {
		return &Response{Winner: -1, Error: fmt.Sprintf("failed to parse genome: %v", err)}
	}

	s := engine.NewGame(g, uint64(cmd.Seed))
	s = resolveBettingPhases(s, g, cmd.Seed)
	currentGenome, currentState = g, s

	return stateResponse(s, g)
}

func handleApplyMove(cmd *Command) *Response {
	g, s, resp := loadSession(cmd)
	if resp != nil {
		return resp
	}

	moves := engine.GenerateLegalMoves(s, g)
	if cmd.MoveIndex < 0 || cmd.MoveIndex >= len(moves) {
		return &Response{Winner: -1, Error: fmt.Sprintf("invalid move index %d (have %d moves)", cmd.MoveIndex, len(moves))}
	}

	s = engine.ApplyMove(s, moves[cmd.MoveIndex], g)
	s = resolveBettingPhases(s, g, cmd.Seed)
	currentState = s

	return stateResponse(s, g)
}

func handleGetAIMove(cmd *Command) *Response {
	g, s, resp := loadSession(cmd)
	if resp != nil {
		return resp
	}

	moves := engine.GenerateLegalMoves(s, g)
	if len(moves) == 0 {
		return &Response{Winner: -1, Error: "no legal moves available"}
	}

	ptype, err := simulation.ParsePolicy(cmd.AIType)
	if err != nil {
		return &Response{Winner: -1, Error: err.Error()}
	}
	policy := simulation.NewPolicy(ptype, 0, rand.New(rand.NewSource(cmd.Seed)))
	chosen := policy.Choose(s, g, moves)

	for i, m := range moves {
		if m == chosen {
			info := moveInfo(i, m, s)
			return &Response{Success: true, Winner: -1, AIMove: &info}
		}
	}
	return &Response{Winner: -1, Error: "policy returned an illegal move"}
}

// handleValidateGenome checks structure, then plays a few random games to
// catch genomes that only fault at runtime.
func handleValidateGenome(cmd *Command) *Response {
	g, err := genome.LoadGenomeFromJSON(cmd.Genome)
	if err != nil {
		return &Response{Winner: -1, Error: fmt.Sprintf("failed to parse genome: %v", err)}
	}
	if problems := genome.ValidateGenome(g); len(problems) > 0 {
		resp := &Response{Winner: -1, Error: "genome failed validation"}
		for _, p := range problems {
			resp.Problems = append(resp.Problems, p.Error())
		}
		return resp
	}

	seed := uint64(cmd.Seed)
	if seed == 0 {
		seed = 12345
	}
	stats := simulation.RunBatch(g, 5, simulation.PolicyRandom, 0, seed)
	if stats.Errors > 0 {
		return &Response{Winner: -1, Error: fmt.Sprintf("genome crashed in %d of 5 games", stats.Errors)}
	}
	return &Response{Success: true, Winner: -1}
}

func handleSimulate(cmd *Command) *Response {
	g, err := genome.LoadGenomeFromJSON(cmd.Genome)
	if err != nil {
		return &Response{Winner: -1, Error: fmt.Sprintf("failed to parse genome: %v", err)}
	}
	ptype, err := simulation.ParsePolicy(cmd.AIType)
	if err != nil {
		return &Response{Winner: -1, Error: err.Error()}
	}
	numGames := cmd.NumGames
	if numGames <= 0 {
		numGames = 100
	}

	stats := simulation.RunBatchParallel(g, numGames, ptype, 0, uint64(cmd.Seed), cmd.Workers)
	return &Response{Success: true, Winner: -1, Stats: &stats}
}

// loadSession resolves the genome and state a stateful command operates on,
// preferring explicit state from the command.
func loadSession(cmd *Command) (*genome.GameGenome, *engine.GameState, *Response) {
	g := currentGenome
	if len(cmd.Genome) > 0 {
		parsed, err := genome.LoadGenomeFromJSON(cmd.Genome)
		if err != nil {
			return nil, nil, &Response{Winner: -1, Error: fmt.Sprintf("failed to parse genome: %v", err)}
		}
		g = parsed
		currentGenome = g
	}
	if g == nil {
		return nil, nil, &Response{Winner: -1, Error: "no game in progress - call start_game first"}
	}

	s := currentState
	if len(cmd.State) > 0 {
		var serialized serializedState
		if err := json.Unmarshal(cmd.State, &serialized); err != nil {
			return nil, nil, &Response{Winner: -1, Error: fmt.Sprintf("invalid state: %v", err)}
		}
		s = serialized.toState()
		currentState = s
	}
	if s == nil {
		return nil, nil, &Response{Winner: -1, Error: "no game in progress - call start_game first"}
	}
	return g, s, nil
}

// resolveBettingPhases plays betting rounds out with random action so the
// driver only ever steps deliberate decision points.
func resolveBettingPhases(s *engine.GameState, g *genome.GameGenome, seed int64) *engine.GameState {
	rng := rand.New(rand.NewSource(seed ^ int64(s.Turn)))
	for guard := 0; guard <= len(g.TurnStructure.Phases); guard++ {
		if s.CurrentPhase < 0 || s.CurrentPhase >= len(g.TurnStructure.Phases) {
			return s
		}
		phase, ok := g.TurnStructure.Phases[s.CurrentPhase].(*genome.BettingPhase)
		if !ok {
			return s
		}
		s = engine.RunBettingRound(s, phase, s.CurrentPhase, g, func(_ *engine.GameState, moves []engine.Move) engine.Move {
			return moves[rng.Intn(len(moves))]
		})
		if engine.CountActivePlayers(s) == 1 {
			s = engine.ResolveShowdown(s)
		}
	}
	return s
}

func stateResponse(s *engine.GameState, g *genome.GameGenome) *Response {
	winner, over := engine.CheckWinConditions(s, g)
	if !over {
		winner = -1
	}

	stateJSON, err := json.Marshal(newSerializedState(s))
	if err != nil {
		return &Response{Winner: -1, Error: fmt.Sprintf("failed to serialize state: %v", err)}
	}

	var infos []MoveInfo
	if !over {
		for i, m := range engine.GenerateLegalMoves(s, g) {
			infos = append(infos, moveInfo(i, m, s))
		}
	}
	return &Response{
		Success:  true,
		State:    stateJSON,
		Moves:    infos,
		GameOver: over,
		Winner:   winner,
	}
}

func moveInfo(index int, m engine.Move, s *engine.GameState) MoveInfo {
	info := MoveInfo{
		Index:     index,
		Label:     m.String(),
		Type:      moveTypeName(m),
		CardIndex: -1,
	}
	switch m.Kind {
	case engine.MovePlayCard, engine.MoveDiscardCard, engine.MoveTrickPlay, engine.MoveMakeClaim:
		info.CardIndex = m.CardIndex
		hand := s.Players[s.ActivePlayer].Hand
		if m.CardIndex >= 0 && m.CardIndex < len(hand) {
			info.Label = fmt.Sprintf("%s (%s)", m, hand[m.CardIndex])
		}
	}
	return info
}

func moveTypeName(m engine.Move) string {
	switch m.Kind {
	case engine.MovePlayCard:
		return "play"
	case engine.MoveDiscardCard:
		return "discard"
	case engine.MovePass:
		return "pass"
	case engine.MoveTrickPlay:
		return "trick"
	case engine.MoveMakeClaim:
		return "claim"
	case engine.MoveChallenge:
		return "challenge"
	case engine.MoveAcceptClaim:
		return "accept"
	case engine.MoveDraw:
		return "draw"
	case engine.MoveDrawPass:
		return "stand"
	case engine.MoveBetting:
		return "betting"
	case engine.MoveBid:
		return "bid"
	}
	return "unknown"
}

func writeResponse(out *bufio.Writer, resp *Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		data = []byte(fmt.Sprintf(`{"success":false,"winner":-1,"error":"marshal failed: %v"}`, err))
	}
	out.Write(data)
	out.WriteByte('\n')
	out.Flush()
}
