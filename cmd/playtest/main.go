// Package main provides the deckforge-playtest CLI: play an evolved genome
// interactively against policy-driven opponents.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/signalnine/deckforge/gosim/genome"
	"github.com/signalnine/deckforge/gosim/playtest"
	"github.com/signalnine/deckforge/gosim/simulation"
)

// CLI flags
var (
	genomePath string
	seed       int64
	aiName     string
	mctsIters  int
)

func init() {
	flag.StringVar(&genomePath, "genome", "", "Genome JSON file, or a built-in id (war, hearts, crazy-eights, ...)")
	flag.Int64Var(&seed, "seed", 0, "Random seed (0 = use current time)")
	flag.StringVar(&aiName, "ai", "greedy", "Opponent policy (random, greedy, mcts)")
	flag.IntVar(&mctsIters, "mcts-iters", 200, "MCTS iterations per opponent move")
}

func main() {
	flag.Parse()

	g, err := loadGenome(genomePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading genome: %v\n", err)
		os.Exit(1)
	}
	if errs := genome.ValidateGenome(g); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "Invalid genome: %v\n", e)
		}
		os.Exit(1)
	}

	ptype, err := simulation.ParsePolicy(aiName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ai := simulation.NewPolicy(ptype, mctsIters, rand.New(rand.NewSource(seed)))
	session := playtest.NewSession(g, uint64(seed), ai)
	if err := session.Run(); err != nil && err != playtest.ErrQuit {
		fmt.Fprintf(os.Stderr, "Session error: %v\n", err)
		os.Exit(1)
	}
}

func loadGenome(path string) (*genome.GameGenome, error) {
	if path == "" {
		return nil, fmt.Errorf("-genome is required")
	}
	if g, ok := genome.AllExampleGenomes()[path]; ok {
		return g, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return genome.LoadGenomeFromJSON(data)
}
