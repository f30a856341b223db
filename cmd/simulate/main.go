// Package main provides the deckforge-simulate CLI: it plays a genome for a
// batch of games and emits the aggregated statistics the evolution driver
// consumes.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/signalnine/deckforge/gosim/genome"
	"github.com/signalnine/deckforge/gosim/simulation"
	"github.com/signalnine/deckforge/gosim/wire"
)

// CLI flags
var (
	genomePath string
	games      int
	seed       int64
	policyName string
	mctsIters  int
	workers    int
	binaryOut  bool
	verbose    bool
)

func init() {
	// .env values feed the flag defaults, so load before registering flags.
	godotenv.Load()
	flag.StringVar(&genomePath, "genome", "", "Genome JSON file, or a built-in id (war, hearts, crazy-eights, ...)")
	flag.IntVar(&games, "games", envInt("DECKFORGE_GAMES", 100), "Number of games to simulate")
	flag.Int64Var(&seed, "seed", 0, "Random seed (0 = use current time)")
	flag.StringVar(&policyName, "policy", envStr("DECKFORGE_POLICY", "random"), "Move policy (random, greedy, mcts)")
	flag.IntVar(&mctsIters, "mcts-iters", 200, "MCTS iterations per move")
	flag.IntVar(&workers, "workers", envInt("DECKFORGE_WORKERS", 0), "Worker goroutines (0 = auto-detect CPU count)")
	flag.BoolVar(&binaryOut, "binary", false, "Emit FlatBuffers stats on stdout instead of JSON")
	flag.BoolVar(&verbose, "verbose", false, "Log per-batch details to stderr")
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
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

	ptype, err := simulation.ParsePolicy(policyName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "simulating %s: %d games, policy=%s, seed=%d, workers=%d\n",
			g.GenomeID, games, ptype, seed, workers)
	}

	start := time.Now()
	stats := simulation.RunBatchParallel(g, games, ptype, mctsIters, uint64(seed), workers)
	if verbose {
		fmt.Fprintf(os.Stderr, "done in %s (%d errors, %d draws)\n",
			time.Since(start), stats.Errors, stats.Draws)
	}

	if binaryOut {
		os.Stdout.Write(wire.EncodeStats(&stats))
		return
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(stats); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding stats: %v\n", err)
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
