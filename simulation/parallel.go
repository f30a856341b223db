package simulation

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/signalnine/deckforge/gosim/genome"
)

// RunBatchParallel plays numGames across a worker pool. Seeds are drawn
// up front in batch order, so the result is identical to RunBatch with the
// same seed regardless of worker count or scheduling.
func RunBatchParallel(g *genome.GameGenome, numGames int, ptype PolicyType, mctsIterations int, seed uint64, workers int) AggregatedStats {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > numGames {
		workers = numGames
	}
	if workers <= 1 {
		return RunBatch(g, numGames, ptype, mctsIterations, seed)
	}

	rng := rand.New(rand.NewSource(int64(seed)))
	seeds := make([]uint64, numGames)
	for i := range seeds {
		seeds[i] = rng.Uint64()
	}

	results := make([]GameResult, numGames)
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				policy := NewPolicy(ptype, mctsIterations, rand.New(rand.NewSource(int64(seeds[i]))))
				results[i] = RunSingleGame(g, policy, seeds[i])
			}
		}()
	}
	for i := 0; i < numGames; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return Aggregate(results, g.Players())
}
