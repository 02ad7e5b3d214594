// Package simulation runs Monte Carlo batches of patience rounds and
// aggregates the leftover-card distribution.
package simulation

import (
	"math/rand"
	"time"

	"jasspatience/internal/game"
)

// TrialResult holds the outcome of a single round.
type TrialResult struct {
	Leftover   int
	DurationNs uint64
	Error      string
}

// AggregatedStats summarizes a batch of trials.
type AggregatedStats struct {
	TotalTrials    uint32
	Errors         uint32
	MeanLeftover   float64
	MedianLeftover int
	MinLeftover    int
	MaxLeftover    int
	AvgDurationNs  uint64

	// Distribution[n] counts trials that finished with n cards left.
	Distribution [game.DeckSize + 1]uint32
}

// RunSingleTrial plays one complete round from the given shuffle seed.
func RunSingleTrial(seed int64) TrialResult {
	start := time.Now()

	g := game.NewGame(seed, nil)
	leftover, err := g.PlayRound()
	if err != nil {
		return TrialResult{
			DurationNs: uint64(time.Since(start).Nanoseconds()),
			Error:      err.Error(),
		}
	}

	return TrialResult{
		Leftover:   leftover,
		DurationNs: uint64(time.Since(start).Nanoseconds()),
	}
}

// RunBatch plays numTrials independent rounds and aggregates the results.
// Trials run strictly sequentially; per-trial seeds are derived from a parent
// rng so a whole batch is reproducible from one seed.
func RunBatch(numTrials int, seed int64) AggregatedStats {
	results := make([]TrialResult, numTrials)

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < numTrials; i++ {
		results[i] = RunSingleTrial(rng.Int63())
	}

	return aggregateResults(results)
}

// aggregateResults computes summary statistics over a batch.
func aggregateResults(results []TrialResult) AggregatedStats {
	stats := AggregatedStats{
		TotalTrials: uint32(len(results)),
		MinLeftover: game.DeckSize,
	}

	leftovers := make([]int, 0, len(results))
	totalDuration := uint64(0)
	sum := 0

	for _, result := range results {
		if result.Error != "" {
			stats.Errors++
			continue
		}

		stats.Distribution[result.Leftover]++
		leftovers = append(leftovers, result.Leftover)
		sum += result.Leftover
		totalDuration += result.DurationNs

		if result.Leftover < stats.MinLeftover {
			stats.MinLeftover = result.Leftover
		}
		if result.Leftover > stats.MaxLeftover {
			stats.MaxLeftover = result.Leftover
		}
	}

	if len(leftovers) > 0 {
		stats.MeanLeftover = float64(sum) / float64(len(leftovers))
		stats.MedianLeftover = median(leftovers)
	} else {
		stats.MinLeftover = 0
	}

	if stats.TotalTrials > 0 {
		stats.AvgDurationNs = totalDuration / uint64(stats.TotalTrials)
	}

	return stats
}

// median calculates the median of a slice.
func median(values []int) int {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]int, len(values))
	copy(sorted, values)

	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[i] > sorted[j] {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
