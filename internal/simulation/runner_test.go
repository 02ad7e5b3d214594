package simulation

import (
	"math"
	"testing"

	"jasspatience/internal/game"
)

func TestRunSingleTrial(t *testing.T) {
	result := RunSingleTrial(42)

	if result.Error != "" {
		t.Fatalf("trial failed: %s", result.Error)
	}
	if result.Leftover < 0 || result.Leftover > game.DeckSize {
		t.Errorf("leftover = %d, want 0-%d", result.Leftover, game.DeckSize)
	}
}

func TestRunBatch(t *testing.T) {
	stats := RunBatch(100, 12345)

	if stats.TotalTrials != 100 {
		t.Errorf("total trials = %d, want 100", stats.TotalTrials)
	}
	if stats.Errors > 0 {
		t.Errorf("got %d errors", stats.Errors)
	}

	sum := uint32(0)
	for _, count := range stats.Distribution {
		sum += count
	}
	if sum != 100 {
		t.Errorf("distribution counts sum to %d, want 100", sum)
	}

	if stats.MinLeftover > stats.MaxLeftover {
		t.Errorf("min %d > max %d", stats.MinLeftover, stats.MaxLeftover)
	}
	if stats.MeanLeftover < float64(stats.MinLeftover) || stats.MeanLeftover > float64(stats.MaxLeftover) {
		t.Errorf("mean %.2f outside range %d-%d", stats.MeanLeftover, stats.MinLeftover, stats.MaxLeftover)
	}

	t.Logf("batch: mean=%.2f median=%d range=%d-%d",
		stats.MeanLeftover, stats.MedianLeftover, stats.MinLeftover, stats.MaxLeftover)
}

func TestRunBatch_DeterministicUnderSeed(t *testing.T) {
	a := RunBatch(50, 99)
	b := RunBatch(50, 99)

	if a.MeanLeftover != b.MeanLeftover {
		t.Errorf("means differ with equal seeds: %v vs %v", a.MeanLeftover, b.MeanLeftover)
	}
	if a.Distribution != b.Distribution {
		t.Error("distributions differ with equal seeds")
	}
}

// TestRunBatch_MeanConverges checks the sample mean against the reference
// leftover value of ~11.86 observed over large unbiased runs. The tolerance
// is wide enough that sampling noise at this trial count cannot trip it.
func TestRunBatch_MeanConverges(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping statistical test in short mode")
	}

	const (
		trials    = 5000
		reference = 11.86
		tolerance = 1.5
	)

	stats := RunBatch(trials, 1)

	if stats.Errors > 0 {
		t.Fatalf("got %d errors", stats.Errors)
	}
	if math.Abs(stats.MeanLeftover-reference) > tolerance {
		t.Errorf("mean leftover = %.2f, want within %.1f of %.2f",
			stats.MeanLeftover, tolerance, reference)
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   int
	}{
		{"empty", nil, 0},
		{"single", []int{7}, 7},
		{"odd count", []int{3, 1, 2}, 2},
		{"even count", []int{4, 1, 3, 2}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := median(tt.values); got != tt.want {
				t.Errorf("median(%v) = %d, want %d", tt.values, got, tt.want)
			}
		})
	}
}

func BenchmarkRunSingleTrial(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RunSingleTrial(int64(i))
	}
}
