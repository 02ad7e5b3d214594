package simulation

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// DefaultHistogramWidth is used when the terminal width cannot be detected.
const DefaultHistogramWidth = 60

// RenderHistogram draws the leftover-card distribution as a horizontal bar
// chart scaled to barWidth columns. Rows outside the observed range are
// skipped so a typical run renders a compact chart.
func RenderHistogram(stats AggregatedStats, barWidth int) string {
	if barWidth <= 0 {
		barWidth = DefaultHistogramWidth
	}

	maxCount := uint32(0)
	for _, count := range stats.Distribution {
		if count > maxCount {
			maxCount = count
		}
	}
	if maxCount == 0 {
		return "no trials recorded\n"
	}

	label := color.New(color.Bold)
	bar := color.New(color.FgCyan)

	var sb strings.Builder
	for leftover := stats.MinLeftover; leftover <= stats.MaxLeftover; leftover++ {
		count := stats.Distribution[leftover]
		filled := int(uint64(count) * uint64(barWidth) / uint64(maxCount))

		sb.WriteString(label.Sprintf("%2d", leftover))
		sb.WriteString(" | ")
		sb.WriteString(bar.Sprint(strings.Repeat("█", filled)))
		sb.WriteString(fmt.Sprintf(" %d", count))
		sb.WriteString("\n")
	}
	return sb.String()
}
