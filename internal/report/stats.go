package report

import (
	"sort"
	"time"
)

// Stats summarises the ns/msg samples of one implementation at one
// concurrency level.
type Stats struct {
	Concurrency float64 // producers + consumers
	Min         float64 // average of the bottom 5%
	Median      float64
	Max         float64 // average of the top 5%
}

// Samples maps CPU count -> implementation -> concurrency -> ns/msg values.
type Samples map[int]map[string]map[float64][]float64

// CollectSamples groups every usable benchmark by CPU count, implementation
// and total goroutine count. Runs that consumed nothing are skipped.
func CollectSamples(sessions []FullReport) Samples {
	out := make(Samples)
	for _, session := range sessions {
		cpus := session.CPUs()
		if out[cpus] == nil {
			out[cpus] = make(map[string]map[float64][]float64)
		}

		for _, b := range session.Benchmarks {
			dur, err := time.ParseDuration(b.ActualElapsed)
			if err != nil || b.NumMessagesConsumed == 0 {
				continue
			}
			x := float64(b.NumProducers + b.NumConsumers)
			nsPerMsg := float64(dur.Nanoseconds()) / float64(b.NumMessagesConsumed)

			impls := out[cpus]
			if impls[b.Implementation] == nil {
				impls[b.Implementation] = make(map[float64][]float64)
			}
			impls[b.Implementation][x] = append(impls[b.Implementation][x], nsPerMsg)
		}
	}
	return out
}

// BuildStats computes per-concurrency statistics, sorted by concurrency.
func BuildStats(byConcurrency map[float64][]float64) []Stats {
	out := make([]Stats, 0, len(byConcurrency))
	for x, vals := range byConcurrency {
		if len(vals) == 0 {
			continue
		}
		sorted := append([]float64(nil), vals...)
		sort.Float64s(sorted)
		out = append(out, Stats{
			Concurrency: x,
			Min:         AverageOfRange(sorted, 0.0, 0.05),
			Median:      Median(sorted),
			Max:         AverageOfRange(sorted, 0.95, 1.0),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Concurrency < out[j].Concurrency })
	return out
}

// AverageOfRange returns the average of sortedVals in [startFrac, endFrac] of
// its length, falling back to the median when that slice is empty.
func AverageOfRange(sortedVals []float64, startFrac, endFrac float64) float64 {
	n := len(sortedVals)
	if n == 0 {
		return 0
	}
	startIndex := max(int(float64(n)*startFrac), 0)
	endIndex := min(int(float64(n)*endFrac), n)
	if startIndex >= endIndex {
		return Median(sortedVals)
	}
	sum := 0.0
	for _, v := range sortedVals[startIndex:endIndex] {
		sum += v
	}
	return sum / float64(endIndex-startIndex)
}

// Median of an already sorted slice; 0 for an empty one.
func Median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}
	return 0.5 * (sorted[mid-1] + sorted[mid])
}
