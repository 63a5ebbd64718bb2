package matcher

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a bulk validation run
type Summary struct {
	Total            int     `json:"total"`
	Valid            int     `json:"valid"`
	Invalid          int     `json:"invalid"`
	MeanSimilarity   float64 `json:"meanSimilarity"`
	MedianSimilarity float64 `json:"medianSimilarity"`
	MinSimilarity    float64 `json:"minSimilarity"`
	MaxSimilarity    float64 `json:"maxSimilarity"`
}

// Summarize computes counts and similarity statistics over bulk results
func Summarize(results []BulkResult) Summary {
	if len(results) == 0 {
		return Summary{}
	}

	scores := make([]float64, len(results))
	s := Summary{Total: len(results)}
	for i, r := range results {
		scores[i] = r.Similarity
		if r.IsValid {
			s.Valid++
		}
	}
	s.Invalid = s.Total - s.Valid

	// stat.Quantile requires sorted input
	sort.Float64s(scores)
	s.MeanSimilarity = stat.Mean(scores, nil)
	s.MedianSimilarity = median(scores)
	s.MinSimilarity = floats.Min(scores)
	s.MaxSimilarity = floats.Max(scores)

	return s
}

// median of sorted scores; an even count averages the two middle values
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return stat.Quantile(0.5, stat.Empirical, sorted, nil)
	}
	return stat.Mean(sorted[n/2-1:n/2+1], nil)
}
