package service

import (
	"math"
	"sort"

	"github.com/sapirHafner/Library-management-project/models"
)

// RankedBook is one entry in the /top response.
type RankedBook struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Average float64 `json:"average"`
}

// Average returns the arithmetic mean of values rounded half-up to two
// decimal places, or 0 when values is empty.
func Average(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return math.Round(float64(sum)/float64(len(values))*100) / 100
}

// TopDistinct sorts ratings by average descending and keeps every entry
// whose average is among the n highest distinct averages, so ties at the
// boundary are all included. Callers pass only eligible entries (at least
// three recorded values).
func TopDistinct(ratings []models.Rating, n int) []RankedBook {
	sorted := make([]models.Rating, len(ratings))
	copy(sorted, ratings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Average > sorted[j].Average
	})

	top := make([]RankedBook, 0, len(sorted))
	seen := make(map[float64]bool)
	for _, r := range sorted {
		if !seen[r.Average] {
			if len(seen) == n {
				break
			}
			seen[r.Average] = true
		}
		top = append(top, RankedBook{ID: r.ID.Hex(), Title: r.Title, Average: r.Average})
	}
	return top
}
