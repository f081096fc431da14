package service

import (
	"strings"

	"tripbook/internal/domain"
)

// TripStats are the aggregates shown on the profile and home screens.
type TripStats struct {
	TripCount    int                       `json:"tripCount"`
	CountryCount int                       `json:"countryCount"`
	MediaCount   int                       `json:"mediaCount"`
	ByStatus     map[domain.TripStatus]int `json:"byStatus"`
}

// ComputeTripStats scans trips once. Nothing is cached; callers recompute on
// every load.
func ComputeTripStats(trips []domain.Trip) TripStats {
	stats := TripStats{
		TripCount: len(trips),
		ByStatus:  make(map[domain.TripStatus]int),
	}

	countries := make(map[string]struct{})
	for _, t := range trips {
		if c := strings.TrimSpace(t.Country); c != "" {
			countries[c] = struct{}{}
		}
		stats.MediaCount += t.MediaCount
		stats.ByStatus[t.Status]++
	}
	stats.CountryCount = len(countries)

	return stats
}

// CountMediaByTrip groups memories by the destination they are attached to.
func CountMediaByTrip(memories []domain.Memory) map[string]int {
	counts := make(map[string]int)
	for _, m := range memories {
		counts[m.Trip]++
	}
	return counts
}

// ApplyMediaCounts returns trips with MediaCount overwritten from counts.
// Trips without memories get 0.
func ApplyMediaCounts(trips []domain.Trip, counts map[string]int) []domain.Trip {
	out := make([]domain.Trip, 0, len(trips))
	for _, t := range trips {
		t.MediaCount = counts[t.Destination]
		out = append(out, t)
	}
	return out
}
