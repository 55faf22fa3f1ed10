package dispatch

import (
	"sort"

	"github.com/vmodem/vmodem99a/internal/domain"
)

// TargetStatistic counts the calls placed to one target.
type TargetStatistic struct {
	Target string
	Count  int
}

// TopTargets returns the most dialed targets, busiest first and then by name.
// A limit of 0 or less returns every target.
func TopTargets(entries []domain.HistoryEntry, limit int) []TargetStatistic {
	frequency := make(map[string]int)
	for _, entry := range entries {
		frequency[entry.Target]++
	}
	stats := make([]TargetStatistic, 0, len(frequency))
	for target, count := range frequency {
		stats = append(stats, TargetStatistic{Target: target, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count == stats[j].Count {
			return stats[i].Target < stats[j].Target
		}
		return stats[i].Count > stats[j].Count
	})
	if limit > 0 && len(stats) > limit {
		return stats[:limit]
	}
	return stats
}

// SuccessRate is the percentage of entries that concluded SUCCESS.
func SuccessRate(entries []domain.HistoryEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	succeeded := 0
	for _, entry := range entries {
		if entry.Status == domain.StatusSuccess {
			succeeded++
		}
	}
	return float64(succeeded) / float64(len(entries)) * 100
}
