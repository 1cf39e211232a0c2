package service

import (
	"sort"

	"github.com/limbo/tendril/pkg/entity"
)

// ComputeStreak derives the streak summary from the days on which at least one task
// was completed. A run stays current while today is at most graceDays after its last day.
func ComputeStreak(days []entity.Date, today entity.Date, graceDays, persistedLongest int) *entity.StreakSummary {
	if graceDays < 0 {
		graceDays = 0
	}
	summary := &entity.StreakSummary{
		LongestStreak: persistedLongest,
	}
	days = normalizeDays(days)
	if len(days) == 0 {
		return summary
	}
	summary.TotalCompletionDays = len(days)

	run := 1
	for i := 1; i < len(days); i++ {
		if days[i].DaysSince(days[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		summary.LongestStreak = max(summary.LongestStreak, run)
	}
	summary.LongestStreak = max(summary.LongestStreak, 1)
	// run now holds the length of the run ending at the last qualifying day

	last := days[len(days)-1]
	since := max(today.DaysSince(last), 0)
	summary.LastCompletionDate = &last
	summary.DaysSinceLastCompletion = &since
	if since <= graceDays {
		summary.CurrentStreak = run
		summary.IsPaused = since >= 1
	}
	return summary
}

func normalizeDays(days []entity.Date) []entity.Date {
	sorted := make([]entity.Date, len(days))
	copy(sorted, days)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Before(sorted[j])
	})
	result := make([]entity.Date, 0, len(sorted))
	for _, d := range sorted {
		if len(result) > 0 && d.Equal(result[len(result)-1]) {
			continue
		}
		result = append(result, d)
	}
	return result
}
