package stats

import (
	"math"
	"time"

	"eslapi/models/exercise"
)

// CategoryStat is the per-category slice of a user's progress
type CategoryStat struct {
	CategoryID uint   `json:"category_id"`
	Name       string `json:"name"`
	Completed  int    `json:"completed"`
	Total      int    `json:"total"`
	AvgScore   int    `json:"avg_score"`
}

// AggregatedStats is the computed summary of a user's progress. It is
// derived on every request and never persisted.
type AggregatedStats struct {
	CompletedExercises int             `json:"completed_exercises"`
	TotalExercises     int             `json:"total_exercises"`
	AverageScore       int             `json:"average_score"`
	Streak             int             `json:"streak"`
	Categories         []CategoryStat  `json:"categories"`
	RecentActivity     []ActivityEntry `json:"recent_activity"`
}

// ComputeUserStats aggregates a user's raw progress records against the full
// exercise catalog. Calendar-day logic (streak, activity buckets) uses UTC
// days; `now` is passed in so callers and tests control the clock.
func ComputeUserStats(progress []exercise.ProgressRecord, exercises []exercise.Exercise, categories []exercise.Category, now time.Time) AggregatedStats {
	exerciseByID := make(map[uint]exercise.Exercise, len(exercises))
	for _, ex := range exercises {
		exerciseByID[ex.ID] = ex
	}

	completed := 0
	scoreSum := 0
	scoreCount := 0
	for _, record := range progress {
		if record.Completed {
			completed++
		}
		if record.Score != nil && !isMalformed(record) {
			scoreSum += *record.Score
			scoreCount++
		}
	}

	averageScore := 0
	if scoreCount > 0 {
		averageScore = roundHalfUp(float64(scoreSum) / float64(scoreCount))
	}

	categoryStats := make([]CategoryStat, len(categories))
	for i, cat := range categories {
		stat := CategoryStat{CategoryID: cat.ID, Name: cat.Name}

		for _, ex := range exercises {
			if ex.CategoryID == cat.ID {
				stat.Total++
			}
		}

		catScoreSum := 0
		catScoreCount := 0
		for _, record := range progress {
			if !record.Completed {
				continue
			}
			ex, ok := exerciseByID[record.ExerciseID]
			if !ok || ex.CategoryID != cat.ID {
				// records pointing at deleted exercises are skipped
				continue
			}
			stat.Completed++
			if record.Score != nil && !isMalformed(record) {
				catScoreSum += *record.Score
				catScoreCount++
			}
		}
		if catScoreCount > 0 {
			stat.AvgScore = roundHalfUp(float64(catScoreSum) / float64(catScoreCount))
		}
		categoryStats[i] = stat
	}

	return AggregatedStats{
		CompletedExercises: completed,
		TotalExercises:     len(exercises),
		AverageScore:       averageScore,
		Streak:             StreakDays(progress, now),
		Categories:         categoryStats,
		RecentActivity:     BuildRecentActivity(progress, exercises, RecentActivityLimit, now),
	}
}

// StreakDays counts consecutive UTC calendar days with at least one
// completed record, anchored at today or yesterday. A gap of two or more
// days resets the streak to zero.
func StreakDays(progress []exercise.ProgressRecord, now time.Time) int {
	activeDays := make(map[time.Time]bool)
	for _, record := range progress {
		if !record.Completed || record.CompletedAt == nil || isMalformed(record) {
			continue
		}
		activeDays[utcDay(*record.CompletedAt)] = true
	}
	if len(activeDays) == 0 {
		return 0
	}

	today := utcDay(now)
	yesterday := today.AddDate(0, 0, -1)

	cursor := today
	if !activeDays[today] {
		if !activeDays[yesterday] {
			return 0
		}
		cursor = yesterday
	}

	streak := 0
	for activeDays[cursor] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// isMalformed reports records excluded from score-averaging and streak
// computation: completed without a timestamp, or a score outside 0-100.
// Aggregation stays best-effort; bad rows are skipped, never fatal.
func isMalformed(record exercise.ProgressRecord) bool {
	if record.Completed && record.CompletedAt == nil {
		return true
	}
	if record.Score != nil && (*record.Score < 0 || *record.Score > 100) {
		return true
	}
	return false
}

// utcDay truncates a timestamp to its UTC calendar day
func utcDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// roundHalfUp rounds to the nearest integer, halves up
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
