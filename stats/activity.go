package stats

import (
	"fmt"
	"sort"
	"time"

	"eslapi/models/exercise"
)

// RecentActivityLimit caps the recent-activity feed
const RecentActivityLimit = 10

// UnknownExerciseTitle is shown when a record points at a deleted exercise
const UnknownExerciseTitle = "Unknown Exercise"

// successThreshold is the minimum score counted as a successful attempt
const successThreshold = 60

// ActivityEntry is one row of the recent-activity feed
type ActivityEntry struct {
	ExerciseID    uint      `json:"exercise_id"`
	ExerciseTitle string    `json:"exercise_title"`
	Score         *int      `json:"score"`
	CompletedAt   time.Time `json:"completed_at"`
	Success       bool      `json:"success"`
	TimeAgo       string    `json:"time_ago"`
}

// BuildRecentActivity returns the user's most recent completions, newest
// first, capped at limit. Records without a completion timestamp are skipped.
func BuildRecentActivity(progress []exercise.ProgressRecord, exercises []exercise.Exercise, limit int, now time.Time) []ActivityEntry {
	titleByID := make(map[uint]string, len(exercises))
	for _, ex := range exercises {
		titleByID[ex.ID] = ex.Title
	}

	completed := make([]exercise.ProgressRecord, 0, len(progress))
	for _, record := range progress {
		if record.Completed && record.CompletedAt != nil {
			completed = append(completed, record)
		}
	}

	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].CompletedAt.After(*completed[j].CompletedAt)
	})

	if limit > 0 && len(completed) > limit {
		completed = completed[:limit]
	}

	entries := make([]ActivityEntry, len(completed))
	for i, record := range completed {
		title, ok := titleByID[record.ExerciseID]
		if !ok {
			title = UnknownExerciseTitle
		}

		score := 0
		if record.Score != nil {
			score = *record.Score
		}

		entries[i] = ActivityEntry{
			ExerciseID:    record.ExerciseID,
			ExerciseTitle: title,
			Score:         record.Score,
			CompletedAt:   *record.CompletedAt,
			Success:       score >= successThreshold,
			TimeAgo:       RelativeTime(*record.CompletedAt, now),
		}
	}
	return entries
}

// RelativeTime formats a timestamp relative to now for the activity feed.
// Minutes are always pluralized; anything under a minute is "Just now".
func RelativeTime(t, now time.Time) string {
	diff := now.Sub(t)

	if diff < time.Minute {
		return "Just now"
	}
	if diff < time.Hour {
		return fmt.Sprintf("%d minutes ago", int(diff.Minutes()))
	}
	if diff < 24*time.Hour {
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	}

	days := int(utcDay(now).Sub(utcDay(t)).Hours() / 24)
	if days == 1 {
		return "Yesterday"
	}
	if days < 7 {
		return fmt.Sprintf("%d days ago", days)
	}
	return t.UTC().Format("Jan 2, 2006")
}
