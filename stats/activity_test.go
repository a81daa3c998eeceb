package stats

import (
	"testing"
	"time"

	"eslapi/models/exercise"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRecentActivity_CapAndOrder(t *testing.T) {
	exercises := []exercise.Exercise{makeExercise(10, 1, "Past Tense", exercise.DifficultyBeginner)}

	progress := make([]exercise.ProgressRecord, 0, 15)
	for i := 0; i < 15; i++ {
		progress = append(progress, completedRecord(1, 10, 80, testNow.Add(-time.Duration(i+1)*time.Hour)))
	}

	entries := BuildRecentActivity(progress, exercises, RecentActivityLimit, testNow)

	require.Len(t, entries, 10)
	for i := 1; i < len(entries); i++ {
		assert.True(t, entries[i-1].CompletedAt.After(entries[i].CompletedAt),
			"entries must be strictly descending by completion time")
	}
}

func TestBuildRecentActivity_SkipsIncomplete(t *testing.T) {
	exercises := []exercise.Exercise{makeExercise(10, 1, "Past Tense", exercise.DifficultyBeginner)}
	progress := []exercise.ProgressRecord{
		{UserID: 1, ExerciseID: 10, Completed: false, Score: intPtr(20)},
		{UserID: 1, ExerciseID: 10, Completed: true}, // no timestamp
		completedRecord(1, 10, 90, testNow.Add(-time.Hour)),
	}

	entries := BuildRecentActivity(progress, exercises, RecentActivityLimit, testNow)

	require.Len(t, entries, 1)
	assert.Equal(t, "Past Tense", entries[0].ExerciseTitle)
}

func TestBuildRecentActivity_FallbackTitle(t *testing.T) {
	progress := []exercise.ProgressRecord{
		completedRecord(1, 999, 90, testNow.Add(-time.Hour)),
		completedRecord(1, 998, 40, testNow.Add(-2*time.Hour)),
	}

	entries := BuildRecentActivity(progress, nil, RecentActivityLimit, testNow)

	require.Len(t, entries, 2, "unresolvable references must not abort the list")
	assert.Equal(t, UnknownExerciseTitle, entries[0].ExerciseTitle)
	assert.Equal(t, UnknownExerciseTitle, entries[1].ExerciseTitle)
}

func TestBuildRecentActivity_SuccessThreshold(t *testing.T) {
	exercises := []exercise.Exercise{makeExercise(10, 1, "Past Tense", exercise.DifficultyBeginner)}

	cases := []struct {
		name    string
		score   *int
		success bool
	}{
		{"at threshold", intPtr(60), true},
		{"below threshold", intPtr(59), false},
		{"unscored counts as zero", nil, false},
		{"perfect", intPtr(100), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			progress := []exercise.ProgressRecord{{
				UserID:      1,
				ExerciseID:  10,
				Completed:   true,
				Score:       tc.score,
				CompletedAt: timePtr(testNow.Add(-time.Hour)),
			}}

			entries := BuildRecentActivity(progress, exercises, RecentActivityLimit, testNow)
			require.Len(t, entries, 1)
			assert.Equal(t, tc.success, entries[0].Success)
		})
	}
}

func TestRelativeTime(t *testing.T) {
	cases := []struct {
		name string
		at   time.Time
		want string
	}{
		{"just now", testNow.Add(-30 * time.Second), "Just now"},
		{"one minute still plural", testNow.Add(-1 * time.Minute), "1 minutes ago"},
		{"minutes", testNow.Add(-5 * time.Minute), "5 minutes ago"},
		{"one hour singular", testNow.Add(-90 * time.Minute), "1 hour ago"},
		{"hours", testNow.Add(-5 * time.Hour), "5 hours ago"},
		{"yesterday", testNow.Add(-25 * time.Hour), "Yesterday"},
		{"days", testNow.AddDate(0, 0, -3), "3 days ago"},
		{"older gets a date", testNow.AddDate(0, 0, -10), "Mar 5, 2025"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RelativeTime(tc.at, testNow))
		})
	}
}

func TestRelativeTime_WeekBoundary(t *testing.T) {
	assert.Equal(t, "6 days ago", RelativeTime(testNow.AddDate(0, 0, -6), testNow))
	assert.Equal(t, "Mar 8, 2025", RelativeTime(testNow.AddDate(0, 0, -7), testNow))
}
