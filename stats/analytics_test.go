package stats

import (
	"testing"
	"time"

	"eslapi/models/exercise"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAnalytics_Totals(t *testing.T) {
	categories := []exercise.Category{makeCategory(1, "Grammar")}
	exercises := []exercise.Exercise{
		makeExercise(10, 1, "A", exercise.DifficultyBeginner),
		makeExercise(11, 1, "B", exercise.DifficultyAdvanced),
	}
	progress := []exercise.ProgressRecord{
		completedRecord(1, 10, 80, testNow.Add(-time.Hour)),
		completedRecord(2, 11, 60, testNow.Add(-2*time.Hour)),
	}

	analytics := BuildAnalytics(progress, exercises, categories, 2, testNow)

	assert.Equal(t, 2, analytics.TotalCompletions)
	assert.Equal(t, 70, analytics.AverageScore)
	// 2 completions / (2 exercises x 2 users) = 50%
	assert.Equal(t, 50, analytics.CompletionRate)
}

func TestBuildAnalytics_ZeroFactorsYieldZeroRate(t *testing.T) {
	analytics := BuildAnalytics(nil, nil, nil, 0, testNow)
	assert.Equal(t, 0, analytics.CompletionRate)
	assert.Equal(t, 0, analytics.AverageScore)

	exercises := []exercise.Exercise{makeExercise(10, 1, "A", exercise.DifficultyBeginner)}
	analytics = BuildAnalytics(nil, exercises, nil, 0, testNow)
	assert.Equal(t, 0, analytics.CompletionRate)
}

func TestBuildAnalytics_CategoryPerformanceOneDecimal(t *testing.T) {
	categories := []exercise.Category{
		makeCategory(1, "Grammar"),
		makeCategory(2, "Vocabulary"),
	}
	exercises := []exercise.Exercise{
		makeExercise(10, 1, "A", exercise.DifficultyBeginner),
		makeExercise(11, 2, "B", exercise.DifficultyBeginner),
	}
	progress := []exercise.ProgressRecord{
		completedRecord(1, 10, 80, testNow.Add(-time.Hour)),
		completedRecord(2, 11, 80, testNow.Add(-time.Hour)),
		completedRecord(3, 11, 80, testNow.Add(-time.Hour)),
	}

	analytics := BuildAnalytics(progress, exercises, categories, 3, testNow)

	require.Len(t, analytics.CategoryPerformance, 2)
	assert.InDelta(t, 33.3, analytics.CategoryPerformance[0].Percentage, 0.001)
	assert.InDelta(t, 66.7, analytics.CategoryPerformance[1].Percentage, 0.001)
}

func TestBuildAnalytics_DifficultyDistribution(t *testing.T) {
	exercises := []exercise.Exercise{
		makeExercise(10, 1, "A", exercise.DifficultyBeginner),
		makeExercise(11, 1, "B", exercise.DifficultyBeginner),
		makeExercise(12, 1, "C", exercise.DifficultyIntermediate),
		makeExercise(13, 1, "D", exercise.DifficultyAdvanced),
	}

	analytics := BuildAnalytics(nil, exercises, nil, 1, testNow)

	require.Len(t, analytics.DifficultyDistribution, 3)
	assert.Equal(t, exercise.DifficultyBeginner, analytics.DifficultyDistribution[0].Difficulty)
	assert.Equal(t, 2, analytics.DifficultyDistribution[0].Count)
	assert.Equal(t, "#4CAF50", analytics.DifficultyDistribution[0].Color)
	assert.Equal(t, 1, analytics.DifficultyDistribution[1].Count)
	assert.Equal(t, "#FF9800", analytics.DifficultyDistribution[1].Color)
	assert.Equal(t, 1, analytics.DifficultyDistribution[2].Count)
	assert.Equal(t, "#C62828", analytics.DifficultyDistribution[2].Color)
}

func TestBuildAnalytics_TopExercises(t *testing.T) {
	exercises := []exercise.Exercise{
		makeExercise(10, 1, "A", exercise.DifficultyBeginner),
		makeExercise(11, 1, "B", exercise.DifficultyBeginner),
		makeExercise(12, 1, "C", exercise.DifficultyBeginner),
	}
	progress := []exercise.ProgressRecord{
		// B completed twice, A and C once each; A encountered before C
		completedRecord(1, 10, 80, testNow.Add(-time.Hour)),
		completedRecord(1, 11, 80, testNow.Add(-time.Hour)),
		completedRecord(2, 11, 80, testNow.Add(-time.Hour)),
		completedRecord(2, 12, 80, testNow.Add(-time.Hour)),
	}

	analytics := BuildAnalytics(progress, exercises, nil, 2, testNow)

	require.Len(t, analytics.TopExercises, 3)
	assert.Equal(t, "B", analytics.TopExercises[0].Title)
	assert.Equal(t, 2, analytics.TopExercises[0].Completions)
	// tie between A and C broken by first-encountered order
	assert.Equal(t, "A", analytics.TopExercises[1].Title)
	assert.Equal(t, "C", analytics.TopExercises[2].Title)
}

func TestBuildAnalytics_TopExercisesCappedAtFive(t *testing.T) {
	exercises := make([]exercise.Exercise, 0, 8)
	progress := make([]exercise.ProgressRecord, 0, 8)
	for i := uint(1); i <= 8; i++ {
		exercises = append(exercises, makeExercise(i, 1, "X", exercise.DifficultyBeginner))
		progress = append(progress, completedRecord(1, i, 80, testNow.Add(-time.Hour)))
	}

	analytics := BuildAnalytics(progress, exercises, nil, 1, testNow)
	assert.Len(t, analytics.TopExercises, 5)
}

func TestBuildAnalytics_DailyActiveUsers(t *testing.T) {
	progress := []exercise.ProgressRecord{
		completedRecord(1, 10, 80, testNow.Add(-time.Hour)),
		completedRecord(2, 10, 80, testNow.Add(-2*time.Hour)),
		completedRecord(1, 11, 80, testNow.Add(-3*time.Hour)), // same user, same day
		completedRecord(3, 10, 80, testNow.AddDate(0, 0, -2)),
		completedRecord(4, 10, 80, testNow.AddDate(0, 0, -30)), // outside the window
	}

	analytics := BuildAnalytics(progress, nil, nil, 4, testNow)

	require.Len(t, analytics.DailyActiveUsers, 7)
	assert.Equal(t, "2025-03-09", analytics.DailyActiveUsers[0].Date)
	assert.Equal(t, "2025-03-15", analytics.DailyActiveUsers[6].Date)
	assert.Equal(t, 2, analytics.DailyActiveUsers[6].Count, "distinct users today")
	assert.Equal(t, 1, analytics.DailyActiveUsers[4].Count, "one user two days ago")
	assert.Equal(t, 0, analytics.DailyActiveUsers[5].Count)
}
