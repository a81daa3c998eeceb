package stats

import (
	"testing"
	"time"

	"eslapi/models/exercise"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func makeExercise(id, categoryID uint, title, difficulty string) exercise.Exercise {
	return exercise.Exercise{
		Model:      gorm.Model{ID: id},
		CategoryID: categoryID,
		Title:      title,
		Difficulty: difficulty,
	}
}

func makeCategory(id uint, name string) exercise.Category {
	return exercise.Category{Model: gorm.Model{ID: id}, Name: name}
}

func completedRecord(userID, exerciseID uint, score int, at time.Time) exercise.ProgressRecord {
	return exercise.ProgressRecord{
		UserID:      userID,
		ExerciseID:  exerciseID,
		Completed:   true,
		Score:       intPtr(score),
		CompletedAt: timePtr(at),
	}
}

func TestComputeUserStats_Basic(t *testing.T) {
	categories := []exercise.Category{
		makeCategory(1, "Grammar"),
		makeCategory(2, "Vocabulary"),
	}
	exercises := []exercise.Exercise{
		makeExercise(10, 1, "Past Tense", exercise.DifficultyBeginner),
		makeExercise(11, 1, "Articles", exercise.DifficultyBeginner),
		makeExercise(12, 2, "Animals", exercise.DifficultyIntermediate),
		makeExercise(13, 2, "Food", exercise.DifficultyAdvanced),
	}
	progress := []exercise.ProgressRecord{
		completedRecord(1, 10, 80, testNow.Add(-1*time.Hour)),
		completedRecord(1, 12, 61, testNow.Add(-2*time.Hour)),
	}

	result := ComputeUserStats(progress, exercises, categories, testNow)

	assert.Equal(t, 2, result.CompletedExercises)
	assert.Equal(t, 4, result.TotalExercises)
	// (80 + 61) / 2 = 70.5, rounds up
	assert.Equal(t, 71, result.AverageScore)

	require.Len(t, result.Categories, 2)
	assert.Equal(t, "Grammar", result.Categories[0].Name)
	assert.Equal(t, 2, result.Categories[0].Total)
	assert.Equal(t, 1, result.Categories[0].Completed)
	assert.Equal(t, 80, result.Categories[0].AvgScore)
	assert.Equal(t, 2, result.Categories[1].Total)
	assert.Equal(t, 1, result.Categories[1].Completed)
	assert.Equal(t, 61, result.Categories[1].AvgScore)
}

func TestComputeUserStats_EmptyProgress(t *testing.T) {
	exercises := []exercise.Exercise{makeExercise(10, 1, "Past Tense", exercise.DifficultyBeginner)}
	categories := []exercise.Category{makeCategory(1, "Grammar")}

	result := ComputeUserStats(nil, exercises, categories, testNow)

	assert.Equal(t, 0, result.CompletedExercises)
	assert.Equal(t, 1, result.TotalExercises)
	assert.Equal(t, 0, result.AverageScore, "no scored records must yield 0, not NaN")
	assert.Equal(t, 0, result.Streak)
	assert.Empty(t, result.RecentActivity)
}

func TestComputeUserStats_CategoryTotalsPartitionCatalog(t *testing.T) {
	categories := []exercise.Category{
		makeCategory(1, "Grammar"),
		makeCategory(2, "Vocabulary"),
		makeCategory(3, "Reading"),
	}
	exercises := []exercise.Exercise{
		makeExercise(10, 1, "A", exercise.DifficultyBeginner),
		makeExercise(11, 2, "B", exercise.DifficultyBeginner),
		makeExercise(12, 2, "C", exercise.DifficultyBeginner),
		makeExercise(13, 3, "D", exercise.DifficultyBeginner),
		makeExercise(14, 3, "E", exercise.DifficultyBeginner),
	}

	result := ComputeUserStats(nil, exercises, categories, testNow)

	sum := 0
	for _, cat := range result.Categories {
		sum += cat.Total
	}
	assert.Equal(t, result.TotalExercises, sum)
}

func TestComputeUserStats_MalformedRecordsExcluded(t *testing.T) {
	exercises := []exercise.Exercise{makeExercise(10, 1, "Past Tense", exercise.DifficultyBeginner)}
	categories := []exercise.Category{makeCategory(1, "Grammar")}

	progress := []exercise.ProgressRecord{
		completedRecord(1, 10, 80, testNow.Add(-time.Hour)),
		// completed without a timestamp: out of averaging and streak
		{UserID: 1, ExerciseID: 10, Completed: true, Score: intPtr(40)},
		// score out of range: out of averaging
		completedRecord(1, 10, 150, testNow.Add(-2*time.Hour)),
	}

	result := ComputeUserStats(progress, exercises, categories, testNow)

	assert.Equal(t, 3, result.CompletedExercises)
	assert.Equal(t, 80, result.AverageScore)
}

func TestComputeUserStats_UnknownExerciseExcludedFromCategories(t *testing.T) {
	exercises := []exercise.Exercise{makeExercise(10, 1, "Past Tense", exercise.DifficultyBeginner)}
	categories := []exercise.Category{makeCategory(1, "Grammar")}

	progress := []exercise.ProgressRecord{
		completedRecord(1, 999, 90, testNow.Add(-time.Hour)), // deleted exercise
	}

	result := ComputeUserStats(progress, exercises, categories, testNow)

	assert.Equal(t, 1, result.CompletedExercises)
	assert.Equal(t, 0, result.Categories[0].Completed)
	require.Len(t, result.RecentActivity, 1)
	assert.Equal(t, UnknownExerciseTitle, result.RecentActivity[0].ExerciseTitle)
}

func TestStreak_ConsecutiveDays(t *testing.T) {
	progress := []exercise.ProgressRecord{
		completedRecord(1, 10, 80, testNow),
		completedRecord(1, 11, 80, testNow.AddDate(0, 0, -1)),
		completedRecord(1, 12, 80, testNow.AddDate(0, 0, -2)),
	}

	assert.Equal(t, 3, StreakDays(progress, testNow))
}

func TestStreak_GapBreaksChain(t *testing.T) {
	progress := []exercise.ProgressRecord{
		completedRecord(1, 10, 80, testNow),
		completedRecord(1, 12, 80, testNow.AddDate(0, 0, -2)),
	}

	// activity today and two days ago, nothing yesterday: today only
	assert.Equal(t, 1, StreakDays(progress, testNow))
}

func TestStreak_AnchoredAtYesterday(t *testing.T) {
	progress := []exercise.ProgressRecord{
		completedRecord(1, 10, 80, testNow.AddDate(0, 0, -1)),
		completedRecord(1, 11, 80, testNow.AddDate(0, 0, -2)),
	}

	// nothing yet today, streak begun yesterday is preserved
	assert.Equal(t, 2, StreakDays(progress, testNow))
}

func TestStreak_StaleActivityResets(t *testing.T) {
	progress := []exercise.ProgressRecord{
		completedRecord(1, 10, 80, testNow.AddDate(0, 0, -3)),
		completedRecord(1, 11, 80, testNow.AddDate(0, 0, -4)),
	}

	assert.Equal(t, 0, StreakDays(progress, testNow))
}

func TestStreak_MultipleCompletionsSameDayCountOnce(t *testing.T) {
	progress := []exercise.ProgressRecord{
		completedRecord(1, 10, 80, testNow.Add(-1*time.Hour)),
		completedRecord(1, 11, 70, testNow.Add(-2*time.Hour)),
		completedRecord(1, 12, 60, testNow.Add(-3*time.Hour)),
	}

	assert.Equal(t, 1, StreakDays(progress, testNow))
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 71, roundHalfUp(70.5))
	assert.Equal(t, 70, roundHalfUp(70.4))
	assert.Equal(t, 33, roundHalfUp(100.0/3.0))
	assert.Equal(t, 67, roundHalfUp(200.0/3.0))
	assert.Equal(t, 0, roundHalfUp(0))
}
