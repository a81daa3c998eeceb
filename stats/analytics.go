package stats

import (
	"math"
	"sort"
	"time"

	"eslapi/models/exercise"
)

// Fixed chart colors per difficulty
const (
	colorBeginner     = "#4CAF50" // green
	colorIntermediate = "#FF9800" // orange
	colorAdvanced     = "#C62828" // dark red
)

// topExerciseLimit caps the top-exercises leaderboard
const topExerciseLimit = 5

// dailyActiveDays is the length of the daily-active-user trend
const dailyActiveDays = 7

// CategoryPerformance is a category's share of all completions
type CategoryPerformance struct {
	CategoryID  uint    `json:"category_id"`
	Name        string  `json:"name"`
	Completions int     `json:"completions"`
	Percentage  float64 `json:"percentage"` // one decimal place
}

// DifficultySlice is one slice of the difficulty distribution chart
type DifficultySlice struct {
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
	Color      string `json:"color"`
}

// TopExercise is one row of the most-completed leaderboard
type TopExercise struct {
	ExerciseID  uint   `json:"exercise_id"`
	Title       string `json:"title"`
	Completions int    `json:"completions"`
}

// DailyActive is the distinct-user count for one calendar day
type DailyActive struct {
	Date  string `json:"date"` // YYYY-MM-DD, UTC
	Count int    `json:"count"`
}

// Analytics is the fleet-wide view over every user's progress
type Analytics struct {
	TotalCompletions       int                   `json:"total_completions"`
	TotalExercises         int                   `json:"total_exercises"`
	TotalUsers             int                   `json:"total_users"`
	AverageScore           int                   `json:"average_score"`
	CompletionRate         int                   `json:"completion_rate"` // percent of (exercises x users) completed
	CategoryPerformance    []CategoryPerformance `json:"category_performance"`
	DifficultyDistribution []DifficultySlice     `json:"difficulty_distribution"`
	TopExercises           []TopExercise         `json:"top_exercises"`
	DailyActiveUsers       []DailyActive         `json:"daily_active_users"`
}

// BuildAnalytics aggregates all users' progress records into the admin
// analytics view. Completion rate is zero whenever either factor is zero.
func BuildAnalytics(allProgress []exercise.ProgressRecord, exercises []exercise.Exercise, categories []exercise.Category, totalUsers int, now time.Time) Analytics {
	exerciseByID := make(map[uint]exercise.Exercise, len(exercises))
	for _, ex := range exercises {
		exerciseByID[ex.ID] = ex
	}

	totalCompletions := 0
	scoreSum := 0
	scoreCount := 0
	completionsByExercise := make(map[uint]int)
	firstSeen := make(map[uint]int) // ties broken by first-encountered order
	for _, record := range allProgress {
		if !record.Completed {
			continue
		}
		totalCompletions++
		if _, ok := firstSeen[record.ExerciseID]; !ok {
			firstSeen[record.ExerciseID] = len(firstSeen)
		}
		completionsByExercise[record.ExerciseID]++
		if record.Score != nil && !isMalformed(record) {
			scoreSum += *record.Score
			scoreCount++
		}
	}

	averageScore := 0
	if scoreCount > 0 {
		averageScore = roundHalfUp(float64(scoreSum) / float64(scoreCount))
	}

	completionRate := 0
	if len(exercises) > 0 && totalUsers > 0 {
		completionRate = roundHalfUp(float64(totalCompletions) / float64(len(exercises)*totalUsers) * 100)
	}

	// Category share of completions
	performance := make([]CategoryPerformance, len(categories))
	for i, cat := range categories {
		perf := CategoryPerformance{CategoryID: cat.ID, Name: cat.Name}
		for exerciseID, count := range completionsByExercise {
			if ex, ok := exerciseByID[exerciseID]; ok && ex.CategoryID == cat.ID {
				perf.Completions += count
			}
		}
		if totalCompletions > 0 {
			perf.Percentage = math.Round(float64(perf.Completions)/float64(totalCompletions)*1000) / 10
		}
		performance[i] = perf
	}

	// Exercise counts per difficulty, fixed order and colors
	difficultyCounts := make(map[string]int)
	for _, ex := range exercises {
		difficultyCounts[ex.Difficulty]++
	}
	distribution := []DifficultySlice{
		{Difficulty: exercise.DifficultyBeginner, Count: difficultyCounts[exercise.DifficultyBeginner], Color: colorBeginner},
		{Difficulty: exercise.DifficultyIntermediate, Count: difficultyCounts[exercise.DifficultyIntermediate], Color: colorIntermediate},
		{Difficulty: exercise.DifficultyAdvanced, Count: difficultyCounts[exercise.DifficultyAdvanced], Color: colorAdvanced},
	}

	return Analytics{
		TotalCompletions:       totalCompletions,
		TotalExercises:         len(exercises),
		TotalUsers:             totalUsers,
		AverageScore:           averageScore,
		CompletionRate:         completionRate,
		CategoryPerformance:    performance,
		DifficultyDistribution: distribution,
		TopExercises:           topExercises(completionsByExercise, firstSeen, exerciseByID),
		DailyActiveUsers:       dailyActiveUsers(allProgress, now),
	}
}

// topExercises ranks exercises by completion count, capped at five
func topExercises(completions map[uint]int, firstSeen map[uint]int, exerciseByID map[uint]exercise.Exercise) []TopExercise {
	ids := make([]uint, 0, len(completions))
	for id := range completions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if completions[ids[i]] != completions[ids[j]] {
			return completions[ids[i]] > completions[ids[j]]
		}
		return firstSeen[ids[i]] < firstSeen[ids[j]]
	})

	if len(ids) > topExerciseLimit {
		ids = ids[:topExerciseLimit]
	}

	top := make([]TopExercise, len(ids))
	for i, id := range ids {
		title := UnknownExerciseTitle
		if ex, ok := exerciseByID[id]; ok {
			title = ex.Title
		}
		top[i] = TopExercise{ExerciseID: id, Title: title, Completions: completions[id]}
	}
	return top
}

// dailyActiveUsers counts distinct users with a completion per UTC day over
// the trailing week, oldest day first.
func dailyActiveUsers(allProgress []exercise.ProgressRecord, now time.Time) []DailyActive {
	usersByDay := make(map[time.Time]map[uint]bool)
	for _, record := range allProgress {
		if !record.Completed || record.CompletedAt == nil {
			continue
		}
		day := utcDay(*record.CompletedAt)
		if usersByDay[day] == nil {
			usersByDay[day] = make(map[uint]bool)
		}
		usersByDay[day][record.UserID] = true
	}

	today := utcDay(now)
	trend := make([]DailyActive, dailyActiveDays)
	for i := 0; i < dailyActiveDays; i++ {
		day := today.AddDate(0, 0, i-(dailyActiveDays-1))
		trend[i] = DailyActive{
			Date:  day.Format("2006-01-02"),
			Count: len(usersByDay[day]),
		}
	}
	return trend
}
