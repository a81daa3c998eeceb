package stats

import (
	"testing"

	"eslapi/models/exercise"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func makeQuestion(id uint, questionType, payload string) exercise.Question {
	return exercise.Question{
		Model:   gorm.Model{ID: id},
		Type:    questionType,
		Payload: datatypes.JSON([]byte(payload)),
	}
}

func boolPtr(v bool) *bool { return &v }

func TestGradeAttempt_HalfCorrect(t *testing.T) {
	questions := []exercise.Question{
		makeQuestion(1, exercise.TypeMultipleChoice, `{"options":["A","B","C"],"correct_option":"B"}`),
		makeQuestion(2, exercise.TypeTrueFalse, `{"correct":true}`),
	}
	answers := map[uint]Answer{
		1: {Text: "B"},
		2: {Value: boolPtr(false)},
	}

	result, err := GradeAttempt(questions, answers)
	require.NoError(t, err)

	assert.Equal(t, 50, result.Percentage)
	require.Len(t, result.Results, 2)
	assert.True(t, result.Results[0].Correct)
	assert.False(t, result.Results[1].Correct)
}

func TestGradeAttempt_ScoreBounds(t *testing.T) {
	questions := []exercise.Question{
		makeQuestion(1, exercise.TypeMultipleChoice, `{"options":["A","B"],"correct_option":"A"}`),
		makeQuestion(2, exercise.TypeTrueFalse, `{"correct":false}`),
	}

	allCorrect := map[uint]Answer{1: {Text: "A"}, 2: {Value: boolPtr(false)}}
	result, err := GradeAttempt(questions, allCorrect)
	require.NoError(t, err)
	assert.Equal(t, 100, result.Percentage)

	allWrong := map[uint]Answer{1: {Text: "B"}, 2: {Value: boolPtr(true)}}
	result, err = GradeAttempt(questions, allWrong)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Percentage)
}

func TestGradeAttempt_MissingAnswerIsIncorrect(t *testing.T) {
	questions := []exercise.Question{
		makeQuestion(1, exercise.TypeMultipleChoice, `{"options":["A","B"],"correct_option":"A"}`),
	}

	result, err := GradeAttempt(questions, map[uint]Answer{})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Percentage)
	assert.False(t, result.Results[0].Correct)
}

func TestGradeAttempt_CaseSensitiveExactMatch(t *testing.T) {
	questions := []exercise.Question{
		makeQuestion(1, exercise.TypeFillBlanks, `{"blanks":["Cat","Dog"]}`),
	}

	result, err := GradeAttempt(questions, map[uint]Answer{1: {Parts: []string{"cat", "Dog"}}})
	require.NoError(t, err)
	assert.False(t, result.Results[0].Correct, "matching is case-sensitive, no folding")

	result, err = GradeAttempt(questions, map[uint]Answer{1: {Parts: []string{"Cat", "Dog"}}})
	require.NoError(t, err)
	assert.True(t, result.Results[0].Correct)
}

func TestGradeAttempt_NoPartialCreditForMatching(t *testing.T) {
	questions := []exercise.Question{
		makeQuestion(1, exercise.TypeMatching, `{"pairs":[{"left":"big","right":"small"},{"left":"hot","right":"cold"}]}`),
	}

	// one pair right, one wrong: binary incorrect
	result, err := GradeAttempt(questions, map[uint]Answer{1: {Parts: []string{"small", "warm"}}})
	require.NoError(t, err)
	assert.False(t, result.Results[0].Correct)
	assert.Equal(t, 0, result.Percentage)

	result, err = GradeAttempt(questions, map[uint]Answer{1: {Parts: []string{"small", "cold"}}})
	require.NoError(t, err)
	assert.True(t, result.Results[0].Correct)
	assert.Equal(t, 100, result.Percentage)
}

func TestGradeAttempt_WrongLengthSequenceIsIncorrect(t *testing.T) {
	questions := []exercise.Question{
		makeQuestion(1, exercise.TypeFillBlanks, `{"blanks":["a","b"]}`),
	}

	result, err := GradeAttempt(questions, map[uint]Answer{1: {Parts: []string{"a"}}})
	require.NoError(t, err)
	assert.False(t, result.Results[0].Correct)
}

func TestGradeAttempt_EssayExcludedFromPercentage(t *testing.T) {
	questions := []exercise.Question{
		makeQuestion(1, exercise.TypeMultipleChoice, `{"options":["A","B"],"correct_option":"A"}`),
		makeQuestion(2, exercise.TypeEssay, `{}`),
	}

	result, err := GradeAttempt(questions, map[uint]Answer{
		1: {Text: "A"},
		2: {Text: "My summer holiday was great."},
	})
	require.NoError(t, err)

	assert.Equal(t, 100, result.Percentage, "essays must not dilute the score")
	assert.Equal(t, 1, result.GradedCount)
	assert.False(t, result.Results[1].Graded)
}

func TestGradeAttempt_AllEssayYieldsZero(t *testing.T) {
	questions := []exercise.Question{
		makeQuestion(1, exercise.TypeEssay, `{}`),
	}

	result, err := GradeAttempt(questions, map[uint]Answer{1: {Text: "text"}})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Percentage)
	assert.Equal(t, 0, result.GradedCount)
}

func TestGradeAttempt_RoundingHalfUp(t *testing.T) {
	questions := []exercise.Question{
		makeQuestion(1, exercise.TypeTrueFalse, `{"correct":true}`),
		makeQuestion(2, exercise.TypeTrueFalse, `{"correct":true}`),
		makeQuestion(3, exercise.TypeTrueFalse, `{"correct":true}`),
	}

	oneRight := map[uint]Answer{1: {Value: boolPtr(true)}, 2: {Value: boolPtr(false)}, 3: {Value: boolPtr(false)}}
	result, err := GradeAttempt(questions, oneRight)
	require.NoError(t, err)
	assert.Equal(t, 33, result.Percentage)

	twoRight := map[uint]Answer{1: {Value: boolPtr(true)}, 2: {Value: boolPtr(true)}, 3: {Value: boolPtr(false)}}
	result, err = GradeAttempt(questions, twoRight)
	require.NoError(t, err)
	assert.Equal(t, 67, result.Percentage)
}

func TestGradeAttempt_InvalidPayloadFails(t *testing.T) {
	questions := []exercise.Question{
		makeQuestion(1, exercise.TypeMultipleChoice, `not-json`),
	}

	_, err := GradeAttempt(questions, map[uint]Answer{1: {Text: "A"}})
	assert.Error(t, err)
}
