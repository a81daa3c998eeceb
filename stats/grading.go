package stats

import (
	"fmt"

	"eslapi/models/exercise"
)

// Answer is one submitted answer. Exactly one field is used depending on
// the question type: Text for multiple-choice, Value for true-false,
// Parts for fill-blanks and matching. Essays submit Text but are not graded.
type Answer struct {
	Text  string   `json:"text,omitempty"`
	Parts []string `json:"parts,omitempty"`
	Value *bool    `json:"value,omitempty"`
}

// QuestionResult is the graded outcome for a single question
type QuestionResult struct {
	QuestionID  uint   `json:"question_id"`
	Graded      bool   `json:"graded"`
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation,omitempty"`
}

// AttemptResult is the graded outcome for a full exercise attempt
type AttemptResult struct {
	Percentage   int              `json:"percentage"`
	CorrectCount int              `json:"correct_count"`
	GradedCount  int              `json:"graded_count"`
	Results      []QuestionResult `json:"results"`
}

// GradeAttempt grades a submission against the exercise's questions.
// Matching is exact: string equality for scalar answers, element-wise
// equality for sequence answers, no trimming or case folding, no partial
// credit. Essay questions are excluded from the percentage entirely and
// reported with Graded=false. A missing answer counts as incorrect.
func GradeAttempt(questions []exercise.Question, answers map[uint]Answer) (AttemptResult, error) {
	result := AttemptResult{Results: make([]QuestionResult, len(questions))}

	for i, question := range questions {
		payload, err := question.DecodePayload()
		if err != nil {
			return AttemptResult{}, fmt.Errorf("question %d has an invalid payload: %w", question.ID, err)
		}

		qr := QuestionResult{QuestionID: question.ID, Explanation: question.Explanation}
		answer := answers[question.ID]

		switch p := payload.(type) {
		case exercise.MultipleChoicePayload:
			qr.Graded = true
			qr.Correct = answer.Text == p.CorrectOption
		case exercise.TrueFalsePayload:
			qr.Graded = true
			qr.Correct = answer.Value != nil && *answer.Value == p.Correct
		case exercise.FillBlanksPayload:
			qr.Graded = true
			qr.Correct = sequenceEqual(answer.Parts, p.Blanks)
		case exercise.MatchingPayload:
			expected := make([]string, len(p.Pairs))
			for j, pair := range p.Pairs {
				expected[j] = pair.Right
			}
			qr.Graded = true
			qr.Correct = sequenceEqual(answer.Parts, expected)
		case exercise.EssayPayload:
			// reviewed manually, never auto-graded
		}

		if qr.Graded {
			result.GradedCount++
			if qr.Correct {
				result.CorrectCount++
			}
		}
		result.Results[i] = qr
	}

	if result.GradedCount > 0 {
		result.Percentage = roundHalfUp(float64(result.CorrectCount) / float64(result.GradedCount) * 100)
	}
	return result, nil
}

// sequenceEqual is an element-wise exact comparison
func sequenceEqual(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
