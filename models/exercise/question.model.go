package exercise

import (
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question is one item within an exercise. The answer shape depends on Type,
// so the type-specific fields live in a JSON payload decoded into one of the
// payload structs below instead of a single polymorphic correct_answer column.
type Question struct {
	gorm.Model
	ExerciseID  uint           `json:"exercise_id" gorm:"index;not null"`
	Prompt      string         `json:"prompt" gorm:"not null"`
	Explanation string         `json:"explanation"`
	OrderIndex  int            `json:"order_index" gorm:"default:0"`
	Type        string         `json:"type" gorm:"not null"`
	Payload     datatypes.JSON `json:"payload"`
	IsDeleted   bool           `gorm:"default:false"`
}

// MultipleChoicePayload carries the options and the single correct one.
// CorrectOption must equal one of Options exactly (case-sensitive).
type MultipleChoicePayload struct {
	Options       []string `json:"options"`
	CorrectOption string   `json:"correct_option"`
}

// TrueFalsePayload optionally carries a reading-comprehension passage
type TrueFalsePayload struct {
	Correct     bool   `json:"correct"`
	PassageText string `json:"passage_text,omitempty"`
}

// FillBlanksPayload carries the expected text for each blank in order.
// WordBank is an optional set of candidate words shown to the learner.
type FillBlanksPayload struct {
	Blanks   []string `json:"blanks"`
	WordBank []string `json:"word_bank,omitempty"`
}

// MatchPair is one left/right pairing in a matching question
type MatchPair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// MatchingPayload carries the full pairing; the submitted answer is the
// right-hand side for each left entry, in order.
type MatchingPayload struct {
	Pairs []MatchPair `json:"pairs"`
}

// EssayPayload has no gradable answer; essays are reviewed manually
type EssayPayload struct {
	MinWords int `json:"min_words,omitempty"`
}

// DecodePayload unmarshals the JSON payload into the variant matching Type
func (q *Question) DecodePayload() (interface{}, error) {
	switch q.Type {
	case TypeMultipleChoice:
		var p MultipleChoicePayload
		if err := json.Unmarshal(q.Payload, &p); err != nil {
			return nil, err
		}
		return p, nil
	case TypeTrueFalse:
		var p TrueFalsePayload
		if err := json.Unmarshal(q.Payload, &p); err != nil {
			return nil, err
		}
		return p, nil
	case TypeFillBlanks:
		var p FillBlanksPayload
		if err := json.Unmarshal(q.Payload, &p); err != nil {
			return nil, err
		}
		return p, nil
	case TypeMatching:
		var p MatchingPayload
		if err := json.Unmarshal(q.Payload, &p); err != nil {
			return nil, err
		}
		return p, nil
	case TypeEssay:
		var p EssayPayload
		if len(q.Payload) > 0 {
			if err := json.Unmarshal(q.Payload, &p); err != nil {
				return nil, err
			}
		}
		return p, nil
	}
	return nil, fmt.Errorf("unknown question type: %s", q.Type)
}

// ValidatePayload checks that a payload is well formed for the given type.
// Invalid questions must be rejected at authoring time, never silently graded.
func ValidatePayload(questionType string, payload []byte) map[string]string {
	errors := make(map[string]string)

	switch questionType {
	case TypeMultipleChoice:
		var p MultipleChoicePayload
		if err := json.Unmarshal(payload, &p); err != nil {
			errors["payload"] = "Invalid multiple-choice payload!"
			return errors
		}
		if len(p.Options) < 2 {
			errors["options"] = "Multiple-choice questions need at least 2 options!"
		}
		if strings.TrimSpace(p.CorrectOption) == "" {
			errors["correct_option"] = "Correct option is required!"
		} else {
			found := false
			for _, opt := range p.Options {
				if opt == p.CorrectOption {
					found = true
					break
				}
			}
			if !found {
				errors["correct_option"] = "Correct option must be one of the options!"
			}
		}
	case TypeTrueFalse:
		var p TrueFalsePayload
		if err := json.Unmarshal(payload, &p); err != nil {
			errors["payload"] = "Invalid true-false payload!"
		}
	case TypeFillBlanks:
		var p FillBlanksPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			errors["payload"] = "Invalid fill-blanks payload!"
			return errors
		}
		if len(p.Blanks) == 0 {
			errors["blanks"] = "Fill-blanks questions need at least one blank!"
		}
		for _, blank := range p.Blanks {
			if strings.TrimSpace(blank) == "" {
				errors["blanks"] = "Blank answers cannot be empty!"
				break
			}
		}
	case TypeMatching:
		var p MatchingPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			errors["payload"] = "Invalid matching payload!"
			return errors
		}
		if len(p.Pairs) < 2 {
			errors["pairs"] = "Matching questions need at least 2 pairs!"
		}
		for _, pair := range p.Pairs {
			if strings.TrimSpace(pair.Left) == "" || strings.TrimSpace(pair.Right) == "" {
				errors["pairs"] = "Matching pairs cannot have empty sides!"
				break
			}
		}
	case TypeEssay:
		// No gradable payload to validate
	default:
		errors["type"] = "Question type must be multiple-choice, fill-blanks, true-false, matching, or essay!"
	}

	return errors
}
