package controllers

import (
	"eslapi/config"
	"eslapi/database"
	"eslapi/middleware"
	"eslapi/models"
	"eslapi/models/exercise"
	"sort"

	"github.com/gofiber/fiber/v2"
)

// QuestionView is a question as shown to a learner: the correct answers are
// stripped out and only the fields the question type needs are present.
type QuestionView struct {
	ID           uint     `json:"id"`
	Prompt       string   `json:"prompt"`
	Type         string   `json:"type"`
	OrderIndex   int      `json:"order_index"`
	Options      []string `json:"options,omitempty"`       // multiple-choice
	PassageText  string   `json:"passage_text,omitempty"`  // true-false
	BlanksCount  int      `json:"blanks_count,omitempty"`  // fill-blanks
	WordBank     []string `json:"word_bank,omitempty"`     // fill-blanks
	LeftColumn   []string `json:"left_column,omitempty"`   // matching
	RightOptions []string `json:"right_options,omitempty"` // matching
}

// buildQuestionView strips answers from a question's payload
func buildQuestionView(q exercise.Question) (QuestionView, error) {
	view := QuestionView{
		ID:         q.ID,
		Prompt:     q.Prompt,
		Type:       q.Type,
		OrderIndex: q.OrderIndex,
	}

	payload, err := q.DecodePayload()
	if err != nil {
		return view, err
	}

	switch p := payload.(type) {
	case exercise.MultipleChoicePayload:
		view.Options = p.Options
	case exercise.TrueFalsePayload:
		view.PassageText = p.PassageText
	case exercise.FillBlanksPayload:
		view.BlanksCount = len(p.Blanks)
		view.WordBank = p.WordBank
	case exercise.MatchingPayload:
		view.LeftColumn = make([]string, len(p.Pairs))
		view.RightOptions = make([]string, len(p.Pairs))
		for i, pair := range p.Pairs {
			view.LeftColumn[i] = pair.Left
			view.RightOptions[i] = pair.Right
		}
		// stored order pairs left and right; re-sort the right side so it
		// does not give the answer away
		sort.Strings(view.RightOptions)
	}
	return view, nil
}

// GetExerciseDetails gets one published exercise with learner-safe questions
func GetExerciseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	exerciseID := c.Locals("exerciseID").(int)

	var ex exercise.Exercise
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ? AND is_published = ?", exerciseID, false, true).
		First(&ex).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exercise not found!", nil)
	}

	var questions []exercise.Question
	if err := database.Database.Db.
		Where("exercise_id = ? AND is_deleted = ?", exerciseID, false).
		Order("order_index asc, id asc").Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		view, err := buildQuestionView(q)
		if err != nil {
			// content with a broken payload should never have been published
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Exercise content is invalid!", nil)
		}
		views = append(views, view)
	}

	// Instructions resolve to the learner's language, falling back to the
	// configured default
	lang := c.Query("lang")
	if lang == "" {
		lang = user.NativeLanguage
	}
	instructions := exercise.ResolveInstructions(ex.Instructions, lang, config.AppConfig.DefaultLanguage)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exercise fetched successfully!", fiber.Map{
		"exercise":     ex,
		"instructions": instructions,
		"questions":    views,
	})
}
