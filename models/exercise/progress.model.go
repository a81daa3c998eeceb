package exercise

import (
	"time"

	"gorm.io/gorm"
)

// ProgressRecord is the persisted outcome of one user's attempt at one
// exercise. At most one row exists per (user, exercise); re-submissions
// overwrite the row in place.
type ProgressRecord struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"uniqueIndex:idx_user_exercise;not null"`
	ExerciseID  uint       `json:"exercise_id" gorm:"uniqueIndex:idx_user_exercise;not null"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	Score       *int       `json:"score"`       // percentage 0-100, nil when unscored
	CompletedAt *time.Time `json:"completed_at"` // set iff Completed
}
