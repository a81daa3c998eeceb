package exercise

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Difficulty levels
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Exercise/question types
const (
	TypeMultipleChoice = "multiple-choice"
	TypeFillBlanks     = "fill-blanks"
	TypeTrueFalse      = "true-false"
	TypeMatching       = "matching"
	TypeEssay          = "essay"
)

// ValidDifficulties maps allowed difficulty values
var ValidDifficulties = map[string]bool{
	DifficultyBeginner:     true,
	DifficultyIntermediate: true,
	DifficultyAdvanced:     true,
}

// ValidTypes maps allowed exercise/question types
var ValidTypes = map[string]bool{
	TypeMultipleChoice: true,
	TypeFillBlanks:     true,
	TypeTrueFalse:      true,
	TypeMatching:       true,
	TypeEssay:          true,
}

// Exercise is a unit of learning content within a category
type Exercise struct {
	gorm.Model
	CategoryID   uint           `json:"category_id" gorm:"index;not null"`
	Title        string         `json:"title" gorm:"not null"`
	Description  string         `json:"description"`
	Difficulty   string         `json:"difficulty" gorm:"default:'beginner'"`      // beginner, intermediate, advanced
	Type         string         `json:"type" gorm:"default:'multiple-choice'"`     // multiple-choice, fill-blanks, true-false, matching, essay
	Instructions datatypes.JSON `json:"instructions"`                              // legacy string or {lang: text} object
	IsPublished  bool           `json:"is_published" gorm:"default:false"`
	IsDeleted    bool           `gorm:"default:false"`
}
