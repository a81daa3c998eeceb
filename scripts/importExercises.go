package main

import (
	"encoding/json"
	"eslapi/config"
	"eslapi/database"
	"eslapi/models/exercise"
	"log"
	"os"

	"gorm.io/datatypes"
)

// Seed file layout: categories with nested exercises, exercises with nested
// questions. Matching is by name/title so the import can be re-run.
type seedQuestion struct {
	Prompt      string          `json:"prompt"`
	Explanation string          `json:"explanation"`
	OrderIndex  int             `json:"order_index"`
	Type        string          `json:"type"`
	Payload     json.RawMessage `json:"payload"`
}

type seedExercise struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Difficulty   string          `json:"difficulty"`
	Type         string          `json:"type"`
	Instructions json.RawMessage `json:"instructions"`
	Publish      bool            `json:"publish"`
	Questions    []seedQuestion  `json:"questions"`
}

type seedCategory struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	OrderIndex  int            `json:"order_index"`
	Exercises   []seedExercise `json:"exercises"`
}

func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	path := "exercises.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to open seed file: %v", err)
	}

	var categories []seedCategory
	if err := json.Unmarshal(data, &categories); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	log.Printf("Total categories to import: %d", len(categories))

	inserted := 0
	updated := 0
	skipped := 0

	for _, sc := range categories {
		if sc.Name == "" {
			skipped++
			continue
		}

		var category exercise.Category
		result := database.Database.Db.Where("name = ?", sc.Name).First(&category)
		if result.Error != nil {
			category = exercise.Category{
				Name:        sc.Name,
				Description: sc.Description,
				OrderIndex:  sc.OrderIndex,
			}
			if err := database.Database.Db.Create(&category).Error; err != nil {
				log.Printf("Error inserting category %s: %v", sc.Name, err)
				continue
			}
			inserted++
		} else {
			category.Description = sc.Description
			category.OrderIndex = sc.OrderIndex
			category.IsDeleted = false
			if err := database.Database.Db.Save(&category).Error; err != nil {
				log.Printf("Error updating category %s: %v", sc.Name, err)
				continue
			}
			updated++
		}

		for _, se := range sc.Exercises {
			if se.Title == "" || !exercise.ValidTypes[se.Type] || !exercise.ValidDifficulties[se.Difficulty] {
				log.Printf("Skipping invalid exercise %q in category %s", se.Title, sc.Name)
				skipped++
				continue
			}

			var ex exercise.Exercise
			result := database.Database.Db.Where("category_id = ? AND title = ?", category.ID, se.Title).First(&ex)
			if result.Error != nil {
				ex = exercise.Exercise{
					CategoryID:   category.ID,
					Title:        se.Title,
					Description:  se.Description,
					Difficulty:   se.Difficulty,
					Type:         se.Type,
					Instructions: datatypes.JSON(se.Instructions),
					IsPublished:  se.Publish,
				}
				if err := database.Database.Db.Create(&ex).Error; err != nil {
					log.Printf("Error inserting exercise %s: %v", se.Title, err)
					continue
				}
				inserted++
			} else {
				ex.Description = se.Description
				ex.Difficulty = se.Difficulty
				ex.Type = se.Type
				ex.Instructions = datatypes.JSON(se.Instructions)
				ex.IsPublished = se.Publish
				ex.IsDeleted = false
				if err := database.Database.Db.Save(&ex).Error; err != nil {
					log.Printf("Error updating exercise %s: %v", se.Title, err)
					continue
				}
				updated++
			}

			for _, sq := range se.Questions {
				if errs := exercise.ValidatePayload(sq.Type, sq.Payload); len(errs) > 0 {
					log.Printf("Skipping question with invalid payload in %s: %v", se.Title, errs)
					skipped++
					continue
				}

				var question exercise.Question
				result := database.Database.Db.Where("exercise_id = ? AND prompt = ?", ex.ID, sq.Prompt).First(&question)
				if result.Error != nil {
					question = exercise.Question{
						ExerciseID:  ex.ID,
						Prompt:      sq.Prompt,
						Explanation: sq.Explanation,
						OrderIndex:  sq.OrderIndex,
						Type:        sq.Type,
						Payload:     datatypes.JSON(sq.Payload),
					}
					if err := database.Database.Db.Create(&question).Error; err != nil {
						log.Printf("Error inserting question in %s: %v", se.Title, err)
						continue
					}
					inserted++
				} else {
					question.Explanation = sq.Explanation
					question.OrderIndex = sq.OrderIndex
					question.Type = sq.Type
					question.Payload = datatypes.JSON(sq.Payload)
					question.IsDeleted = false
					if err := database.Database.Db.Save(&question).Error; err != nil {
						log.Printf("Error updating question in %s: %v", se.Title, err)
						continue
					}
					updated++
				}
			}
		}
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Inserted: %d", inserted)
	log.Printf("Updated: %d", updated)
	log.Printf("Skipped: %d", skipped)
}
