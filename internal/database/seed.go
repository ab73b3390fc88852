package database

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"

	"trivia-backend/internal/models"

	"gorm.io/gorm"
)

//go:embed seed.json
var defaultSeed []byte

type SeedData struct {
	Categories []SeedCategory `json:"categories"`
	Questions  []SeedQuestion `json:"questions"`
}

type SeedCategory struct {
	ID   uint   `json:"id"`
	Type string `json:"type"`
}

// SeedQuestion refers to its category by the seed file's category id.
type SeedQuestion struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// SeedDefaults loads the bundled trivia catalogue.
func SeedDefaults(db *gorm.DB) (bool, error) {
	var data SeedData
	if err := json.Unmarshal(defaultSeed, &data); err != nil {
		return false, fmt.Errorf("parse bundled seed: %w", err)
	}
	return Seed(db, data)
}

// Seed inserts data when both tables are empty and reports whether it did.
// Rows get fresh ids from the database so its sequences stay in step.
func Seed(db *gorm.DB, data SeedData) (bool, error) {
	var categories, questions int64
	if err := db.Model(&models.Category{}).Count(&categories).Error; err != nil {
		return false, fmt.Errorf("count categories: %w", err)
	}
	if err := db.Model(&models.Question{}).Count(&questions).Error; err != nil {
		return false, fmt.Errorf("count questions: %w", err)
	}
	if categories > 0 || questions > 0 {
		return false, nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		ids := make(map[uint]uint, len(data.Categories))
		for _, c := range data.Categories {
			category := models.Category{Type: c.Type}
			if err := tx.Create(&category).Error; err != nil {
				return fmt.Errorf("insert category %q: %w", c.Type, err)
			}
			ids[c.ID] = category.ID
		}

		for _, q := range data.Questions {
			categoryID, ok := ids[q.Category]
			if !ok {
				return fmt.Errorf("question %q refers to unknown category %d", q.Question, q.Category)
			}
			question := models.Question{
				Question:   q.Question,
				Answer:     q.Answer,
				Category:   categoryID,
				Difficulty: q.Difficulty,
			}
			if err := tx.Create(&question).Error; err != nil {
				return fmt.Errorf("insert question %q: %w", q.Question, err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	log.Printf("seeded %d categories and %d questions", len(data.Categories), len(data.Questions))
	return true, nil
}
