package services

import (
	"fmt"
	"testing"

	"trivia-backend/internal/config"
	"trivia-backend/internal/database"
	"trivia-backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(&config.Config{
		DBDriver:   "sqlite",
		SQLitePath: "file::memory:",
		DBLogLevel: "silent",
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, label string) models.Category {
	t.Helper()
	category := models.Category{Type: label}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func seedQuestion(t *testing.T, db *gorm.DB, text string, category uint) models.Question {
	t.Helper()
	question := models.Question{
		Question:   text,
		Answer:     "answer to " + text,
		Category:   category,
		Difficulty: 1,
	}
	require.NoError(t, db.Create(&question).Error)
	return question
}

func seedQuestions(t *testing.T, db *gorm.DB, n int, category uint) []models.Question {
	t.Helper()
	questions := make([]models.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, seedQuestion(t, db, fmt.Sprintf("Question %d?", i+1), category))
	}
	return questions
}

func ids(questions []models.Question) []uint {
	out := make([]uint, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.ID)
	}
	return out
}
