package services

import (
	"errors"
	"fmt"
	"strings"

	"trivia-backend/internal/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type QuestionInput struct {
	Question   string
	Answer     string
	Category   uint
	Difficulty int
}

func (s *QuestionService) ListQuestions() ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

func (s *QuestionService) GetQuestion(id uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("get question %d: %w", id, err)
	}
	return &question, nil
}

func (s *QuestionService) CreateQuestion(input QuestionInput) (*models.Question, error) {
	question := models.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Difficulty: input.Difficulty,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return &question, nil
}

func (s *QuestionService) DeleteQuestion(id uint) error {
	question, err := s.GetQuestion(id)
	if err != nil {
		return err
	}

	result := s.db.Delete(question)
	if result.Error != nil {
		return fmt.Errorf("delete question %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

// SearchQuestions matches term as a case-insensitive substring of the
// question text. LIKE wildcards in term are matched literally.
func (s *QuestionService) SearchQuestions(term string) ([]models.Question, error) {
	pattern := "%" + escapeLike(term) + "%"

	var questions []models.Question
	err := s.db.Where("LOWER(question) LIKE LOWER(?) ESCAPE '!'", pattern).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return questions, nil
}

// QuizCandidates returns the questions not listed in previous. A non-nil
// categoryID narrows the result to that category.
func (s *QuestionService) QuizCandidates(previous []uint, categoryID *uint) ([]models.Question, error) {
	query := s.db.Model(&models.Question{})
	if categoryID != nil {
		query = query.Where("category = ?", *categoryID)
	}
	// NOT IN with an empty list renders as NOT IN (NULL) and matches nothing.
	if len(previous) > 0 {
		query = query.Where("id NOT IN ?", previous)
	}

	var questions []models.Question
	if err := query.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list quiz candidates: %w", err)
	}
	return questions, nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
