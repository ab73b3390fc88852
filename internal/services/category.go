package services

import (
	"errors"
	"fmt"

	"trivia-backend/internal/models"

	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) GetCategory(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}
	return &category, nil
}

// GetCategoryWithQuestions returns the category and the questions filed
// under it, ordered by id. A missing category yields ErrCategoryNotFound and
// an existing one without questions yields ErrCategoryEmpty.
func (s *CategoryService) GetCategoryWithQuestions(id uint) (*models.Category, []models.Question, error) {
	category, err := s.GetCategory(id)
	if err != nil {
		return nil, nil, err
	}

	var questions []models.Question
	if err := s.db.Where("category = ?", id).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, nil, fmt.Errorf("list questions of category %d: %w", id, err)
	}
	if len(questions) == 0 {
		return category, nil, ErrCategoryEmpty
	}
	return category, questions, nil
}
