package handlers

import (
	"net/http"

	"trivia-backend/internal/models"

	"github.com/gin-gonic/gin"
)

type CategoryLister interface {
	ListCategories() ([]models.Category, error)
}

type CategoryReader interface {
	CategoryLister
	GetCategoryWithQuestions(id uint) (*models.Category, []models.Question, error)
}

type CategoryHandler struct {
	categories CategoryReader
}

func NewCategoryHandler(categories CategoryReader) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

type CategoriesResponse struct {
	Success    bool       `json:"success" example:"true"`
	Categories []Category `json:"categories"`
}

type CategoryQuestionsResponse struct {
	Success         bool       `json:"success" example:"true"`
	CurrentCategory Category   `json:"current_category"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions" example:"3"`
}

// ListCategories godoc
// @Summary      List categories
// @Description  All categories ordered by id
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      404 {object} ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categories.ListCategories()
	if err != nil {
		abortWithReadError(c, "list categories", err)
		return
	}
	if len(categories) == 0 {
		AbortWithError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{Success: true, Categories: categories})
}

// GetCategory godoc
// @Summary      Get a category with its questions
// @Description  Fails with 404 when the category is missing or has no questions
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200 {object} CategoryQuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /categories/{id} [get]
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	category, questions, err := h.categories.GetCategoryWithQuestions(id)
	if err != nil {
		abortWithReadError(c, "get category", err)
		return
	}

	c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		CurrentCategory: *category,
		Questions:       questions,
		TotalQuestions:  len(questions),
	})
}
