package handlers

import (
	"net/http"
	"strconv"

	"trivia-backend/internal/models"
	"trivia-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionStore interface {
	ListQuestions() ([]models.Question, error)
	GetQuestion(id uint) (*models.Question, error)
	CreateQuestion(input services.QuestionInput) (*models.Question, error)
	DeleteQuestion(id uint) error
	SearchQuestions(term string) ([]models.Question, error)
}

type QuestionHandler struct {
	questions  QuestionStore
	categories CategoryLister
}

func NewQuestionHandler(questions QuestionStore, categories CategoryLister) *QuestionHandler {
	return &QuestionHandler{questions: questions, categories: categories}
}

type CreateQuestionRequest struct {
	Question   *string      `json:"question" binding:"required" example:"What is H2O?"`
	Answer     *string      `json:"answer" binding:"required" example:"Water"`
	Category   *flexibleInt `json:"category" binding:"required" swaggertype:"integer" example:"1"`
	Difficulty *flexibleInt `json:"difficulty" binding:"required" swaggertype:"integer" example:"1"`
}

type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm" example:"title"`
}

type QuestionsPageResponse struct {
	Success        bool       `json:"success" example:"true"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions" example:"19"`
	Categories     []Category `json:"categories"`
}

type QuestionListResponse struct {
	Success        bool       `json:"success" example:"true"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions" example:"2"`
}

type QuestionResponse struct {
	Success  bool     `json:"success" example:"true"`
	Question Question `json:"question"`
}

type QuestionIDResponse struct {
	Success    bool `json:"success" example:"true"`
	QuestionID uint `json:"question_id" example:"24"`
}

// ListQuestions godoc
// @Summary      List questions page by page
// @Description  Ten questions per page ordered by id, with the total count and all categories
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number, 1-indexed" default(1)
// @Success      200 {object} QuestionsPageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	questions, err := h.questions.ListQuestions()
	if err != nil {
		abortWithReadError(c, "list questions", err)
		return
	}
	categories, err := h.categories.ListCategories()
	if err != nil {
		abortWithReadError(c, "list categories", err)
		return
	}

	current := services.Paginate(questions, page, services.QuestionsPerPage)
	if len(current) == 0 {
		AbortWithError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, QuestionsPageResponse{
		Success:        true,
		Questions:      current,
		TotalQuestions: len(questions),
		Categories:     categories,
	})
}

// GetQuestion godoc
// @Summary      Get a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} QuestionResponse
// @Failure      404 {object} ErrorResponse
// @Router       /questions/{id} [get]
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	question, err := h.questions.GetQuestion(id)
	if err != nil {
		abortWithReadError(c, "get question", err)
		return
	}

	c.JSON(http.StatusOK, QuestionResponse{Success: true, Question: *question})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Description  Any failure, including an unknown id, is reported as 422
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} QuestionIDResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.questions.DeleteQuestion(id); err != nil {
		abortWithWriteError(c, "delete question", err)
		return
	}

	c.JSON(http.StatusOK, QuestionIDResponse{Success: true, QuestionID: id})
}

// CreateQuestion godoc
// @Summary      Create a question
// @Description  All four fields are required; the category is not checked
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      200 {object} QuestionIDResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/create [post]
// @Router       /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithWriteError(c, "create question", err)
		return
	}

	category, ok := req.Category.toUint()
	if !ok {
		AbortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	question, err := h.questions.CreateQuestion(services.QuestionInput{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Category:   category,
		Difficulty: int(*req.Difficulty),
	})
	if err != nil {
		abortWithWriteError(c, "create question", err)
		return
	}

	c.JSON(http.StatusOK, QuestionIDResponse{Success: true, QuestionID: question.ID})
}

// SearchQuestions godoc
// @Summary      Search questions
// @Description  Case-insensitive substring match on the question text; an empty term is 404
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body SearchQuestionsRequest true "Search term"
// @Success      200 {object} QuestionListResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, http.StatusUnprocessableEntity)
		return
	}
	if req.SearchTerm == "" {
		AbortWithError(c, http.StatusNotFound)
		return
	}

	questions, err := h.questions.SearchQuestions(req.SearchTerm)
	if err != nil {
		abortWithReadError(c, "search questions", err)
		return
	}
	if questions == nil {
		questions = []models.Question{}
	}

	c.JSON(http.StatusOK, QuestionListResponse{
		Success:        true,
		Questions:      questions,
		TotalQuestions: len(questions),
	})
}
