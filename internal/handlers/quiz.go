package handlers

import (
	"net/http"

	"trivia-backend/internal/models"
	"trivia-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizPicker interface {
	NextQuestion(previous []uint, category *services.QuizCategory) (*models.Question, error)
}

type QuizHandler struct {
	quiz QuizPicker
}

func NewQuizHandler(quiz QuizPicker) *QuizHandler {
	return &QuizHandler{quiz: quiz}
}

type QuizCategoryRequest struct {
	Type string      `json:"type" example:"Science"`
	ID   flexibleInt `json:"id" swaggertype:"integer" example:"1"`
}

type PlayQuizRequest struct {
	PreviousQuestions []uint               `json:"previous_questions"`
	QuizCategory      *QuizCategoryRequest `json:"quiz_category"`
}

// PlayQuiz godoc
// @Summary      Next quiz question
// @Description  Random question not in previous_questions. A quiz_category of type "click" means all categories.
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        request body PlayQuizRequest true "Quiz state"
// @Success      200 {object} QuestionResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /quiz [post]
// @Router       /quizzes [post]
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req PlayQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	var category *services.QuizCategory
	if req.QuizCategory != nil {
		id, ok := req.QuizCategory.ID.toUint()
		if !ok {
			AbortWithError(c, http.StatusUnprocessableEntity)
			return
		}
		category = &services.QuizCategory{Type: req.QuizCategory.Type, ID: id}
	}

	question, err := h.quiz.NextQuestion(req.PreviousQuestions, category)
	if err != nil {
		abortWithReadError(c, "next quiz question", err)
		return
	}

	c.JSON(http.StatusOK, QuestionResponse{Success: true, Question: *question})
}
