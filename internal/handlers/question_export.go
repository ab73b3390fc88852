package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ExportQuestion struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type ExportData struct {
	Categories []Category       `json:"categories"`
	Questions  []ExportQuestion `json:"questions"`
}

// ExportQuestions godoc
// @Summary      Export all questions
// @Description  Whole catalogue as a JSON or CSV attachment, categories by label
// @Tags         questions
// @Produce      json
// @Produce      text/csv
// @Param        format query string false "json or csv" default(json)
// @Success      200 {object} ExportData
// @Router       /questions/export [get]
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	questions, err := h.questions.ListQuestions()
	if err != nil {
		abortWithReadError(c, "export questions", err)
		return
	}
	categories, err := h.categories.ListCategories()
	if err != nil {
		abortWithReadError(c, "export categories", err)
		return
	}

	labels := make(map[uint]string, len(categories))
	for _, cat := range categories {
		labels[cat.ID] = cat.Type
	}

	data := ExportData{Categories: categories, Questions: make([]ExportQuestion, 0, len(questions))}
	for _, q := range questions {
		data.Questions = append(data.Questions, ExportQuestion{
			ID:         q.ID,
			Question:   q.Question,
			Answer:     q.Answer,
			Category:   labels[q.Category],
			Difficulty: q.Difficulty,
		})
	}
	if data.Categories == nil {
		data.Categories = []Category{}
	}

	if c.DefaultQuery("format", "json") == "csv" {
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", `attachment; filename="trivia.csv"`)

		w := csv.NewWriter(c.Writer)
		w.Write([]string{"id", "question", "answer", "category", "difficulty"})
		for _, q := range data.Questions {
			w.Write([]string{
				strconv.FormatUint(uint64(q.ID), 10),
				q.Question,
				q.Answer,
				q.Category,
				strconv.Itoa(q.Difficulty),
			})
		}
		w.Flush()
		return
	}

	c.Header("Content-Disposition", `attachment; filename="trivia.json"`)
	c.JSON(http.StatusOK, data)
}
