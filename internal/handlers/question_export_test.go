package handlers

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportQuestionsJSON(t *testing.T) {
	store := newFakeStore()
	store.addCategory("Science")
	store.addQuestion("What is H2O?", 1)
	store.addQuestion("Orphan?", 7)
	r := newTestRouter(store, &fakeQuiz{})
	r.GET("/questions/export", NewQuestionHandler(store, store).ExportQuestions)

	w := doRequest(t, r, http.MethodGet, "/questions/export", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "trivia.json")
	data := decode[ExportData](t, w)
	require.Len(t, data.Questions, 2)
	assert.Equal(t, "Science", data.Questions[0].Category)
	assert.Empty(t, data.Questions[1].Category)
	assert.Len(t, data.Categories, 1)
}

func TestExportQuestionsCSV(t *testing.T) {
	store := newFakeStore()
	store.addCategory("Science")
	store.addQuestion("What is H2O, really?", 1)
	r := newTestRouter(store, &fakeQuiz{})
	r.GET("/questions/export", NewQuestionHandler(store, store).ExportQuestions)

	w := doRequest(t, r, http.MethodGet, "/questions/export?format=csv", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	rows, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"id", "question", "answer", "category", "difficulty"},
		{"1", "What is H2O, really?", "a", "Science", "1"},
	}, rows)
}

func TestExportQuestionsStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.err = errDatabaseDown
	r := newTestRouter(store, &fakeQuiz{})
	r.GET("/questions/export", NewQuestionHandler(store, store).ExportQuestions)

	w := doRequest(t, r, http.MethodGet, "/questions/export", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
