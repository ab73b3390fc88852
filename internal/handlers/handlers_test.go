package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"trivia-backend/internal/models"
	"trivia-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeStore keeps categories and questions in memory and mirrors the
// error contract of the gorm services.
type fakeStore struct {
	categories []models.Category
	questions  []models.Question
	nextID     uint
	err        error
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1}
}

func (f *fakeStore) addCategory(label string) models.Category {
	c := models.Category{ID: uint(len(f.categories) + 1), Type: label}
	f.categories = append(f.categories, c)
	return c
}

func (f *fakeStore) addQuestion(text string, category uint) models.Question {
	q := models.Question{ID: f.nextID, Question: text, Answer: "a", Category: category, Difficulty: 1}
	f.nextID++
	f.questions = append(f.questions, q)
	return q
}

func (f *fakeStore) ListCategories() ([]models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Category{}, f.categories...), nil
}

func (f *fakeStore) GetCategoryWithQuestions(id uint) (*models.Category, []models.Question, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	for _, c := range f.categories {
		if c.ID != id {
			continue
		}
		var questions []models.Question
		for _, q := range f.questions {
			if q.Category == id {
				questions = append(questions, q)
			}
		}
		if len(questions) == 0 {
			return &c, nil, services.ErrCategoryEmpty
		}
		return &c, questions, nil
	}
	return nil, nil, services.ErrCategoryNotFound
}

func (f *fakeStore) ListQuestions() ([]models.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := append([]models.Question{}, f.questions...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) GetQuestion(id uint) (*models.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, q := range f.questions {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, services.ErrQuestionNotFound
}

func (f *fakeStore) CreateQuestion(input services.QuestionInput) (*models.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	q := f.addQuestion(input.Question, input.Category)
	q.Answer = input.Answer
	q.Difficulty = input.Difficulty
	f.questions[len(f.questions)-1] = q
	return &q, nil
}

func (f *fakeStore) DeleteQuestion(id uint) error {
	if f.err != nil {
		return f.err
	}
	for i, q := range f.questions {
		if q.ID == id {
			f.questions = append(f.questions[:i], f.questions[i+1:]...)
			return nil
		}
	}
	return services.ErrQuestionNotFound
}

func (f *fakeStore) SearchQuestions(term string) ([]models.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Question
	for _, q := range f.questions {
		if strings.Contains(strings.ToLower(q.Question), strings.ToLower(term)) {
			out = append(out, q)
		}
	}
	return out, nil
}

type fakeQuiz struct {
	question    *models.Question
	err         error
	gotPrevious []uint
	gotCategory *services.QuizCategory
}

func (f *fakeQuiz) NextQuestion(previous []uint, category *services.QuizCategory) (*models.Question, error) {
	f.gotPrevious = previous
	f.gotCategory = category
	return f.question, f.err
}

func newTestRouter(store *fakeStore, quiz *fakeQuiz) *gin.Engine {
	r := gin.New()
	categories := NewCategoryHandler(store)
	questions := NewQuestionHandler(store, store)
	quizzes := NewQuizHandler(quiz)

	r.GET("/categories", categories.ListCategories)
	r.GET("/categories/:id", categories.GetCategory)
	r.GET("/questions", questions.ListQuestions)
	r.GET("/questions/:id", questions.GetQuestion)
	r.DELETE("/questions/:id", questions.DeleteQuestion)
	r.POST("/questions/create", questions.CreateQuestion)
	r.POST("/questions/search", questions.SearchQuestions)
	r.POST("/quiz", quizzes.PlayQuiz)
	return r
}

func doRequest(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

var errDatabaseDown = errors.New("database is down")
