package services

import (
	"math/rand"

	"trivia-backend/internal/models"
)

// QuizCategoryAll is the quiz category type the frontend sends when the
// player picks "All" instead of a single category.
const QuizCategoryAll = "click"

type QuizCategory struct {
	Type string
	ID   uint
}

// CandidateSource lists the questions still eligible for a quiz round.
type CandidateSource interface {
	QuizCandidates(previous []uint, categoryID *uint) ([]models.Question, error)
}

type QuizService struct {
	questions CandidateSource
	intn      func(n int) int
}

func NewQuizService(questions CandidateSource) *QuizService {
	return &QuizService{questions: questions, intn: rand.Intn}
}

// NextQuestion picks uniformly at random among the questions that were not
// asked yet. Any category other than nil or QuizCategoryAll filters on its
// ID, zero included.
func (s *QuizService) NextQuestion(previous []uint, category *QuizCategory) (*models.Question, error) {
	var categoryID *uint
	if category != nil && category.Type != QuizCategoryAll {
		id := category.ID
		categoryID = &id
	}

	candidates, err := s.questions.QuizCandidates(previous, categoryID)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	picked := candidates[s.intn(len(candidates))]
	return &picked, nil
}
