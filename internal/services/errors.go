package services

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryEmpty means the category exists but no question references it.
	ErrCategoryEmpty    = errors.New("category has no questions")
	ErrQuestionNotFound = errors.New("question not found")
	ErrNoCandidates     = errors.New("no questions left to play")
)
