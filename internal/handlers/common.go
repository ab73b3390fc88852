package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"trivia-backend/internal/models"
	"trivia-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"Not found"`
}

var errorMessages = map[int]string{
	http.StatusNotFound:            "Not found",
	http.StatusMethodNotAllowed:    "Method not allowed",
	http.StatusUnprocessableEntity: "Un processable",
	http.StatusInternalServerError: "Internal Server Error",
}

func NewErrorResponse(status int) ErrorResponse {
	message, ok := errorMessages[status]
	if !ok {
		message = http.StatusText(status)
	}
	return ErrorResponse{Error: status, Message: message}
}

// AbortWithError writes the standard error body for status.
func AbortWithError(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, NewErrorResponse(status))
}

// abortWithReadError maps a store error from a read path: missing or empty
// results are 404, anything else is logged and reported as 500.
func abortWithReadError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrCategoryEmpty),
		errors.Is(err, services.ErrQuestionNotFound),
		errors.Is(err, services.ErrNoCandidates):
		AbortWithError(c, http.StatusNotFound)
	default:
		log.Printf("%s: %v", op, err)
		AbortWithError(c, http.StatusInternalServerError)
	}
}

// abortWithWriteError reports every failed mutation as 422 regardless of
// its cause.
func abortWithWriteError(c *gin.Context, op string, err error) {
	log.Printf("%s: %v", op, err)
	AbortWithError(c, http.StatusUnprocessableEntity)
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		AbortWithError(c, http.StatusNotFound)
		return 0, false
	}
	return uint(id), true
}

// flexibleInt accepts a JSON number or a numeric string. Browser clients
// send select values and object keys as strings. null leaves it unchanged.
type flexibleInt int64

func (f *flexibleInt) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	data = bytes.Trim(data, `"`)
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return errors.New("expected an integer")
	}
	*f = flexibleInt(n)
	return nil
}

func (f flexibleInt) toUint() (uint, bool) {
	if f < 0 {
		return 0, false
	}
	return uint(f), true
}

var _ json.Unmarshaler = (*flexibleInt)(nil)

// Type aliases so swag can resolve models in annotations.
type Category = models.Category
type Question = models.Question
