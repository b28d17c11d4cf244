package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status        string      `json:"status"`
	Code          int         `json:"code"`
	Message       string      `json:"message,omitempty"`
	CorrelationID string      `json:"correlation_id,omitempty"`
	Data          interface{} `json:"data,omitempty"`
}

func correlationID(c *gin.Context) string {
	if id, ok := c.Get("correlation_id"); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:        "success",
		Code:          http.StatusOK,
		Message:       message,
		CorrelationID: correlationID(c),
		Data:          data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:        "success",
		Code:          http.StatusCreated,
		Message:       message,
		CorrelationID: correlationID(c),
		Data:          data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:        "error",
		Code:          code,
		Message:       message,
		CorrelationID: correlationID(c),
	})
}

// RespondValidationErrors returns 400 with the ordered field/message list
// as the response payload.
func RespondValidationErrors(c *gin.Context, verrs ValidationErrors) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Status:        "error",
		Code:          http.StatusBadRequest,
		Message:       "Validation failed",
		CorrelationID: correlationID(c),
		Data:          verrs,
	})
}

// HandleServiceError maps service sentinel errors to HTTP statuses.
// Database failures always surface as a generic message, never internal
// error text.
func HandleServiceError(c *gin.Context, err error) {
	var verrs ValidationErrors
	switch {
	case errors.As(err, &verrs):
		RespondValidationErrors(c, verrs)
	case errors.Is(err, ErrPlaceNotFound):
		RespondError(c, http.StatusNotFound, "Place not found")
	case errors.Is(err, ErrCategoryNotFound):
		RespondError(c, http.StatusNotFound, "Category not found")
	case errors.Is(err, ErrSubmissionNotFound):
		RespondError(c, http.StatusNotFound, "Submission not found")
	case errors.Is(err, ErrNoEmbedding):
		RespondError(c, http.StatusNotFound, "Place not found or has no embedding")
	case errors.Is(err, ErrInvalidCategory):
		RespondError(c, http.StatusBadRequest, "Invalid category")
	case errors.Is(err, ErrEmptySearchTerm):
		RespondError(c, http.StatusBadRequest, "Search term cannot be empty")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "An error occurred. Please try again later.")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "An error occurred. Please try again later.")
	}
}
