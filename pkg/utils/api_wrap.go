package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIError struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respondData(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respondData(c, http.StatusCreated, data, message)
}

func respondData(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
		TraceID: traceID(c),
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Success: false,
		Error:   &APIError{Message: message},
		TraceID: traceID(c),
	})
}

// RespondValidationError reports a 400 with per-field detail.
func RespondValidationError(c *gin.Context, message string, details interface{}) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Success: false,
		Error:   &APIError{Message: message, Details: details},
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto the response envelope.
// Conflicts and token rejections are 400s with their real message; upstream
// failures are logged and reported generically.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrDuplicateInvite),
		errors.Is(err, ErrAlreadyRegistered),
		errors.Is(err, ErrAlreadyApproved),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrInvalidOrExpiredToken):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrProfileNotFound),
		errors.Is(err, ErrContributionNotFound),
		errors.Is(err, ErrSettingNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUploadFailed):
		log.Printf("upload error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Image upload failed")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
