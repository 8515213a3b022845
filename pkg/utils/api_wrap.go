package utils

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every /api endpoint speaks (the budget and auth
// endpoints return their own bare shapes).
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details string      `json:"details,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
}

func RespondSuccess(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Success: true,
		Data:    data,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Success: false,
		Error:   message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service-layer sentinel errors onto HTTP codes.
// Anything unclassified becomes a 500 with a diagnostic detail outside
// production mode.
func HandleServiceError(c *gin.Context, err error) {
	traceID := c.GetString("trace_id")

	if v, ok := AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Error:   v.Error(),
			TraceID: traceID,
		})
		return
	}

	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrTripNotFound),
		errors.Is(err, ErrStopNotFound),
		errors.Is(err, ErrActivityNotFound):
		c.JSON(http.StatusNotFound, APIResponse{
			Success: false,
			Error:   err.Error(),
			TraceID: traceID,
		})
	case errors.Is(err, ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Error:   "Invalid credentials",
			TraceID: traceID,
		})
	case errors.Is(err, ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Error:   "User already exists",
			TraceID: traceID,
		})
	case errors.Is(err, ErrInvalidInput):
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Error:   err.Error(),
			TraceID: traceID,
		})
	case errors.Is(err, ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, APIResponse{
			Success: false,
			Error:   "Invalid or expired token",
			TraceID: traceID,
		})
	default:
		log.Printf("Unclassified error: %v", err)
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Error:   "Internal server error",
			Details: diagnosticDetail(err),
			TraceID: traceID,
		})
	}
}

// diagnosticDetail exposes the raw error message only outside production.
func diagnosticDetail(err error) string {
	if os.Getenv("APP_ENV") == "production" {
		return ""
	}
	return err.Error()
}
