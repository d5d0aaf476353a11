package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumecoach/backend/apperr"
	"github.com/resumecoach/backend/models"
)

// statusFor maps a failure kind to an HTTP status
func statusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindInvalidInput:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindIO:
		return http.StatusUnprocessableEntity
	case apperr.KindLLM, apperr.KindTrends, apperr.KindEmbedding:
		return http.StatusBadGateway
	case apperr.KindConfig:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error, message string) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		log.Printf("[Handler] %s %s: %s: %v", c.Request.Method, c.FullPath(), message, err)
	}
	c.JSON(code, models.ErrorResponse{
		Error:   message,
		Code:    code,
		Details: err.Error(),
	})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: message,
		Code:  http.StatusBadRequest,
	})
}
