package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"train-induction-ai/models"
	"train-induction-ai/services"
)

func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{Error: message})
}

// respondServiceError maps service errors to HTTP responses
func respondServiceError(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case services.IsMissingInput(err):
		respondError(c, http.StatusBadRequest, err.Error())
	case services.IsUpstream(err):
		respondError(c, http.StatusInternalServerError, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}
