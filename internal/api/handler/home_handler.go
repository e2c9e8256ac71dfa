package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Huzaifa-dev-Og/docmed-ai/internal/models"
	"github.com/Huzaifa-dev-Og/docmed-ai/internal/util"
)

// HomeHandler handles the root liveness route
type HomeHandler struct{}

// NewHomeHandler creates a new home handler
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home confirms the server is running
// @Summary Liveness check
// @Description Confirm the backend process is running
// @Tags Health
// @Produce json
// @Success 200 {object} models.HomeResponse
// @Router / [get]
func (h *HomeHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, models.HomeResponse{
		Message: util.HomeMessage,
	})
}
