package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Huzaifa-dev-Og/docmed-ai/internal/models"
	"github.com/Huzaifa-dev-Og/docmed-ai/internal/util"
)

// MedicalInfoGenerator produces structured medical information for a query
type MedicalInfoGenerator interface {
	GenerateMedicalInfo(ctx context.Context, query string) (*models.MedicalInfo, error)
}

// MedicalHandler handles medical information API requests
type MedicalHandler struct {
	generator MedicalInfoGenerator
}

// NewMedicalHandler creates a new medical info handler
func NewMedicalHandler(generator MedicalInfoGenerator) *MedicalHandler {
	return &MedicalHandler{
		generator: generator,
	}
}

// GetMedicalInfo handles medical information requests
// @Summary Get structured medical information
// @Description Forward a free-text health question to the LLM and return schema-conforming educational information
// @Tags medical
// @Accept json
// @Produce json
// @Param request body models.MedicalInfoRequest true "Medical info request"
// @Success 200 {object} models.MedicalInfoResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/get-medical-info [post]
func (h *MedicalHandler) GetMedicalInfo(c *gin.Context) {
	var req models.MedicalInfoRequest

	// A body that does not decode carries no usable prompt, so both cases
	// get the same validation error.
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: util.MissingPromptMessage})
		return
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: util.MissingPromptMessage})
		return
	}

	info, err := h.generator.GenerateMedicalInfo(c.Request.Context(), prompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: fmt.Sprintf(util.UpstreamErrorFormat, err),
		})
		return
	}

	c.JSON(http.StatusOK, models.MedicalInfoResponse{
		Success: true,
		Data:    info,
	})
}
