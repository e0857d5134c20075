package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/dvasic/resumecraft-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
	"go.uber.org/zap"
)

type AIHandler struct {
	client AIClientInterface
	logger *zap.Logger
}

func NewAIHandler(client AIClientInterface, logger *zap.Logger) *AIHandler {
	return &AIHandler{client: client, logger: logger}
}

// Suggest asks the model for ATS-oriented improvements to a piece of
// resume text.
func (h *AIHandler) Suggest(c *drift.Context) {
	var req dto.SuggestRequest
	if err := c.BindJSON(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	if errs := dto.Validate(req); errs != nil {
		_ = c.JSON(http.StatusBadRequest, dto.Invalid(errs))
		return
	}

	if !h.client.IsConfigured() {
		_ = c.JSON(http.StatusInternalServerError, dto.Fail("GEMINI_API_KEY not configured on the server"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	suggestion, err := h.client.Suggest(ctx, req.Text, req.Context)
	if err != nil {
		h.logger.Error("suggestion request failed", zap.Error(err))
		_ = c.JSON(http.StatusInternalServerError, dto.Fail("Failed to generate suggestions"))
		return
	}

	_ = c.JSON(http.StatusOK, dto.OK(suggestion))
}
