package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/dvasic/resumecraft-api/internal/middleware"
	"github.com/dvasic/resumecraft-api/internal/services"
	"github.com/dvasic/resumecraft-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"go.uber.org/zap"
)

type ResumeHandler struct {
	resumeService ResumeServiceInterface
	logger        *zap.Logger
}

func NewResumeHandler(resumeService ResumeServiceInterface, logger *zap.Logger) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService, logger: logger}
}

// respondResumeError maps service errors to the status codes clients expect.
// Not-found wins over not-owner because ownership is only checked on
// documents that exist.
func (h *ResumeHandler) respondResumeError(c *drift.Context, err error, authMessage, serverMessage string) {
	switch {
	case errors.Is(err, services.ErrResumeNotFound):
		_ = c.JSON(http.StatusNotFound, dto.Fail("Resume not found"))
	case errors.Is(err, services.ErrNotResumeOwner):
		_ = c.JSON(http.StatusUnauthorized, dto.Fail(authMessage))
	default:
		h.logger.Error("resume operation failed", zap.Error(err))
		_ = c.JSON(http.StatusInternalServerError, dto.Fail(serverMessage))
	}
}

func (h *ResumeHandler) List(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		_ = c.JSON(http.StatusUnauthorized, dto.Fail("Not authenticated"))
		return
	}

	resumes, err := h.resumeService.ListByUser(context.Background(), userID)
	if err != nil {
		h.logger.Error("failed to list resumes", zap.Error(err))
		_ = c.JSON(http.StatusInternalServerError, dto.Fail("Server error while fetching resumes"))
		return
	}

	_ = c.JSON(http.StatusOK, dto.List(resumes, len(resumes)))
}

func (h *ResumeHandler) Get(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		_ = c.JSON(http.StatusUnauthorized, dto.Fail("Not authenticated"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.JSON(http.StatusNotFound, dto.Fail("Resume not found"))
		return
	}

	resume, err := h.resumeService.GetByID(context.Background(), id, userID)
	if err != nil {
		h.respondResumeError(c, err,
			"Not authorized to access this resume",
			"Server error while fetching resume")
		return
	}

	_ = c.JSON(http.StatusOK, dto.OK(resume))
}

func (h *ResumeHandler) Create(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		_ = c.JSON(http.StatusUnauthorized, dto.Fail("Not authenticated"))
		return
	}

	var req dto.SaveResumeRequest
	if err := c.BindJSON(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	if errs := dto.Validate(req.ResumeContent); errs != nil {
		_ = c.JSON(http.StatusBadRequest, dto.Invalid(errs))
		return
	}

	resume, err := h.resumeService.Create(context.Background(), userID, req.ResumeContent)
	if err != nil {
		h.logger.Error("failed to create resume", zap.Error(err))
		_ = c.JSON(http.StatusInternalServerError, dto.Fail("Server error while creating resume"))
		return
	}

	_ = c.JSON(http.StatusCreated, dto.OK(resume))
}

func (h *ResumeHandler) Update(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		_ = c.JSON(http.StatusUnauthorized, dto.Fail("Not authenticated"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.JSON(http.StatusNotFound, dto.Fail("Resume not found"))
		return
	}

	var req dto.SaveResumeRequest
	if err := c.BindJSON(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	if errs := dto.Validate(req.ResumeContent); errs != nil {
		_ = c.JSON(http.StatusBadRequest, dto.Invalid(errs))
		return
	}

	resume, err := h.resumeService.Update(context.Background(), id, userID, req.ResumeContent)
	if err != nil {
		h.respondResumeError(c, err,
			"Not authorized to update this resume",
			"Server error while updating resume")
		return
	}

	_ = c.JSON(http.StatusOK, dto.OK(resume))
}

func (h *ResumeHandler) Delete(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		_ = c.JSON(http.StatusUnauthorized, dto.Fail("Not authenticated"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.JSON(http.StatusNotFound, dto.Fail("Resume not found"))
		return
	}

	if err := h.resumeService.Delete(context.Background(), id, userID); err != nil {
		h.respondResumeError(c, err,
			"Not authorized to delete this resume",
			"Server error while deleting resume")
		return
	}

	_ = c.JSON(http.StatusOK, dto.OK(map[string]any{}))
}

func (h *ResumeHandler) Versions(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		_ = c.JSON(http.StatusUnauthorized, dto.Fail("Not authenticated"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.JSON(http.StatusNotFound, dto.Fail("Resume not found"))
		return
	}

	versions, err := h.resumeService.Versions(context.Background(), id, userID)
	if err != nil {
		h.respondResumeError(c, err,
			"Not authorized to access this resume",
			"Server error while fetching resume versions")
		return
	}

	_ = c.JSON(http.StatusOK, dto.List(versions, len(versions)))
}

func (h *ResumeHandler) Duplicate(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		_ = c.JSON(http.StatusUnauthorized, dto.Fail("Not authenticated"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.JSON(http.StatusNotFound, dto.Fail("Resume not found"))
		return
	}

	resume, err := h.resumeService.Duplicate(context.Background(), id, userID)
	if err != nil {
		h.respondResumeError(c, err,
			"Not authorized to duplicate this resume",
			"Server error while duplicating resume")
		return
	}

	_ = c.JSON(http.StatusCreated, dto.OK(resume))
}

func (h *ResumeHandler) ToggleActive(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		_ = c.JSON(http.StatusUnauthorized, dto.Fail("Not authenticated"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.JSON(http.StatusNotFound, dto.Fail("Resume not found"))
		return
	}

	resume, err := h.resumeService.ToggleActive(context.Background(), id, userID)
	if err != nil {
		h.respondResumeError(c, err,
			"Not authorized to modify this resume",
			"Server error while toggling resume status")
		return
	}

	_ = c.JSON(http.StatusOK, dto.OK(resume))
}
