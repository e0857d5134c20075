package handlers

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/dvasic/resumecraft-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
	"go.uber.org/zap"
)

var emailFormat = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type EmailHandler struct {
	emailService EmailServiceInterface
	frontendURL  string
	logger       *zap.Logger
}

func NewEmailHandler(emailService EmailServiceInterface, frontendURL string, logger *zap.Logger) *EmailHandler {
	return &EmailHandler{
		emailService: emailService,
		frontendURL:  frontendURL,
		logger:       logger,
	}
}

// ShareResume mails a public preview link of a resume to a recipient.
func (h *EmailHandler) ShareResume(c *drift.Context) {
	var req dto.ShareResumeRequest
	if err := c.BindJSON(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	if req.RecipientEmail == "" || req.Subject == "" || req.Message == "" || req.ResumeID == "" {
		_ = c.JSON(http.StatusBadRequest, dto.Fail("Missing required fields"))
		return
	}

	if !emailFormat.MatchString(req.RecipientEmail) {
		_ = c.JSON(http.StatusBadRequest, dto.Fail("Invalid email format"))
		return
	}

	if !h.emailService.IsConfigured() {
		_ = c.JSON(http.StatusInternalServerError, dto.Fail("Email service is not configured on the server"))
		return
	}

	link := fmt.Sprintf("%s/resume/%s/preview", h.frontendURL, req.ResumeID)

	if err := h.emailService.SendResumeShare(req.RecipientEmail, req.Subject, req.Message, req.ResumeTitle, link); err != nil {
		h.logger.Error("failed to send share email", zap.Error(err))
		_ = c.JSON(http.StatusInternalServerError, dto.Fail("Failed to send email. Please try again."))
		return
	}

	_ = c.JSON(http.StatusOK, dto.Msg("Email sent successfully"))
}
