package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/dvasic/resumecraft-api/internal/config"
)

type EmailService struct {
	cfg config.SMTPConfig
}

func NewEmailService(cfg config.SMTPConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

func (s *EmailService) IsConfigured() bool {
	return s.cfg.Host != "" && s.cfg.Username != "" && s.cfg.Password != "" && s.cfg.From != ""
}

func (s *EmailService) Send(to, subject, body string) error {
	if !s.IsConfigured() {
		return nil
	}

	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		s.cfg.From, to, subject, body)

	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg))
}

// SendResumeShare mails a preview link for a resume along with the sender's
// note.
func (s *EmailService) SendResumeShare(to, subject, message, resumeTitle, link string) error {
	if resumeTitle == "" {
		resumeTitle = "My Resume"
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2>Resume Shared</h2>
			<p>%s</p>
			<hr>
			<p><strong>Resume Link:</strong> <a href="%s">%s</a></p>
			<p><strong>Resume Title:</strong> %s</p>
			<p style="color: #666; font-size: 12px;">
				This resume was shared with you via Resume Builder.
			</p>
		</div>
	`, strings.ReplaceAll(message, "\n", "<br>"), link, link, resumeTitle)

	return s.Send(to, subject, body)
}
