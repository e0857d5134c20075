package dto

type ShareResumeRequest struct {
	RecipientEmail string `json:"recipientEmail" validate:"required"`
	Subject        string `json:"subject" validate:"required"`
	Message        string `json:"message" validate:"required"`
	ResumeID       string `json:"resumeId" validate:"required"`
	ResumeTitle    string `json:"resumeTitle,omitempty"`
}
