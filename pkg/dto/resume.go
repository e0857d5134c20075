package dto

import "github.com/dvasic/resumecraft-api/internal/models"

// SaveResumeRequest is the body of both create and update. The whole content
// is sent each time; the server never merges partial documents.
type SaveResumeRequest struct {
	models.ResumeContent
}
