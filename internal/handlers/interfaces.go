package handlers

import (
	"context"
	"time"

	"github.com/dvasic/resumecraft-api/internal/ai"
	"github.com/dvasic/resumecraft-api/internal/models"
	"github.com/dvasic/resumecraft-api/internal/services"
	"github.com/google/uuid"
)

// UserServiceInterface defines the methods used by handlers from UserService
type UserServiceInterface interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name, email *string) (*models.User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) error
}

// ResumeServiceInterface defines the methods used by handlers from ResumeService
type ResumeServiceInterface interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Resume, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Resume, error)
	Create(ctx context.Context, userID uuid.UUID, content models.ResumeContent) (*models.Resume, error)
	Update(ctx context.Context, id, userID uuid.UUID, content models.ResumeContent) (*models.Resume, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	Versions(ctx context.Context, id, userID uuid.UUID) ([]models.Resume, error)
	Duplicate(ctx context.Context, id, userID uuid.UUID) (*models.Resume, error)
	ToggleActive(ctx context.Context, id, userID uuid.UUID) (*models.Resume, error)
}

// TokenServiceInterface defines the methods used by handlers from TokenService
type TokenServiceInterface interface {
	StoreRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	ValidateRefreshToken(ctx context.Context, tokenHash string) (uuid.UUID, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
	RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error
}

// JWTServiceInterface defines the methods used by handlers from JWTService
type JWTServiceInterface interface {
	GenerateTokenPair(userID uuid.UUID, email string) (*services.TokenPair, error)
	ValidateRefreshToken(token string) (uuid.UUID, error)
	RefreshExpiry() time.Duration
}

// EmailServiceInterface defines the methods used by handlers from EmailService
type EmailServiceInterface interface {
	IsConfigured() bool
	SendResumeShare(to, subject, message, resumeTitle, link string) error
}

// AIClientInterface defines the methods used by handlers from the Gemini client
type AIClientInterface interface {
	IsConfigured() bool
	Suggest(ctx context.Context, text, sectionContext string) (*ai.Suggestion, error)
}
