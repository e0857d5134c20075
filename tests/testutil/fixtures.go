package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/dvasic/resumecraft-api/internal/database"
	"github.com/dvasic/resumecraft-api/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// DefaultPassword is the plaintext password every fixture user gets unless
// overridden.
const DefaultPassword = "password123"

// CreateUser creates a test user with default values
func (f *Fixtures) CreateUser(t *testing.T, opts ...UserOption) *models.User {
	t.Helper()
	f.counter++

	user := &models.User{
		Email: fmt.Sprintf("user%d@example.com", f.counter),
		Name:  fmt.Sprintf("Test User %d", f.counter),
	}
	password := DefaultPassword

	for _, opt := range opts {
		opt(user, &password)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash fixture password: %v", err)
	}

	ctx := context.Background()
	err = f.db.Pool.QueryRow(ctx, `
		INSERT INTO users (email, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, email, name, password_hash, created_at, updated_at
	`, user.Email, user.Name, string(hash)).Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user
}

// UserOption configures a test user
type UserOption func(*models.User, *string)

// WithEmail sets the user's email
func WithEmail(email string) UserOption {
	return func(u *models.User, _ *string) {
		u.Email = email
	}
}

// WithName sets the user's name
func WithName(name string) UserOption {
	return func(u *models.User, _ *string) {
		u.Name = name
	}
}

// WithPassword sets the user's plaintext password
func WithPassword(password string) UserOption {
	return func(_ *models.User, p *string) {
		*p = password
	}
}

// CreateResume creates a test resume owned by the given user
func (f *Fixtures) CreateResume(t *testing.T, userID uuid.UUID, opts ...ResumeOption) *models.Resume {
	t.Helper()
	f.counter++

	content := models.ResumeContent{
		Title: fmt.Sprintf("Resume %d", f.counter),
		PersonalInfo: models.PersonalInfo{
			FirstName: "Test",
			LastName:  "User",
			Email:     fmt.Sprintf("user%d@example.com", f.counter),
		},
	}
	content.ApplyDefaults()

	resume := &models.Resume{
		UserID:        userID,
		Version:       1,
		IsActive:      true,
		ResumeContent: content,
	}

	for _, opt := range opts {
		opt(resume)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO resumes (user_id, title, version, is_active, personal_info, education,
			experience, skills, projects, certifications, languages, template, settings)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`, resume.UserID, resume.Title, resume.Version, resume.IsActive,
		resume.PersonalInfo, resume.Education, resume.Experience, resume.Skills,
		resume.Projects, resume.Certifications, resume.Languages,
		resume.Template, resume.Settings).Scan(
		&resume.ID, &resume.CreatedAt, &resume.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create resume: %v", err)
	}

	return resume
}

// ResumeOption configures a test resume
type ResumeOption func(*models.Resume)

// WithResumeTitle sets the resume title
func WithResumeTitle(title string) ResumeOption {
	return func(r *models.Resume) {
		r.Title = title
	}
}

// WithVersion sets the resume version
func WithVersion(version int) ResumeOption {
	return func(r *models.Resume) {
		r.Version = version
	}
}

// WithInactive marks the resume inactive
func WithInactive() ResumeOption {
	return func(r *models.Resume) {
		r.IsActive = false
	}
}

// WithContent replaces the full resume content
func WithContent(content models.ResumeContent) ResumeOption {
	return func(r *models.Resume) {
		content.ApplyDefaults()
		r.ResumeContent = content
	}
}
