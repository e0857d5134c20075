package services

import (
	"context"
	"errors"

	"github.com/dvasic/resumecraft-api/internal/database"
	"github.com/dvasic/resumecraft-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrResumeNotFound = errors.New("resume not found")
	ErrNotResumeOwner = errors.New("not the owner of this resume")
)

const resumeColumns = `id, user_id, title, version, is_active,
	personal_info, education, experience, skills, projects,
	certifications, languages, template, settings, created_at, updated_at`

type ResumeService struct {
	db *database.DB
}

func NewResumeService(db *database.DB) *ResumeService {
	return &ResumeService{db: db}
}

func scanResume(row pgx.Row) (*models.Resume, error) {
	var r models.Resume
	err := row.Scan(
		&r.ID, &r.UserID, &r.Title, &r.Version, &r.IsActive,
		&r.PersonalInfo, &r.Education, &r.Experience, &r.Skills, &r.Projects,
		&r.Certifications, &r.Languages, &r.Template, &r.Settings,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func scanResumes(rows pgx.Rows) ([]models.Resume, error) {
	defer rows.Close()

	resumes := []models.Resume{}
	for rows.Next() {
		r, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, *r)
	}
	return resumes, rows.Err()
}

// ListByUser returns all of the user's resumes, most recently edited first.
func (s *ResumeService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Resume, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+resumeColumns+`
		FROM resumes WHERE user_id = $1
		ORDER BY updated_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	return scanResumes(rows)
}

// GetByID loads a resume and verifies ownership. Existence is checked before
// ownership, so a non-owner gets ErrNotResumeOwner rather than not-found; the
// API has always answered 401 there and clients depend on it.
func (s *ResumeService) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Resume, error) {
	resume, err := scanResume(s.db.Pool.QueryRow(ctx, `
		SELECT `+resumeColumns+`
		FROM resumes WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrResumeNotFound
		}
		return nil, err
	}

	if resume.UserID != userID {
		return nil, ErrNotResumeOwner
	}

	return resume, nil
}

func (s *ResumeService) Create(ctx context.Context, userID uuid.UUID, content models.ResumeContent) (*models.Resume, error) {
	content.ApplyDefaults()

	return scanResume(s.db.Pool.QueryRow(ctx, `
		INSERT INTO resumes (user_id, title, personal_info, education, experience,
			skills, projects, certifications, languages, template, settings)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+resumeColumns+`
	`, userID, content.Title, content.PersonalInfo, content.Education, content.Experience,
		content.Skills, content.Projects, content.Certifications, content.Languages,
		content.Template, content.Settings))
}

// Update replaces the editable content of an owned resume and bumps its
// version by one.
func (s *ResumeService) Update(ctx context.Context, id, userID uuid.UUID, content models.ResumeContent) (*models.Resume, error) {
	if _, err := s.GetByID(ctx, id, userID); err != nil {
		return nil, err
	}

	content.ApplyDefaults()

	return scanResume(s.db.Pool.QueryRow(ctx, `
		UPDATE resumes
		SET title = $1, personal_info = $2, education = $3, experience = $4,
			skills = $5, projects = $6, certifications = $7, languages = $8,
			template = $9, settings = $10, version = version + 1, updated_at = NOW()
		WHERE id = $11
		RETURNING `+resumeColumns+`
	`, content.Title, content.PersonalInfo, content.Education, content.Experience,
		content.Skills, content.Projects, content.Certifications, content.Languages,
		content.Template, content.Settings, id))
}

func (s *ResumeService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.GetByID(ctx, id, userID); err != nil {
		return err
	}

	_, err := s.db.Pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	return err
}

// Versions returns every resume of the owner whose title exactly matches the
// target's, highest version first. Grouping by title string is intentional:
// renaming a resume removes it from its group, and two independently created
// resumes with the same title land in the same group.
func (s *ResumeService) Versions(ctx context.Context, id, userID uuid.UUID) ([]models.Resume, error) {
	resume, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+resumeColumns+`
		FROM resumes WHERE user_id = $1 AND title = $2
		ORDER BY version DESC
	`, userID, resume.Title)
	if err != nil {
		return nil, err
	}
	return scanResumes(rows)
}

// Duplicate forks an owned resume into a new document with the title suffixed
// " (Copy)", version reset to 1 and fresh timestamps.
func (s *ResumeService) Duplicate(ctx context.Context, id, userID uuid.UUID) (*models.Resume, error) {
	resume, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	content := resume.ResumeContent
	content.Title = resume.Title + " (Copy)"

	return s.Create(ctx, userID, content)
}

// ToggleActive flips is_active without touching the version counter.
func (s *ResumeService) ToggleActive(ctx context.Context, id, userID uuid.UUID) (*models.Resume, error) {
	if _, err := s.GetByID(ctx, id, userID); err != nil {
		return nil, err
	}

	return scanResume(s.db.Pool.QueryRow(ctx, `
		UPDATE resumes
		SET is_active = NOT is_active, updated_at = NOW()
		WHERE id = $1
		RETURNING `+resumeColumns+`
	`, id))
}
