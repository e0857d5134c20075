package services

import (
	"context"
	"testing"
	"time"

	"github.com/dvasic/resumecraft-api/internal/database"
	"github.com/dvasic/resumecraft-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupResumeService(t *testing.T) (*ResumeService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	return NewResumeService(db), mock
}

var resumeColumnNames = []string{
	"id", "user_id", "title", "version", "is_active",
	"personal_info", "education", "experience", "skills", "projects",
	"certifications", "languages", "template", "settings", "created_at", "updated_at",
}

// testContent returns content with every default already filled, so the
// values the service sends to the database match it exactly.
func testContent(title string) models.ResumeContent {
	c := models.ResumeContent{
		Title: title,
		PersonalInfo: models.PersonalInfo{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
		},
	}
	c.ApplyDefaults()
	return c
}

func resumeRow(r *models.Resume) *pgxmock.Rows {
	return pgxmock.NewRows(resumeColumnNames).AddRow(
		r.ID, r.UserID, r.Title, r.Version, r.IsActive,
		r.PersonalInfo, r.Education, r.Experience, r.Skills, r.Projects,
		r.Certifications, r.Languages, r.Template, r.Settings,
		r.CreatedAt, r.UpdatedAt,
	)
}

func testResume(userID uuid.UUID, title string, version int) *models.Resume {
	now := time.Now()
	return &models.Resume{
		ID:            uuid.New(),
		UserID:        userID,
		Version:       version,
		IsActive:      true,
		ResumeContent: testContent(title),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestResumeService_Create(t *testing.T) {
	svc, mock := setupResumeService(t)
	ctx := context.Background()
	userID := uuid.New()
	content := testContent("Software Engineer")

	stored := testResume(userID, "Software Engineer", 1)
	mock.ExpectQuery(`INSERT INTO resumes`).
		WithArgs(userID, content.Title, content.PersonalInfo, content.Education,
			content.Experience, content.Skills, content.Projects,
			content.Certifications, content.Languages, content.Template, content.Settings).
		WillReturnRows(resumeRow(stored))

	resume, err := svc.Create(ctx, userID, content)

	require.NoError(t, err)
	assert.Equal(t, 1, resume.Version)
	assert.True(t, resume.IsActive)
	assert.Equal(t, "Software Engineer", resume.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeService_Create_AppliesDefaults(t *testing.T) {
	svc, mock := setupResumeService(t)
	ctx := context.Background()
	userID := uuid.New()

	content := models.ResumeContent{
		Title: "Minimal",
		PersonalInfo: models.PersonalInfo{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
		},
	}
	defaulted := content
	defaulted.ApplyDefaults()

	stored := testResume(userID, "Minimal", 1)
	mock.ExpectQuery(`INSERT INTO resumes`).
		WithArgs(userID, defaulted.Title, defaulted.PersonalInfo, defaulted.Education,
			defaulted.Experience, defaulted.Skills, defaulted.Projects,
			defaulted.Certifications, defaulted.Languages, "modern", defaulted.Settings).
		WillReturnRows(resumeRow(stored))

	_, err := svc.Create(ctx, userID, content)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeService_GetByID(t *testing.T) {
	svc, mock := setupResumeService(t)
	ctx := context.Background()
	userID := uuid.New()
	stored := testResume(userID, "Software Engineer", 2)

	mock.ExpectQuery(`SELECT .+ FROM resumes WHERE id`).
		WithArgs(stored.ID).
		WillReturnRows(resumeRow(stored))

	resume, err := svc.GetByID(ctx, stored.ID, userID)

	require.NoError(t, err)
	assert.Equal(t, stored.ID, resume.ID)
	assert.Equal(t, 2, resume.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeService_GetByID_NotFound(t *testing.T) {
	svc, mock := setupResumeService(t)
	ctx := context.Background()
	id := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM resumes WHERE id`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	_, err := svc.GetByID(ctx, id, uuid.New())

	assert.ErrorIs(t, err, ErrResumeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeService_GetByID_NotOwner(t *testing.T) {
	svc, mock := setupResumeService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	stored := testResume(ownerID, "Software Engineer", 1)

	mock.ExpectQuery(`SELECT .+ FROM resumes WHERE id`).
		WithArgs(stored.ID).
		WillReturnRows(resumeRow(stored))

	_, err := svc.GetByID(ctx, stored.ID, uuid.New())

	assert.ErrorIs(t, err, ErrNotResumeOwner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeService_ListByUser(t *testing.T) {
	svc, mock := setupResumeService(t)
	ctx := context.Background()
	userID := uuid.New()
	first := testResume(userID, "Software Engineer", 1)
	second := testResume(userID, "Product Manager", 3)

	rows := resumeRow(first).AddRow(
		second.ID, second.UserID, second.Title, second.Version, second.IsActive,
		second.PersonalInfo, second.Education, second.Experience, second.Skills,
		second.Projects, second.Certifications, second.Languages,
		second.Template, second.Settings, second.CreatedAt, second.UpdatedAt,
	)

	mock.ExpectQuery(`SELECT .+ FROM resumes WHERE user_id .+ ORDER BY updated_at DESC`).
		WithArgs(userID).
		WillReturnRows(rows)

	resumes, err := svc.ListByUser(ctx, userID)

	require.NoError(t, err)
	require.Len(t, resumes, 2)
	assert.Equal(t, first.ID, resumes[0].ID)
	assert.Equal(t, second.ID, resumes[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeService_ListByUser_Empty(t *testing.T) {
	svc, mock := setupResumeService(t)
	ctx := context.Background()
	userID := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM resumes WHERE user_id`).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows(resumeColumnNames))

	resumes, err := svc.ListByUser(ctx, userID)

	require.NoError(t, err)
	assert.NotNil(t, resumes)
	assert.Empty(t, resumes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeService_Update_BumpsVersion(t *testing.T) {
	svc, mock := setupResumeService(t)
	ctx := context.Background()
	userID := uuid.New()
	stored := testResume(userID, "Software Engineer", 1)
	content := testContent("Software Engineer")

	updated := *stored
	updated.Version = 2

	mock.ExpectQuery(`SELECT .+ FROM resumes WHERE id`).
		WithArgs(stored.ID).
		WillReturnRows(resumeRow(stored))
	mock.ExpectQuery(`UPDATE resumes`).
		WithArgs(content.Title, content.PersonalInfo, content.Education, content.Experience,
			content.Skills, content.Projects, content.Certifications, content.Languages,
			content.Template, content.Settings, stored.ID).
		WillReturnRows(resumeRow(&updated))

	resume, err := svc.Update(ctx, stored.ID, userID, content)

	require.NoError(t, err)
	assert.Equal(t, 2, resume.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeService_Update_NotOwner(t *testing.T) {
	svc, mock := setupResumeService(t)
	ctx := context.Background()
	stored := testResume(uuid.New(), "Software Engineer", 1)

	mock.ExpectQuery(`SELECT .+ FROM resumes WHERE id`).
		WithArgs(stored.ID).
		WillReturnRows(resumeRow(stored))

	_, err := svc.Update(ctx, stored.ID, uuid.New(), testContent("Software Engineer"))

	assert.ErrorIs(t, err, ErrNotResumeOwner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeService_Delete(t *testing.T) {
	svc, mock := setupResumeService(t)
	ctx := context.Background()
	userID := uuid.New()
	stored := testResume(userID, "Software Engineer", 1)

	mock.ExpectQuery(`SELECT .+ FROM resumes WHERE id`).
		WithArgs(stored.ID).
		WillReturnRows(resumeRow(stored))
	mock.ExpectExec(`DELETE FROM resumes WHERE id`).
		WithArgs(stored.ID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := svc.Delete(ctx, stored.ID, userID)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeService_Delete_NotFound(t *testing.T) {
	svc, mock := setupResumeService(t)
	ctx := context.Background()
	id := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM resumes WHERE id`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	err := svc.Delete(ctx, id, uuid.New())

	assert.ErrorIs(t, err, ErrResumeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeService_Versions_GroupedByTitle(t *testing.T) {
	svc, mock := setupResumeService(t)
	ctx := context.Background()
	userID := uuid.New()
	stored := testResume(userID, "Software Engineer", 3)
	older := testResume(userID, "Software Engineer", 1)

	mock.ExpectQuery(`SELECT .+ FROM resumes WHERE id`).
		WithArgs(stored.ID).
		WillReturnRows(resumeRow(stored))

	versionRows := resumeRow(stored).AddRow(
		older.ID, older.UserID, older.Title, older.Version, older.IsActive,
		older.PersonalInfo, older.Education, older.Experience, older.Skills,
		older.Projects, older.Certifications, older.Languages,
		older.Template, older.Settings, older.CreatedAt, older.UpdatedAt,
	)
	mock.ExpectQuery(`SELECT .+ FROM resumes WHERE user_id .+ AND title .+ ORDER BY version DESC`).
		WithArgs(userID, "Software Engineer").
		WillReturnRows(versionRows)

	versions, err := svc.Versions(ctx, stored.ID, userID)

	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, 3, versions[0].Version)
	assert.Equal(t, 1, versions[1].Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeService_Duplicate(t *testing.T) {
	svc, mock := setupResumeService(t)
	ctx := context.Background()
	userID := uuid.New()
	stored := testResume(userID, "Software Engineer", 5)

	copyContent := stored.ResumeContent
	copyContent.Title = "Software Engineer (Copy)"

	copied := testResume(userID, "Software Engineer (Copy)", 1)

	mock.ExpectQuery(`SELECT .+ FROM resumes WHERE id`).
		WithArgs(stored.ID).
		WillReturnRows(resumeRow(stored))
	mock.ExpectQuery(`INSERT INTO resumes`).
		WithArgs(userID, copyContent.Title, copyContent.PersonalInfo, copyContent.Education,
			copyContent.Experience, copyContent.Skills, copyContent.Projects,
			copyContent.Certifications, copyContent.Languages,
			copyContent.Template, copyContent.Settings).
		WillReturnRows(resumeRow(copied))

	resume, err := svc.Duplicate(ctx, stored.ID, userID)

	require.NoError(t, err)
	assert.Equal(t, "Software Engineer (Copy)", resume.Title)
	assert.Equal(t, 1, resume.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeService_ToggleActive(t *testing.T) {
	svc, mock := setupResumeService(t)
	ctx := context.Background()
	userID := uuid.New()
	stored := testResume(userID, "Software Engineer", 2)

	toggled := *stored
	toggled.IsActive = false

	mock.ExpectQuery(`SELECT .+ FROM resumes WHERE id`).
		WithArgs(stored.ID).
		WillReturnRows(resumeRow(stored))
	mock.ExpectQuery(`UPDATE resumes`).
		WithArgs(stored.ID).
		WillReturnRows(resumeRow(&toggled))

	resume, err := svc.ToggleActive(ctx, stored.ID, userID)

	require.NoError(t, err)
	assert.False(t, resume.IsActive)
	assert.Equal(t, 2, resume.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}
