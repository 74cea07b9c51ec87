package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careers-builder/internal/common/errors"
	"careers-builder/internal/models"
)

var applicationCols = []string{
	"id", "job_id", "candidate_name", "email", "resume_url", "cover_letter",
	"status", "created_at",
}

// ==========================
// Application Store Tests
// ==========================

func TestApplicationStore_Create(t *testing.T) {
	stores, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM jobs WHERE id = \$1\)`).
		WithArgs("job-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec(`INSERT INTO applications`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	app, err := stores.Applications.Create(context.Background(), &models.Application{
		JobID:         "job-1",
		CandidateName: "Jane Doe",
		Email:         "jane@example.com",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, app.ID)
	assert.Equal(t, models.StatusPending, app.Status)
	assert.False(t, app.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationStore_Create_UnknownJob(t *testing.T) {
	stores, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM jobs WHERE id = \$1\)`).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	_, err := stores.Applications.Create(context.Background(), &models.Application{
		JobID:         "nope",
		CandidateName: "Jane Doe",
		Email:         "jane@example.com",
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationStore_ListByJob(t *testing.T) {
	stores, mock := newMockDB(t)

	now := time.Now().UTC()
	rows := sqlmock.NewRows(applicationCols).
		AddRow("app-1", "job-1", "Jane Doe", "jane@example.com",
			"https://example.com/cv.pdf", nil, "pending", now).
		AddRow("app-2", "job-1", "John Roe", "john@example.com",
			nil, "Hello!", "pending", now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT (.+) FROM applications WHERE job_id = \$1 ORDER BY created_at DESC`).
		WithArgs("job-1").
		WillReturnRows(rows)

	apps, err := stores.Applications.ListByJob(context.Background(), "job-1")
	require.NoError(t, err)

	require.Len(t, apps, 2)
	require.NotNil(t, apps[0].ResumeURL)
	assert.Equal(t, "https://example.com/cv.pdf", *apps[0].ResumeURL)
	assert.Nil(t, apps[0].CoverLetter)
	require.NotNil(t, apps[1].CoverLetter)
	assert.Equal(t, "Hello!", *apps[1].CoverLetter)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationStore_ListAll_Empty(t *testing.T) {
	stores, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM applications ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(applicationCols))

	apps, err := stores.Applications.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, apps)
	assert.Empty(t, apps)
	assert.NoError(t, mock.ExpectationsWereMet())
}
