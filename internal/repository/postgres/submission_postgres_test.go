package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"runbot/internal/model"
	"runbot/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var submissionCols = []string{"id", "participant_id", "challenge_id", "submission_date", "media_key", "media_size_bytes", "result_value", "result_unit", "comment", "status", "moderator_comment"}

func TestSubmissionPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSubmissionPostgres(db)
	ctx := context.Background()
	now := time.Now().UTC()

	rows := sqlmock.NewRows(submissionCols).
		AddRow(1, 7, 3, now, nil, nil, 12.5, "km", nil, "pending", nil)

	mock.ExpectQuery("INSERT INTO submissions").
		WithArgs(int64(7), int64(3), now, "", int64(0), 12.5, "km", "", "pending", "").
		WillReturnRows(rows)

	got, err := repo.Create(ctx, &model.Submission{
		ParticipantID:  7,
		ChallengeID:    3,
		SubmissionDate: now,
		ResultValue:    12.5,
		ResultUnit:     "km",
		Status:         "pending",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "km", got.ResultUnit)
	assert.Empty(t, got.MediaKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSubmissionPostgres(db)
	ctx := context.Background()

	t.Run("found with media", func(t *testing.T) {
		rows := sqlmock.NewRows(submissionCols).
			AddRow(5, 7, 3, time.Now(), "20240101T120000.000000000_run.mp4", 1<<20, nil, nil, "great run", "approved", "looks good")

		mock.ExpectQuery("SELECT (.+) FROM submissions WHERE id = ?").
			WithArgs(int64(5)).
			WillReturnRows(rows)

		s, err := repo.FindByID(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, "20240101T120000.000000000_run.mp4", s.MediaKey)
		assert.Equal(t, int64(1<<20), s.MediaSizeBytes)
		assert.Equal(t, "approved", s.Status)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM submissions WHERE id = ?").
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		s, err := repo.FindByID(ctx, 99)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, s)
	})
}

func TestSubmissionPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSubmissionPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM submissions").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	rows := sqlmock.NewRows(submissionCols).
		AddRow(2, 7, 3, time.Now(), nil, nil, nil, nil, nil, "pending", nil).
		AddRow(1, 8, 3, time.Now(), nil, nil, nil, nil, nil, "approved", nil)

	mock.ExpectQuery("SELECT (.+) FROM submissions ORDER BY").
		WithArgs(10, 0).
		WillReturnRows(rows)

	res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})

	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Len(t, res.Items, 2)
}

func TestSubmissionPostgres_SetMedia(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSubmissionPostgres(db)
	ctx := context.Background()

	t.Run("updates existing row", func(t *testing.T) {
		mock.ExpectExec("UPDATE submissions SET media_key").
			WithArgs(int64(5), "key.mp4", int64(2048)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SetMedia(ctx, 5, "key.mp4", 2048))
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec("UPDATE submissions SET media_key").
			WithArgs(int64(99), "key.mp4", int64(2048)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.SetMedia(ctx, 99, "key.mp4", 2048), sql.ErrNoRows)
	})
}

func TestSubmissionPostgres_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSubmissionPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE submissions SET status").
		WithArgs(int64(5), "rejected", "blurry video").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateStatus(ctx, 5, "rejected", "blurry video"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSubmissionPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM submissions WHERE id = ?").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(ctx, 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}
