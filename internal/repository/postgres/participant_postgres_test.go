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

var participantCols = []string{"id", "telegram_id", "full_name", "birth_date", "phone", "distance_type", "start_number", "registration_date", "is_active"}

func TestParticipantPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewParticipantPostgres(db)
	ctx := context.Background()

	birth := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()

	rows := sqlmock.NewRows(participantCols).
		AddRow(1, "tg-1001", "Anna K", birth, "+700012345", "10k", "A-042", now, true)

	mock.ExpectQuery("INSERT INTO participants").
		WithArgs("tg-1001", "Anna K", birth, "+700012345", "10k", "A-042", now, true).
		WillReturnRows(rows)

	got, err := repo.Create(ctx, &model.Participant{
		TelegramID:       "tg-1001",
		FullName:         "Anna K",
		BirthDate:        birth,
		Phone:            "+700012345",
		DistanceType:     "10k",
		StartNumber:      "A-042",
		RegistrationDate: now,
		IsActive:         true,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "10k", got.DistanceType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipantPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewParticipantPostgres(db)
	ctx := context.Background()

	t.Run("found with null distance", func(t *testing.T) {
		rows := sqlmock.NewRows(participantCols).
			AddRow(2, "tg-1002", "Boris M", time.Now(), "+700054321", nil, "A-043", time.Now(), true)

		mock.ExpectQuery("SELECT (.+) FROM participants WHERE id = ?").
			WithArgs(int64(2)).
			WillReturnRows(rows)

		p, err := repo.FindByID(ctx, 2)

		require.NoError(t, err)
		assert.Empty(t, p.DistanceType)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM participants WHERE id = ?").
			WithArgs(int64(404)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByID(ctx, 404)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestParticipantPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewParticipantPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM participants").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	rows := sqlmock.NewRows(participantCols).
		AddRow(1, "tg-1001", "Anna K", time.Now(), "+700012345", "10k", "A-042", time.Now(), true)

	mock.ExpectQuery("SELECT (.+) FROM participants ORDER BY").
		WithArgs(10, 0).
		WillReturnRows(rows)

	res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Len(t, res.Items, 1)
}

func TestParticipantPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewParticipantPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM participants WHERE id = ?").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(ctx, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
