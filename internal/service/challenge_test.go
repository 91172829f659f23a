package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"runbot/internal/model"
	"runbot/internal/repository"
	repoMocks "runbot/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestChallengeService_Create(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		in      *model.Challenge
		wantErr error
	}{
		{
			name: "happy path",
			in: &model.Challenge{
				Name:          "June 100k",
				ChallengeType: model.ChallengeTypeRunning,
				StartDate:     start,
				EndDate:       start.AddDate(0, 1, 0),
			},
		},
		{
			name:    "name required",
			in:      &model.Challenge{StartDate: start, EndDate: start.AddDate(0, 1, 0)},
			wantErr: ErrNameRequired,
		},
		{
			name: "end before start",
			in: &model.Challenge{
				Name:      "Backwards",
				StartDate: start,
				EndDate:   start.AddDate(0, 0, -1),
			},
			wantErr: ErrInvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockChallengeRepository)
			if tt.wantErr == nil {
				mRepo.On("Create", ctx, tt.in).Return(tt.in, nil)
			}

			_, err := NewChallengeService(mRepo).Create(ctx, tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				mRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChallengeService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("missing row maps to not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockChallengeRepository)
		mRepo.On("FindByID", ctx, int64(42)).Return(nil, sql.ErrNoRows)

		_, err := NewChallengeService(mRepo).Get(ctx, 42)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("zero id rejected before the repo", func(t *testing.T) {
		mRepo := new(repoMocks.MockChallengeRepository)

		_, err := NewChallengeService(mRepo).Get(ctx, 0)
		assert.ErrorIs(t, err, ErrIDRequired)
		mRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestChallengeService_List(t *testing.T) {
	ctx := context.Background()

	mRepo := new(repoMocks.MockChallengeRepository)
	mRepo.On("List", ctx, repository.PageQuery{Limit: 10, Offset: 0}).
		Return(&repository.PageResult[model.Challenge]{
			Items: []model.Challenge{{ID: 1, Name: "June 100k"}},
			Total: 1,
		}, nil)

	// Out-of-range paging falls back to defaults.
	res, err := NewChallengeService(mRepo).List(ctx, 0, -5)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Len(t, res.Items, 1)
}
