package postgres

import (
	"context"
	"database/sql"

	"runbot/internal/model"
	"runbot/internal/repository"
)

// ChallengePostgres is a PostgreSQL implementation of repository.ChallengeRepository.
type ChallengePostgres struct {
	db *sql.DB
}

// NewChallengePostgres creates a new ChallengePostgres repository.
func NewChallengePostgres(db *sql.DB) *ChallengePostgres {
	return &ChallengePostgres{db: db}
}

var _ repository.ChallengeRepository = (*ChallengePostgres)(nil)

const challengeColumns = `id, name, description, challenge_type, start_date, end_date, is_active, created_at`

func scanChallenge(row interface{ Scan(...any) error }) (*model.Challenge, error) {
	var c model.Challenge
	var desc sql.NullString
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&desc,
		&c.ChallengeType,
		&c.StartDate,
		&c.EndDate,
		&c.IsActive,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	c.Description = desc.String
	return &c, nil
}

func (r *ChallengePostgres) Create(ctx context.Context, c *model.Challenge) (*model.Challenge, error) {
	const q = `
		INSERT INTO challenges (name, description, challenge_type, start_date, end_date, is_active, created_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7)
		RETURNING ` + challengeColumns
	return scanChallenge(r.db.QueryRowContext(ctx, q,
		c.Name,
		c.Description,
		c.ChallengeType,
		c.StartDate,
		c.EndDate,
		c.IsActive,
		c.CreatedAt,
	))
}

func (r *ChallengePostgres) FindByID(ctx context.Context, id int64) (*model.Challenge, error) {
	const q = `SELECT ` + challengeColumns + ` FROM challenges WHERE id = $1`
	return scanChallenge(r.db.QueryRowContext(ctx, q, id))
}

func (r *ChallengePostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Challenge], error) {
	const qCount = `SELECT COUNT(*) FROM challenges`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + challengeColumns + `
		FROM challenges
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Challenge, 0)
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Challenge]{Items: items, Total: total}, nil
}

func (r *ChallengePostgres) Update(ctx context.Context, c *model.Challenge) (*model.Challenge, error) {
	const q = `
		UPDATE challenges
		SET name = $2, description = NULLIF($3, ''), challenge_type = $4, start_date = $5, end_date = $6, is_active = $7
		WHERE id = $1
		RETURNING ` + challengeColumns
	return scanChallenge(r.db.QueryRowContext(ctx, q,
		c.ID,
		c.Name,
		c.Description,
		c.ChallengeType,
		c.StartDate,
		c.EndDate,
		c.IsActive,
	))
}

// Delete removes a challenge; submissions cascade via the FK constraint.
func (r *ChallengePostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM challenges WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
