package postgres

import (
	"context"
	"database/sql"

	"runbot/internal/model"
	"runbot/internal/repository"
)

// SubmissionPostgres is a PostgreSQL implementation of repository.SubmissionRepository.
type SubmissionPostgres struct {
	db *sql.DB
}

// NewSubmissionPostgres creates a new SubmissionPostgres repository.
func NewSubmissionPostgres(db *sql.DB) *SubmissionPostgres {
	return &SubmissionPostgres{db: db}
}

var _ repository.SubmissionRepository = (*SubmissionPostgres)(nil)

const submissionColumns = `id, participant_id, challenge_id, submission_date, media_key, media_size_bytes, result_value, result_unit, comment, status, moderator_comment`

func scanSubmission(row interface{ Scan(...any) error }) (*model.Submission, error) {
	var s model.Submission
	var mediaKey, resultUnit, comment, modComment sql.NullString
	var mediaSize sql.NullInt64
	var resultValue sql.NullFloat64
	if err := row.Scan(
		&s.ID,
		&s.ParticipantID,
		&s.ChallengeID,
		&s.SubmissionDate,
		&mediaKey,
		&mediaSize,
		&resultValue,
		&resultUnit,
		&comment,
		&s.Status,
		&modComment,
	); err != nil {
		return nil, err
	}
	s.MediaKey = mediaKey.String
	s.MediaSizeBytes = mediaSize.Int64
	s.ResultValue = resultValue.Float64
	s.ResultUnit = resultUnit.String
	s.Comment = comment.String
	s.ModeratorComment = modComment.String
	return &s, nil
}

func (r *SubmissionPostgres) Create(ctx context.Context, s *model.Submission) (*model.Submission, error) {
	const q = `
		INSERT INTO submissions (participant_id, challenge_id, submission_date, media_key, media_size_bytes, result_value, result_unit, comment, status, moderator_comment)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, NULLIF($7, ''), NULLIF($8, ''), $9, NULLIF($10, ''))
		RETURNING ` + submissionColumns
	return scanSubmission(r.db.QueryRowContext(ctx, q,
		s.ParticipantID,
		s.ChallengeID,
		s.SubmissionDate,
		s.MediaKey,
		s.MediaSizeBytes,
		s.ResultValue,
		s.ResultUnit,
		s.Comment,
		s.Status,
		s.ModeratorComment,
	))
}

func (r *SubmissionPostgres) FindByID(ctx context.Context, id int64) (*model.Submission, error) {
	const q = `SELECT ` + submissionColumns + ` FROM submissions WHERE id = $1`
	return scanSubmission(r.db.QueryRowContext(ctx, q, id))
}

func (r *SubmissionPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Submission], error) {
	const qCount = `SELECT COUNT(*) FROM submissions`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + submissionColumns + `
		FROM submissions
		ORDER BY submission_date DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Submission, 0)
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Submission]{Items: items, Total: total}, nil
}

// SetMedia records the storage descriptor for an uploaded media file.
func (r *SubmissionPostgres) SetMedia(ctx context.Context, id int64, mediaKey string, sizeBytes int64) error {
	const q = `UPDATE submissions SET media_key = NULLIF($2, ''), media_size_bytes = $3 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, mediaKey, sizeBytes)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateStatus records a moderation decision.
func (r *SubmissionPostgres) UpdateStatus(ctx context.Context, id int64, status, moderatorComment string) error {
	const q = `UPDATE submissions SET status = $2, moderator_comment = NULLIF($3, '') WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, status, moderatorComment)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a submission by ID. Missing rows are not an error.
func (r *SubmissionPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM submissions WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
