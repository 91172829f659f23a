package postgres

import (
	"context"
	"database/sql"

	"runbot/internal/model"
	"runbot/internal/repository"
)

// ParticipantPostgres is a PostgreSQL implementation of repository.ParticipantRepository.
type ParticipantPostgres struct {
	db *sql.DB
}

// NewParticipantPostgres creates a new ParticipantPostgres repository.
func NewParticipantPostgres(db *sql.DB) *ParticipantPostgres {
	return &ParticipantPostgres{db: db}
}

var _ repository.ParticipantRepository = (*ParticipantPostgres)(nil)

const participantColumns = `id, telegram_id, full_name, birth_date, phone, distance_type, start_number, registration_date, is_active`

func scanParticipant(row interface{ Scan(...any) error }) (*model.Participant, error) {
	var p model.Participant
	var distance sql.NullString
	if err := row.Scan(
		&p.ID,
		&p.TelegramID,
		&p.FullName,
		&p.BirthDate,
		&p.Phone,
		&distance,
		&p.StartNumber,
		&p.RegistrationDate,
		&p.IsActive,
	); err != nil {
		return nil, err
	}
	p.DistanceType = distance.String
	return &p, nil
}

// Create inserts a new participant row and returns the stored record.
func (r *ParticipantPostgres) Create(ctx context.Context, p *model.Participant) (*model.Participant, error) {
	const q = `
		INSERT INTO participants (telegram_id, full_name, birth_date, phone, distance_type, start_number, registration_date, is_active)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8)
		RETURNING ` + participantColumns
	return scanParticipant(r.db.QueryRowContext(ctx, q,
		p.TelegramID,
		p.FullName,
		p.BirthDate,
		p.Phone,
		p.DistanceType,
		p.StartNumber,
		p.RegistrationDate,
		p.IsActive,
	))
}

// FindByID fetches a single participant by ID.
func (r *ParticipantPostgres) FindByID(ctx context.Context, id int64) (*model.Participant, error) {
	const q = `SELECT ` + participantColumns + ` FROM participants WHERE id = $1`
	return scanParticipant(r.db.QueryRowContext(ctx, q, id))
}

// List returns participants using LIMIT/OFFSET pagination and a total count.
func (r *ParticipantPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Participant], error) {
	const qCount = `SELECT COUNT(*) FROM participants`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + participantColumns + `
		FROM participants
		ORDER BY registration_date DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Participant, 0)
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Participant]{Items: items, Total: total}, nil
}

// Update overwrites mutable participant fields and returns the stored row.
func (r *ParticipantPostgres) Update(ctx context.Context, p *model.Participant) (*model.Participant, error) {
	const q = `
		UPDATE participants
		SET full_name = $2, birth_date = $3, phone = $4, distance_type = NULLIF($5, ''), start_number = $6, is_active = $7
		WHERE id = $1
		RETURNING ` + participantColumns
	return scanParticipant(r.db.QueryRowContext(ctx, q,
		p.ID,
		p.FullName,
		p.BirthDate,
		p.Phone,
		p.DistanceType,
		p.StartNumber,
		p.IsActive,
	))
}

// Delete removes a participant by ID. Missing rows are not an error.
func (r *ParticipantPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM participants WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
