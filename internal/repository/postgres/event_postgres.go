package postgres

import (
	"context"
	"database/sql"

	"runbot/internal/model"
	"runbot/internal/repository"
)

// EventPostgres is a PostgreSQL implementation of repository.EventRepository.
type EventPostgres struct {
	db *sql.DB
}

// NewEventPostgres creates a new EventPostgres repository.
func NewEventPostgres(db *sql.DB) *EventPostgres {
	return &EventPostgres{db: db}
}

var _ repository.EventRepository = (*EventPostgres)(nil)

const eventColumns = `id, name, description, event_type, start_date, end_date, registration_deadline, max_participants, status, is_active, created_at`

func scanEvent(row interface{ Scan(...any) error }) (*model.Event, error) {
	var e model.Event
	var desc sql.NullString
	var deadline sql.NullTime
	var maxPart sql.NullInt64
	if err := row.Scan(
		&e.ID,
		&e.Name,
		&desc,
		&e.EventType,
		&e.StartDate,
		&e.EndDate,
		&deadline,
		&maxPart,
		&e.Status,
		&e.IsActive,
		&e.CreatedAt,
	); err != nil {
		return nil, err
	}
	e.Description = desc.String
	if deadline.Valid {
		t := deadline.Time
		e.RegistrationDeadline = &t
	}
	if maxPart.Valid {
		n := int(maxPart.Int64)
		e.MaxParticipants = &n
	}
	return &e, nil
}

func (r *EventPostgres) Create(ctx context.Context, e *model.Event) (*model.Event, error) {
	const q = `
		INSERT INTO events (name, description, event_type, start_date, end_date, registration_deadline, max_participants, status, is_active, created_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + eventColumns
	return scanEvent(r.db.QueryRowContext(ctx, q,
		e.Name,
		e.Description,
		e.EventType,
		e.StartDate,
		e.EndDate,
		e.RegistrationDeadline,
		e.MaxParticipants,
		e.Status,
		e.IsActive,
		e.CreatedAt,
	))
}

func (r *EventPostgres) FindByID(ctx context.Context, id int64) (*model.Event, error) {
	const q = `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return scanEvent(r.db.QueryRowContext(ctx, q, id))
}

func (r *EventPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Event], error) {
	const qCount = `SELECT COUNT(*) FROM events`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY start_date DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Event]{Items: items, Total: total}, nil
}

func (r *EventPostgres) Update(ctx context.Context, e *model.Event) (*model.Event, error) {
	const q = `
		UPDATE events
		SET name = $2, description = NULLIF($3, ''), event_type = $4, start_date = $5, end_date = $6,
		    registration_deadline = $7, max_participants = $8, status = $9, is_active = $10
		WHERE id = $1
		RETURNING ` + eventColumns
	return scanEvent(r.db.QueryRowContext(ctx, q,
		e.ID,
		e.Name,
		e.Description,
		e.EventType,
		e.StartDate,
		e.EndDate,
		e.RegistrationDeadline,
		e.MaxParticipants,
		e.Status,
		e.IsActive,
	))
}

// Delete removes an event; registrations cascade via the FK constraint.
func (r *EventPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM events WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
