package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	authorModel "library-api/internal/domains/author/model"
	eventModel "library-api/internal/domains/event/model"
	"library-api/internal/infrastructure/database"
	"library-api/internal/shared/apperror"
	"library-api/internal/shared/types"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Add(ctx context.Context, eventID, authorID int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
        INSERT INTO author_events (author_id, event_id)
        VALUES ($1, $2)
        ON CONFLICT (author_id, event_id) DO NOTHING
    `, authorID, eventID)
	if database.IsForeignKeyViolation(err) {
		return false, apperror.InvalidForeignKey("author %d or event %d does not exist", authorID, eventID)
	}
	if err != nil {
		return false, fmt.Errorf("failed to link author %d to event %d: %w", authorID, eventID, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *postgresRepository) Remove(ctx context.Context, eventID, authorID int64) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM author_events WHERE author_id = $1 AND event_id = $2`, authorID, eventID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to unlink author %d from event %d: %w", authorID, eventID, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *postgresRepository) Exists(ctx context.Context, eventID, authorID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM author_events WHERE author_id = $1 AND event_id = $2)`,
		authorID, eventID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check link: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ListAuthorsByEvent(ctx context.Context, eventID int64) ([]authorModel.Author, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT a.id, a.name, a.birth_date
        FROM authors a
        JOIN author_events ae ON ae.author_id = a.id
        WHERE ae.event_id = $1
        ORDER BY a.id
    `, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors of event %d: %w", eventID, err)
	}
	defer rows.Close()

	authors := []authorModel.Author{}
	for rows.Next() {
		var (
			a     authorModel.Author
			birth time.Time
		)
		if err := rows.Scan(&a.ID, &a.Name, &birth); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		a.BirthDate = types.NewDate(birth)
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

func (r *postgresRepository) ListEventsByAuthor(ctx context.Context, authorID int64) ([]eventModel.Event, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT e.id, e.name, e.date, e.location
        FROM events e
        JOIN author_events ae ON ae.event_id = e.id
        WHERE ae.author_id = $1
        ORDER BY e.id
    `, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events of author %d: %w", authorID, err)
	}
	defer rows.Close()

	events := []eventModel.Event{}
	for rows.Next() {
		var e eventModel.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &e.Location); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		e.Date = e.Date.UTC()
		events = append(events, e)
	}
	return events, rows.Err()
}
