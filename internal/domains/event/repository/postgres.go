package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-api/internal/domains/event/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const selectEvent = `SELECT id, name, date, location FROM events`

func scanEvent(row pgx.Row) (model.Event, error) {
	var e model.Event
	if err := row.Scan(&e.ID, &e.Name, &e.Date, &e.Location); err != nil {
		return e, err
	}
	e.Date = e.Date.UTC()
	return e, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Event, error) {
	rows, err := r.pool.Query(ctx, selectEvent+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	e, err := scanEvent(r.pool.QueryRow(ctx, selectEvent+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event %d: %w", id, err)
	}
	return &e, nil
}

func (r *postgresRepository) Create(ctx context.Context, e *model.Event) (*model.Event, error) {
	created, err := scanEvent(r.pool.QueryRow(ctx, `
        INSERT INTO events (name, date, location)
        VALUES ($1, $2, $3)
        RETURNING id, name, date, location
    `, e.Name, e.Date, e.Location))
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return &created, nil
}

func (r *postgresRepository) Replace(ctx context.Context, e *model.Event) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE events SET name = $2, date = $3, location = $4 WHERE id = $1`,
		e.ID, e.Name, e.Date, e.Location,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update event %d: %w", e.ID, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete event %d: %w", id, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check event %d: %w", id, err)
	}
	return exists, nil
}
