package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-api/internal/domains/book/model"
	"library-api/internal/infrastructure/database"
	"library-api/internal/shared/apperror"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const selectBook = `SELECT id, title, publication_year, author_id FROM books`

func scanBook(row pgx.Row) (model.Book, error) {
	var b model.Book
	err := row.Scan(&b.ID, &b.Title, &b.PublicationYear, &b.AuthorID)
	return b, err
}

func (r *postgresRepository) query(ctx context.Context, sql string, args ...any) ([]model.Book, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Book, error) {
	return r.query(ctx, selectBook+` ORDER BY id`)
}

func (r *postgresRepository) ListByAuthor(ctx context.Context, authorID int64) ([]model.Book, error) {
	return r.query(ctx, selectBook+` WHERE author_id = $1 ORDER BY id`, authorID)
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	b, err := scanBook(r.pool.QueryRow(ctx, selectBook+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book %d: %w", id, err)
	}
	return &b, nil
}

// translateWriteErr turns a foreign key violation into the client-facing error.
func translateWriteErr(err error, b *model.Book, op string) error {
	if database.IsForeignKeyViolation(err) {
		return apperror.InvalidForeignKey("author with id %d does not exist", b.AuthorID)
	}
	return fmt.Errorf("failed to %s book: %w", op, err)
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	created, err := scanBook(r.pool.QueryRow(ctx, `
        INSERT INTO books (title, publication_year, author_id)
        VALUES ($1, $2, $3)
        RETURNING id, title, publication_year, author_id
    `, b.Title, b.PublicationYear, b.AuthorID))
	if err != nil {
		return nil, translateWriteErr(err, b, "create")
	}
	return &created, nil
}

func (r *postgresRepository) Replace(ctx context.Context, b *model.Book) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE books SET title = $2, publication_year = $3, author_id = $4 WHERE id = $1`,
		b.ID, b.Title, b.PublicationYear, b.AuthorID,
	)
	if err != nil {
		return false, translateWriteErr(err, b, "update")
	}
	return tag.RowsAffected() == 1, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete book %d: %w", id, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check book %d: %w", id, err)
	}
	return exists, nil
}
