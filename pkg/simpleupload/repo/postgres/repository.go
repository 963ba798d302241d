package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tendant/simple-upload/pkg/simpleupload"
)

// DBTX is an interface that allows us to use either a database connection or a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Repository implements simpleupload.Repository using PostgreSQL
type Repository struct {
	db DBTX
}

// New creates a new PostgreSQL repository
func New(db DBTX) simpleupload.Repository {
	return &Repository{db: db}
}

// NewWithPool creates a new PostgreSQL repository with connection pool
func NewWithPool(pool *pgxpool.Pool) simpleupload.Repository {
	return &Repository{db: pool}
}

// Error handling helper
func (r *Repository) handlePostgresError(operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("image already exists")
		case "23502": // not_null_violation
			return fmt.Errorf("required field %s is missing", pgErr.ColumnName)
		case "42P01": // undefined_table
			return fmt.Errorf("table does not exist - database migration required")
		default:
			return fmt.Errorf("database error in %s: %s (code: %s)", operation, pgErr.Message, pgErr.Code)
		}
	}

	return fmt.Errorf("database error in %s: %w", operation, err)
}

func (r *Repository) CreateImage(ctx context.Context, image *simpleupload.Image) error {
	query := `
		INSERT INTO images (user_id, url, filename)
		VALUES ($1, $2, $3)
		RETURNING id, uploaded_at`

	err := r.db.QueryRow(ctx, query, image.UserID, image.URL, image.Filename).
		Scan(&image.ID, &image.UploadedAt)

	if err != nil {
		return r.handlePostgresError("create image", err)
	}

	return nil
}

func (r *Repository) ListImages(ctx context.Context) ([]*simpleupload.Image, error) {
	query := `
        SELECT id, user_id, url, filename, uploaded_at
        FROM images
        ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, r.handlePostgresError("list images", err)
	}
	defer rows.Close()

	var images []*simpleupload.Image
	for rows.Next() {
		var image simpleupload.Image
		if err := rows.Scan(
			&image.ID, &image.UserID, &image.URL,
			&image.Filename, &image.UploadedAt); err != nil {
			return nil, err
		}
		images = append(images, &image)
	}

	return images, rows.Err()
}
