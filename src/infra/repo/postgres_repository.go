package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"inkpress/src/core/domain"
	"inkpress/src/infra/db"
)

// PostgresRepository implements ports.PostRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresRepository constructs a repository backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, log *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

const postColumns = `id, user_id, title, slug, content, status, created_at, updated_at`

// translate converts driver errors into the store-neutral forms the core
// understands.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewNotFoundError("Post")
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &domain.StoreError{
			Code:       pgErr.Code,
			Constraint: pgErr.ConstraintName,
			Column:     pgErr.ColumnName,
			Message:    pgErr.Message,
			Err:        err,
		}
	}
	return err
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var p domain.Post
	if err := row.Scan(
		&p.ID, &p.UserID, &p.Title, &p.Slug, &p.Content, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, userID string, fields domain.PostFields, status domain.PostStatus) (*domain.Post, error) {
	const q = `
		INSERT INTO posts (user_id, title, slug, content, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + postColumns

	p, err := scanPost(r.pool.QueryRow(ctx, q, userID, fields.Title, fields.Slug, fields.Content, status))
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func (r *PostgresRepository) GetOwner(ctx context.Context, postID uuid.UUID) (string, error) {
	const q = `SELECT user_id FROM posts WHERE id = $1`

	var owner string
	if err := r.pool.QueryRow(ctx, q, postID).Scan(&owner); err != nil {
		return "", translate(err)
	}
	return owner, nil
}

func (r *PostgresRepository) GetForOwner(ctx context.Context, postID uuid.UUID, userID string) (*domain.Post, error) {
	const q = `SELECT ` + postColumns + ` FROM posts WHERE id = $1 AND user_id = $2`

	p, err := scanPost(r.pool.QueryRow(ctx, q, postID, userID))
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, postID uuid.UUID, fields domain.PostFields) (*domain.Post, error) {
	const q = `
		UPDATE posts
		SET title = $2, slug = $3, content = $4
		WHERE id = $1
		RETURNING ` + postColumns

	p, err := scanPost(r.pool.QueryRow(ctx, q, postID, fields.Title, fields.Slug, fields.Content))
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, postID uuid.UUID, status domain.PostStatus) (*domain.Post, error) {
	const q = `
		UPDATE posts
		SET status = $2
		WHERE id = $1
		RETURNING ` + postColumns

	p, err := scanPost(r.pool.QueryRow(ctx, q, postID, status))
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, postID uuid.UUID) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("Post")
	}
	return nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, userID string) ([]*domain.Post, error) {
	const q = `SELECT ` + postColumns + ` FROM posts WHERE user_id = $1 ORDER BY updated_at DESC`
	return r.list(ctx, q, userID)
}

func (r *PostgresRepository) ListPublished(ctx context.Context) ([]*domain.Post, error) {
	const q = `SELECT ` + postColumns + ` FROM posts WHERE status = $1 ORDER BY created_at DESC`
	return r.list(ctx, q, domain.StatusPublished)
}

func (r *PostgresRepository) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	const q = `SELECT ` + postColumns + ` FROM posts WHERE slug = $1 AND status = $2`

	p, err := scanPost(r.pool.QueryRow(ctx, q, slug, domain.StatusPublished))
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func (r *PostgresRepository) list(ctx context.Context, q string, args ...any) ([]*domain.Post, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err)
	}
	return posts, nil
}
