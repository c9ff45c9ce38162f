package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ohsung-dev/community-api/internal/domain/entity"
	repo "github.com/ohsung-dev/community-api/internal/domain/repository"
)

// PostRepository persists posts referencing their writer by id and
// rebuilds the writer snapshot with a join on read.
type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Save(ctx context.Context, p entity.Post) (entity.Post, error) {
	if p.ID == 0 {
		row := r.pool.QueryRow(ctx, `
			INSERT INTO posts (writer_id, content, created_at, modified_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, p.Writer.ID, p.Content, p.CreatedAt, nullableTime(p.ModifiedAt))
		if err := row.Scan(&p.ID); err != nil {
			return entity.Post{}, err
		}
		return p, nil
	}

	res, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET content = $1, modified_at = $2
		WHERE id = $3
	`, p.Content, nullableTime(p.ModifiedAt), p.ID)
	if err != nil {
		return entity.Post{}, err
	}
	if res.RowsAffected() == 0 {
		return entity.Post{}, repo.ErrNotFound
	}
	return p, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (entity.Post, error) {
	var (
		p           entity.Post
		modifiedAt  *time.Time
		lastLoginAt *time.Time
	)
	row := r.pool.QueryRow(ctx, `
		SELECT p.id, p.content, p.created_at, p.modified_at,
		       u.id, u.email, u.nickname, u.address, u.status, u.certification_code, u.last_login_at
		FROM posts p
		JOIN users u ON u.id = p.writer_id
		WHERE p.id = $1
	`, id)
	err := row.Scan(&p.ID, &p.Content, &p.CreatedAt, &modifiedAt,
		&p.Writer.ID, &p.Writer.Email, &p.Writer.Nickname, &p.Writer.Address,
		&p.Writer.Status, &p.Writer.CertificationCode, &lastLoginAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Post{}, repo.ErrNotFound
		}
		return entity.Post{}, err
	}
	if modifiedAt != nil {
		p.ModifiedAt = *modifiedAt
	}
	if lastLoginAt != nil {
		p.Writer.LastLoginAt = *lastLoginAt
	}
	return p, nil
}

var _ repo.PostRepository = (*PostRepository)(nil)
