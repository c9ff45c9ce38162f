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

// UserRepository persists users in the users table. last_login_at is
// NULL until the first login; the zero time.Time maps to NULL both ways.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Save(ctx context.Context, u entity.User) (entity.User, error) {
	if u.ID == 0 {
		row := r.pool.QueryRow(ctx, `
			INSERT INTO users (email, nickname, address, status, certification_code, last_login_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, u.Email, u.Nickname, u.Address, u.Status, u.CertificationCode, nullableTime(u.LastLoginAt))
		if err := row.Scan(&u.ID); err != nil {
			return entity.User{}, err
		}
		return u, nil
	}

	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET nickname = $1, address = $2, status = $3, last_login_at = $4
		WHERE id = $5
	`, u.Nickname, u.Address, u.Status, nullableTime(u.LastLoginAt), u.ID)
	if err != nil {
		return entity.User{}, err
	}
	if res.RowsAffected() == 0 {
		return entity.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (entity.User, error) {
	return r.findOne(ctx, `
		SELECT id, email, nickname, address, status, certification_code, last_login_at
		FROM users
		WHERE id = $1
	`, id)
}

func (r *UserRepository) FindByIDAndStatus(ctx context.Context, id int64, status entity.UserStatus) (entity.User, error) {
	return r.findOne(ctx, `
		SELECT id, email, nickname, address, status, certification_code, last_login_at
		FROM users
		WHERE id = $1 AND status = $2
	`, id, status)
}

func (r *UserRepository) FindByEmailAndStatus(ctx context.Context, email string, status entity.UserStatus) (entity.User, error) {
	return r.findOne(ctx, `
		SELECT id, email, nickname, address, status, certification_code, last_login_at
		FROM users
		WHERE email = $1 AND status = $2
	`, email, status)
}

func (r *UserRepository) findOne(ctx context.Context, query string, args ...any) (entity.User, error) {
	var (
		u           entity.User
		lastLoginAt *time.Time
	)
	row := r.pool.QueryRow(ctx, query, args...)
	if err := row.Scan(&u.ID, &u.Email, &u.Nickname, &u.Address, &u.Status, &u.CertificationCode, &lastLoginAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, repo.ErrNotFound
		}
		return entity.User{}, err
	}
	if lastLoginAt != nil {
		u.LastLoginAt = *lastLoginAt
	}
	return u, nil
}

// nullableTime maps the zero time to NULL.
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

var _ repo.UserRepository = (*UserRepository)(nil)
