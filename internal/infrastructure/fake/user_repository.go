// Package fake provides in-memory, deterministic implementations of
// every port the services depend on. They exist to make service and
// handler tests independent of Postgres, RabbitMQ, real time and real
// randomness. None of them are safe for concurrent use; tests run them
// on a single goroutine.
package fake

import (
	"context"

	"github.com/ohsung-dev/community-api/internal/domain/entity"
	repo "github.com/ohsung-dev/community-api/internal/domain/repository"
)

// UserRepository keeps users in insertion order in a slice and hands out
// sequential IDs starting at 1.
type UserRepository struct {
	users  []entity.User
	nextID int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{nextID: 1}
}

func (r *UserRepository) Save(_ context.Context, user entity.User) (entity.User, error) {
	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
		r.users = append(r.users, user)
		return user, nil
	}
	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i] = user
			return user, nil
		}
	}
	if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}
	r.users = append(r.users, user)
	return user, nil
}

func (r *UserRepository) FindByID(_ context.Context, id int64) (entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return entity.User{}, repo.ErrNotFound
}

func (r *UserRepository) FindByIDAndStatus(_ context.Context, id int64, status entity.UserStatus) (entity.User, error) {
	for _, u := range r.users {
		if u.ID == id && u.Status == status {
			return u, nil
		}
	}
	return entity.User{}, repo.ErrNotFound
}

func (r *UserRepository) FindByEmailAndStatus(_ context.Context, email string, status entity.UserStatus) (entity.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.Status == status {
			return u, nil
		}
	}
	return entity.User{}, repo.ErrNotFound
}

var _ repo.UserRepository = (*UserRepository)(nil)
