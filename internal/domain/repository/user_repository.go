package repository

import (
	"context"
	"errors"

	"github.com/ohsung-dev/community-api/internal/domain/entity"
)

// ErrNotFound is returned by any Find method when no record matches.
var ErrNotFound = errors.New("record not found")

// UserRepository abstracts persistence for user records.
//
// Save assigns an ID only when the user has none yet; saving a user that
// already carries an ID overwrites the stored record. Email uniqueness is
// enforced by the implementation.
type UserRepository interface {
	Save(ctx context.Context, user entity.User) (entity.User, error)
	FindByID(ctx context.Context, id int64) (entity.User, error)
	FindByIDAndStatus(ctx context.Context, id int64, status entity.UserStatus) (entity.User, error)
	FindByEmailAndStatus(ctx context.Context, email string, status entity.UserStatus) (entity.User, error)
}
