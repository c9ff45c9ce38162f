package repository

import (
	"context"

	"github.com/ohsung-dev/community-api/internal/domain/entity"
)

// PostRepository abstracts persistence for post records. Save follows the
// same ID-assignment contract as UserRepository.Save.
type PostRepository interface {
	Save(ctx context.Context, post entity.Post) (entity.Post, error)
	FindByID(ctx context.Context, id int64) (entity.Post, error)
}
