package application

import (
	"context"
	"errors"

	"github.com/ohsung-dev/community-api/internal/domain/entity"
	repo "github.com/ohsung-dev/community-api/internal/domain/repository"
)

// PostService owns post creation and edits. Writers are resolved through
// the user repository at creation time and embedded as a snapshot;
// resolution is status-blind because a PENDING user may already write.
type PostService struct {
	Posts repo.PostRepository
	Users repo.UserRepository
	Clock entity.ClockHolder
}

func NewPostService(posts repo.PostRepository, users repo.UserRepository, clock entity.ClockHolder) *PostService {
	return &PostService{Posts: posts, Users: users, Clock: clock}
}

func (s *PostService) GetByID(ctx context.Context, id int64) (entity.Post, error) {
	post, err := s.Posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return entity.Post{}, ErrPostNotFound
		}
		return entity.Post{}, err
	}
	return post, nil
}

func (s *PostService) Create(ctx context.Context, create entity.PostCreate) (entity.Post, error) {
	writer, err := s.Users.FindByID(ctx, create.WriterID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return entity.Post{}, ErrUserNotFound
		}
		return entity.Post{}, err
	}
	return s.Posts.Save(ctx, entity.NewPost(writer, create, s.Clock))
}

func (s *PostService) Update(ctx context.Context, id int64, update entity.PostUpdate) (entity.Post, error) {
	post, err := s.GetByID(ctx, id)
	if err != nil {
		return entity.Post{}, err
	}
	return s.Posts.Save(ctx, post.Update(update, s.Clock))
}
