package fake

import (
	"context"

	"github.com/ohsung-dev/community-api/internal/domain/entity"
	repo "github.com/ohsung-dev/community-api/internal/domain/repository"
)

// PostRepository is the in-memory counterpart of the Postgres post store.
type PostRepository struct {
	posts  []entity.Post
	nextID int64
}

func NewPostRepository() *PostRepository {
	return &PostRepository{nextID: 1}
}

func (r *PostRepository) Save(_ context.Context, post entity.Post) (entity.Post, error) {
	if post.ID == 0 {
		post.ID = r.nextID
		r.nextID++
		r.posts = append(r.posts, post)
		return post, nil
	}
	for i := range r.posts {
		if r.posts[i].ID == post.ID {
			r.posts[i] = post
			return post, nil
		}
	}
	if post.ID >= r.nextID {
		r.nextID = post.ID + 1
	}
	r.posts = append(r.posts, post)
	return post, nil
}

func (r *PostRepository) FindByID(_ context.Context, id int64) (entity.Post, error) {
	for _, p := range r.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return entity.Post{}, repo.ErrNotFound
}

var _ repo.PostRepository = (*PostRepository)(nil)
