package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohsung-dev/community-api/internal/application"
	"github.com/ohsung-dev/community-api/internal/domain/entity"
	"github.com/ohsung-dev/community-api/internal/infrastructure/fake"
)

type postFixture struct {
	service *application.PostService
	posts   *fake.PostRepository
	users   *fake.UserRepository
	writer  entity.User
}

func newPostFixture(t *testing.T, clock entity.ClockHolder) *postFixture {
	t.Helper()
	users := fake.NewUserRepository()
	posts := fake.NewPostRepository()

	writer, err := users.Save(context.Background(), entity.User{
		Email:             "writer@x.com",
		Nickname:          "writer",
		Address:           "Seoul",
		Status:            entity.UserStatusActive,
		CertificationCode: "code-1",
	})
	require.NoError(t, err)

	return &postFixture{
		service: application.NewPostService(posts, users, clock),
		posts:   posts,
		users:   users,
		writer:  writer,
	}
}

func TestPostServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots the writer and stamps creation time", func(t *testing.T) {
		f := newPostFixture(t, fake.Clock{T: testTime})

		post, err := f.service.Create(ctx, entity.PostCreate{
			WriterID: f.writer.ID,
			Content:  "hello",
		})
		require.NoError(t, err)

		assert.NotZero(t, post.ID)
		assert.Equal(t, "hello", post.Content)
		assert.Equal(t, testTime, post.CreatedAt)
		assert.True(t, post.ModifiedAt.IsZero())
		assert.Equal(t, f.writer.ID, post.Writer.ID)
		assert.Equal(t, "writer", post.Writer.Nickname)
		assert.Equal(t, "writer@x.com", post.Writer.Email)
	})

	t.Run("unknown writer", func(t *testing.T) {
		f := newPostFixture(t, fake.Clock{T: testTime})

		_, err := f.service.Create(ctx, entity.PostCreate{WriterID: 999, Content: "hello"})
		assert.ErrorIs(t, err, application.ErrUserNotFound)
	})
}

func TestPostServiceGetByID(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t, fake.Clock{T: testTime})

	created, err := f.service.Create(ctx, entity.PostCreate{WriterID: f.writer.ID, Content: "hello"})
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		post, err := f.service.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "hello", post.Content)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := f.service.GetByID(ctx, 999)
		assert.ErrorIs(t, err, application.ErrPostNotFound)
	})
}

func TestPostServiceUpdate(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t, fake.Clock{T: testTime})

	created, err := f.service.Create(ctx, entity.PostCreate{WriterID: f.writer.ID, Content: "hello"})
	require.NoError(t, err)

	later := testTime.Add(2 * time.Hour)
	f.service.Clock = fake.Clock{T: later}

	updated, err := f.service.Update(ctx, created.ID, entity.PostUpdate{Content: "edited"})
	require.NoError(t, err)

	assert.Equal(t, "edited", updated.Content)
	assert.Equal(t, testTime, updated.CreatedAt)
	assert.Equal(t, later, updated.ModifiedAt)
	assert.Equal(t, "writer", updated.Writer.Nickname)

	t.Run("missing post", func(t *testing.T) {
		_, err := f.service.Update(ctx, 999, entity.PostUpdate{Content: "edited"})
		assert.ErrorIs(t, err, application.ErrPostNotFound)
	})
}
