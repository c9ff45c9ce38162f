package fake

import (
	"github.com/ohsung-dev/community-api/internal/application"
	"github.com/ohsung-dev/community-api/internal/domain/entity"
	handlers "github.com/ohsung-dev/community-api/internal/interface/http"
)

// Container wires every fake port into the real services and handlers,
// mirroring the production composition in cmd/main.go. Boundary tests
// build one per test case.
type Container struct {
	MailBox       *MailBox
	Users         *UserRepository
	Posts         *PostRepository
	Certification *application.CertificationService
	UserService   *application.UserService
	PostService   *application.PostService
	UserHandler   *handlers.UserHandler
	PostHandler   *handlers.PostHandler
}

// NewContainer assembles the fake-backed object graph around the given
// clock and identifier source.
func NewContainer(clock entity.ClockHolder, uuid entity.UUIDHolder) *Container {
	mailBox := &MailBox{}
	users := NewUserRepository()
	posts := NewPostRepository()

	certification := application.NewCertificationService(mailBox, "http://localhost:8080", nil)
	userService := application.NewUserService(users, clock, uuid, certification, nil)
	postService := application.NewPostService(posts, users, clock)

	return &Container{
		MailBox:       mailBox,
		Users:         users,
		Posts:         posts,
		Certification: certification,
		UserService:   userService,
		PostService:   postService,
		UserHandler:   handlers.NewUserHandler(userService, nil, "http://localhost:3000"),
		PostHandler:   handlers.NewPostHandler(postService, nil),
	}
}
