package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/ohsung-dev/community-api/internal/domain/entity"
	repo "github.com/ohsung-dev/community-api/internal/domain/repository"
)

// UserService owns every user state transition: signup, profile update,
// login stamping, and certification. All mutable state lives behind the
// injected ports, so a service value is safe to share between requests.
type UserService struct {
	Users         repo.UserRepository
	Clock         entity.ClockHolder
	UUID          entity.UUIDHolder
	Certification *CertificationService
	Logger        *logrus.Logger
}

func NewUserService(users repo.UserRepository, clock entity.ClockHolder, uuid entity.UUIDHolder, certification *CertificationService, logger *logrus.Logger) *UserService {
	return &UserService{
		Users:         users,
		Clock:         clock,
		UUID:          uuid,
		Certification: certification,
		Logger:        logger,
	}
}

// Create persists a new PENDING user and sends exactly one certification
// mail. When the mail fails the user stays committed and the error
// surfaces as ErrCertificationSendFailed; the boundary decides how to
// present the partial success.
func (s *UserService) Create(ctx context.Context, create entity.UserCreate) (entity.User, error) {
	user := entity.NewUser(create, s.UUID)
	user, err := s.Users.Save(ctx, user)
	if err != nil {
		return entity.User{}, err
	}
	if err := s.Certification.Send(ctx, user.Email, user.ID, user.CertificationCode); err != nil {
		return user, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": user.ID, "email": user.Email}).Info("user created")
	}
	return user, nil
}

// GetByID returns the user only when it is ACTIVE. PENDING accounts are
// invisible to public lookups.
func (s *UserService) GetByID(ctx context.Context, id int64) (entity.User, error) {
	user, err := s.Users.FindByIDAndStatus(ctx, id, entity.UserStatusActive)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return entity.User{}, ErrUserNotFound
		}
		return entity.User{}, err
	}
	return user, nil
}

// GetByEmail returns the user only when it is ACTIVE.
func (s *UserService) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	user, err := s.Users.FindByEmailAndStatus(ctx, email, entity.UserStatusActive)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return entity.User{}, ErrUserNotFound
		}
		return entity.User{}, err
	}
	return user, nil
}

// GetByIDAny loads a user regardless of status. Self-service path only:
// the boundary must verify the caller owns the account.
func (s *UserService) GetByIDAny(ctx context.Context, id int64) (entity.User, error) {
	user, err := s.Users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return entity.User{}, ErrUserNotFound
		}
		return entity.User{}, err
	}
	return user, nil
}

// Update applies the supplied profile fields; empty fields are left
// unchanged. The load is status-blind so a PENDING user can still fix
// their profile.
func (s *UserService) Update(ctx context.Context, id int64, update entity.UserUpdate) (entity.User, error) {
	user, err := s.GetByIDAny(ctx, id)
	if err != nil {
		return entity.User{}, err
	}
	return s.Users.Save(ctx, user.Update(update))
}

// Login stamps the last login time with the current clock value.
func (s *UserService) Login(ctx context.Context, id int64) (entity.User, error) {
	user, err := s.GetByIDAny(ctx, id)
	if err != nil {
		return entity.User{}, err
	}
	return s.Users.Save(ctx, user.Login(s.Clock))
}

// VerifyEmail certifies a PENDING account with its certification code.
// Re-verifying an ACTIVE account fails with
// entity.ErrCertificationCodeMismatch, which doubles as the
// "already verified" signal.
func (s *UserService) VerifyEmail(ctx context.Context, id int64, code string) (entity.User, error) {
	user, err := s.GetByIDAny(ctx, id)
	if err != nil {
		return entity.User{}, err
	}
	certified, err := user.Certify(code)
	if err != nil {
		return entity.User{}, err
	}
	return s.Users.Save(ctx, certified)
}
