package entity

import (
	"errors"
	"time"
)

// UserStatus is the lifecycle state of a user account.
type UserStatus string

const (
	UserStatusPending UserStatus = "PENDING"
	UserStatusActive  UserStatus = "ACTIVE"
)

// ErrCertificationCodeMismatch is returned when an account cannot be
// certified: either the supplied code does not match or the account is
// no longer PENDING (an already-certified account fails the same way).
var ErrCertificationCodeMismatch = errors.New("certification code does not match")

// User is the aggregate root for the user domain.
//
// User values are immutable: every state transition returns a new value
// with only the targeted fields replaced. Address is private data and
// must only be exposed on reads performed by the owning account.
type User struct {
	ID                int64
	Email             string
	Nickname          string
	Address           string
	Status            UserStatus
	CertificationCode string
	LastLoginAt       time.Time // zero until the first login
}

// UserCreate carries the fields of a signup request.
type UserCreate struct {
	Email    string
	Nickname string
	Address  string
}

// UserUpdate carries a partial profile update. An empty field means
// "leave unchanged".
type UserUpdate struct {
	Nickname string
	Address  string
}

// UUIDHolder supplies a unique opaque token. Injected so tests can pin
// the generated certification code.
type UUIDHolder interface {
	UUID() string
}

// ClockHolder supplies the current instant. Injected so tests can
// freeze time.
type ClockHolder interface {
	Now() time.Time
}

// NewUser builds a PENDING user from a signup request. The ID stays
// zero until the repository assigns one.
func NewUser(create UserCreate, uuid UUIDHolder) User {
	return User{
		Email:             create.Email,
		Nickname:          create.Nickname,
		Address:           create.Address,
		Status:            UserStatusPending,
		CertificationCode: uuid.UUID(),
	}
}

// Update applies the supplied mutable fields and returns the new value.
func (u User) Update(update UserUpdate) User {
	if update.Nickname != "" {
		u.Nickname = update.Nickname
	}
	if update.Address != "" {
		u.Address = update.Address
	}
	return u
}

// Login stamps the last login time with the clock's current value.
func (u User) Login(clock ClockHolder) User {
	u.LastLoginAt = clock.Now()
	return u
}

// Certify transitions PENDING -> ACTIVE when the code matches the one
// issued at signup. Any other combination, including a second call
// after a successful certification, fails with
// ErrCertificationCodeMismatch.
func (u User) Certify(code string) (User, error) {
	if u.Status != UserStatusPending || u.CertificationCode != code {
		return User{}, ErrCertificationCodeMismatch
	}
	u.Status = UserStatusActive
	return u, nil
}
