package handlers

import (
	"time"

	"github.com/ohsung-dev/community-api/internal/domain/entity"
)

// UserResponse is the public user shape. It never carries the address;
// that field is private to the owning account.
type UserResponse struct {
	ID          int64             `json:"id"`
	Email       string            `json:"email"`
	Nickname    string            `json:"nickname"`
	Status      entity.UserStatus `json:"status"`
	LastLoginAt *time.Time        `json:"last_login_at"`
}

// MyProfileResponse is the owner-only shape, address included.
type MyProfileResponse struct {
	ID          int64             `json:"id"`
	Email       string            `json:"email"`
	Nickname    string            `json:"nickname"`
	Address     string            `json:"address"`
	Status      entity.UserStatus `json:"status"`
	LastLoginAt *time.Time        `json:"last_login_at"`
}

// PostResponse embeds the writer snapshot in its public shape.
type PostResponse struct {
	ID         int64        `json:"id"`
	Content    string       `json:"content"`
	Writer     UserResponse `json:"writer"`
	CreatedAt  time.Time    `json:"created_at"`
	ModifiedAt *time.Time   `json:"modified_at"`
}

func FromUser(u entity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Nickname:    u.Nickname,
		Status:      u.Status,
		LastLoginAt: timeOrNil(u.LastLoginAt),
	}
}

func FromUserWithAddress(u entity.User) MyProfileResponse {
	return MyProfileResponse{
		ID:          u.ID,
		Email:       u.Email,
		Nickname:    u.Nickname,
		Address:     u.Address,
		Status:      u.Status,
		LastLoginAt: timeOrNil(u.LastLoginAt),
	}
}

func FromPost(p entity.Post) PostResponse {
	return PostResponse{
		ID:         p.ID,
		Content:    p.Content,
		Writer:     FromUser(p.Writer),
		CreatedAt:  p.CreatedAt,
		ModifiedAt: timeOrNil(p.ModifiedAt),
	}
}

func timeOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
