package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ohsung-dev/community-api/internal/application"
	"github.com/ohsung-dev/community-api/internal/domain/entity"
	"github.com/ohsung-dev/community-api/pkg/response"
	"github.com/ohsung-dev/community-api/pkg/validation"
)

// UserHandler translates HTTP requests into UserService calls. Identity
// for the self-service endpoints comes from the EMAIL header set by the
// upstream gateway; there is no session layer here.
type UserHandler struct {
	Svc         *application.UserService
	Logger      *logrus.Logger
	RedirectURL string // target of the post-certification redirect
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger, redirectURL string) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger, RedirectURL: redirectURL}
}

type createUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Nickname string `json:"nickname" binding:"required"`
	Address  string `json:"address" binding:"required"`
}

type updateUserRequest struct {
	Nickname string `json:"nickname"`
	Address  string `json:"address"`
}

// Create POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	user, err := h.Svc.Create(c.Request.Context(), entity.UserCreate{
		Email:    req.Email,
		Nickname: req.Nickname,
		Address:  req.Address,
	})
	if err != nil {
		if errors.Is(err, application.ErrCertificationSendFailed) {
			// The PENDING user is committed; only the mail failed.
			response.Error(c, http.StatusBadGateway, "user created but certification mail could not be sent", nil)
			return
		}
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, FromUser(user), "user created")
}

// GetByID GET /api/users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	user, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, FromUser(user), "user")
}

// VerifyEmail GET /api/users/:id/verify?certificationCode=...
// Certification links land here straight from the mail client, so a
// successful certification redirects to the front end.
func (h *UserHandler) VerifyEmail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	code := c.Query("certificationCode")
	if code == "" {
		response.Error(c, http.StatusBadRequest, "certificationCode is required", nil)
		return
	}
	if _, err := h.Svc.VerifyEmail(c.Request.Context(), id, code); err != nil {
		h.writeError(c, err)
		return
	}
	c.Redirect(http.StatusFound, h.RedirectURL)
}

// GetMyInfo GET /api/users/me
// Reading your own profile counts as a login and stamps the timestamp.
func (h *UserHandler) GetMyInfo(c *gin.Context) {
	email := c.GetHeader("EMAIL")
	if email == "" {
		response.Error(c, http.StatusUnauthorized, "EMAIL header is required", nil)
		return
	}
	user, err := h.Svc.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.writeError(c, err)
		return
	}
	user, err = h.Svc.Login(c.Request.Context(), user.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, FromUserWithAddress(user), "my profile")
}

// UpdateMyInfo PUT /api/users/me
func (h *UserHandler) UpdateMyInfo(c *gin.Context) {
	email := c.GetHeader("EMAIL")
	if email == "" {
		response.Error(c, http.StatusUnauthorized, "EMAIL header is required", nil)
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	user, err := h.Svc.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.writeError(c, err)
		return
	}
	user, err = h.Svc.Update(c.Request.Context(), user.ID, entity.UserUpdate{
		Nickname: req.Nickname,
		Address:  req.Address,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, FromUserWithAddress(user), "profile updated")
}

func (h *UserHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "user not found", nil)
	case errors.Is(err, entity.ErrCertificationCodeMismatch):
		response.Error(c, http.StatusForbidden, "certification code does not match", nil)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).Error("user request failed")
		}
		response.Error(c, http.StatusInternalServerError, "internal error", nil)
	}
}
