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

// PostHandler translates HTTP requests into PostService calls.
type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type createPostRequest struct {
	WriterID int64  `json:"writer_id" binding:"required,gt=0"`
	Content  string `json:"content" binding:"required"`
}

type updatePostRequest struct {
	Content string `json:"content" binding:"required"`
}

// Create POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	post, err := h.Svc.Create(c.Request.Context(), entity.PostCreate{
		WriterID: req.WriterID,
		Content:  req.Content,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, FromPost(post), "post created")
}

// GetByID GET /api/posts/:id
func (h *PostHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid post id", nil)
		return
	}
	post, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, FromPost(post), "post")
}

// Update PUT /api/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid post id", nil)
		return
	}
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	post, err := h.Svc.Update(c.Request.Context(), id, entity.PostUpdate{Content: req.Content})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, FromPost(post), "post updated")
}

func (h *PostHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrPostNotFound):
		response.Error(c, http.StatusNotFound, "post not found", nil)
	case errors.Is(err, application.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "writer not found", nil)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).Error("post request failed")
		}
		response.Error(c, http.StatusInternalServerError, "internal error", nil)
	}
}
