package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/ohsung-dev/community-api/internal/interface/http"
	"github.com/ohsung-dev/community-api/internal/interface/middleware"
)

// UserModule wires the user lifecycle routes.
// Public: POST /api/users, GET /api/users/:id, GET /api/users/:id/verify
// Self-service (EMAIL header): GET/PUT /api/users/me
type UserModule struct {
	Handler *handlers.UserHandler
	Redis   *redis.Client
}

func NewUserModule(h *handlers.UserHandler, rdb *redis.Client) *UserModule {
	return &UserModule{Handler: h, Redis: rdb}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	verifyLimiter := middleware.RateLimit(m.Redis, 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/users", signupLimiter, m.Handler.Create)
	rg.GET("/users/me", m.Handler.GetMyInfo)
	rg.PUT("/users/me", m.Handler.UpdateMyInfo)
	rg.GET("/users/:id", m.Handler.GetByID)
	rg.GET("/users/:id/verify", verifyLimiter, m.Handler.VerifyEmail)
}
