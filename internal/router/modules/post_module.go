package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/ohsung-dev/community-api/internal/interface/http"
)

// PostModule wires the post routes.
type PostModule struct {
	Handler *handlers.PostHandler
}

func NewPostModule(h *handlers.PostHandler) *PostModule {
	return &PostModule{Handler: h}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	rg.POST("/posts", m.Handler.Create)
	rg.GET("/posts/:id", m.Handler.GetByID)
	rg.PUT("/posts/:id", m.Handler.Update)
}
