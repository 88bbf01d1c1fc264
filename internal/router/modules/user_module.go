package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/product-market-api/internal/interface/http"
	"github.com/oksasatya/product-market-api/internal/interface/middleware"
	"github.com/oksasatya/product-market-api/pkg/helpers"
)

// UserModule wires user HTTP handlers and JWT middleware into routes.
// Public: POST /user (register), POST /login
// Protected: GET/PUT/DELETE /user (caller's own record), GET /users

type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/user", m.Handler.Register)
	rg.POST("/login", m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth(m.JWT))
	{
		auth.GET("/user", m.Handler.GetMe)
		auth.PUT("/user", m.Handler.UpdateMe)
		auth.DELETE("/user", m.Handler.DeleteMe)
		auth.GET("/users", m.Handler.ListUsers)
	}
}
