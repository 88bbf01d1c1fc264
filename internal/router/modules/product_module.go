package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/product-market-api/internal/interface/http"
	"github.com/oksasatya/product-market-api/internal/interface/middleware"
	"github.com/oksasatya/product-market-api/pkg/helpers"
)

// ProductModule registers the product CRUD surface. Every route requires an
// authenticated identity; ownership is enforced inside the service.

type ProductModule struct {
	Handler *handlers.ProductHandler
	JWT     *helpers.JWTManager
}

func NewProductModule(h *handlers.ProductHandler, jwt *helpers.JWTManager) *ProductModule {
	return &ProductModule{Handler: h, JWT: jwt}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth(m.JWT))
	{
		auth.GET("/products", m.Handler.List)
		auth.POST("/products", m.Handler.Create)
		auth.GET("/products/search", m.Handler.Search)
		auth.GET("/products/:id", m.Handler.Get)
		auth.PUT("/products/:id", m.Handler.Update)
		auth.DELETE("/products/:id", m.Handler.Delete)
	}
}
