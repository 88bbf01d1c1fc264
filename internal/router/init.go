package router

import (
	"github.com/oksasatya/product-market-api/internal/application"
	"github.com/oksasatya/product-market-api/internal/container"
	pginfra "github.com/oksasatya/product-market-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/product-market-api/internal/interface/http"
	"github.com/oksasatya/product-market-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	users := pginfra.NewUserRepository(container.GetPGPool())
	products := pginfra.NewProductRepository(container.GetPGPool())

	userSvc := application.NewUserService(users, container.GetJWT(), container.GetLogger())
	productSvc := application.NewProductService(products, users, container.GetLogger())

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, container.GetLogger()), container.GetJWT()))
	r.Add(modules.NewProductModule(handlers.NewProductHandler(productSvc, container.GetLogger()), container.GetJWT()))
}
