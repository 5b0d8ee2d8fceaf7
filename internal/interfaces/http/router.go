package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Dispensario-api/internal/application/auth"
	"github.com/jhoicas/Dispensario-api/internal/application/usecase"
	"github.com/jhoicas/Dispensario-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
	Log        *logger.Logger
}

// Router registra las rutas de la API. Composición explícita en el arranque:
// nada se registra en estado global.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Categories: listado público, mutaciones con Bearer Token.
	// El middleware va por ruta y no por prefijo: el GET comparte el grupo
	// y no debe quedar detrás del token.
	categories := app.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Log)
	requireToken := AuthMiddleware(deps.JWTSecret)
	categories.Get("/", categoryHandler.List)
	categories.Post("/add", requireToken, categoryHandler.Create)
	categories.Delete("/delete", requireToken, categoryHandler.Delete)
	categories.Patch("/update", requireToken, categoryHandler.Update)
}
