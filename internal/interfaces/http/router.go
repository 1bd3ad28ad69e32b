package http

import (
	"github.com/gofiber/fiber/v2"

	"almacen/internal/application/auth"
	"almacen/internal/application/inventory"
	"almacen/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC       *usecase.CategoryUseCase
	ArticleUC        *usecase.ArticleUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	ReportUC         *usecase.ReportUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/user/register", authHandler.Register)
	app.Post("/user/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Categorías (protegido)
	categories := api.Group("/category")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Artículos (protegido)
	articles := api.Group("/article")
	articleHandler := NewArticleHandler(deps.ArticleUC)
	articles.Post("/", articleHandler.Create)
	articles.Get("/categoria/:id", articleHandler.ListByCategory)
	articles.Put("/:id", articleHandler.Update)
	articles.Delete("/:id", articleHandler.Delete)

	// Movimientos (protegido)
	movements := api.Group("/movement")
	movementHandler := NewMovementHandler(deps.RegisterMovement)
	movements.Post("/", movementHandler.Create)
	movements.Get("/articulo/:id", movementHandler.ListByArticle)

	// Informes (protegido)
	reports := api.Group("/report")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/general", reportHandler.General)
	reports.Get("/general/pdf", reportHandler.GeneralPDF)
}
