package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stocktrackr/stocktrackr-api/internal/application/analytics"
	"github.com/stocktrackr/stocktrackr-api/internal/application/auth"
	"github.com/stocktrackr/stocktrackr-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	StockUC     *usecase.StockUseCase
	SaleUC      *usecase.SaleUseCase
	AuthUC      *auth.AuthUseCase
	DashboardUC *analytics.DashboardUseCase
	IncomeUC    *analytics.IncomeUseCase
	IncomePDF   IncomePDFGenerator
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stock entries (protegido)
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Post("/entries", stockHandler.RecordEntry)
	stock.Get("/entries", stockHandler.History)

	// Sales (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.RecordSale)
	sales.Get("/", saleHandler.History)
	sales.Get("/export.csv", saleHandler.ExportCSV)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.IncomeUC, deps.IncomePDF)
	reports.Get("/income", reportHandler.GetIncome)
	reports.Get("/income.pdf", reportHandler.GetIncomePDF)
}
