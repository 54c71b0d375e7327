package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/stocktrackr/stocktrackr-api/internal/application/analytics"
	"github.com/stocktrackr/stocktrackr-api/internal/application/auth"
	"github.com/stocktrackr/stocktrackr-api/internal/application/usecase"
	infrapdf "github.com/stocktrackr/stocktrackr-api/internal/infrastructure/pdf"
	"github.com/stocktrackr/stocktrackr-api/internal/infrastructure/postgres"
	httpRouter "github.com/stocktrackr/stocktrackr-api/internal/interfaces/http"
	"github.com/stocktrackr/stocktrackr-api/pkg/config"
	"github.com/stocktrackr/stocktrackr-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Zona horaria de los reportes ("hoy" y el mes en curso).
	loc := time.Local
	if cfg.Report.Timezone != "" {
		loc, err = time.LoadLocation(cfg.Report.Timezone)
		if err != nil {
			log.Fatal().Err(err).Str("timezone", cfg.Report.Timezone).Msg("zona horaria inválida")
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockEntryRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	stockUC := usecase.NewStockUseCase(stockRepo, productRepo)
	saleUC := usecase.NewSaleUseCase(saleRepo, productRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	dashboardUC := appanalytics.NewDashboardUseCase(productRepo, stockRepo, saleRepo, appanalytics.DashboardConfig{
		LowStockThreshold: cfg.Report.LowStockThreshold,
		Location:          loc,
	})
	incomeUC := appanalytics.NewIncomeUseCase(productRepo, saleRepo)
	incomePDF := infrapdf.NewIncomeReportGenerator(cfg.App.Name, cfg.Report.CurrencyCode)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockTrackr API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		StockUC:     stockUC,
		SaleUC:      saleUC,
		AuthUC:      authUC,
		DashboardUC: dashboardUC,
		IncomeUC:    incomeUC,
		IncomePDF:   incomePDF,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
