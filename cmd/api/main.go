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

	"github.com/bafnalights-dot/stock/internal/application/auth"
	"github.com/bafnalights-dot/stock/internal/application/inventory"
	"github.com/bafnalights-dot/stock/internal/application/ledger"
	"github.com/bafnalights-dot/stock/internal/application/production"
	"github.com/bafnalights-dot/stock/internal/application/reports"
	"github.com/bafnalights-dot/stock/internal/infrastructure/excel"
	"github.com/bafnalights-dot/stock/internal/infrastructure/mail"
	"github.com/bafnalights-dot/stock/internal/infrastructure/mongodb"
	httpRouter "github.com/bafnalights-dot/stock/internal/interfaces/http"
	"github.com/bafnalights-dot/stock/pkg/config"
	"github.com/bafnalights-dot/stock/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	store := mongodb.NewStore(client.Database(cfg.Mongo.Database))
	if err := store.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongodb indexes")
	}

	engine := ledger.NewEngine(store.Parts(), store.PartStocks(), store.Items(), nil)

	var sender reports.Sender
	if cfg.SMTP.Host != "" {
		sender = mail.NewSender(mail.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			User:     cfg.SMTP.User,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
	}
	reportsUC := reports.NewUseCase(
		store.Parts(), store.Suppliers(), store.Items(), store.Recipes(), store.Transactions(),
		excel.NewReportWriter(), sender, cfg.SMTP.ReportTo,
	)

	authUC := auth.NewUseCase(store.Admins(), auth.TokenConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.Expiration,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name + " API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		SupplierUC:  inventory.NewSupplierUseCase(store.Suppliers()),
		PartsUC:     inventory.NewPartsUseCase(engine, store.Parts(), store.Suppliers(), store.Transactions()),
		PartStockUC: inventory.NewPartStockUseCase(store.PartStocks()),
		ItemsUC:     inventory.NewItemsUseCase(store.Items(), store.Recipes(), store.Parts()),
		PurchaseUC:  inventory.NewPurchaseUseCase(engine, store.PartStocks(), store.Purchases(), store.Transactions()),
		AssembleUC:  production.NewAssembleUseCase(engine, store.Items(), store.Recipes(), store.Production(), store.Transactions()),
		ProduceUC:   production.NewProductionUseCase(engine, store.Items(), store.Recipes(), store.Production()),
		SalesUC:     production.NewSalesUseCase(engine, store.Items(), store.Sales()),
		ReportsUC:   reportsUC,
		Maintenance: store,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("http server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
