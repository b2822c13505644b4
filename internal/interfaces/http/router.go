package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bafnalights-dot/stock/internal/application/auth"
	"github.com/bafnalights-dot/stock/internal/application/inventory"
	"github.com/bafnalights-dot/stock/internal/application/production"
	"github.com/bafnalights-dot/stock/internal/application/reports"
	"github.com/bafnalights-dot/stock/internal/domain/repository"
)

// RouterDeps holds the wired use cases.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	SupplierUC  *inventory.SupplierUseCase
	PartsUC     *inventory.PartsUseCase
	PartStockUC *inventory.PartStockUseCase
	ItemsUC     *inventory.ItemsUseCase
	PurchaseUC  *inventory.PurchaseUseCase
	AssembleUC  *production.AssembleUseCase
	ProduceUC   *production.ProductionUseCase
	SalesUC     *production.SalesUseCase
	ReportsUC   *reports.UseCase
	Maintenance repository.Maintenance
	JWTSecret   string
}

// Router registers the API routes. Auth endpoints are public; everything
// else requires a Bearer token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)

	parts := protected.Group("/parts")
	partHandler := NewPartHandler(deps.PartsUC)
	parts.Post("/", partHandler.Create)
	parts.Get("/", partHandler.List)
	parts.Get("/:id", partHandler.Get)
	parts.Put("/:id", partHandler.Update)
	parts.Post("/:id/restock", partHandler.Restock)

	partStocks := protected.Group("/part-stocks")
	partStockHandler := NewPartStockHandler(deps.PartStockUC)
	partStocks.Post("/", partStockHandler.Create)
	partStocks.Get("/", partStockHandler.List)

	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemsUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.Get)

	recipes := protected.Group("/recipes")
	recipes.Post("/", itemHandler.UpsertRecipe)
	recipes.Get("/", itemHandler.ListRecipes)
	recipes.Get("/:itemID", itemHandler.GetRecipe)

	productionHandler := NewProductionHandler(deps.AssembleUC, deps.ProduceUC)
	protected.Post("/assemble", productionHandler.Assemble)
	productionGroup := protected.Group("/production")
	productionGroup.Post("/", productionHandler.Create)
	productionGroup.Get("/", productionHandler.List)
	productionGroup.Put("/:id", productionHandler.Update)
	productionGroup.Delete("/:id", productionHandler.Delete)

	sales := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesUC)
	sales.Post("/", salesHandler.Create)
	sales.Get("/", salesHandler.List)
	sales.Put("/:id", salesHandler.Update)
	sales.Delete("/:id", salesHandler.Delete)

	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Put("/:id", purchaseHandler.Update)
	purchases.Delete("/:id", purchaseHandler.Delete)

	reportsHandler := NewReportsHandler(deps.ReportsUC, deps.Maintenance)
	protected.Get("/dashboard/stats", reportsHandler.Dashboard)
	protected.Get("/transactions", reportsHandler.Transactions)
	protected.Get("/reports", reportsHandler.Report)
	protected.Get("/export/excel", reportsHandler.ExportExcel)
	protected.Post("/reports/email", reportsHandler.EmailReport)
	protected.Post("/reset-database", reportsHandler.ResetDatabase)
}
