package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/analytics"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/operations"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC   *usecase.CatalogUseCase
	SeedUC      *usecase.SeedUseCase
	OperationUC *operations.OperationUseCase
	LedgerUC    *ledger.LedgerUseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Las lecturas son públicas como en el
// resto de la aplicación; las escrituras (crear operaciones, acciones, parche
// de productos) requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	protected := AuthMiddleware(deps.JWTSecret)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := app.Group("/auth")
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot", authHandler.Forgot)

	// Seed de demostración (público, idempotente)
	seedHandler := NewSeedHandler(deps.SeedUC)
	app.Post("/seed", seedHandler.Run)

	// Catálogo
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	app.Get("/products", catalogHandler.ListProducts)
	app.Patch("/products/:sku", protected, catalogHandler.UpdateProduct)
	app.Get("/warehouses", catalogHandler.ListWarehouses)
	app.Get("/locations", catalogHandler.ListLocations)

	// Operaciones: las referencias contienen barras (WH/IN/0001), por eso las
	// rutas por referencia usan el comodín + en lugar de un parámetro normal.
	receiptHandler := NewOperationHandler(deps.OperationUC, entity.KindReceipt)
	app.Get("/receipts", receiptHandler.List)
	app.Post("/receipts", protected, receiptHandler.Create)
	app.Post("/receipts/+/action", protected, receiptHandler.Action)
	app.Get("/receipts/+", receiptHandler.Get)

	deliveryHandler := NewOperationHandler(deps.OperationUC, entity.KindDelivery)
	app.Get("/deliveries", deliveryHandler.List)
	app.Post("/deliveries", protected, deliveryHandler.Create)
	app.Post("/deliveries/+/action", protected, deliveryHandler.Action)
	app.Get("/deliveries/+", deliveryHandler.Get)

	// Libro de movimientos
	moveHandler := NewMoveHandler(deps.LedgerUC)
	app.Get("/moves", moveHandler.List)

	// Tablero
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	app.Get("/dashboard", dashboardHandler.GetSummary)
}
