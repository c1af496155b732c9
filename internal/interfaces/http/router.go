package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mtn-stock-api/internal/application/inventory"
	"github.com/jhoicas/mtn-stock-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName      string
	CustomerUC       *usecase.CustomerUseCase
	ProductUC        *usecase.ProductUseCase
	WarehouseUC      *usecase.WarehouseUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	StockUC          *inventory.StockUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	api := app.Group("/api/v1")

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Get("/:id/account", customerHandler.GetAccount)

	stock := api.Group("/stock")

	// Products
	productHandler := NewProductHandler(deps.ProductUC)
	stock.Post("/products", productHandler.Create)
	stock.Get("/products", productHandler.List)
	stock.Get("/products/:id", productHandler.GetByID)

	// Warehouses
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	stock.Post("/warehouses", warehouseHandler.Create)
	stock.Get("/warehouses", warehouseHandler.List)
	stock.Get("/warehouses/:id", warehouseHandler.GetByID)

	// Movements y saldos
	stockHandler := NewStockHandler(deps.RegisterMovement, deps.StockUC)
	stock.Post("/movements", stockHandler.CreateMovement)
	stock.Get("/movements", stockHandler.ListMovements)
	stock.Get("/movements/:id", stockHandler.GetMovement)
	stock.Get("/balances", stockHandler.Balances)
	stock.Get("/balances/report", stockHandler.BalanceReport)
}
