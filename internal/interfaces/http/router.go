package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps agrupa los handlers que el router registra.
type RouterDeps struct {
	Movements  *MovementHandler
	Stock      *StockHandler
	Items      *ItemHandler
	Warehouses *WarehouseHandler
	Lots       *LotHandler
}

// Router registra todas las rutas de la API bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	movements := api.Group("/movements")
	movements.Post("/transfer", deps.Movements.Transfer)
	movements.Post("/entry", deps.Movements.RegisterEntry)
	movements.Post("/exit", deps.Movements.RegisterExit)
	movements.Post("/transfer-lot", deps.Movements.TransferLot)
	movements.Get("/", deps.Movements.History)
	movements.Get("/:id", deps.Movements.GetByID)
	movements.Delete("/:id", deps.Movements.Delete)

	stock := api.Group("/stock")
	stock.Get("/", deps.Stock.ListBalances)
	stock.Get("/availability", deps.Stock.Availability)
	stock.Get("/available-lots", deps.Stock.AvailableLots)
	stock.Get("/alerts", deps.Stock.Alerts)

	items := api.Group("/items")
	items.Post("/", deps.Items.Create)
	items.Get("/", deps.Items.List)
	items.Get("/:id", deps.Items.GetByID)
	items.Put("/:id", deps.Items.Update)

	warehouses := api.Group("/warehouses")
	warehouses.Post("/", deps.Warehouses.Create)
	warehouses.Get("/", deps.Warehouses.List)
	warehouses.Get("/:id", deps.Warehouses.GetByID)
	warehouses.Put("/:id", deps.Warehouses.Update)

	lots := api.Group("/lots")
	lots.Post("/", deps.Lots.Create)
	lots.Get("/", deps.Lots.List)
	lots.Get("/:id", deps.Lots.GetByID)
	lots.Put("/:id", deps.Lots.Update)
}
