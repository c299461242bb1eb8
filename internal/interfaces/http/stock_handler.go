package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almoxarifado-api/internal/application/dto"
	"github.com/jhoicas/almoxarifado-api/internal/application/stock"
)

// StockHandler maneja las consultas de solo lectura sobre el libro de saldos.
type StockHandler struct {
	query *stock.QueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(query *stock.QueryUseCase) *StockHandler {
	return &StockHandler{query: query}
}

// ListBalances godoc
// @Summary      Listar saldos por tripla (almacén, producto, lote)
// @Tags         stock
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por almacén"
// @Param        item_id       query  string  false  "Filtrar por producto"
// @Success      200  {array}  dto.StockEntryResponse
// @Router       /api/stock [get]
func (h *StockHandler) ListBalances(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()

	list, err := h.query.ListBalances(c.Query("warehouse_id"), c.Query("item_id"), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	items := make([]dto.StockEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, dto.StockEntryResponse{
			ID:          e.ID,
			WarehouseID: e.WarehouseID,
			ItemID:      e.ItemID,
			LotID:       e.LotID,
			Quantity:    e.Quantity,
			MinStock:    e.MinStock,
			MaxStock:    e.MaxStock,
			BelowMin:    e.BelowMinimum(),
			UpdatedAt:   e.UpdatedAt,
		})
	}
	return c.JSON(items)
}

// Availability godoc
// @Summary      Consultar disponibilidad de una tripla
// @Tags         stock
// @Produce      json
// @Param        warehouse_id  query  string  true   "Almacén"
// @Param        item_id       query  string  true   "Producto"
// @Param        lot_id        query  string  true   "Lote"
// @Param        quantity      query  string  false  "Cantidad deseada; si se indica, la respuesta incluye 'sufficient'"
// @Success      200  {object}  dto.AvailabilityResponse
// @Router       /api/stock/availability [get]
func (h *StockHandler) Availability(c *fiber.Ctx) error {
	warehouseID := c.Query("warehouse_id")
	itemID := c.Query("item_id")
	lotID := c.Query("lot_id")
	if warehouseID == "" || itemID == "" || lotID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "warehouse_id, item_id y lot_id son obligatorios"})
	}

	available, err := h.query.AvailableQuantity(warehouseID, itemID, lotID)
	if err != nil {
		return writeError(c, err)
	}
	resp := dto.AvailabilityResponse{Available: available}
	if raw := c.Query("quantity"); raw != "" {
		qty, err := decimal.NewFromString(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "quantity inválida"})
		}
		sufficient := available.GreaterThanOrEqual(qty)
		resp.Sufficient = &sufficient
	}
	return c.JSON(resp)
}

// AvailableLots godoc
// @Summary      Listar lotes con saldo disponible
// @Tags         stock
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por almacén"
// @Success      200  {array}  dto.AvailableLotResponse
// @Router       /api/stock/available-lots [get]
func (h *StockHandler) AvailableLots(c *fiber.Ctx) error {
	list, err := h.query.ListAvailableLots(c.Query("warehouse_id"))
	if err != nil {
		return writeError(c, err)
	}
	items := make([]dto.AvailableLotResponse, 0, len(list))
	for _, al := range list {
		items = append(items, dto.AvailableLotResponse{
			LotID:         al.LotID,
			LotName:       al.LotName,
			ItemID:        al.ItemID,
			ItemName:      al.ItemName,
			WarehouseID:   al.WarehouseID,
			WarehouseName: al.WarehouseName,
			ExpiryDate:    al.ExpiryDate,
			Quantity:      al.Quantity,
			Expired:       al.Expired,
			NearExpiry:    al.NearExpiry,
		})
	}
	return c.JSON(items)
}

// Alerts godoc
// @Summary      Listar saldos por debajo del umbral mínimo (reposición)
// @Tags         stock
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por almacén"
// @Success      200  {array}  dto.StockEntryResponse
// @Router       /api/stock/alerts [get]
func (h *StockHandler) Alerts(c *fiber.Ctx) error {
	list, err := h.query.ListAlerts(c.Query("warehouse_id"))
	if err != nil {
		return writeError(c, err)
	}
	items := make([]dto.StockEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, dto.StockEntryResponse{
			ID:          e.ID,
			WarehouseID: e.WarehouseID,
			ItemID:      e.ItemID,
			LotID:       e.LotID,
			Quantity:    e.Quantity,
			MinStock:    e.MinStock,
			MaxStock:    e.MaxStock,
			BelowMin:    true,
			UpdatedAt:   e.UpdatedAt,
		})
	}
	return c.JSON(items)
}
