package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almoxarifado-api/internal/application/dto"
	"github.com/jhoicas/almoxarifado-api/internal/application/movement"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
)

// MovementHandler maneja las peticiones HTTP del motor de movimientos y del
// historial.
type MovementHandler struct {
	transfer *movement.TransferUseCase
	history  *movement.HistoryUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(transfer *movement.TransferUseCase, history *movement.HistoryUseCase) *MovementHandler {
	return &MovementHandler{transfer: transfer, history: history}
}

// Transfer godoc
// @Summary      Transferir stock entre triplas (almacén, producto, lote)
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "origen nulo = entrada"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/transfer [post]
func (h *MovementHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.transfer.Transfer(c.Context(), movement.TransferInput{
		ItemID:            in.ItemID,
		OriginWarehouseID: in.OriginWarehouseID,
		DestWarehouseID:   in.DestWarehouseID,
		OriginLotID:       in.OriginLotID,
		DestLotID:         in.DestLotID,
		Quantity:          in.Quantity,
		Responsible:       in.Responsible,
		Note:              in.Note,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// RegisterEntry godoc
// @Summary      Registrar entrada de stock
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EntryRequest  true  "entrada"
// @Success      201   {object}  dto.MovementResponse
// @Router       /api/movements/entry [post]
func (h *MovementHandler) RegisterEntry(c *fiber.Ctx) error {
	var in dto.EntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.transfer.RegisterEntry(c.Context(), movement.EntryInput{
		ItemID:          in.ItemID,
		DestWarehouseID: in.DestWarehouseID,
		DestLotID:       in.DestLotID,
		Quantity:        in.Quantity,
		Responsible:     in.Responsible,
		Note:            in.Note,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// RegisterExit godoc
// @Summary      Registrar salida de stock (consumo o pérdida)
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExitRequest  true  "salida"
// @Success      201   {object}  dto.MovementResponse
// @Router       /api/movements/exit [post]
func (h *MovementHandler) RegisterExit(c *fiber.Ctx) error {
	var in dto.ExitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.transfer.RegisterExit(c.Context(), movement.ExitInput{
		ItemID:            in.ItemID,
		OriginWarehouseID: in.OriginWarehouseID,
		OriginLotID:       in.OriginLotID,
		Quantity:          in.Quantity,
		Responsible:       in.Responsible,
		Note:              in.Note,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// TransferLot godoc
// @Summary      Transferir un lote entre almacenes (split automático si es parcial)
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferLotRequest  true  "transferencia por lote"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/transfer-lot [post]
func (h *MovementHandler) TransferLot(c *fiber.Ctx) error {
	var in dto.TransferLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.transfer.TransferLot(c.Context(), movement.TransferLotInput{
		SourceLotID:       in.SourceLotID,
		OriginWarehouseID: in.OriginWarehouseID,
		DestWarehouseID:   in.DestWarehouseID,
		Quantity:          in.Quantity,
		Responsible:       in.Responsible,
		Note:              in.Note,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// History godoc
// @Summary      Historial de movimientos
// @Tags         movements
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por almacén (origen o destino)"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) History(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()

	list, err := h.history.History(c.Query("warehouse_id"), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return c.JSON(dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	})
}

// GetByID godoc
// @Summary      Obtener un movimiento por ID
// @Tags         movements
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	mov, err := h.history.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toMovementResponse(mov))
}

// Delete godoc
// @Summary      Eliminar un movimiento del historial (administrativo; no revierte saldos)
// @Tags         movements
// @Param        id  path  string  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.history.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:                m.ID,
		OriginWarehouseID: m.OriginWarehouseID,
		DestWarehouseID:   m.DestWarehouseID,
		ItemID:            m.ItemID,
		OriginLotID:       m.OriginLotID,
		DestLotID:         m.DestLotID,
		Quantity:          m.Quantity,
		Date:              m.Date,
		Responsible:       m.Responsible,
		Note:              m.Note,
	}
}
