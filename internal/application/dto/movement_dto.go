package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRequest transferencia por tripla explícita. Origen nulo (almacén y
// lote) registra una entrada.
type TransferRequest struct {
	ItemID            string          `json:"item_id"`
	OriginWarehouseID *string         `json:"origin_warehouse_id"`
	DestWarehouseID   string          `json:"dest_warehouse_id"`
	OriginLotID       *string         `json:"origin_lot_id"`
	DestLotID         string          `json:"dest_lot_id"`
	Quantity          decimal.Decimal `json:"quantity"`
	Responsible       string          `json:"responsible"`
	Note              string          `json:"note"`
}

// EntryRequest entrada de stock (compra, devolución).
type EntryRequest struct {
	ItemID          string          `json:"item_id"`
	DestWarehouseID string          `json:"dest_warehouse_id"`
	DestLotID       string          `json:"dest_lot_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	Responsible     string          `json:"responsible"`
	Note            string          `json:"note"`
}

// ExitRequest salida de stock (consumo, pérdida).
type ExitRequest struct {
	ItemID            string          `json:"item_id"`
	OriginWarehouseID string          `json:"origin_warehouse_id"`
	OriginLotID       string          `json:"origin_lot_id"`
	Quantity          decimal.Decimal `json:"quantity"`
	Responsible       string          `json:"responsible"`
	Note              string          `json:"note"`
}

// TransferLotRequest transferencia por lote con split automático en
// transferencias parciales.
type TransferLotRequest struct {
	SourceLotID       string          `json:"source_lot_id"`
	OriginWarehouseID string          `json:"origin_warehouse_id"`
	DestWarehouseID   string          `json:"dest_warehouse_id"`
	Quantity          decimal.Decimal `json:"quantity"`
	Responsible       string          `json:"responsible"`
	Note              string          `json:"note"`
}

// MovementResponse representación de un movimiento del historial.
type MovementResponse struct {
	ID                string          `json:"id"`
	OriginWarehouseID *string         `json:"origin_warehouse_id,omitempty"`
	DestWarehouseID   *string         `json:"dest_warehouse_id,omitempty"`
	ItemID            string          `json:"item_id"`
	OriginLotID       *string         `json:"origin_lot_id,omitempty"`
	DestLotID         *string         `json:"dest_lot_id,omitempty"`
	Quantity          decimal.Decimal `json:"quantity"`
	Date              time.Time       `json:"date"`
	Responsible       string          `json:"responsible"`
	Note              string          `json:"note,omitempty"`
}

// MovementListResponse listado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
