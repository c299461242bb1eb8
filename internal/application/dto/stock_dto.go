package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntryResponse saldo de una tripla (almacén, producto, lote).
type StockEntryResponse struct {
	ID          string           `json:"id"`
	WarehouseID string           `json:"warehouse_id"`
	ItemID      string           `json:"item_id"`
	LotID       string           `json:"lot_id"`
	Quantity    decimal.Decimal  `json:"quantity"`
	MinStock    *decimal.Decimal `json:"min_stock,omitempty"`
	MaxStock    *decimal.Decimal `json:"max_stock,omitempty"`
	BelowMin    bool             `json:"below_min"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// AvailableLotResponse lote con saldo disponible en un almacén.
type AvailableLotResponse struct {
	LotID         string          `json:"lot_id"`
	LotName       string          `json:"lot_name"`
	ItemID        string          `json:"item_id"`
	ItemName      string          `json:"item_name"`
	WarehouseID   string          `json:"warehouse_id"`
	WarehouseName string          `json:"warehouse_name"`
	ExpiryDate    *time.Time      `json:"expiry_date,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	Expired       bool            `json:"expired"`
	NearExpiry    bool            `json:"near_expiry"`
}

// AvailabilityResponse resultado de la consulta de disponibilidad.
type AvailabilityResponse struct {
	Available  decimal.Decimal `json:"available"`
	Sufficient *bool           `json:"sufficient,omitempty"`
}
