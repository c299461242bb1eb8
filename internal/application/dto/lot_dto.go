package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLotRequest alta de lote. ManufactureDate y ExpiryDate en formato
// ISO-8601 (fecha completa); Quantity es la cantidad nominal del lote.
type CreateLotRequest struct {
	ItemID          string          `json:"item_id"`
	PurchaseOrderID *string         `json:"purchase_order_id"`
	Name            string          `json:"name"`
	Quantity        decimal.Decimal `json:"quantity"`
	ManufactureDate *time.Time      `json:"manufacture_date"`
	ExpiryDate      *time.Time      `json:"expiry_date"`
	Note            string          `json:"note"`
}

// UpdateLotRequest actualización parcial de campos descriptivos del lote.
type UpdateLotRequest struct {
	Name       *string    `json:"name"`
	ExpiryDate *time.Time `json:"expiry_date"`
	Note       *string    `json:"note"`
}

// LotResponse representación de un lote, con banderas de vencimiento.
type LotResponse struct {
	ID              string          `json:"id"`
	ItemID          string          `json:"item_id"`
	PurchaseOrderID *string         `json:"purchase_order_id,omitempty"`
	Name            string          `json:"name"`
	Quantity        decimal.Decimal `json:"quantity"`
	ManufactureDate *time.Time      `json:"manufacture_date,omitempty"`
	ExpiryDate      *time.Time      `json:"expiry_date,omitempty"`
	Note            string          `json:"note,omitempty"`
	Expired         bool            `json:"expired"`
	NearExpiry      bool            `json:"near_expiry"`
	CreatedAt       time.Time       `json:"created_at"`
}

// LotListResponse listado paginado de lotes.
type LotListResponse struct {
	Items []LotResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}
