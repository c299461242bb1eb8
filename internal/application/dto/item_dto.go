package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest alta de producto en el catálogo.
type CreateItemRequest struct {
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	UnitMeasure  string           `json:"unit_measure"`
	MinStock     *decimal.Decimal `json:"min_stock"`
	MaxStock     *decimal.Decimal `json:"max_stock"`
	ReorderPoint *decimal.Decimal `json:"reorder_point"`
}

// UpdateItemRequest actualización parcial de campos descriptivos.
type UpdateItemRequest struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	UnitMeasure  *string          `json:"unit_measure"`
	MinStock     *decimal.Decimal `json:"min_stock"`
	MaxStock     *decimal.Decimal `json:"max_stock"`
	ReorderPoint *decimal.Decimal `json:"reorder_point"`
	Active       *bool            `json:"active"`
}

// ItemResponse representación de un producto.
type ItemResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	UnitMeasure  string           `json:"unit_measure"`
	MinStock     *decimal.Decimal `json:"min_stock,omitempty"`
	MaxStock     *decimal.Decimal `json:"max_stock,omitempty"`
	ReorderPoint *decimal.Decimal `json:"reorder_point,omitempty"`
	Active       bool             `json:"active"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// ItemListResponse listado paginado de productos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
