package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un producto del catálogo de almacén.
// Los umbrales min/max son informativos (alertas de reposición); las filas de
// stock los heredan al crearse y nunca bloquean una transferencia.
type Item struct {
	ID           string
	Name         string
	Description  string
	UnitMeasure  string
	MinStock     *decimal.Decimal
	MaxStock     *decimal.Decimal
	ReorderPoint *decimal.Decimal
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
