package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry es el saldo autoritativo de la tripla (almacén, producto, lote).
// Existe a lo sumo una fila por tripla (índice único en la tabla); la fila se
// crea con el primer crédito y se elimina cuando el saldo llega a cero.
type StockEntry struct {
	ID          string
	WarehouseID string
	ItemID      string
	LotID       string
	Quantity    decimal.Decimal
	MinStock    *decimal.Decimal
	MaxStock    *decimal.Decimal
	UpdatedAt   time.Time
}

// BelowMinimum indica si el saldo está por debajo del umbral mínimo.
func (e *StockEntry) BelowMinimum() bool {
	return e.MinStock != nil && e.Quantity.LessThan(*e.MinStock)
}

// AboveMaximum indica si el saldo supera el umbral máximo.
func (e *StockEntry) AboveMaximum() bool {
	return e.MaxStock != nil && e.Quantity.GreaterThan(*e.MaxStock)
}
