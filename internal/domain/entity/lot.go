package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Lot representa un lote de un producto, con sus fechas de fabricación y
// vencimiento. Quantity es la cantidad nominal del lote (informativa); el
// saldo autoritativo por almacén vive en StockEntry.
type Lot struct {
	ID              string
	ItemID          string
	PurchaseOrderID *string
	Name            string
	Quantity        decimal.Decimal
	ManufactureDate *time.Time
	ExpiryDate      *time.Time
	Note            string
	CreatedAt       time.Time
}

// IsExpired indica si el lote está vencido en el instante dado.
// Un lote sin fecha de vencimiento nunca vence.
func (l *Lot) IsExpired(now time.Time) bool {
	if l.ExpiryDate == nil {
		return false
	}
	return now.After(*l.ExpiryDate)
}

// IsNearExpiry indica si el lote vence dentro del horizonte de días dado.
func (l *Lot) IsNearExpiry(now time.Time, horizonDays int) bool {
	if l.ExpiryDate == nil {
		return false
	}
	return now.AddDate(0, 0, horizonDays).After(*l.ExpiryDate)
}

// NewDerived crea un lote derivado para el split de una transferencia
// parcial: hereda producto, fechas y orden de compra, y lleva solo la
// cantidad transferida. El ID lo asigna la persistencia; la nota referencia
// el lote de origen.
func (l *Lot) NewDerived(transferredQty decimal.Decimal) *Lot {
	return &Lot{
		ItemID:          l.ItemID,
		PurchaseOrderID: l.PurchaseOrderID,
		Name:            l.Name + " (Split)",
		Quantity:        transferredQty,
		ManufactureDate: l.ManufactureDate,
		ExpiryDate:      l.ExpiryDate,
		Note:            fmt.Sprintf("Derivado del lote %s", l.ID),
	}
}
