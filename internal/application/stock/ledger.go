package stock

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almoxarifado-api/internal/domain"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

// Thresholds umbrales por defecto para filas de stock creadas por el primer
// crédito, cuando el producto no define los suyos en el catálogo.
type Thresholds struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// Ledger aplica la lógica de saldos sobre las filas (almacén, producto, lote).
// No maneja transacciones: debe construirse con un repositorio atado a la
// transacción del caller; toda mutación queda dentro de ella.
type Ledger struct {
	entries  repository.StockEntryRepository
	defaults Thresholds
}

// NewLedger construye el libro de saldos sobre el repositorio dado.
func NewLedger(entries repository.StockEntryRepository, defaults Thresholds) *Ledger {
	return &Ledger{entries: entries, defaults: defaults}
}

// Balance devuelve el saldo de la tripla; cero si la fila no existe.
func (l *Ledger) Balance(warehouseID, itemID, lotID string) (decimal.Decimal, error) {
	entry, err := l.entries.Get(warehouseID, itemID, lotID)
	if err != nil {
		return decimal.Zero, err
	}
	if entry == nil {
		return decimal.Zero, nil
	}
	return entry.Quantity, nil
}

// Debit descuenta qty del saldo de la tripla. Falla con
// InsufficientStockError si la fila no existe o el saldo es menor que qty.
// Si el saldo llega exactamente a cero la fila se elimina, para no acumular
// filas vacías tras muchos splits de lote.
func (l *Ledger) Debit(warehouseID, itemID, lotID string, qty decimal.Decimal) error {
	entry, err := l.entries.GetForUpdate(warehouseID, itemID, lotID)
	if err != nil {
		return err
	}
	if entry == nil {
		return &domain.InsufficientStockError{Available: decimal.Zero, Requested: qty}
	}
	if entry.Quantity.LessThan(qty) {
		return &domain.InsufficientStockError{Available: entry.Quantity, Requested: qty}
	}
	entry.Quantity = entry.Quantity.Sub(qty)
	if entry.Quantity.IsZero() {
		return l.entries.Delete(entry.ID)
	}
	entry.UpdatedAt = time.Now()
	return l.entries.Upsert(entry)
}

// Credit suma qty al saldo de la tripla; si la fila no existe la crea con los
// umbrales del producto (o los por defecto). El índice único sobre la tripla
// garantiza que nunca se materializan dos filas para la misma clave.
func (l *Ledger) Credit(warehouseID string, item *entity.Item, lotID string, qty decimal.Decimal) error {
	entry, err := l.entries.GetForUpdate(warehouseID, item.ID, lotID)
	if err != nil {
		return err
	}
	now := time.Now()
	if entry == nil {
		minStock, maxStock := l.defaults.Min, l.defaults.Max
		if item.MinStock != nil {
			minStock = *item.MinStock
		}
		if item.MaxStock != nil {
			maxStock = *item.MaxStock
		}
		entry = &entity.StockEntry{
			WarehouseID: warehouseID,
			ItemID:      item.ID,
			LotID:       lotID,
			Quantity:    qty,
			MinStock:    &minStock,
			MaxStock:    &maxStock,
			UpdatedAt:   now,
		}
		return l.entries.Upsert(entry)
	}
	entry.Quantity = entry.Quantity.Add(qty)
	entry.UpdatedAt = now
	return l.entries.Upsert(entry)
}
