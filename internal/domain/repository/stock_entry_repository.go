package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
)

// AvailableLot proyección de lectura: lote con saldo positivo en un almacén,
// con los datos necesarios para la pantalla de transferencias.
type AvailableLot struct {
	LotID         string
	LotName       string
	ItemID        string
	ItemName      string
	WarehouseID   string
	WarehouseName string
	ExpiryDate    *time.Time
	Quantity      decimal.Decimal
}

// StockEntryRepository puerto de persistencia para saldos por tripla
// (almacén, producto, lote). Get y GetForUpdate devuelven nil sin error
// cuando la fila no existe (su ausencia equivale a saldo cero).
type StockEntryRepository interface {
	Get(warehouseID, itemID, lotID string) (*entity.StockEntry, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) dentro de la
	// transacción del caller para serializar read-modify-write concurrentes.
	GetForUpdate(warehouseID, itemID, lotID string) (*entity.StockEntry, error)
	Upsert(entry *entity.StockEntry) error
	Delete(id string) error
	List(warehouseID, itemID string, limit, offset int) ([]*entity.StockEntry, error)
	ListBelowMinimum(warehouseID string) ([]*entity.StockEntry, error)
	ListAvailable(warehouseID string) ([]*AvailableLot, error)
}
