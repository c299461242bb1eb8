package stock

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

// AvailableLotView lote con saldo en un almacén, con banderas de vencimiento
// calculadas con el horizonte configurado.
type AvailableLotView struct {
	repository.AvailableLot
	Expired    bool
	NearExpiry bool
}

// QueryUseCase consultas de solo lectura sobre el libro de saldos:
// disponibilidad, saldos, lotes disponibles y alertas de reposición.
type QueryUseCase struct {
	entries        repository.StockEntryRepository
	nearExpiryDays int
}

// NewQueryUseCase construye el caso de uso. nearExpiryDays es el horizonte
// para marcar lotes próximos a vencer.
func NewQueryUseCase(entries repository.StockEntryRepository, nearExpiryDays int) *QueryUseCase {
	return &QueryUseCase{entries: entries, nearExpiryDays: nearExpiryDays}
}

// AvailableQuantity devuelve el saldo de la tripla; cero si no hay fila.
func (uc *QueryUseCase) AvailableQuantity(warehouseID, itemID, lotID string) (decimal.Decimal, error) {
	entry, err := uc.entries.Get(warehouseID, itemID, lotID)
	if err != nil {
		return decimal.Zero, err
	}
	if entry == nil {
		return decimal.Zero, nil
	}
	return entry.Quantity, nil
}

// CheckAvailability indica si hay saldo suficiente para mover qty desde la
// tripla. Pensado para validación previa en el frontend; no bloquea nada.
func (uc *QueryUseCase) CheckAvailability(warehouseID, itemID, lotID string, qty decimal.Decimal) (bool, error) {
	available, err := uc.AvailableQuantity(warehouseID, itemID, lotID)
	if err != nil {
		return false, err
	}
	return available.GreaterThanOrEqual(qty), nil
}

// ListBalances lista filas de saldo filtradas por almacén y/o producto
// (cualquiera puede ir vacío).
func (uc *QueryUseCase) ListBalances(warehouseID, itemID string, limit, offset int) ([]*entity.StockEntry, error) {
	return uc.entries.List(warehouseID, itemID, limit, offset)
}

// ListAvailableLots lista lotes con saldo positivo en un almacén (o en todos
// si warehouseID va vacío), marcando vencidos y próximos a vencer.
func (uc *QueryUseCase) ListAvailableLots(warehouseID string) ([]*AvailableLotView, error) {
	lots, err := uc.entries.ListAvailable(warehouseID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	views := make([]*AvailableLotView, 0, len(lots))
	for _, al := range lots {
		view := &AvailableLotView{AvailableLot: *al}
		if al.ExpiryDate != nil {
			view.Expired = now.After(*al.ExpiryDate)
			view.NearExpiry = now.AddDate(0, 0, uc.nearExpiryDays).After(*al.ExpiryDate)
		}
		views = append(views, view)
	}
	return views, nil
}

// ListAlerts lista las filas de saldo por debajo de su umbral mínimo
// (candidatas a reposición). Los umbrales son informativos: nunca bloquean
// una transferencia.
func (uc *QueryUseCase) ListAlerts(warehouseID string) ([]*entity.StockEntry, error) {
	return uc.entries.ListBelowMinimum(warehouseID)
}
