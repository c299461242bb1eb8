package stock_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almoxarifado-api/internal/application/stock"
	"github.com/jhoicas/almoxarifado-api/internal/domain"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

// memEntries implementación en memoria de StockEntryRepository para los tests
// del libro de saldos. Mantiene una fila por tripla, como el índice único en
// PostgreSQL.
type memEntries struct {
	seq      int
	rows     map[string]*entity.StockEntry // por ID
	expiries map[string]*time.Time         // vencimiento por lote, para ListAvailable
}

func newMemEntries() *memEntries {
	return &memEntries{
		rows:     map[string]*entity.StockEntry{},
		expiries: map[string]*time.Time{},
	}
}

func (m *memEntries) find(warehouseID, itemID, lotID string) *entity.StockEntry {
	for _, e := range m.rows {
		if e.WarehouseID == warehouseID && e.ItemID == itemID && e.LotID == lotID {
			return e
		}
	}
	return nil
}

func (m *memEntries) Get(warehouseID, itemID, lotID string) (*entity.StockEntry, error) {
	e := m.find(warehouseID, itemID, lotID)
	if e == nil {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (m *memEntries) GetForUpdate(warehouseID, itemID, lotID string) (*entity.StockEntry, error) {
	return m.Get(warehouseID, itemID, lotID)
}

func (m *memEntries) Upsert(entry *entity.StockEntry) error {
	if existing := m.find(entry.WarehouseID, entry.ItemID, entry.LotID); existing != nil {
		entry.ID = existing.ID
	}
	if entry.ID == "" {
		m.seq++
		entry.ID = fmt.Sprintf("entry-%d", m.seq)
	}
	cp := *entry
	m.rows[entry.ID] = &cp
	return nil
}

func (m *memEntries) Delete(id string) error {
	delete(m.rows, id)
	return nil
}

func (m *memEntries) List(warehouseID, itemID string, limit, offset int) ([]*entity.StockEntry, error) {
	var out []*entity.StockEntry
	for _, e := range m.rows {
		if warehouseID != "" && e.WarehouseID != warehouseID {
			continue
		}
		if itemID != "" && e.ItemID != itemID {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memEntries) ListBelowMinimum(warehouseID string) ([]*entity.StockEntry, error) {
	var out []*entity.StockEntry
	for _, e := range m.rows {
		if warehouseID != "" && e.WarehouseID != warehouseID {
			continue
		}
		if e.BelowMinimum() {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memEntries) ListAvailable(warehouseID string) ([]*repository.AvailableLot, error) {
	var out []*repository.AvailableLot
	for _, e := range m.rows {
		if e.WarehouseID != warehouseID || !e.Quantity.IsPositive() {
			continue
		}
		out = append(out, &repository.AvailableLot{
			LotID:       e.LotID,
			ItemID:      e.ItemID,
			WarehouseID: e.WarehouseID,
			ExpiryDate:  m.expiries[e.LotID],
			Quantity:    e.Quantity,
		})
	}
	return out, nil
}

var defaultThresholds = stock.Thresholds{
	Min: decimal.NewFromInt(10),
	Max: decimal.NewFromInt(100),
}

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func testItem() *entity.Item {
	return &entity.Item{ID: "item-1", Name: "Guantes de nitrilo", Active: true}
}

func TestLedger_Balance_FilaAusenteEsCero(t *testing.T) {
	l := stock.NewLedger(newMemEntries(), defaultThresholds)

	saldo, err := l.Balance("alm-1", "item-1", "lote-1")
	require.NoError(t, err)
	assert.True(t, saldo.IsZero(), "una tripla sin fila equivale a saldo cero")
}

func TestLedger_Credit_CreaFilaConUmbralesPorDefecto(t *testing.T) {
	entries := newMemEntries()
	l := stock.NewLedger(entries, defaultThresholds)

	require.NoError(t, l.Credit("alm-1", testItem(), "lote-1", qty(40)))

	saldo, err := l.Balance("alm-1", "item-1", "lote-1")
	require.NoError(t, err)
	assert.True(t, saldo.Equal(qty(40)))

	fila := entries.find("alm-1", "item-1", "lote-1")
	require.NotNil(t, fila)
	assert.True(t, fila.MinStock.Equal(qty(10)), "sin umbrales en el producto se usan los por defecto")
	assert.True(t, fila.MaxStock.Equal(qty(100)))
}

func TestLedger_Credit_HeredaUmbralesDelProducto(t *testing.T) {
	entries := newMemEntries()
	l := stock.NewLedger(entries, defaultThresholds)

	item := testItem()
	minStock, maxStock := qty(5), qty(500)
	item.MinStock, item.MaxStock = &minStock, &maxStock

	require.NoError(t, l.Credit("alm-1", item, "lote-1", qty(40)))

	fila := entries.find("alm-1", "item-1", "lote-1")
	require.NotNil(t, fila)
	assert.True(t, fila.MinStock.Equal(qty(5)))
	assert.True(t, fila.MaxStock.Equal(qty(500)))
}

func TestLedger_Credit_AcumulaSobreLaMismaFila(t *testing.T) {
	entries := newMemEntries()
	l := stock.NewLedger(entries, defaultThresholds)

	require.NoError(t, l.Credit("alm-1", testItem(), "lote-1", qty(40)))
	require.NoError(t, l.Credit("alm-1", testItem(), "lote-1", qty(25)))

	assert.Len(t, entries.rows, 1, "dos créditos a la misma tripla deben materializar una sola fila")
	saldo, _ := l.Balance("alm-1", "item-1", "lote-1")
	assert.True(t, saldo.Equal(qty(65)))
}

func TestLedger_Debit_Descuenta(t *testing.T) {
	entries := newMemEntries()
	l := stock.NewLedger(entries, defaultThresholds)
	require.NoError(t, l.Credit("alm-1", testItem(), "lote-1", qty(100)))

	require.NoError(t, l.Debit("alm-1", "item-1", "lote-1", qty(30)))

	saldo, _ := l.Balance("alm-1", "item-1", "lote-1")
	assert.True(t, saldo.Equal(qty(70)))
}

func TestLedger_Debit_SaldoCeroEliminaLaFila(t *testing.T) {
	entries := newMemEntries()
	l := stock.NewLedger(entries, defaultThresholds)
	require.NoError(t, l.Credit("alm-1", testItem(), "lote-1", qty(100)))

	require.NoError(t, l.Debit("alm-1", "item-1", "lote-1", qty(100)))

	assert.Empty(t, entries.rows, "un débito que deja el saldo en cero elimina la fila")
	saldo, _ := l.Balance("alm-1", "item-1", "lote-1")
	assert.True(t, saldo.IsZero())
}

func TestLedger_Debit_InsuficienteNoMuta(t *testing.T) {
	entries := newMemEntries()
	l := stock.NewLedger(entries, defaultThresholds)
	require.NoError(t, l.Credit("alm-1", testItem(), "lote-1", qty(100)))

	err := l.Debit("alm-1", "item-1", "lote-1", qty(150))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	var insuf *domain.InsufficientStockError
	require.ErrorAs(t, err, &insuf)
	assert.True(t, insuf.Available.Equal(qty(100)), "el error debe reportar el saldo disponible")
	assert.True(t, insuf.Requested.Equal(qty(150)), "el error debe reportar la cantidad solicitada")

	saldo, _ := l.Balance("alm-1", "item-1", "lote-1")
	assert.True(t, saldo.Equal(qty(100)), "un débito rechazado no debe mutar el saldo")
}

func TestLedger_Debit_FilaAusenteEsInsuficiente(t *testing.T) {
	l := stock.NewLedger(newMemEntries(), defaultThresholds)

	err := l.Debit("alm-1", "item-1", "lote-1", qty(1))

	require.Error(t, err)
	var insuf *domain.InsufficientStockError
	require.ErrorAs(t, err, &insuf)
	assert.True(t, insuf.Available.IsZero())
}
