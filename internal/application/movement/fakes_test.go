package movement_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almoxarifado-api/internal/application/movement"
	"github.com/jhoicas/almoxarifado-api/internal/application/stock"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
	"github.com/jhoicas/almoxarifado-api/pkg/logger"
)

var errCreateFailed = errors.New("fallo simulado al crear el movimiento")

// store estado compartido de los repositorios en memoria. El TxRunner falso
// toma un snapshot antes de ejecutar la función transaccional y lo restaura si
// falla, imitando el rollback de PostgreSQL.
type store struct {
	seq        int
	items      map[string]*entity.Item
	warehouses map[string]*entity.Warehouse
	lots       map[string]*entity.Lot
	entries    map[string]*entity.StockEntry
	movements  map[string]*entity.Movement

	failMovementCreate bool
}

func newStore() *store {
	return &store{
		items:      map[string]*entity.Item{},
		warehouses: map[string]*entity.Warehouse{},
		lots:       map[string]*entity.Lot{},
		entries:    map[string]*entity.StockEntry{},
		movements:  map[string]*entity.Movement{},
	}
}

func (s *store) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

func cloneMap[T any](in map[string]*T) map[string]*T {
	out := make(map[string]*T, len(in))
	for k, v := range in {
		cp := *v
		out[k] = &cp
	}
	return out
}

func (s *store) snapshot() *store {
	return &store{
		seq:        s.seq,
		items:      cloneMap(s.items),
		warehouses: cloneMap(s.warehouses),
		lots:       cloneMap(s.lots),
		entries:    cloneMap(s.entries),
		movements:  cloneMap(s.movements),
	}
}

func (s *store) restore(snap *store) {
	s.seq = snap.seq
	s.items = snap.items
	s.warehouses = snap.warehouses
	s.lots = snap.lots
	s.entries = snap.entries
	s.movements = snap.movements
}

// ── seeds ─────────────────────────────────────────────────────────────────────

func (s *store) seedItem(id, name string) *entity.Item {
	item := &entity.Item{ID: id, Name: name, Active: true}
	s.items[id] = item
	return item
}

func (s *store) seedWarehouse(id, name string, active bool) *entity.Warehouse {
	wh := &entity.Warehouse{ID: id, Name: name, Active: active}
	s.warehouses[id] = wh
	return wh
}

func (s *store) seedLot(id, itemID, name string, qty decimal.Decimal) *entity.Lot {
	lot := &entity.Lot{ID: id, ItemID: itemID, Name: name, Quantity: qty}
	s.lots[id] = lot
	return lot
}

func (s *store) seedEntry(warehouseID, itemID, lotID string, qty decimal.Decimal) {
	id := s.nextID("entry")
	s.entries[id] = &entity.StockEntry{
		ID:          id,
		WarehouseID: warehouseID,
		ItemID:      itemID,
		LotID:       lotID,
		Quantity:    qty,
	}
}

func (s *store) balance(warehouseID, itemID, lotID string) decimal.Decimal {
	for _, e := range s.entries {
		if e.WarehouseID == warehouseID && e.ItemID == itemID && e.LotID == lotID {
			return e.Quantity
		}
	}
	return decimal.Zero
}

// ── repositorios falsos ───────────────────────────────────────────────────────

type fakeItems struct{ s *store }

func (f fakeItems) Create(item *entity.Item) error { f.s.items[item.ID] = item; return nil }
func (f fakeItems) GetByID(id string) (*entity.Item, error) {
	if item, ok := f.s.items[id]; ok {
		cp := *item
		return &cp, nil
	}
	return nil, nil
}
func (f fakeItems) Update(item *entity.Item) error { f.s.items[item.ID] = item; return nil }
func (f fakeItems) List(limit, offset int) ([]*entity.Item, error) { return nil, nil }

type fakeWarehouses struct{ s *store }

func (f fakeWarehouses) Create(wh *entity.Warehouse) error { f.s.warehouses[wh.ID] = wh; return nil }
func (f fakeWarehouses) GetByID(id string) (*entity.Warehouse, error) {
	if wh, ok := f.s.warehouses[id]; ok {
		cp := *wh
		return &cp, nil
	}
	return nil, nil
}
func (f fakeWarehouses) Update(wh *entity.Warehouse) error { f.s.warehouses[wh.ID] = wh; return nil }
func (f fakeWarehouses) List(limit, offset int) ([]*entity.Warehouse, error) { return nil, nil }

type fakeLots struct{ s *store }

func (f fakeLots) Create(lot *entity.Lot) error {
	if lot.ID == "" {
		lot.ID = f.s.nextID("lote")
	}
	cp := *lot
	f.s.lots[lot.ID] = &cp
	return nil
}
func (f fakeLots) GetByID(id string) (*entity.Lot, error) {
	if lot, ok := f.s.lots[id]; ok {
		cp := *lot
		return &cp, nil
	}
	return nil, nil
}
func (f fakeLots) Update(lot *entity.Lot) error { f.s.lots[lot.ID] = lot; return nil }
func (f fakeLots) ListByItem(itemID string, limit, offset int) ([]*entity.Lot, error) {
	return nil, nil
}
func (f fakeLots) List(limit, offset int) ([]*entity.Lot, error) { return nil, nil }

type fakeEntries struct{ s *store }

func (f fakeEntries) find(warehouseID, itemID, lotID string) *entity.StockEntry {
	for _, e := range f.s.entries {
		if e.WarehouseID == warehouseID && e.ItemID == itemID && e.LotID == lotID {
			return e
		}
	}
	return nil
}

func (f fakeEntries) Get(warehouseID, itemID, lotID string) (*entity.StockEntry, error) {
	if e := f.find(warehouseID, itemID, lotID); e != nil {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (f fakeEntries) GetForUpdate(warehouseID, itemID, lotID string) (*entity.StockEntry, error) {
	return f.Get(warehouseID, itemID, lotID)
}

func (f fakeEntries) Upsert(entry *entity.StockEntry) error {
	if existing := f.find(entry.WarehouseID, entry.ItemID, entry.LotID); existing != nil {
		entry.ID = existing.ID
	}
	if entry.ID == "" {
		entry.ID = f.s.nextID("entry")
	}
	cp := *entry
	f.s.entries[entry.ID] = &cp
	return nil
}

func (f fakeEntries) Delete(id string) error { delete(f.s.entries, id); return nil }

func (f fakeEntries) List(warehouseID, itemID string, limit, offset int) ([]*entity.StockEntry, error) {
	return nil, nil
}
func (f fakeEntries) ListBelowMinimum(warehouseID string) ([]*entity.StockEntry, error) {
	return nil, nil
}
func (f fakeEntries) ListAvailable(warehouseID string) ([]*repository.AvailableLot, error) {
	return nil, nil
}

type fakeMovements struct{ s *store }

func (f fakeMovements) Create(m *entity.Movement) error {
	if f.s.failMovementCreate {
		return errCreateFailed
	}
	if m.ID == "" {
		m.ID = f.s.nextID("mov")
	}
	if m.Date.IsZero() {
		m.Date = time.Now()
	}
	cp := *m
	f.s.movements[m.ID] = &cp
	return nil
}

func (f fakeMovements) GetByID(id string) (*entity.Movement, error) {
	if m, ok := f.s.movements[id]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, nil
}

func (f fakeMovements) ListByWarehouse(warehouseID string) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range f.s.movements {
		origin := m.OriginWarehouseID != nil && *m.OriginWarehouseID == warehouseID
		dest := m.DestWarehouseID != nil && *m.DestWarehouseID == warehouseID
		if origin || dest {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f fakeMovements) ListAll(limit, offset int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range f.s.movements {
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f fakeMovements) Delete(id string) error { delete(f.s.movements, id); return nil }

// fakeTxRunner ejecuta la función con los repositorios en memoria y deshace
// toda mutación si retorna error.
type fakeTxRunner struct{ s *store }

func (r fakeTxRunner) Run(_ context.Context, fn func(
	movements repository.MovementRepository,
	entries repository.StockEntryRepository,
	lots repository.LotRepository,
) error) error {
	snap := r.s.snapshot()
	if err := fn(fakeMovements{r.s}, fakeEntries{r.s}, fakeLots{r.s}); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

// ── constructor del caso de uso bajo prueba ───────────────────────────────────

func newTestUseCase(s *store) *movement.TransferUseCase {
	return movement.NewTransferUseCase(
		fakeTxRunner{s},
		fakeItems{s},
		fakeWarehouses{s},
		fakeLots{s},
		stock.Thresholds{Min: decimal.NewFromInt(10), Max: decimal.NewFromInt(100)},
		logger.New(logger.Config{Env: "test", Level: "error"}),
	)
}
