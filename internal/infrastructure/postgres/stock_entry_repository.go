package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

var _ repository.StockEntryRepository = (*StockEntryRepo)(nil)

// StockEntryRepo implementación de StockEntryRepository sobre PostgreSQL
// (usable con pool o tx). El índice único sobre (warehouse_id, item_id,
// lot_id) garantiza a lo sumo una fila por tripla.
type StockEntryRepo struct {
	q Querier
}

// NewStockEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockEntryRepository(q Querier) *StockEntryRepo {
	return &StockEntryRepo{q: q}
}

const stockEntryColumns = `id, warehouse_id, item_id, lot_id, quantity, min_stock, max_stock, updated_at`

// Get obtiene la fila de saldo de la tripla; nil si no existe.
func (r *StockEntryRepo) Get(warehouseID, itemID, lotID string) (*entity.StockEntry, error) {
	query := `
		SELECT ` + stockEntryColumns + ` FROM stock_entries
		WHERE warehouse_id = $1 AND item_id = $2 AND lot_id = $3`
	entry, err := scanStockEntry(r.q.QueryRow(context.Background(), query, warehouseID, itemID, lotID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock entry: %w", err)
	}
	return entry, nil
}

// GetForUpdate obtiene la fila y la bloquea (SELECT FOR UPDATE) dentro de la
// transacción del caller; nil si no existe.
func (r *StockEntryRepo) GetForUpdate(warehouseID, itemID, lotID string) (*entity.StockEntry, error) {
	query := `
		SELECT ` + stockEntryColumns + ` FROM stock_entries
		WHERE warehouse_id = $1 AND item_id = $2 AND lot_id = $3
		FOR UPDATE`
	entry, err := scanStockEntry(r.q.QueryRow(context.Background(), query, warehouseID, itemID, lotID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock entry for update: %w", err)
	}
	return entry, nil
}

// Upsert inserta o actualiza la fila de saldo por su clave compuesta.
func (r *StockEntryRepo) Upsert(entry *entity.StockEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_entries (` + stockEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (warehouse_id, item_id, lot_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.WarehouseID, entry.ItemID, entry.LotID,
		entry.Quantity, entry.MinStock, entry.MaxStock,
	)
	if err != nil {
		return fmt.Errorf("upsert stock entry: %w", err)
	}
	return nil
}

// Delete elimina una fila de saldo (saldo cero tras un débito).
func (r *StockEntryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock entry: %w", err)
	}
	return nil
}

// List lista filas de saldo filtradas por almacén y/o producto (filtros
// vacíos = sin filtro).
func (r *StockEntryRepo) List(warehouseID, itemID string, limit, offset int) ([]*entity.StockEntry, error) {
	query := `SELECT ` + stockEntryColumns + ` FROM stock_entries WHERE 1=1`
	args := []any{}
	pos := 1
	if warehouseID != "" {
		query += fmt.Sprintf(" AND warehouse_id = $%d", pos)
		args = append(args, warehouseID)
		pos++
	}
	if itemID != "" {
		query += fmt.Sprintf(" AND item_id = $%d", pos)
		args = append(args, itemID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY updated_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock entries: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockEntry
	for rows.Next() {
		entry, err := scanStockEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		list = append(list, entry)
	}
	return list, rows.Err()
}

// ListBelowMinimum lista filas con saldo por debajo de su umbral mínimo
// (candidatas a reposición), opcionalmente filtradas por almacén.
func (r *StockEntryRepo) ListBelowMinimum(warehouseID string) ([]*entity.StockEntry, error) {
	query := `
		SELECT ` + stockEntryColumns + ` FROM stock_entries
		WHERE min_stock IS NOT NULL AND quantity < min_stock`
	args := []any{}
	if warehouseID != "" {
		query += " AND warehouse_id = $1"
		args = append(args, warehouseID)
	}
	query += " ORDER BY quantity ASC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list below minimum: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockEntry
	for rows.Next() {
		entry, err := scanStockEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		list = append(list, entry)
	}
	return list, rows.Err()
}

// ListAvailable lista lotes con saldo positivo, con datos de lote, producto
// y almacén para la pantalla de transferencias.
func (r *StockEntryRepo) ListAvailable(warehouseID string) ([]*repository.AvailableLot, error) {
	query := `
		SELECT l.id, l.name, i.id, i.name, w.id, w.name, l.expiry_date, se.quantity
		FROM stock_entries se
		JOIN lots l ON l.id = se.lot_id
		JOIN items i ON i.id = se.item_id
		JOIN warehouses w ON w.id = se.warehouse_id
		WHERE se.quantity > 0`
	args := []any{}
	if warehouseID != "" {
		query += " AND se.warehouse_id = $1"
		args = append(args, warehouseID)
	}
	query += " ORDER BY l.expiry_date NULLS LAST, l.name"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list available lots: %w", err)
	}
	defer rows.Close()

	var list []*repository.AvailableLot
	for rows.Next() {
		var al repository.AvailableLot
		if err := rows.Scan(&al.LotID, &al.LotName, &al.ItemID, &al.ItemName,
			&al.WarehouseID, &al.WarehouseName, &al.ExpiryDate, &al.Quantity); err != nil {
			return nil, fmt.Errorf("scan available lot: %w", err)
		}
		list = append(list, &al)
	}
	return list, rows.Err()
}

func scanStockEntry(row pgx.Row) (*entity.StockEntry, error) {
	var e entity.StockEntry
	err := row.Scan(
		&e.ID, &e.WarehouseID, &e.ItemID, &e.LotID,
		&e.Quantity, &e.MinStock, &e.MaxStock, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
