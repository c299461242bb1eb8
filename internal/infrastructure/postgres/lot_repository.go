package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementación de LotRepository sobre PostgreSQL (usable con pool
// o tx; el motor de transferencias crea lotes derivados dentro de su tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

const lotColumns = `id, item_id, purchase_order_id, name, quantity, manufacture_date, expiry_date, note, created_at`

// Create persiste un nuevo lote; asigna ID y fecha de creación si vienen
// vacíos (caso de los lotes derivados de un split).
func (r *LotRepo) Create(lot *entity.Lot) error {
	if lot.ID == "" {
		lot.ID = uuid.New().String()
	}
	if lot.CreatedAt.IsZero() {
		lot.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO lots (` + lotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.ItemID, lot.PurchaseOrderID, lot.Name, lot.Quantity,
		lot.ManufactureDate, lot.ExpiryDate, lot.Note, lot.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID; nil si no existe.
func (r *LotRepo) GetByID(id string) (*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE id = $1`
	lot, err := scanLot(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return lot, nil
}

// Update actualiza los campos descriptivos de un lote.
func (r *LotRepo) Update(lot *entity.Lot) error {
	query := `
		UPDATE lots
		SET name = $2, quantity = $3, expiry_date = $4, note = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.Name, lot.Quantity, lot.ExpiryDate, lot.Note,
	)
	if err != nil {
		return fmt.Errorf("update lot: %w", err)
	}
	return nil
}

// ListByItem lista lotes de un producto, más recientes primero.
func (r *LotRepo) ListByItem(itemID string, limit, offset int) ([]*entity.Lot, error) {
	query := `
		SELECT ` + lotColumns + ` FROM lots
		WHERE item_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryLots(query, itemID, limit, offset)
}

// List lista lotes, más recientes primero.
func (r *LotRepo) List(limit, offset int) ([]*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryLots(query, limit, offset)
}

func (r *LotRepo) queryLots(query string, args ...any) ([]*entity.Lot, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()

	var list []*entity.Lot
	for rows.Next() {
		lot, err := scanLot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, lot)
	}
	return list, rows.Err()
}

func scanLot(row pgx.Row) (*entity.Lot, error) {
	var l entity.Lot
	err := row.Scan(
		&l.ID, &l.ItemID, &l.PurchaseOrderID, &l.Name, &l.Quantity,
		&l.ManufactureDate, &l.ExpiryDate, &l.Note, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
