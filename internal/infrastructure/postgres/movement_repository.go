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

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL
// (usable con pool o tx). El historial es append-only: no existe Update.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, origin_warehouse_id, dest_warehouse_id, item_id, origin_lot_id, dest_lot_id, quantity, date, responsible, note`

// Create persiste un movimiento; asigna ID y fecha si vienen vacíos.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	if movement.Date.IsZero() {
		movement.Date = time.Now()
	}
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.OriginWarehouseID, movement.DestWarehouseID,
		movement.ItemID, movement.OriginLotID, movement.DestLotID,
		movement.Quantity, movement.Date, movement.Responsible, movement.Note,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID; nil si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	mov, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return mov, nil
}

// ListByWarehouse lista movimientos donde el almacén es origen o destino,
// más recientes primero.
func (r *MovementRepo) ListByWarehouse(warehouseID string) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + ` FROM movements
		WHERE origin_warehouse_id = $1 OR dest_warehouse_id = $1
		ORDER BY date DESC`
	return r.queryMovements(query, warehouseID)
}

// ListAll lista movimientos, más recientes primero.
func (r *MovementRepo) ListAll(limit, offset int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements ORDER BY date DESC LIMIT $1 OFFSET $2`
	return r.queryMovements(query, limit, offset)
}

// Delete elimina un movimiento (vía administrativa).
func (r *MovementRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}

func (r *MovementRepo) queryMovements(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		mov, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, mov)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	err := row.Scan(
		&m.ID, &m.OriginWarehouseID, &m.DestWarehouseID, &m.ItemID,
		&m.OriginLotID, &m.DestLotID, &m.Quantity, &m.Date,
		&m.Responsible, &m.Note,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
