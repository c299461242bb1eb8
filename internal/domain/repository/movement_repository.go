package repository

import "github.com/jhoicas/almoxarifado-api/internal/domain/entity"

// MovementRepository puerto de persistencia para el historial de movimientos
// (append-only). Create asigna ID y fecha si vienen vacíos. Los movimientos
// nunca se actualizan; Delete existe solo como vía administrativa, fuera del
// motor de transferencias.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	// ListByWarehouse devuelve movimientos donde el almacén es origen o
	// destino, ordenados por fecha descendente.
	ListByWarehouse(warehouseID string) ([]*entity.Movement, error)
	ListAll(limit, offset int) ([]*entity.Movement, error)
	Delete(id string) error
}
