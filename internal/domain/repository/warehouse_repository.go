package repository

import "github.com/jhoicas/almoxarifado-api/internal/domain/entity"

// WarehouseRepository puerto de persistencia para almacenes.
// GetByID devuelve nil sin error cuando el almacén no existe.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	List(limit, offset int) ([]*entity.Warehouse, error)
}
