package repository

import "github.com/jhoicas/almoxarifado-api/internal/domain/entity"

// LotRepository puerto de persistencia para lotes.
// Create asigna el ID si viene vacío (lotes derivados de un split).
// GetByID devuelve nil sin error cuando el lote no existe.
type LotRepository interface {
	Create(lot *entity.Lot) error
	GetByID(id string) (*entity.Lot, error)
	Update(lot *entity.Lot) error
	ListByItem(itemID string, limit, offset int) ([]*entity.Lot, error)
	List(limit, offset int) ([]*entity.Lot, error)
}
