package repository

import "github.com/jhoicas/almoxarifado-api/internal/domain/entity"

// ItemRepository puerto de persistencia para productos del catálogo.
// GetByID devuelve nil sin error cuando el producto no existe.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	List(limit, offset int) ([]*entity.Item, error)
}
