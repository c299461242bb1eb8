package movement

import (
	"fmt"

	"github.com/jhoicas/almoxarifado-api/internal/domain"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

// HistoryUseCase consultas de solo lectura sobre el historial de movimientos,
// más el borrado administrativo (fuera del motor; no toca saldos).
type HistoryUseCase struct {
	movements repository.MovementRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(movements repository.MovementRepository) *HistoryUseCase {
	return &HistoryUseCase{movements: movements}
}

// History devuelve los movimientos donde el almacén participa como origen o
// destino, más recientes primero. Con warehouseID vacío devuelve todos.
func (uc *HistoryUseCase) History(warehouseID string, limit, offset int) ([]*entity.Movement, error) {
	if warehouseID != "" {
		return uc.movements.ListByWarehouse(warehouseID)
	}
	return uc.movements.ListAll(limit, offset)
}

// GetByID obtiene un movimiento por ID.
func (uc *HistoryUseCase) GetByID(id string) (*entity.Movement, error) {
	mov, err := uc.movements.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, fmt.Errorf("%w: movimiento %s", domain.ErrNotFound, id)
	}
	return mov, nil
}

// Delete elimina un movimiento del historial (vía administrativa). No
// revierte saldos: quien lo use debe registrar el movimiento compensatorio.
func (uc *HistoryUseCase) Delete(id string) error {
	if _, err := uc.GetByID(id); err != nil {
		return err
	}
	return uc.movements.Delete(id)
}
