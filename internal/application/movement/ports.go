package movement

import (
	"context"

	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa transacción. Garantiza que débito, split de lote,
// crédito y registro del movimiento sean atómicos: o se confirman todos o
// ninguno queda visible.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movements repository.MovementRepository,
		entries repository.StockEntryRepository,
		lots repository.LotRepository,
	) error) error
}
