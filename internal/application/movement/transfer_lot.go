package movement

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almoxarifado-api/internal/application/stock"
	"github.com/jhoicas/almoxarifado-api/internal/domain"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

// TransferLotInput parámetros de la transferencia por lote. El lote de
// destino no se indica: lo elige el motor (el mismo lote si la transferencia
// es total, uno nuevo derivado si es parcial).
type TransferLotInput struct {
	SourceLotID       string
	OriginWarehouseID string
	DestWarehouseID   string
	Quantity          decimal.Decimal
	Responsible       string
	Note              string
}

// TransferLot transfiere cantidad de un lote entre almacenes.
//
// Transferencia total (saldo == cantidad): el lote viaja entero y conserva su
// identidad; la fila de origen desaparece. Transferencia parcial: se hace
// split del lote — se crea un lote derivado con la cantidad transferida —
// para no confundir el stock que se mueve con el que queda, ya que son
// fracciones físicamente distinguibles del mismo batch.
func (uc *TransferUseCase) TransferLot(ctx context.Context, in TransferLotInput) (*entity.Movement, error) {
	if err := validateBase(in.Quantity, in.Responsible); err != nil {
		return nil, err
	}
	if in.OriginWarehouseID == in.DestWarehouseID {
		return nil, fmt.Errorf("%w: el almacén de origen y destino no pueden ser iguales", domain.ErrInvalidOperation)
	}

	sourceLot, err := uc.resolveLot(in.SourceLotID)
	if err != nil {
		return nil, err
	}
	item, err := uc.resolveItem(sourceLot.ItemID)
	if err != nil {
		return nil, err
	}
	originWh, err := uc.resolveActiveWarehouse(in.OriginWarehouseID)
	if err != nil {
		return nil, err
	}
	destWh, err := uc.resolveActiveWarehouse(in.DestWarehouseID)
	if err != nil {
		return nil, err
	}

	var mov *entity.Movement
	err = uc.txRunner.Run(ctx, func(
		movements repository.MovementRepository,
		entries repository.StockEntryRepository,
		lots repository.LotRepository,
	) error {
		ledger := stock.NewLedger(entries, uc.defaults)

		// Bloquea la fila de origen antes de decidir total vs parcial, para
		// que la decisión y el débito vean el mismo saldo.
		origin, err := entries.GetForUpdate(originWh.ID, item.ID, sourceLot.ID)
		if err != nil {
			return err
		}
		if origin == nil {
			return &domain.InsufficientStockError{Available: decimal.Zero, Requested: in.Quantity}
		}
		if origin.Quantity.LessThan(in.Quantity) {
			return &domain.InsufficientStockError{Available: origin.Quantity, Requested: in.Quantity}
		}

		destLot := sourceLot
		if !origin.Quantity.Equal(in.Quantity) {
			// Parcial: el lote derivado lleva exactamente la cantidad movida;
			// el lote de origen conserva su identidad y el saldo restante.
			destLot = sourceLot.NewDerived(in.Quantity)
			if err := lots.Create(destLot); err != nil {
				return err
			}
		}

		if err := ledger.Debit(originWh.ID, item.ID, sourceLot.ID, in.Quantity); err != nil {
			return err
		}
		if err := ledger.Credit(destWh.ID, item, destLot.ID, in.Quantity); err != nil {
			return err
		}

		mov = &entity.Movement{
			OriginWarehouseID: &originWh.ID,
			DestWarehouseID:   &destWh.ID,
			ItemID:            item.ID,
			OriginLotID:       &sourceLot.ID,
			DestLotID:         &destLot.ID,
			Quantity:          in.Quantity,
			Date:              time.Now(),
			Responsible:       in.Responsible,
			Note:              in.Note,
		}
		return movements.Create(mov)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("movement_id", mov.ID).
		Str("source_lot", sourceLot.ID).
		Str("dest_lot", *mov.DestLotID).
		Str("quantity", in.Quantity.String()).
		Bool("split", *mov.DestLotID != sourceLot.ID).
		Msg("transferencia de lote completada")
	return mov, nil
}
