package movement

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almoxarifado-api/internal/application/stock"
	"github.com/jhoicas/almoxarifado-api/internal/domain"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
	"github.com/jhoicas/almoxarifado-api/pkg/logger"
)

// TransferUseCase motor de transferencias de stock: débito en origen, crédito
// en destino y registro del movimiento como una única unidad transaccional.
// Cubre transferencias, entradas (sin origen) y salidas (sin destino).
type TransferUseCase struct {
	txRunner   TxRunner
	items      repository.ItemRepository
	warehouses repository.WarehouseRepository
	lots       repository.LotRepository
	defaults   stock.Thresholds
	log        *logger.Logger
}

// NewTransferUseCase construye el motor de transferencias.
func NewTransferUseCase(
	txRunner TxRunner,
	items repository.ItemRepository,
	warehouses repository.WarehouseRepository,
	lots repository.LotRepository,
	defaults stock.Thresholds,
	log *logger.Logger,
) *TransferUseCase {
	return &TransferUseCase{
		txRunner:   txRunner,
		items:      items,
		warehouses: warehouses,
		lots:       lots,
		defaults:   defaults,
		log:        log,
	}
}

// TransferInput parámetros del movimiento por tripla explícita. Origen nulo
// (almacén y lote) indica una entrada: se omite la fase de débito.
type TransferInput struct {
	ItemID            string
	OriginWarehouseID *string
	DestWarehouseID   string
	OriginLotID       *string
	DestLotID         string
	Quantity          decimal.Decimal
	Responsible       string
	Note              string
}

// EntryInput parámetros de una entrada de stock (compra, devolución).
type EntryInput struct {
	ItemID          string
	DestWarehouseID string
	DestLotID       string
	Quantity        decimal.Decimal
	Responsible     string
	Note            string
}

// ExitInput parámetros de una salida de stock (consumo, pérdida).
type ExitInput struct {
	ItemID            string
	OriginWarehouseID string
	OriginLotID       string
	Quantity          decimal.Decimal
	Responsible       string
	Note              string
}

// Transfer mueve cantidad entre triplas (almacén, producto, lote) explícitas.
// Valida parámetros y entidades, debita el origen (salvo entradas), acredita
// el destino y registra el movimiento, todo en una sola transacción.
func (uc *TransferUseCase) Transfer(ctx context.Context, in TransferInput) (*entity.Movement, error) {
	if err := validateBase(in.Quantity, in.Responsible); err != nil {
		return nil, err
	}

	item, err := uc.resolveItem(in.ItemID)
	if err != nil {
		return nil, err
	}
	destWh, err := uc.resolveActiveWarehouse(in.DestWarehouseID)
	if err != nil {
		return nil, err
	}
	destLot, err := uc.resolveLot(in.DestLotID)
	if err != nil {
		return nil, err
	}

	// Origen y lote de origen presentes => transferencia; si falta alguno es
	// una entrada y no hay fase de débito. Nunca se sustituyen entidades por
	// defecto: el caller decide explícitamente.
	isEntry := in.OriginWarehouseID == nil || in.OriginLotID == nil

	var originWh *entity.Warehouse
	var originLot *entity.Lot
	if !isEntry {
		if originWh, err = uc.resolveActiveWarehouse(*in.OriginWarehouseID); err != nil {
			return nil, err
		}
		if originLot, err = uc.resolveLot(*in.OriginLotID); err != nil {
			return nil, err
		}
	}

	var mov *entity.Movement
	err = uc.txRunner.Run(ctx, func(
		movements repository.MovementRepository,
		entries repository.StockEntryRepository,
		_ repository.LotRepository,
	) error {
		ledger := stock.NewLedger(entries, uc.defaults)

		if !isEntry {
			if err := ledger.Debit(originWh.ID, item.ID, originLot.ID, in.Quantity); err != nil {
				return err
			}
		}
		if err := ledger.Credit(destWh.ID, item, destLot.ID, in.Quantity); err != nil {
			return err
		}

		mov = &entity.Movement{
			OriginWarehouseID: in.OriginWarehouseID,
			DestWarehouseID:   &destWh.ID,
			ItemID:            item.ID,
			OriginLotID:       in.OriginLotID,
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
		Str("item_id", item.ID).
		Str("dest_warehouse", destWh.ID).
		Str("quantity", in.Quantity.String()).
		Bool("entry", isEntry).
		Msg("movimiento registrado")
	return mov, nil
}

// RegisterEntry registra una entrada de stock (sin origen).
func (uc *TransferUseCase) RegisterEntry(ctx context.Context, in EntryInput) (*entity.Movement, error) {
	return uc.Transfer(ctx, TransferInput{
		ItemID:          in.ItemID,
		DestWarehouseID: in.DestWarehouseID,
		DestLotID:       in.DestLotID,
		Quantity:        in.Quantity,
		Responsible:     in.Responsible,
		Note:            in.Note,
	})
}

// RegisterExit registra una salida de stock (consumo o pérdida): solo fase de
// débito; el movimiento queda sin almacén ni lote de destino.
func (uc *TransferUseCase) RegisterExit(ctx context.Context, in ExitInput) (*entity.Movement, error) {
	if err := validateBase(in.Quantity, in.Responsible); err != nil {
		return nil, err
	}

	item, err := uc.resolveItem(in.ItemID)
	if err != nil {
		return nil, err
	}
	originWh, err := uc.resolveActiveWarehouse(in.OriginWarehouseID)
	if err != nil {
		return nil, err
	}
	originLot, err := uc.resolveLot(in.OriginLotID)
	if err != nil {
		return nil, err
	}

	var mov *entity.Movement
	err = uc.txRunner.Run(ctx, func(
		movements repository.MovementRepository,
		entries repository.StockEntryRepository,
		_ repository.LotRepository,
	) error {
		ledger := stock.NewLedger(entries, uc.defaults)
		if err := ledger.Debit(originWh.ID, item.ID, originLot.ID, in.Quantity); err != nil {
			return err
		}
		mov = &entity.Movement{
			OriginWarehouseID: &originWh.ID,
			ItemID:            item.ID,
			OriginLotID:       &originLot.ID,
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
		Str("item_id", item.ID).
		Str("origin_warehouse", originWh.ID).
		Str("quantity", in.Quantity.String()).
		Msg("salida registrada")
	return mov, nil
}

func validateBase(qty decimal.Decimal, responsible string) error {
	if !qty.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidOperation)
	}
	if strings.TrimSpace(responsible) == "" {
		return fmt.Errorf("%w: el responsable es obligatorio", domain.ErrInvalidOperation)
	}
	return nil
}

func (uc *TransferUseCase) resolveItem(id string) (*entity.Item, error) {
	item, err := uc.items.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	return item, nil
}

func (uc *TransferUseCase) resolveActiveWarehouse(id string) (*entity.Warehouse, error) {
	wh, err := uc.warehouses.GetByID(id)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, fmt.Errorf("%w: almacén %s", domain.ErrNotFound, id)
	}
	if !wh.Active {
		return nil, fmt.Errorf("%w: el almacén '%s' está inactivo", domain.ErrInvalidOperation, wh.Name)
	}
	return wh, nil
}

func (uc *TransferUseCase) resolveLot(id string) (*entity.Lot, error) {
	lot, err := uc.lots.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, fmt.Errorf("%w: lote %s", domain.ErrNotFound, id)
	}
	return lot, nil
}
