package movement_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almoxarifado-api/internal/application/movement"
	"github.com/jhoicas/almoxarifado-api/internal/domain"
)

// seedLotScenario un lote de 100 unidades en el almacén A, almacén B vacío.
func seedLotScenario(s *store) {
	s.seedItem("item-1", "Guantes de nitrilo")
	s.seedWarehouse("alm-a", "Almacén Central", true)
	s.seedWarehouse("alm-b", "Almacén Norte", true)
	s.seedLot("lote-a", "item-1", "Lote A", qty(100))
	s.seedEntry("alm-a", "item-1", "lote-a", qty(100))
}

func TestTransferLot_ParcialHaceSplit(t *testing.T) {
	s := newStore()
	seedLotScenario(s)
	uc := newTestUseCase(s)

	mov, err := uc.TransferLot(context.Background(), movement.TransferLotInput{
		SourceLotID:       "lote-a",
		OriginWarehouseID: "alm-a",
		DestWarehouseID:   "alm-b",
		Quantity:          qty(30),
		Responsible:       "mgarcia",
	})

	require.NoError(t, err)
	require.NotNil(t, mov.DestLotID)
	assert.NotEqual(t, "lote-a", *mov.DestLotID,
		"una transferencia parcial debe acreditar sobre un lote derivado")
	assert.Equal(t, "lote-a", *mov.OriginLotID)

	derivado := s.lots[*mov.DestLotID]
	require.NotNil(t, derivado, "el lote derivado debe quedar persistido")
	assert.Equal(t, "Lote A (Split)", derivado.Name)
	assert.Equal(t, "item-1", derivado.ItemID)
	assert.True(t, derivado.Quantity.Equal(qty(30)))
	assert.Contains(t, derivado.Note, "lote-a")

	assert.True(t, s.balance("alm-a", "item-1", "lote-a").Equal(qty(70)),
		"el lote de origen conserva su identidad y el saldo restante")
	assert.True(t, s.balance("alm-b", "item-1", derivado.ID).Equal(qty(30)))
}

func TestTransferLot_TotalConservaIdentidad(t *testing.T) {
	s := newStore()
	seedLotScenario(s)
	uc := newTestUseCase(s)

	mov, err := uc.TransferLot(context.Background(), movement.TransferLotInput{
		SourceLotID:       "lote-a",
		OriginWarehouseID: "alm-a",
		DestWarehouseID:   "alm-b",
		Quantity:          qty(100),
		Responsible:       "mgarcia",
	})

	require.NoError(t, err)
	assert.Equal(t, "lote-a", *mov.DestLotID,
		"una transferencia total conserva la identidad del lote")
	assert.Len(t, s.lots, 1, "una transferencia total no crea lotes derivados")

	assert.True(t, s.balance("alm-a", "item-1", "lote-a").IsZero())
	assert.True(t, s.balance("alm-b", "item-1", "lote-a").Equal(qty(100)))

	// la fila de origen con saldo cero desaparece
	for _, e := range s.entries {
		if e.WarehouseID == "alm-a" {
			t.Fatalf("la fila de origen debió eliminarse al quedar en cero, sigue: %+v", e)
		}
	}
}

func TestTransferLot_InsuficienteNoCreaDerivado(t *testing.T) {
	s := newStore()
	seedLotScenario(s)
	uc := newTestUseCase(s)

	_, err := uc.TransferLot(context.Background(), movement.TransferLotInput{
		SourceLotID:       "lote-a",
		OriginWarehouseID: "alm-a",
		DestWarehouseID:   "alm-b",
		Quantity:          qty(150),
		Responsible:       "mgarcia",
	})

	require.Error(t, err)
	var insuf *domain.InsufficientStockError
	require.ErrorAs(t, err, &insuf)
	assert.True(t, insuf.Available.Equal(qty(100)))
	assert.True(t, insuf.Requested.Equal(qty(150)))

	assert.Len(t, s.lots, 1, "un rechazo no debe dejar lotes derivados huérfanos")
	assert.True(t, s.balance("alm-a", "item-1", "lote-a").Equal(qty(100)))
	assert.Empty(t, s.movements)
}

func TestTransferLot_SinSaldoEnOrigen(t *testing.T) {
	s := newStore()
	seedLotScenario(s)
	uc := newTestUseCase(s)

	// el lote existe pero no tiene saldo en B
	_, err := uc.TransferLot(context.Background(), movement.TransferLotInput{
		SourceLotID:       "lote-a",
		OriginWarehouseID: "alm-b",
		DestWarehouseID:   "alm-a",
		Quantity:          qty(10),
		Responsible:       "mgarcia",
	})

	require.Error(t, err)
	var insuf *domain.InsufficientStockError
	require.ErrorAs(t, err, &insuf)
	assert.True(t, insuf.Available.IsZero())
}

func TestTransferLot_MismoAlmacen(t *testing.T) {
	s := newStore()
	seedLotScenario(s)
	uc := newTestUseCase(s)

	_, err := uc.TransferLot(context.Background(), movement.TransferLotInput{
		SourceLotID:       "lote-a",
		OriginWarehouseID: "alm-a",
		DestWarehouseID:   "alm-a",
		Quantity:          qty(10),
		Responsible:       "mgarcia",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidOperation))
}

func TestTransferLot_LoteInexistente(t *testing.T) {
	s := newStore()
	seedLotScenario(s)
	uc := newTestUseCase(s)

	_, err := uc.TransferLot(context.Background(), movement.TransferLotInput{
		SourceLotID:       "lote-fantasma",
		OriginWarehouseID: "alm-a",
		DestWarehouseID:   "alm-b",
		Quantity:          qty(10),
		Responsible:       "mgarcia",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
