package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement es el registro inmutable de una transferencia, entrada o salida.
// Origen nulo = entrada (ingreso al almacén); destino nulo = salida
// (consumo/pérdida). Nunca se actualiza; solo existe un borrado
// administrativo fuera del motor de transferencias.
type Movement struct {
	ID                string
	OriginWarehouseID *string
	DestWarehouseID   *string
	ItemID            string
	OriginLotID       *string
	DestLotID         *string
	Quantity          decimal.Decimal
	Date              time.Time
	Responsible       string
	Note              string
}

// IsEntry indica si el movimiento es una entrada (sin origen).
func (m *Movement) IsEntry() bool {
	return m.OriginWarehouseID == nil
}

// IsExit indica si el movimiento es una salida (sin destino).
func (m *Movement) IsExit() bool {
	return m.DestWarehouseID == nil
}
