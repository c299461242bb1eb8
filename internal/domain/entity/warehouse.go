package entity

import "time"

// Warehouse representa un almacén físico donde se guarda stock.
// Un almacén inactivo no puede ser origen ni destino de nuevos movimientos.
type Warehouse struct {
	ID           string
	Name         string
	Location     string
	ContactPhone string
	ContactEmail string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
