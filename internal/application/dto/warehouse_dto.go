package dto

import "time"

// CreateWarehouseRequest alta de almacén.
type CreateWarehouseRequest struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email"`
}

// UpdateWarehouseRequest actualización parcial de almacén.
type UpdateWarehouseRequest struct {
	Name         *string `json:"name"`
	Location     *string `json:"location"`
	ContactPhone *string `json:"contact_phone"`
	ContactEmail *string `json:"contact_email"`
	Active       *bool   `json:"active"`
}

// WarehouseResponse representación de un almacén.
type WarehouseResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// WarehouseListResponse listado paginado de almacenes.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
