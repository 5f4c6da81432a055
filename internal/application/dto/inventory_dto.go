package dto

import "time"

// UpsertInventoryRequest edición de stock de un producto en la tienda.
// El valor reemplaza al anterior (last-writer-wins).
type UpsertInventoryRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Stock     int    `json:"stock" validate:"min=0"`
	IsActive  *bool  `json:"is_active"` // nil = activo
}

// InventoryItemResponse renglón de inventario de la tienda.
type InventoryItemResponse struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	ProductID string    `json:"product_id"`
	Stock     int       `json:"stock"`
	IsActive  bool      `json:"is_active"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InventoryListResponse lista paginada de inventario.
type InventoryListResponse struct {
	Items []InventoryItemResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
