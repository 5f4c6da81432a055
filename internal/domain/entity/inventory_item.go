package entity

import "time"

// InventoryItem vincula una tienda con un producto del catálogo y su stock.
// Las ediciones de stock son last-writer-wins: sin bloqueo optimista.
type InventoryItem struct {
	ID        string
	StoreID   string
	ProductID string
	Stock     int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
