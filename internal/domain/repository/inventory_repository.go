package repository

import "github.com/jhoicas/Mercado-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para el inventario por tienda.
type InventoryRepository interface {
	// Upsert crea o reemplaza el renglón (store, product): last-writer-wins.
	Upsert(item *entity.InventoryItem) error
	GetByStoreAndProduct(storeID, productID string) (*entity.InventoryItem, error)
	ListByStore(storeID string, limit, offset int) ([]*entity.InventoryItem, error)
}
