package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = `id, store_id, product_id, stock, is_active, created_at, updated_at`

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario por tienda. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Upsert crea o reemplaza el renglón (store, product). Last-writer-wins:
// sin bloqueo optimista, el último escritor gana.
func (r *InventoryRepo) Upsert(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, store_id, product_id, stock, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (store_id, product_id) DO UPDATE
		SET stock = EXCLUDED.stock, is_active = EXCLUDED.is_active, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.StoreID, item.ProductID, item.Stock, item.IsActive, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert inventory item: %w", err)
	}
	return nil
}

// GetByStoreAndProduct obtiene el renglón de inventario de un producto en una tienda.
func (r *InventoryRepo) GetByStoreAndProduct(storeID, productID string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE store_id = $1 AND product_id = $2`
	var it entity.InventoryItem
	err := r.q.QueryRow(context.Background(), query, storeID, productID).Scan(
		&it.ID, &it.StoreID, &it.ProductID, &it.Stock, &it.IsActive, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &it, nil
}

// ListByStore lista el inventario de una tienda con paginación.
func (r *InventoryRepo) ListByStore(storeID string, limit, offset int) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + `
		FROM inventory_items WHERE store_id = $1 ORDER BY updated_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(&it.ID, &it.StoreID, &it.ProductID, &it.Stock, &it.IsActive, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
