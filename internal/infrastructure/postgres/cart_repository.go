package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre PostgreSQL.
// Un carrito por usuario, items como JSONB opaco.
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador de persistencia para carritos. Pasar pool o tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// GetByUser obtiene el carrito del usuario, o nil si nunca ha guardado uno.
func (r *CartRepo) GetByUser(userID string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.q.QueryRow(context.Background(),
		`SELECT user_id, items, updated_at FROM carts WHERE user_id = $1`, userID,
	).Scan(&c.UserID, &c.Items, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return &c, nil
}

// Upsert reemplaza el carrito completo (last-writer-wins).
func (r *CartRepo) Upsert(cart *entity.Cart) error {
	query := `
		INSERT INTO carts (user_id, items, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET items = EXCLUDED.items, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query, cart.UserID, cart.Items, cart.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert cart: %w", err)
	}
	return nil
}

// Delete elimina el carrito del usuario (al confirmar un pedido).
func (r *CartRepo) Delete(userID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM carts WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
