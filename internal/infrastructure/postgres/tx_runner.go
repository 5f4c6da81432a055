package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Mercado-api/internal/application/usecase"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.CheckoutTxRunner.
var _ usecase.CheckoutTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCheckout inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Se usa al confirmar un pedido: insertar pedido + renglones, descontar stock y vaciar el carrito.
func (r *TxRunner) RunCheckout(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	inventoryRepo repository.InventoryRepository,
	cartRepo repository.CartRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)
	inventoryRepo := NewInventoryRepository(tx)
	cartRepo := NewCartRepository(tx)

	if err := fn(orderRepo, inventoryRepo, cartRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
