package repository

import "github.com/jhoicas/Mercado-api/internal/domain/entity"

// CartRepository define el puerto de persistencia para el carrito (un doc por usuario).
type CartRepository interface {
	GetByUser(userID string) (*entity.Cart, error)
	// Upsert reemplaza el carrito completo del usuario (last-writer-wins).
	Upsert(cart *entity.Cart) error
	Delete(userID string) error
}
