package repository

import "github.com/jhoicas/Mercado-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order (pedido + renglones).
type OrderRepository interface {
	// Create inserta el pedido y sus renglones. Dentro de una transacción si
	// el repo está atado a una tx (ver postgres.TxRunner).
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Order, error)
	ListByStore(storeID string, limit, offset int) ([]*entity.Order, error)
	// NextNumber devuelve el siguiente consecutivo legible (PED-000123).
	NextNumber() (string, error)
}
