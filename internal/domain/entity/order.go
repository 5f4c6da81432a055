package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	OrderStatusPlaced    = "placed"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order pedido de un cliente a una tienda. El total se calcula en el servidor
// a partir de los precios vigentes de las variantes, nunca del cliente.
type Order struct {
	ID        string
	Number    string // consecutivo legible (ej. PED-000123)
	UserID    string
	StoreID   string
	Status    string
	Total     decimal.Decimal
	Items     []OrderItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem renglón del pedido. Congela nombre y precio unitario al momento
// de la compra para que cambios posteriores del catálogo no alteren el histórico.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	VariantID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}
