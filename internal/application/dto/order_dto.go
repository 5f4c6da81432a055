package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CartItem renglón del carrito tal como lo guarda/lee el cliente.
type CartItem struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	VariantID string `json:"variant_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CartResponse carrito del usuario.
type CartResponse struct {
	UserID    string          `json:"user_id"`
	Items     json.RawMessage `json:"items"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SaveCartRequest reemplazo completo del carrito.
type SaveCartRequest struct {
	Items []CartItem `json:"items" validate:"dive"`
}

// PlaceOrderRequest confirmación de pedido a una tienda.
// Si Items viene vacío se usa el carrito guardado del usuario.
type PlaceOrderRequest struct {
	StoreID string     `json:"store_id" validate:"required,uuid"`
	Items   []CartItem `json:"items" validate:"dive"`
}

// OrderItemResponse renglón del pedido.
type OrderItemResponse struct {
	ProductID   string          `json:"product_id"`
	VariantID   string          `json:"variant_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderResponse pedido con sus renglones.
type OrderResponse struct {
	ID        string              `json:"id"`
	Number    string              `json:"number"`
	UserID    string              `json:"user_id"`
	StoreID   string              `json:"store_id"`
	Status    string              `json:"status"`
	Total     decimal.Decimal     `json:"total"`
	Items     []OrderItemResponse `json:"items"`
	CreatedAt time.Time           `json:"created_at"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
