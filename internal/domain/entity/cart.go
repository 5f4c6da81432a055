package entity

import (
	"encoding/json"
	"time"
)

// Cart carrito de compras de un usuario. Items se guarda como JSON opaco
// (product_id, variant_id, quantity) y se reemplaza completo en cada upsert
// (last-writer-wins), igual que las demás mutaciones simples de la plataforma.
type Cart struct {
	UserID    string
	Items     json.RawMessage
	UpdatedAt time.Time
}
