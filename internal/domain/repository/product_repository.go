package repository

import (
	"github.com/jhoicas/Mercado-api/internal/domain/catalog"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
// Las consultas de catálogo reciben el Match del resolver ya expandido.
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
	// ListByMatch devuelve los productos activos que cumplen alguna cláusula
	// del match (OR entre niveles), con sus variantes pobladas.
	ListByMatch(m *catalog.Match) ([]*entity.Product, error)
	// Search busca productos activos por término (nombre/descripción) o por
	// pertenencia a las categorías del match. term llega normalizado.
	Search(term string, m *catalog.Match) ([]*entity.Product, error)
	Create(product *entity.Product) error // solo seeder/admin
}
