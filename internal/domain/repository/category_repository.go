package repository

import "github.com/jhoicas/Mercado-api/internal/domain/entity"

// CategoryRepository define el puerto de lectura del Category Store.
// Este subsistema nunca crea ni muta categorías: eso lo hace el seeder/admin.
type CategoryRepository interface {
	GetByID(id string) (*entity.Category, error)
	GetByIDs(ids []string) ([]*entity.Category, error)
	// ListRoots devuelve las categorías activas de nivel 1 ordenadas por (sort_order, name).
	ListRoots() ([]*entity.Category, error)
	// ListChildren devuelve los hijos directos activos de parentID ordenados por
	// (sort_order, name). Lista vacía si no hay hijos o el id no existe.
	ListChildren(parentID string) ([]*entity.Category, error)
	// ListChildIDs devuelve los ids de los hijos directos de cualquiera de los
	// padres dados, incluyendo inactivos (una desactivada sigue clasificando productos).
	ListChildIDs(parentIDs []string) ([]string, error)
	// SearchByName busca por nombre o nombre localizado, sin distinguir
	// mayúsculas ni acentos. El término llega ya normalizado.
	SearchByName(term string) ([]*entity.Category, error)
	Create(category *entity.Category) error // solo seeder/admin
}
