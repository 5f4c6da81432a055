// Package catalog contiene la lógica pura del árbol de categorías:
// la resolución de una categoría a las cláusulas de filtro de productos
// que cubren la categoría y todos sus descendientes etiquetables.
//
// Los productos se etiquetan a profundidad variable (un producto puede estar
// en nivel 2 aunque existan hijos de nivel 3/4 bajo esa categoría), así que
// filtrar solo por subCategory = id omitiría todo producto clasificado a un
// nivel más profundo.
package catalog

import (
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
)

// CategoryReader operaciones de lectura que el resolver necesita del Category Store.
type CategoryReader interface {
	GetByID(id string) (*entity.Category, error)
	// ListChildIDs devuelve los ids de los hijos directos de cualquiera de los
	// padres dados (una sola consulta por nivel). Incluye categorías inactivas:
	// una categoría desactivada sigue clasificando sus productos.
	ListChildIDs(parentIDs []string) ([]string, error)
}

// Match cláusulas de coincidencia por nivel. IDsByLevel[N] son los ids que el
// filtro de productos compara contra el campo de categoría del nivel N:
// 1 → mainCategory, 2 → subCategory, 3 → subSubCategory, 4 → subSubSubCategory.
// Las cláusulas se combinan con OR.
type Match struct {
	IDsByLevel map[int][]string
}

// Levels devuelve los niveles con cláusulas, en orden ascendente.
func (m *Match) Levels() []int {
	levels := make([]int, 0, entity.MaxCategoryDepth)
	for lvl := entity.LevelMain; lvl <= entity.MaxCategoryDepth; lvl++ {
		if len(m.IDsByLevel[lvl]) > 0 {
			levels = append(levels, lvl)
		}
	}
	return levels
}

// Empty indica si el match no tiene ninguna cláusula.
func (m *Match) Empty() bool {
	return len(m.Levels()) == 0
}

// Resolver expande una categoría al conjunto completo de ids con los que un
// producto podría estar etiquetado directamente bajo ella.
type Resolver struct {
	categories CategoryReader
	maxDepth   int
}

// NewResolver construye el resolver. maxDepth fuera de rango cae al máximo del árbol.
func NewResolver(categories CategoryReader, maxDepth int) *Resolver {
	if maxDepth < entity.LevelMain || maxDepth > entity.MaxCategoryDepth {
		maxDepth = entity.MaxCategoryDepth
	}
	return &Resolver{categories: categories, maxDepth: maxDepth}
}

// Resolve determina el nivel de la categoría y construye sus cláusulas de match:
//
//   - nivel 1: mainCategory = id (todo producto tiene mainCategory poblado,
//     no hay nada que expandir);
//   - nivel 2: subCategory = id OR subSubCategory ∈ hijos(3) OR subSubSubCategory ∈ nietos(4);
//   - nivel 3: subSubCategory = id OR subSubSubCategory ∈ hijos(4);
//   - nivel 4: subSubSubCategory = id.
//
// La expansión es breadth-first con una consulta por nivel (profundidad acotada
// por maxDepth), en un único bucle genérico en lugar de una rama por nivel.
func (r *Resolver) Resolve(categoryID string) (*Match, error) {
	cat, err := r.categories.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrCategoryNotFound
	}
	if cat.Level < entity.LevelMain || cat.Level > r.maxDepth {
		return nil, domain.ErrInvalidCategoryLevel
	}

	m := &Match{IDsByLevel: map[int][]string{cat.Level: {cat.ID}}}
	if cat.Level == entity.LevelMain {
		return m, nil
	}

	frontier := []string{cat.ID}
	for lvl := cat.Level + 1; lvl <= r.maxDepth; lvl++ {
		children, err := r.categories.ListChildIDs(frontier)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			break
		}
		m.IDsByLevel[lvl] = children
		frontier = children
	}
	return m, nil
}
