package entity

import "time"

// Niveles del árbol de categorías. Un producto siempre lleva main y sub;
// los niveles 3 y 4 son opcionales (clasificación a profundidad variable).
const (
	LevelMain      = 1
	LevelSub       = 2
	LevelSubSub    = 3
	LevelSubSubSub = 4

	// MaxCategoryDepth profundidad máxima del árbol.
	MaxCategoryDepth = 4
)

// Category nodo del árbol de categorías.
// Invariante: el padre de una categoría de nivel N es de nivel N-1; nivel 1 no tiene padre.
// Las categorías nunca se borran mientras existan productos que las referencien:
// se desactivan con IsActive.
type Category struct {
	ID          string
	Name        string
	DisplayName string // nombre localizado para el storefront (puede estar vacío)
	Slug        string
	ImageURL    string
	Level       int    // 1..4
	ParentID    string // vacío solo en nivel 1
	IsActive    bool
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
