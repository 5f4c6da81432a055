package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo, etiquetado en el árbol de categorías a
// profundidad variable: MainCategoryID y SubCategoryID son obligatorios;
// SubSubCategoryID y SubSubSubCategoryID opcionales (vacío = sin etiqueta).
// La referencia poblada más profunda define la clasificación real del producto.
type Product struct {
	ID                  string
	Name                string
	DisplayName         string // nombre localizado
	Description         string
	MainCategoryID      string
	SubCategoryID       string
	SubSubCategoryID    string
	SubSubSubCategoryID string
	Images              []string // mínimo 4 imágenes
	Variants            []ProductVariant
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// MinProductImages mínimo de imágenes exigido al crear un producto.
const MinProductImages = 4

// ProductVariant presentación de un producto (ej. "500 g", "1 kg") con su precio.
type ProductVariant struct {
	ID              string
	ProductID       string
	Quantity        string // etiqueta de presentación
	Price           decimal.Decimal
	DiscountedPrice decimal.NullDecimal // opcional
	SortOrder       int
}

// EffectivePrice devuelve el precio con descuento si existe, si no el precio base.
func (v ProductVariant) EffectivePrice() decimal.Decimal {
	if v.DiscountedPrice.Valid && v.DiscountedPrice.Decimal.IsPositive() {
		return v.DiscountedPrice.Decimal
	}
	return v.Price
}

// DeepestCategoryID devuelve la referencia de categoría poblada más profunda.
func (p *Product) DeepestCategoryID() string {
	switch {
	case p.SubSubSubCategoryID != "":
		return p.SubSubSubCategoryID
	case p.SubSubCategoryID != "":
		return p.SubSubCategoryID
	default:
		return p.SubCategoryID
	}
}
