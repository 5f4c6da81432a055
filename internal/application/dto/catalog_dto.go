package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MainCategoryResponse categoría de nivel 1 para el storefront.
type MainCategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// SubcategoryResponse categoría de nivel 2+ con su padre y nivel.
type SubcategoryResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	ImageURL       string    `json:"image_url"`
	ParentCategory string    `json:"parent_category"`
	Level          int       `json:"level"`
	CreatedAt      time.Time `json:"created_at"`
}

// VariantResponse presentación de un producto con su precio.
type VariantResponse struct {
	ID              string           `json:"id"`
	Quantity        string           `json:"quantity"`
	Price           decimal.Decimal  `json:"price"`
	DiscountedPrice *decimal.Decimal `json:"discounted_price,omitempty"`
}

// CatalogProductResponse producto mapeado para el storefront, con la cadena
// de nombres de categorías poblada.
type CatalogProductResponse struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	DisplayName       string            `json:"display_name,omitempty"`
	Description       string            `json:"description,omitempty"`
	MainCategory      string            `json:"main_category"`
	SubCategory       string            `json:"sub_category"`
	SubSubCategory    string            `json:"sub_sub_category,omitempty"`
	SubSubSubCategory string            `json:"sub_sub_sub_category,omitempty"`
	Images            []string          `json:"images"`
	Variants          []VariantResponse `json:"variants"`
	CreatedAt         time.Time         `json:"created_at"`
}
