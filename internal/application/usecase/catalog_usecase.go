package usecase

import (
	"strings"

	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/catalog"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

// CatalogUseCase casos de uso de navegación del catálogo: árbol de categorías,
// listados de productos por categoría (vía resolver) y búsqueda.
type CatalogUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	resolver   *catalog.Resolver
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(categories repository.CategoryRepository, products repository.ProductRepository, resolver *catalog.Resolver) *CatalogUseCase {
	return &CatalogUseCase{categories: categories, products: products, resolver: resolver}
}

// ListMainCategories lista las categorías raíz activas del storefront.
func (uc *CatalogUseCase) ListMainCategories() ([]dto.MainCategoryResponse, error) {
	roots, err := uc.categories.ListRoots()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MainCategoryResponse, 0, len(roots))
	for _, c := range roots {
		items = append(items, dto.MainCategoryResponse{
			ID:        c.ID,
			Name:      displayName(c),
			Slug:      c.Slug,
			ImageURL:  c.ImageURL,
			CreatedAt: c.CreatedAt,
		})
	}
	return items, nil
}

// ListSubcategories lista los hijos directos activos de una categoría.
// Devuelve ErrCategoryNotFound si el padre no existe; una categoría hoja
// válida produce lista vacía, no error.
func (uc *CatalogUseCase) ListSubcategories(parentID string) ([]dto.SubcategoryResponse, error) {
	parent, err := uc.categories.GetByID(parentID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.ErrCategoryNotFound
	}
	children, err := uc.categories.ListChildren(parentID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubcategoryResponse, 0, len(children))
	for _, c := range children {
		items = append(items, dto.SubcategoryResponse{
			ID:             c.ID,
			Name:           displayName(c),
			Slug:           c.Slug,
			ImageURL:       c.ImageURL,
			ParentCategory: c.ParentID,
			Level:          c.Level,
			CreatedAt:      c.CreatedAt,
		})
	}
	return items, nil
}

// ListProductsForCategory resuelve la categoría a sus cláusulas de match y
// lista todos los productos clasificados bajo ella, a cualquier profundidad.
func (uc *CatalogUseCase) ListProductsForCategory(categoryID string) ([]dto.CatalogProductResponse, error) {
	match, err := uc.resolver.Resolve(categoryID)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.ListByMatch(match)
	if err != nil {
		return nil, err
	}
	return uc.toCatalogProducts(products)
}

// GetProduct obtiene el detalle de un producto con su cadena de categorías poblada.
func (uc *CatalogUseCase) GetProduct(id string) (*dto.CatalogProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	items, err := uc.toCatalogProducts([]*entity.Product{product})
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

// Search busca productos por término: coincidencia en nombre/descripción o
// pertenencia a cualquier categoría cuyo nombre coincida con el término.
// La comparación ignora mayúsculas y acentos.
func (uc *CatalogUseCase) Search(term string) ([]dto.CatalogProductResponse, error) {
	normalized := catalog.NormalizeTerm(term)
	if normalized == "" {
		return []dto.CatalogProductResponse{}, nil
	}

	// Las categorías cuyo nombre coincide aportan cláusulas de match por nivel.
	matched, err := uc.categories.SearchByName(normalized)
	if err != nil {
		return nil, err
	}
	match := &catalog.Match{IDsByLevel: map[int][]string{}}
	for _, c := range matched {
		match.IDsByLevel[c.Level] = append(match.IDsByLevel[c.Level], c.ID)
	}

	products, err := uc.products.Search(normalized, match)
	if err != nil {
		return nil, err
	}
	return uc.toCatalogProducts(products)
}

// toCatalogProducts mapea productos a respuestas, resolviendo en lote los
// nombres de toda la cadena de categorías referenciada.
func (uc *CatalogUseCase) toCatalogProducts(products []*entity.Product) ([]dto.CatalogProductResponse, error) {
	names, err := uc.categoryNames(products)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogProductResponse, 0, len(products))
	for _, p := range products {
		variants := make([]dto.VariantResponse, 0, len(p.Variants))
		for _, v := range p.Variants {
			vr := dto.VariantResponse{
				ID:       v.ID,
				Quantity: v.Quantity,
				Price:    v.Price,
			}
			if v.DiscountedPrice.Valid {
				d := v.DiscountedPrice.Decimal
				vr.DiscountedPrice = &d
			}
			variants = append(variants, vr)
		}
		images := p.Images
		if images == nil {
			images = []string{}
		}
		items = append(items, dto.CatalogProductResponse{
			ID:                p.ID,
			Name:              p.Name,
			DisplayName:       p.DisplayName,
			Description:       p.Description,
			MainCategory:      names[p.MainCategoryID],
			SubCategory:       names[p.SubCategoryID],
			SubSubCategory:    names[p.SubSubCategoryID],
			SubSubSubCategory: names[p.SubSubSubCategoryID],
			Images:            images,
			Variants:          variants,
			CreatedAt:         p.CreatedAt,
		})
	}
	return items, nil
}

// categoryNames resuelve id → nombre para todas las categorías referenciadas
// por los productos, en una sola consulta.
func (uc *CatalogUseCase) categoryNames(products []*entity.Product) (map[string]string, error) {
	seen := map[string]bool{}
	ids := make([]string, 0, len(products)*2)
	for _, p := range products {
		for _, id := range []string{p.MainCategoryID, p.SubCategoryID, p.SubSubCategoryID, p.SubSubSubCategoryID} {
			if id != "" && !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	cats, err := uc.categories.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	for _, c := range cats {
		names[c.ID] = displayName(c)
	}
	return names, nil
}

func displayName(c *entity.Category) string {
	if name := strings.TrimSpace(c.DisplayName); name != "" {
		return name
	}
	return c.Name
}
