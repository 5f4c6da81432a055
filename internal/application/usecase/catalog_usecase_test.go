package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/catalog"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
)

// ─────────────────────────────────────────────
// Fakes en memoria
// ─────────────────────────────────────────────

type fakeCategoryRepo struct {
	byID map[string]*entity.Category
}

func (f *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return f.byID[id], nil
}

func (f *fakeCategoryRepo) GetByIDs(ids []string) ([]*entity.Category, error) {
	out := []*entity.Category{}
	for _, id := range ids {
		if c, ok := f.byID[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) ListRoots() ([]*entity.Category, error) {
	out := []*entity.Category{}
	for _, c := range f.byID {
		if c.Level == entity.LevelMain && c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) ListChildren(parentID string) ([]*entity.Category, error) {
	out := []*entity.Category{}
	for _, c := range f.byID {
		if c.ParentID == parentID && c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) ListChildIDs(parentIDs []string) ([]string, error) {
	parents := map[string]bool{}
	for _, id := range parentIDs {
		parents[id] = true
	}
	out := []string{}
	for _, c := range f.byID {
		if parents[c.ParentID] {
			out = append(out, c.ID)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) SearchByName(term string) ([]*entity.Category, error) {
	out := []*entity.Category{}
	for _, c := range f.byID {
		if catalog.NormalizeTerm(c.Name) == term || catalog.NormalizeTerm(c.DisplayName) == term {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) Create(category *entity.Category) error {
	f.byID[category.ID] = category
	return nil
}

type fakeProductRepo struct {
	products  []*entity.Product
	lastMatch *catalog.Match
	lastTerm  string
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) matches(p *entity.Product, m *catalog.Match) bool {
	fields := map[int]string{
		1: p.MainCategoryID,
		2: p.SubCategoryID,
		3: p.SubSubCategoryID,
		4: p.SubSubSubCategoryID,
	}
	for lvl, ids := range m.IDsByLevel {
		for _, id := range ids {
			if fields[lvl] == id {
				return true
			}
		}
	}
	return false
}

func (f *fakeProductRepo) ListByMatch(m *catalog.Match) ([]*entity.Product, error) {
	f.lastMatch = m
	out := []*entity.Product{}
	for _, p := range f.products {
		if p.IsActive && f.matches(p, m) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Search(term string, m *catalog.Match) ([]*entity.Product, error) {
	f.lastTerm = term
	f.lastMatch = m
	out := []*entity.Product{}
	for _, p := range f.products {
		if !p.IsActive {
			continue
		}
		if catalog.NormalizeTerm(p.Name) == term || f.matches(p, m) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Create(product *entity.Product) error {
	f.products = append(f.products, product)
	return nil
}

// ─────────────────────────────────────────────
// Fixture: abarrotes → frutas → cítricos → limones
// ─────────────────────────────────────────────

func newCatalogFixture() (*fakeCategoryRepo, *fakeProductRepo, *CatalogUseCase) {
	now := time.Now()
	cat := func(id, name, display string, level int, parent string) *entity.Category {
		return &entity.Category{
			ID: id, Name: name, DisplayName: display, Slug: id,
			Level: level, ParentID: parent, IsActive: true, CreatedAt: now,
		}
	}
	categories := &fakeCategoryRepo{byID: map[string]*entity.Category{
		"abarrotes": cat("abarrotes", "Groceries", "Abarrotes", 1, ""),
		"frutas":    cat("frutas", "Fruits", "Frutas", 2, "abarrotes"),
		"citricos":  cat("citricos", "Citrus", "Cítricos", 3, "frutas"),
		"limones":   cat("limones", "Lemons", "Limones", 4, "citricos"),
		"verduras":  cat("verduras", "Vegetables", "Verduras", 2, "abarrotes"),
	}}

	variant := entity.ProductVariant{
		ID:       "v1",
		Quantity: "500 g",
		Price:    decimal.NewFromInt(3500),
	}
	prod := func(id, name, main, sub, subsub, subsubsub string) *entity.Product {
		return &entity.Product{
			ID: id, Name: name,
			MainCategoryID: main, SubCategoryID: sub,
			SubSubCategoryID: subsub, SubSubSubCategoryID: subsubsub,
			Images:   []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg"},
			Variants: []entity.ProductVariant{variant},
			IsActive: true, CreatedAt: now,
		}
	}
	products := &fakeProductRepo{products: []*entity.Product{
		// Etiquetado a nivel 2: canasta genérica de frutas.
		prod("p-canasta", "Canasta de frutas", "abarrotes", "frutas", "", ""),
		// Etiquetado a nivel 4: el caso que un filtro ingenuo por subCategory omitiría.
		prod("p-limon", "Limón Tahití", "abarrotes", "frutas", "citricos", "limones"),
		// Otra rama: no debe aparecer bajo frutas.
		prod("p-zanahoria", "Zanahoria", "abarrotes", "verduras", "", ""),
	}}

	resolver := catalog.NewResolver(categories, entity.MaxCategoryDepth)
	return categories, products, NewCatalogUseCase(categories, products, resolver)
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestListMainCategories(t *testing.T) {
	_, _, uc := newCatalogFixture()

	items, err := uc.ListMainCategories()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "abarrotes", items[0].ID)
	assert.Equal(t, "Abarrotes", items[0].Name) // nombre localizado si existe
}

func TestListSubcategories(t *testing.T) {
	_, _, uc := newCatalogFixture()

	items, err := uc.ListSubcategories("abarrotes")
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, "abarrotes", it.ParentCategory)
		assert.Equal(t, 2, it.Level)
	}
}

func TestListSubcategorias_HojaDevuelveVacio(t *testing.T) {
	_, _, uc := newCatalogFixture()

	items, err := uc.ListSubcategories("limones")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListSubcategorias_PadreInexistente(t *testing.T) {
	_, _, uc := newCatalogFixture()

	_, err := uc.ListSubcategories("no-existe")
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestListProductsForCategory_IncluyeProfundidadVariable(t *testing.T) {
	_, _, uc := newCatalogFixture()

	// Bajo "frutas" (nivel 2) deben aparecer tanto el producto etiquetado a
	// nivel 2 como el etiquetado a nivel 4, y nada de otras ramas.
	items, err := uc.ListProductsForCategory("frutas")
	require.NoError(t, err)
	require.Len(t, items, 2)

	ids := []string{items[0].ID, items[1].ID}
	assert.Contains(t, ids, "p-canasta")
	assert.Contains(t, ids, "p-limon")
}

func TestListProductsForCategory_PueblaCadenaDeNombres(t *testing.T) {
	_, _, uc := newCatalogFixture()

	items, err := uc.ListProductsForCategory("limones")
	require.NoError(t, err)
	require.Len(t, items, 1)

	p := items[0]
	assert.Equal(t, "Abarrotes", p.MainCategory)
	assert.Equal(t, "Frutas", p.SubCategory)
	assert.Equal(t, "Cítricos", p.SubSubCategory)
	assert.Equal(t, "Limones", p.SubSubSubCategory)
}

func TestListProductsForCategory_CategoriaInexistente(t *testing.T) {
	_, _, uc := newCatalogFixture()

	_, err := uc.ListProductsForCategory("no-existe")
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestGetProduct(t *testing.T) {
	_, _, uc := newCatalogFixture()

	p, err := uc.GetProduct("p-limon")
	require.NoError(t, err)
	assert.Equal(t, "Limón Tahití", p.Name)
	assert.Equal(t, "Limones", p.SubSubSubCategory)
	require.Len(t, p.Variants, 1)
	assert.True(t, decimal.NewFromInt(3500).Equal(p.Variants[0].Price))
}

func TestGetProduct_Inexistente(t *testing.T) {
	_, _, uc := newCatalogFixture()

	_, err := uc.GetProduct("no-existe")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestSearch_NormalizaYBuscaPorCategoria(t *testing.T) {
	_, products, uc := newCatalogFixture()

	// "Cítricos" con acento y mayúscula: el término se normaliza y la categoría
	// coincidente aporta su cláusula, trayendo el producto etiquetado a nivel 3+.
	items, err := uc.Search("  Cítricos ")
	require.NoError(t, err)

	assert.Equal(t, "citricos", products.lastTerm)
	require.Len(t, items, 1)
	assert.Equal(t, "p-limon", items[0].ID)
}

func TestSearch_TerminoVacio(t *testing.T) {
	_, products, uc := newCatalogFixture()

	items, err := uc.Search("   ")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Empty(t, products.lastTerm) // no llega a consultar
}
