// seed puebla el catálogo con un árbol de categorías de ejemplo y unos
// productos de demostración. Pensado para entornos de desarrollo.
//
// Uso: go run ./cmd/seed
// No hace nada si ya existen categorías raíz (idempotente a nivel de corrida).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Mercado-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	categories := postgres.NewCategoryRepository(pool)
	products := postgres.NewProductRepository(pool)

	roots, err := categories.ListRoots()
	if err != nil {
		fmt.Fprintf(os.Stderr, "listar raíces: %v\n", err)
		os.Exit(1)
	}
	if len(roots) > 0 {
		fmt.Println("ya hay categorías, nada que sembrar")
		return
	}

	now := time.Now()
	newCat := func(name, display, slug string, level int, parentID string, sort int) *entity.Category {
		return &entity.Category{
			ID:          uuid.New().String(),
			Name:        name,
			DisplayName: display,
			Slug:        slug,
			Level:       level,
			ParentID:    parentID,
			IsActive:    true,
			SortOrder:   sort,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	// Árbol de 4 niveles: abarrotes → frutas → cítricos → limones.
	groceries := newCat("Groceries", "Abarrotes", "abarrotes", entity.LevelMain, "", 1)
	fruits := newCat("Fruits", "Frutas", "frutas", entity.LevelSub, groceries.ID, 1)
	vegetables := newCat("Vegetables", "Verduras", "verduras", entity.LevelSub, groceries.ID, 2)
	citrus := newCat("Citrus", "Cítricos", "citricos", entity.LevelSubSub, fruits.ID, 1)
	tropical := newCat("Tropical", "Tropicales", "tropicales", entity.LevelSubSub, fruits.ID, 2)
	lemons := newCat("Lemons", "Limones", "limones", entity.LevelSubSubSub, citrus.ID, 1)
	oranges := newCat("Oranges", "Naranjas", "naranjas", entity.LevelSubSubSub, citrus.ID, 2)

	dairy := newCat("Dairy", "Lácteos", "lacteos", entity.LevelMain, "", 2)
	milk := newCat("Milk", "Leche", "leche", entity.LevelSub, dairy.ID, 1)

	for _, c := range []*entity.Category{groceries, fruits, vegetables, citrus, tropical, lemons, oranges, dairy, milk} {
		if err := categories.Create(c); err != nil {
			fmt.Fprintf(os.Stderr, "crear categoría %s: %v\n", c.Slug, err)
			os.Exit(1)
		}
	}

	images := func(slug string) []string {
		out := make([]string, 0, 4)
		for i := 1; i <= 4; i++ {
			out = append(out, fmt.Sprintf("https://cdn.example.com/products/%s-%d.jpg", slug, i))
		}
		return out
	}
	variant := func(quantity string, price int64, discounted int64) entity.ProductVariant {
		v := entity.ProductVariant{
			ID:       uuid.New().String(),
			Quantity: quantity,
			Price:    decimal.NewFromInt(price),
		}
		if discounted > 0 {
			v.DiscountedPrice = decimal.NullDecimal{Valid: true, Decimal: decimal.NewFromInt(discounted)}
		}
		return v
	}

	demo := []*entity.Product{
		{
			// Etiquetado al nivel más profundo (4).
			ID: uuid.New().String(), Name: "Limón Tahití", DisplayName: "Limón Tahití",
			Description:    "Limón verde jugoso, ideal para jugos y cocina.",
			MainCategoryID: groceries.ID, SubCategoryID: fruits.ID,
			SubSubCategoryID: citrus.ID, SubSubSubCategoryID: lemons.ID,
			Images: images("limon-tahiti"),
			Variants: []entity.ProductVariant{
				variant("500 g", 3500, 0),
				variant("1 kg", 6500, 5900),
			},
			IsActive: true, CreatedAt: now, UpdatedAt: now,
		},
		{
			// Etiquetado a nivel 3: sin hoja de nivel 4.
			ID: uuid.New().String(), Name: "Mandarina Oneco", DisplayName: "Mandarina",
			Description:    "Mandarina dulce de cosecha nacional.",
			MainCategoryID: groceries.ID, SubCategoryID: fruits.ID,
			SubSubCategoryID: citrus.ID,
			Images:           images("mandarina"),
			Variants:         []entity.ProductVariant{variant("1 kg", 5200, 0)},
			IsActive:         true, CreatedAt: now, UpdatedAt: now,
		},
		{
			// Etiquetado a nivel 2: clasificación poco profunda.
			ID: uuid.New().String(), Name: "Canasta de frutas", DisplayName: "Canasta de frutas",
			Description:    "Surtido de frutas de temporada.",
			MainCategoryID: groceries.ID, SubCategoryID: fruits.ID,
			Images:   images("canasta-frutas"),
			Variants: []entity.ProductVariant{variant("Canasta", 28000, 0)},
			IsActive: true, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.New().String(), Name: "Zanahoria", DisplayName: "Zanahoria",
			Description:    "Zanahoria fresca.",
			MainCategoryID: groceries.ID, SubCategoryID: vegetables.ID,
			Images:   images("zanahoria"),
			Variants: []entity.ProductVariant{variant("500 g", 2100, 0)},
			IsActive: true, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.New().String(), Name: "Leche entera", DisplayName: "Leche entera",
			Description:    "Leche entera pasteurizada.",
			MainCategoryID: dairy.ID, SubCategoryID: milk.ID,
			Images:   images("leche-entera"),
			Variants: []entity.ProductVariant{variant("1 L", 4800, 0), variant("6 x 1 L", 27500, 26000)},
			IsActive: true, CreatedAt: now, UpdatedAt: now,
		},
	}

	for _, p := range demo {
		if err := products.Create(p); err != nil {
			fmt.Fprintf(os.Stderr, "crear producto %s: %v\n", p.Name, err)
			os.Exit(1)
		}
	}

	fmt.Printf("sembradas %d categorías y %d productos\n", 9, len(demo))
}
