package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/catalog"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `p.id, p.name, p.display_name, p.description,
	p.main_category_id, p.sub_category_id, p.sub_sub_category_id, p.sub_sub_sub_category_id,
	p.images, p.is_active, p.created_at, p.updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetByID obtiene un producto por ID con sus variantes.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p WHERE p.id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if err := r.attachVariants([]*entity.Product{p}); err != nil {
		return nil, err
	}
	return p, nil
}

// ListByMatch lista los productos activos que cumplen alguna cláusula del match
// (OR entre niveles), ordenados por nombre, con variantes pobladas.
func (r *ProductRepo) ListByMatch(m *catalog.Match) ([]*entity.Product, error) {
	where, args := buildCategoryWhere(m, 1)
	query := `SELECT ` + productColumns + ` FROM products p WHERE ` + where + ` ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products by match: %w", err)
	}
	defer rows.Close()
	list, err := scanProducts(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachVariants(list); err != nil {
		return nil, err
	}
	return list, nil
}

// Search busca productos activos por término (nombre/descripción) o por
// pertenencia a las categorías del match. term llega normalizado.
func (r *ProductRepo) Search(term string, m *catalog.Match) ([]*entity.Product, error) {
	where, args := buildSearchWhere(term, m, 1)
	query := `SELECT ` + productColumns + ` FROM products p WHERE ` + where + ` ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	list, err := scanProducts(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachVariants(list); err != nil {
		return nil, err
	}
	return list, nil
}

// Create persiste un producto con sus variantes (solo seeder/admin).
// Exige las categorías obligatorias, el mínimo de imágenes y al menos una variante.
func (r *ProductRepo) Create(product *entity.Product) error {
	if product.MainCategoryID == "" || product.SubCategoryID == "" {
		return domain.ErrInvalidInput
	}
	if len(product.Images) < entity.MinProductImages {
		return domain.ErrInvalidInput
	}
	if len(product.Variants) == 0 {
		return domain.ErrInvalidInput
	}
	for _, v := range product.Variants {
		if v.Price.IsNegative() {
			return domain.ErrInvalidInput
		}
	}
	query := `
		INSERT INTO products (id, name, display_name, description,
			main_category_id, sub_category_id, sub_sub_category_id, sub_sub_sub_category_id,
			images, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.DisplayName, product.Description,
		product.MainCategoryID, product.SubCategoryID, product.SubSubCategoryID, product.SubSubSubCategoryID,
		product.Images, product.IsActive, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	for _, v := range product.Variants {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO product_variants (id, product_id, quantity_label, price, discounted_price, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			v.ID, product.ID, v.Quantity, v.Price, v.DiscountedPrice, v.SortOrder,
		)
		if err != nil {
			return fmt.Errorf("insert variant: %w", err)
		}
	}
	return nil
}

// attachVariants carga las variantes de todos los productos en una sola consulta.
func (r *ProductRepo) attachVariants(products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	byID := make(map[string]*entity.Product, len(products))
	ids := make([]string, 0, len(products))
	for _, p := range products {
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}
	rows, err := r.q.Query(context.Background(), `
		SELECT id, product_id, quantity_label, price, discounted_price, sort_order
		FROM product_variants WHERE product_id = ANY($1) ORDER BY product_id, sort_order`, ids)
	if err != nil {
		return fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var v entity.ProductVariant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Quantity, &v.Price, &v.DiscountedPrice, &v.SortOrder); err != nil {
			return fmt.Errorf("scan variant: %w", err)
		}
		if p, ok := byID[v.ProductID]; ok {
			p.Variants = append(p.Variants, v)
		}
	}
	return rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.DisplayName, &p.Description,
		&p.MainCategoryID, &p.SubCategoryID, &p.SubSubCategoryID, &p.SubSubSubCategoryID,
		&p.Images, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
