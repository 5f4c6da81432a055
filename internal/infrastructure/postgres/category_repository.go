package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `id, name, display_name, slug, image_url, level, parent_id, is_active, sort_order, created_at, updated_at`

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	c, err := scanCategory(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// GetByIDs obtiene varias categorías por ID (para poblar cadenas de nombres).
func (r *CategoryRepo) GetByIDs(ids []string) ([]*entity.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("get categories by ids: %w", err)
	}
	defer rows.Close()
	return scanCategories(rows)
}

// ListRoots lista las categorías activas de nivel 1 ordenadas por (sort_order, name).
func (r *CategoryRepo) ListRoots() ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + `
		FROM categories WHERE level = $1 AND is_active ORDER BY sort_order, name`
	rows, err := r.q.Query(context.Background(), query, entity.LevelMain)
	if err != nil {
		return nil, fmt.Errorf("list root categories: %w", err)
	}
	defer rows.Close()
	return scanCategories(rows)
}

// ListChildren lista los hijos directos activos de parentID ordenados por (sort_order, name).
// Lista vacía si no hay hijos o el id no existe.
func (r *CategoryRepo) ListChildren(parentID string) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + `
		FROM categories WHERE parent_id = $1 AND is_active ORDER BY sort_order, name`
	rows, err := r.q.Query(context.Background(), query, parentID)
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	defer rows.Close()
	return scanCategories(rows)
}

// ListChildIDs devuelve los ids de los hijos directos de cualquiera de los padres
// dados, incluyendo inactivos: una categoría desactivada sigue clasificando productos.
func (r *CategoryRepo) ListChildIDs(parentIDs []string) ([]string, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	query := `SELECT id FROM categories WHERE parent_id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, parentIDs)
	if err != nil {
		return nil, fmt.Errorf("list child ids: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan child id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// SearchByName busca categorías activas por nombre o nombre localizado, sin
// distinguir mayúsculas ni acentos (el término llega normalizado; unaccent en DB).
func (r *CategoryRepo) SearchByName(term string) ([]*entity.Category, error) {
	if term == "" {
		return nil, nil
	}
	query := `SELECT ` + categoryColumns + `
		FROM categories
		WHERE is_active
		  AND (unaccent(lower(name)) LIKE '%' || $1 || '%'
		   OR  unaccent(lower(display_name)) LIKE '%' || $1 || '%')`
	rows, err := r.q.Query(context.Background(), query, term)
	if err != nil {
		return nil, fmt.Errorf("search categories: %w", err)
	}
	defer rows.Close()
	return scanCategories(rows)
}

// Create persiste una categoría (solo seeder/admin). Valida la integridad
// padre-hijo: el padre debe existir y ser exactamente del nivel anterior.
func (r *CategoryRepo) Create(category *entity.Category) error {
	if category.Level < entity.LevelMain || category.Level > entity.MaxCategoryDepth {
		return domain.ErrInvalidCategoryLevel
	}
	if category.Level == entity.LevelMain {
		if category.ParentID != "" {
			return domain.ErrInvalidCategoryLevel
		}
	} else {
		parent, err := r.GetByID(category.ParentID)
		if err != nil {
			return err
		}
		if parent == nil {
			return domain.ErrCategoryNotFound
		}
		if parent.Level != category.Level-1 {
			return domain.ErrInvalidCategoryLevel
		}
	}
	query := `
		INSERT INTO categories (id, name, display_name, slug, image_url, level, parent_id, is_active, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.DisplayName, category.Slug, category.ImageURL,
		category.Level, category.ParentID, category.IsActive, category.SortOrder,
		category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.Name, &c.DisplayName, &c.Slug, &c.ImageURL,
		&c.Level, &c.ParentID, &c.IsActive, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCategories(rows pgx.Rows) ([]*entity.Category, error) {
	var list []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
