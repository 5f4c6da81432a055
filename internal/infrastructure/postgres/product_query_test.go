package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Mercado-api/internal/domain/catalog"
)

// El Match de un nivel 2 con hijos y nietos debe producir OR sobre las tres
// columnas: igualdad en sub, ANY en los conjuntos expandidos.
func TestBuildCategoryWhere_Nivel2Expandido(t *testing.T) {
	m := &catalog.Match{IDsByLevel: map[int][]string{
		2: {"frutas"},
		3: {"citricos", "tropicales"},
		4: {"limones"},
	}}

	where, args := buildCategoryWhere(m, 1)

	assert.Equal(t,
		"p.is_active AND (p.sub_category_id = $1 OR p.sub_sub_category_id = ANY($2) OR p.sub_sub_sub_category_id = $3)",
		where)
	assert.Equal(t, []any{"frutas", []string{"citricos", "tropicales"}, "limones"}, args)
}

// Nivel 1: una sola cláusula de igualdad sobre main_category_id.
func TestBuildCategoryWhere_Nivel1(t *testing.T) {
	m := &catalog.Match{IDsByLevel: map[int][]string{1: {"abarrotes"}}}

	where, args := buildCategoryWhere(m, 1)

	assert.Equal(t, "p.is_active AND (p.main_category_id = $1)", where)
	assert.Equal(t, []any{"abarrotes"}, args)
}

// Match vacío: el filtro no puede cumplirse (FALSE), nunca un WHERE abierto.
func TestBuildCategoryWhere_MatchVacio(t *testing.T) {
	where, args := buildCategoryWhere(&catalog.Match{IDsByLevel: map[int][]string{}}, 1)

	assert.Equal(t, "p.is_active AND FALSE", where)
	assert.Nil(t, args)
}

// Los placeholders deben numerarse desde startArg (para componer con otros filtros).
func TestBuildCategoryClauses_RespetaStartArg(t *testing.T) {
	m := &catalog.Match{IDsByLevel: map[int][]string{4: {"limones"}}}

	clauses, args := buildCategoryClauses(m, 5)

	assert.Equal(t, []string{"p.sub_sub_sub_category_id = $5"}, clauses)
	assert.Equal(t, []any{"limones"}, args)
}

// La búsqueda combina término sobre nombre/descripción con las categorías coincidentes.
func TestBuildSearchWhere_TerminoYCategorias(t *testing.T) {
	m := &catalog.Match{IDsByLevel: map[int][]string{
		1: {"abarrotes"},
		2: {"frutas", "verduras"},
	}}

	where, args := buildSearchWhere("limon", m, 1)

	assert.Contains(t, where, "unaccent(lower(p.name)) LIKE '%' || $1 || '%'")
	assert.Contains(t, where, "p.main_category_id = $2")
	assert.Contains(t, where, "p.sub_category_id = ANY($3)")
	assert.Equal(t, []any{"limon", "abarrotes", []string{"frutas", "verduras"}}, args)
}

// Sin categorías coincidentes la búsqueda queda solo sobre nombre/descripción.
func TestBuildSearchWhere_SinCategorias(t *testing.T) {
	where, args := buildSearchWhere("arroz", nil, 1)

	assert.Equal(t,
		"p.is_active AND (unaccent(lower(p.name)) LIKE '%' || $1 || '%' OR unaccent(lower(p.display_name)) LIKE '%' || $1 || '%' OR unaccent(lower(p.description)) LIKE '%' || $1 || '%')",
		where)
	assert.Equal(t, []any{"arroz"}, args)
}
