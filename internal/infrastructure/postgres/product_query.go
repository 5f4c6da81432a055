package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Mercado-api/internal/domain/catalog"
)

// categoryColumnByLevel mapa nivel del árbol → columna de categoría en products.
var categoryColumnByLevel = map[int]string{
	1: "main_category_id",
	2: "sub_category_id",
	3: "sub_sub_category_id",
	4: "sub_sub_sub_category_id",
}

// buildCategoryClauses traduce el Match del resolver a cláusulas SQL OR por
// columna, numerando placeholders desde startArg. Un nivel con un solo id
// produce igualdad; con varios, = ANY. Los niveles salen en orden ascendente:
// el SQL generado es determinista.
func buildCategoryClauses(m *catalog.Match, startArg int) (clauses []string, args []any) {
	if m == nil {
		return nil, nil
	}
	n := startArg
	for _, lvl := range m.Levels() {
		ids := m.IDsByLevel[lvl]
		col := categoryColumnByLevel[lvl]
		if len(ids) == 1 {
			clauses = append(clauses, fmt.Sprintf("p.%s = $%d", col, n))
			args = append(args, ids[0])
		} else {
			clauses = append(clauses, fmt.Sprintf("p.%s = ANY($%d)", col, n))
			args = append(args, ids)
		}
		n++
	}
	return clauses, args
}

// buildCategoryWhere construye el WHERE completo del listado por categoría:
// is_active AND (cláusula1 OR cláusula2 OR ...).
func buildCategoryWhere(m *catalog.Match, startArg int) (string, []any) {
	clauses, args := buildCategoryClauses(m, startArg)
	if len(clauses) == 0 {
		// Match vacío: ningún producto puede cumplirlo.
		return "p.is_active AND FALSE", nil
	}
	return "p.is_active AND (" + strings.Join(clauses, " OR ") + ")", args
}

// buildSearchWhere construye el WHERE de búsqueda libre: término sobre
// nombre/descripción OR pertenencia a las categorías cuyo nombre coincidió.
// term llega normalizado (minúsculas, sin acentos); unaccent corre en la DB.
func buildSearchWhere(term string, m *catalog.Match, startArg int) (string, []any) {
	args := []any{term}
	clauses := []string{
		fmt.Sprintf("unaccent(lower(p.name)) LIKE '%%' || $%d || '%%'", startArg),
		fmt.Sprintf("unaccent(lower(p.display_name)) LIKE '%%' || $%d || '%%'", startArg),
		fmt.Sprintf("unaccent(lower(p.description)) LIKE '%%' || $%d || '%%'", startArg),
	}
	catClauses, catArgs := buildCategoryClauses(m, startArg+1)
	clauses = append(clauses, catClauses...)
	args = append(args, catArgs...)
	return "p.is_active AND (" + strings.Join(clauses, " OR ") + ")", args
}
