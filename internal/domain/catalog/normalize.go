package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeTerm prepara un término de búsqueda: minúsculas, sin diacríticos
// (NFD + eliminación de marcas) y sin espacios sobrantes. Así "Limón" y
// "limon" producen el mismo término para el ILIKE del repositorio.
func NormalizeTerm(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
