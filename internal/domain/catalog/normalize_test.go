package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Mercado-api/internal/domain/catalog"
)

func TestNormalizeTerm_MinusculasYDiacriticos(t *testing.T) {
	assert.Equal(t, "limon", catalog.NormalizeTerm("Limón"))
	assert.Equal(t, "platano maduro", catalog.NormalizeTerm("  Plátano Maduro "))
	assert.Equal(t, "name", catalog.NormalizeTerm("Ñame"))
}

func TestNormalizeTerm_TerminoYaNormalizado(t *testing.T) {
	assert.Equal(t, "arroz", catalog.NormalizeTerm("arroz"))
}

func TestNormalizeTerm_Vacio(t *testing.T) {
	assert.Equal(t, "", catalog.NormalizeTerm("   "))
}
