package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/application/usecase"
	"github.com/jhoicas/Mercado-api/internal/domain"
)

// CatalogHandler maneja las peticiones HTTP del catálogo (público).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListMain godoc
// @Summary      Listar categorías principales
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.MainCategoryResponse
// @Router       /api/categories/main [get]
func (h *CatalogHandler) ListMain(c *fiber.Ctx) error {
	out, err := h.uc.ListMainCategories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListSubcategories godoc
// @Summary      Listar subcategorías directas de una categoría
// @Tags         catalog
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría padre"
// @Success      200  {array}   dto.SubcategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/subcategories [get]
func (h *CatalogHandler) ListSubcategories(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.ListSubcategories(id)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListProducts godoc
// @Summary      Listar productos de una categoría (incluye descendientes)
// @Tags         catalog
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {array}   dto.CatalogProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.ListProductsForCategory(id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCategoryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
		case errors.Is(err, domain.ErrInvalidCategoryLevel):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_LEVEL", Message: "nivel de categoría inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetProduct godoc
// @Summary      Obtener detalle de un producto
// @Tags         catalog
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.CatalogProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetProduct(id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar productos por término
// @Description  Coincidencia por nombre/descripción o por pertenencia a una categoría cuyo nombre coincida. Ignora mayúsculas y acentos.
// @Tags         catalog
// @Produce      json
// @Param        q    query  string  true  "Término de búsqueda"
// @Success      200  {array}  dto.CatalogProductResponse
// @Router       /api/products/search [get]
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
