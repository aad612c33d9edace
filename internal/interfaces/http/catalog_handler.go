package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/jhoicas/conversor-api/internal/application/dto"
	"github.com/jhoicas/conversor-api/internal/application/usecase"
)

// CatalogHandler maneja las consultas del catálogo de unidades.
type CatalogHandler struct {
	uc *usecase.ConversionUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.ConversionUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListCategories godoc
// @Summary      Listar categorías
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListCategories())
}

// ListUnits godoc
// @Summary      Listar unidades de una categoría
// @Description  Incluye la selección por defecto (primera y segunda unidad).
// @Tags         catalog
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.UnitListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/units [get]
func (h *CatalogHandler) ListUnits(c *fiber.Ctx) error {
	id := utils.CopyString(c.Params("id"))
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.ListUnits(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar catálogo completo
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CatalogExport
// @Router       /api/catalog [get]
func (h *CatalogHandler) Export(c *fiber.Ctx) error {
	out, err := h.uc.ExportCatalog()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
