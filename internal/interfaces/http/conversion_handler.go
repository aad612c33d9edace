package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/jhoicas/conversor-api/internal/application/dto"
	"github.com/jhoicas/conversor-api/internal/application/usecase"
)

// ConversionHandler maneja las peticiones de conversión e intercambio de unidades.
type ConversionHandler struct {
	uc *usecase.ConversionUseCase
}

// NewConversionHandler construye el handler.
func NewConversionHandler(uc *usecase.ConversionUseCase) *ConversionHandler {
	return &ConversionHandler{uc: uc}
}

// Convert godoc
// @Summary      Convertir un valor
// @Description  value es texto libre; vacío o no numérico devuelve 0. result es null si el resultado no es finito.
// @Tags         conversion
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConvertRequest  true  "category, from, to, value"
// @Success      200   {object}  dto.ConvertResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/convert [post]
func (h *ConversionHandler) Convert(c *fiber.Ctx) error {
	var in dto.ConvertRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.convert(c, in)
}

// ConvertQuery godoc
// @Summary      Convertir un valor (query string)
// @Tags         conversion
// @Produce      json
// @Param        category  query  string  true   "ID de la categoría"
// @Param        from      query  string  true   "Unidad origen"
// @Param        to        query  string  true   "Unidad destino"
// @Param        value     query  string  false  "Valor a convertir"
// @Success      200  {object}  dto.ConvertResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/convert [get]
func (h *ConversionHandler) ConvertQuery(c *fiber.Ctx) error {
	var in dto.ConvertRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	// QueryParser devuelve strings sobre el buffer de la petición; los ids terminan en etiquetas de métricas.
	in.Category = utils.CopyString(in.Category)
	in.From = utils.CopyString(in.From)
	in.To = utils.CopyString(in.To)
	in.Value = utils.CopyString(in.Value)
	return h.convert(c, in)
}

func (h *ConversionHandler) convert(c *fiber.Ctx, in dto.ConvertRequest) error {
	if in.Category == "" || in.From == "" || in.To == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "category, from y to son requeridos"})
	}
	out, err := h.uc.Convert(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Swap godoc
// @Summary      Intercambiar unidades
// @Description  Devuelve el par intercambiado; si se envía category, incluye la conversión con el nuevo par.
// @Tags         conversion
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SwapRequest  true  "from, to y opcionalmente category y value"
// @Success      200   {object}  dto.SwapResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/swap [post]
func (h *ConversionHandler) Swap(c *fiber.Ctx) error {
	var in dto.SwapRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.From == "" || in.To == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from y to son requeridos"})
	}
	out, err := h.uc.Swap(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
