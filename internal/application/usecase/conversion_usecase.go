package usecase

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jhoicas/conversor-api/internal/application/dto"
	"github.com/jhoicas/conversor-api/internal/application/ports"
	"github.com/jhoicas/conversor-api/internal/domain"
	"github.com/jhoicas/conversor-api/internal/domain/conversion"
	"github.com/jhoicas/conversor-api/internal/domain/repository"
	"github.com/jhoicas/conversor-api/pkg/logger"
)

// ConversionUseCase expone el catálogo y el motor de conversión a la capa de presentación
// (HTTP y CLI): parsea el texto de entrada, invoca el motor y formatea el resultado.
type ConversionUseCase struct {
	repo     repository.CatalogRepository
	engine   *conversion.Engine
	recorder ports.ConversionRecorder
	log      *logger.Logger
}

// NewConversionUseCase construye el caso de uso. recorder y log pueden ser nil.
func NewConversionUseCase(repo repository.CatalogRepository, engine *conversion.Engine, recorder ports.ConversionRecorder, log *logger.Logger) *ConversionUseCase {
	if recorder == nil {
		recorder = ports.NopRecorder{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ConversionUseCase{repo: repo, engine: engine, recorder: recorder, log: log}
}

// ListCategories lista las categorías en orden de presentación.
func (uc *ConversionUseCase) ListCategories() *dto.CategoryListResponse {
	infos := uc.repo.ListCategories()
	items := make([]dto.CategoryResponse, 0, len(infos))
	for _, c := range infos {
		items = append(items, dto.CategoryResponse{
			ID:        c.ID,
			Name:      c.Name,
			Icon:      c.Icon,
			BaseUnit:  c.BaseUnit,
			UnitCount: c.UnitCount,
		})
	}
	return &dto.CategoryListResponse{Items: items}
}

// ListUnits lista las unidades de una categoría junto con la selección por defecto.
func (uc *ConversionUseCase) ListUnits(categoryID string) (*dto.UnitListResponse, error) {
	units, err := uc.repo.ListUnits(categoryID)
	if err != nil {
		uc.logNotFound(err, categoryID)
		return nil, err
	}
	from, to, err := uc.repo.DefaultPair(categoryID)
	if err != nil {
		return nil, err
	}
	out := &dto.UnitListResponse{
		Category:    categoryID,
		DefaultFrom: from,
		DefaultTo:   to,
		Items:       make([]dto.UnitResponse, 0, len(units)),
	}
	for _, c := range uc.repo.ListCategories() {
		if c.ID == categoryID {
			out.BaseUnit = c.BaseUnit
			break
		}
	}
	for _, u := range units {
		out.Items = append(out.Items, dto.UnitResponse{ID: u.ID, Name: u.Name, Symbol: u.Symbol})
	}
	return out, nil
}

// Convert parsea in.Value y convierte entre las unidades indicadas.
// Texto vacío o no numérico produce 0 (no es error); ids desconocidos sí son error.
func (uc *ConversionUseCase) Convert(in dto.ConvertRequest) (*dto.ConvertResponse, error) {
	if in.Category == "" || in.From == "" || in.To == "" {
		return nil, fmt.Errorf("%w: category, from y to son obligatorios", domain.ErrInvalidInput)
	}
	value := ParseInput(in.Value)
	result, err := uc.engine.Convert(in.Category, in.From, in.To, value)
	if err != nil {
		label := in.Category
		if errors.Is(err, domain.ErrCategoryNotFound) {
			label = "unknown"
		}
		uc.recorder.ObserveConversion(label, ports.OutcomeNotFound)
		uc.logNotFound(err, in.Category)
		return nil, err
	}

	out := &dto.ConvertResponse{
		Category: in.Category,
		From:     in.From,
		To:       in.To,
		Input:    in.Value,
		Display:  FormatResult(result),
		Finite:   isFinite(result),
	}
	switch {
	case math.IsNaN(value):
		uc.recorder.ObserveConversion(in.Category, ports.OutcomeEmptyInput)
	case math.IsInf(value, 0):
		uc.recorder.ObserveConversion(in.Category, ports.OutcomeInfiniteInput)
	case !out.Finite:
		uc.recorder.ObserveConversion(in.Category, ports.OutcomeNonFinite)
	default:
		uc.recorder.ObserveConversion(in.Category, ports.OutcomeOK)
	}
	if out.Finite {
		out.Result = &result
	}
	uc.log.Debug().
		Str("category", in.Category).
		Str("from", in.From).
		Str("to", in.To).
		Str("input", in.Value).
		Str("result", out.Display).
		Msg("conversión")
	return out, nil
}

// Swap intercambia from/to. Con categoría y valor, reconvierte el valor con el par intercambiado.
func (uc *ConversionUseCase) Swap(in dto.SwapRequest) (*dto.SwapResponse, error) {
	if in.From == "" || in.To == "" {
		return nil, fmt.Errorf("%w: from y to son obligatorios", domain.ErrInvalidInput)
	}
	from, to := conversion.Swap(in.From, in.To)
	out := &dto.SwapResponse{From: from, To: to}
	if in.Category == "" || in.Value == "" {
		return out, nil
	}
	conv, err := uc.Convert(dto.ConvertRequest{Category: in.Category, From: from, To: to, Value: in.Value})
	if err != nil {
		return nil, err
	}
	out.Conversion = conv
	return out, nil
}

// ExportCatalog devuelve el catálogo completo, incluidas las estrategias de conversión.
func (uc *ConversionUseCase) ExportCatalog() (*dto.CatalogExport, error) {
	infos := uc.repo.ListCategories()
	out := &dto.CatalogExport{}
	for _, info := range infos {
		cat, err := uc.repo.GetCategory(info.ID)
		if err != nil {
			return nil, err
		}
		out.Categories = append(out.Categories, *cat)
	}
	return out, nil
}

func (uc *ConversionUseCase) logNotFound(err error, categoryID string) {
	if !errors.Is(err, domain.ErrNotFound) {
		return
	}
	uc.log.Warn().Err(err).Str("category", categoryID).Msg("id fuera del catálogo")
}

// numericPrefix reconoce el prefijo numérico más largo del texto ("12abc" -> "12", "1e3" -> "1e3").
var numericPrefix = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// ParseInput convierte el texto del usuario en número. Vacío o sin prefijo numérico devuelve NaN,
// que el motor presenta como 0.
func ParseInput(text string) float64 {
	s := strings.TrimSpace(text)
	switch {
	case s == "":
		return math.NaN()
	case strings.HasPrefix(s, "Infinity"), strings.HasPrefix(s, "+Infinity"):
		return math.Inf(1)
	case strings.HasPrefix(s, "-Infinity"):
		return math.Inf(-1)
	}
	m := numericPrefix.FindString(s)
	if m == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return v
}

// FormatResult representa el resultado para pantalla: forma decimal más corta,
// notación exponencial desde 1e21, e "Infinity" / "-Infinity" / "NaN" para no finitos.
func FormatResult(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.Abs(v) >= 1e21:
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
