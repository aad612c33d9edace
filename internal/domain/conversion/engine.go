package conversion

import (
	"math"

	"github.com/jhoicas/conversor-api/internal/domain/entity"
	"github.com/jhoicas/conversor-api/internal/domain/repository"
)

// Engine convierte valores entre unidades de una categoría pasando siempre por la unidad base.
// No guarda estado entre llamadas: cada Convert depende solo de sus argumentos y del catálogo.
type Engine struct {
	repo repository.CatalogRepository
}

// NewEngine construye el motor sobre un catálogo ya inicializado.
func NewEngine(repo repository.CatalogRepository) *Engine {
	return &Engine{repo: repo}
}

// Convert convierte value de fromID a toID dentro de categoryID y redondea a 6 decimales.
//
//   - id de categoría o unidad desconocido: error NotFound (no se devuelve número).
//   - value no finito (NaN por texto no numérico, ±Inf): devuelve 0 sin error.
//   - resultado no finito (ej. 0 L/100km a mpg): se devuelve tal cual, sin error.
//
// fromID == toID también pasa por la unidad base.
func (e *Engine) Convert(categoryID, fromID, toID string, value float64) (float64, error) {
	raw, err := e.ConvertRaw(categoryID, fromID, toID, value)
	if err != nil {
		return 0, err
	}
	return Round6(raw), nil
}

// ConvertRaw es Convert sin el redondeo de presentación.
func (e *Engine) ConvertRaw(categoryID, fromID, toID string, value float64) (float64, error) {
	from, to, err := e.resolve(categoryID, fromID, toID)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, nil
	}
	base := from.ToBase(value)
	return to.FromBase(base), nil
}

// resolve busca ambas unidades; GetUnit falla primero con NotFound(category) si la categoría no existe.
func (e *Engine) resolve(categoryID, fromID, toID string) (*entity.Unit, *entity.Unit, error) {
	from, err := e.repo.GetUnit(categoryID, fromID)
	if err != nil {
		return nil, nil, err
	}
	to, err := e.repo.GetUnit(categoryID, toID)
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

// Swap intercambia el par de unidades. El llamador vuelve a invocar Convert si lo necesita.
func Swap(fromID, toID string) (string, string) {
	return toID, fromID
}
