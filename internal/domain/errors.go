package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrCategoryNotFound = fmt.Errorf("categoría: %w", ErrNotFound)
	ErrUnitNotFound     = fmt.Errorf("unidad: %w", ErrNotFound)
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidCatalog   = errors.New("catálogo inválido")
)

// Tipos de recurso reportados en NotFoundError.
const (
	KindCategory = "category"
	KindUnit     = "unit"
)

// NotFoundError describe un id desconocido (categoría o unidad) junto con la sugerencia más cercana.
// Es un error de programación del consumidor: los ids deben salir siempre del catálogo.
type NotFoundError struct {
	Kind       string // KindCategory | KindUnit
	ID         string
	Category   string // categoría consultada (solo para KindUnit)
	Suggestion string // id conocido más parecido; vacío si ninguno está cerca
}

func (e *NotFoundError) Error() string {
	var msg string
	if e.Kind == KindUnit {
		msg = fmt.Sprintf("unidad %q no existe en la categoría %q", e.ID, e.Category)
	} else {
		msg = fmt.Sprintf("categoría %q no existe", e.ID)
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (¿quiso decir %q?)", e.Suggestion)
	}
	return msg
}

// Unwrap permite errors.Is contra ErrCategoryNotFound / ErrUnitNotFound y ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	if e.Kind == KindUnit {
		return ErrUnitNotFound
	}
	return ErrCategoryNotFound
}
