package catalog

import (
	"fmt"

	"github.com/jhoicas/conversor-api/internal/domain"
	"github.com/jhoicas/conversor-api/internal/domain/entity"
)

// Catalog es el registro inmutable de categorías y unidades.
// Se construye una vez al arrancar y se inyecta en el motor; todas las lecturas devuelven copias,
// por lo que es seguro usarlo desde varias goroutines sin bloqueo.
type Catalog struct {
	categories []entity.Category
	byID       map[string]int
	units      []map[string]int // por categoría: id de unidad -> posición
}

// New valida y congela las categorías en el orden recibido (orden de presentación).
func New(categories ...entity.Category) (*Catalog, error) {
	c := &Catalog{
		categories: make([]entity.Category, 0, len(categories)),
		byID:       make(map[string]int, len(categories)),
		units:      make([]map[string]int, 0, len(categories)),
	}
	for _, cat := range categories {
		if cat.ID == "" {
			return nil, fmt.Errorf("%w: categoría sin id", domain.ErrInvalidCatalog)
		}
		if _, dup := c.byID[cat.ID]; dup {
			return nil, fmt.Errorf("%w: categoría duplicada %q", domain.ErrInvalidCatalog, cat.ID)
		}
		if len(cat.Units) == 0 {
			return nil, fmt.Errorf("%w: categoría %q sin unidades", domain.ErrInvalidCatalog, cat.ID)
		}
		idx := make(map[string]int, len(cat.Units))
		for i, u := range cat.Units {
			if u.ID == "" {
				return nil, fmt.Errorf("%w: unidad sin id en %q", domain.ErrInvalidCatalog, cat.ID)
			}
			if _, dup := idx[u.ID]; dup {
				return nil, fmt.Errorf("%w: unidad duplicada %q en %q", domain.ErrInvalidCatalog, u.ID, cat.ID)
			}
			if err := u.Conversion.Validate(); err != nil {
				return nil, fmt.Errorf("%w: %s/%s: %v", domain.ErrInvalidCatalog, cat.ID, u.ID, err)
			}
			idx[u.ID] = i
		}
		base, ok := idx[cat.BaseUnit]
		if !ok {
			return nil, fmt.Errorf("%w: unidad base %q no existe en %q", domain.ErrInvalidCatalog, cat.BaseUnit, cat.ID)
		}
		if !cat.Units[base].Conversion.IsIdentity() {
			return nil, fmt.Errorf("%w: la unidad base %q de %q no es identidad", domain.ErrInvalidCatalog, cat.BaseUnit, cat.ID)
		}

		c.byID[cat.ID] = len(c.categories)
		c.categories = append(c.categories, copyCategory(cat))
		c.units = append(c.units, idx)
	}
	return c, nil
}

// MustNew es New para datos estáticos conocidos; hace panic si el catálogo es inválido.
func MustNew(categories ...entity.Category) *Catalog {
	c, err := New(categories...)
	if err != nil {
		panic(err)
	}
	return c
}

// ListCategories devuelve las categorías en orden de presentación.
func (c *Catalog) ListCategories() []entity.CategoryInfo {
	out := make([]entity.CategoryInfo, 0, len(c.categories))
	for _, cat := range c.categories {
		out = append(out, cat.Info())
	}
	return out
}

// ListUnits devuelve las unidades de una categoría en orden de presentación.
func (c *Catalog) ListUnits(categoryID string) ([]entity.UnitInfo, error) {
	i, err := c.categoryIndex(categoryID)
	if err != nil {
		return nil, err
	}
	units := c.categories[i].Units
	out := make([]entity.UnitInfo, 0, len(units))
	for _, u := range units {
		out = append(out, u.Info())
	}
	return out, nil
}

// GetCategory devuelve una copia de la categoría.
func (c *Catalog) GetCategory(categoryID string) (*entity.Category, error) {
	i, err := c.categoryIndex(categoryID)
	if err != nil {
		return nil, err
	}
	cat := copyCategory(c.categories[i])
	return &cat, nil
}

// GetUnit resuelve (categoría, unidad). Falla con NotFound(category) o NotFound(unit); nunca sustituye.
func (c *Catalog) GetUnit(categoryID, unitID string) (*entity.Unit, error) {
	i, err := c.categoryIndex(categoryID)
	if err != nil {
		return nil, err
	}
	j, ok := c.units[i][unitID]
	if !ok {
		return nil, &domain.NotFoundError{
			Kind:       domain.KindUnit,
			ID:         unitID,
			Category:   categoryID,
			Suggestion: closest(unitID, c.categories[i].UnitIDs()),
		}
	}
	u := c.categories[i].Units[j]
	return &u, nil
}

// DefaultPair devuelve la selección inicial: primera y segunda unidad.
// Con una sola unidad, "to" repite la primera.
func (c *Catalog) DefaultPair(categoryID string) (string, string, error) {
	i, err := c.categoryIndex(categoryID)
	if err != nil {
		return "", "", err
	}
	units := c.categories[i].Units
	from := units[0].ID
	to := from
	if len(units) > 1 {
		to = units[1].ID
	}
	return from, to, nil
}

func (c *Catalog) categoryIndex(id string) (int, error) {
	i, ok := c.byID[id]
	if !ok {
		ids := make([]string, 0, len(c.categories))
		for _, cat := range c.categories {
			ids = append(ids, cat.ID)
		}
		return 0, &domain.NotFoundError{
			Kind:       domain.KindCategory,
			ID:         id,
			Suggestion: closest(id, ids),
		}
	}
	return i, nil
}

func copyCategory(cat entity.Category) entity.Category {
	units := make([]entity.Unit, len(cat.Units))
	copy(units, cat.Units)
	cat.Units = units
	return cat
}
