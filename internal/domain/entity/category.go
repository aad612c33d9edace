package entity

// Category representa una categoría de medida (Length, Temperature, ...).
// Units conserva el orden de presentación: las dos primeras son la selección por defecto.
type Category struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Icon     string `json:"icon" yaml:"icon"`
	BaseUnit string `json:"base_unit" yaml:"base_unit"` // id de una unidad de Units con conversión identidad
	Units    []Unit `json:"units" yaml:"units"`
}

// UnitIDs devuelve los ids de las unidades en orden de presentación.
func (c Category) UnitIDs() []string {
	ids := make([]string, 0, len(c.Units))
	for _, u := range c.Units {
		ids = append(ids, u.ID)
	}
	return ids
}

// Info devuelve los metadatos de presentación de la categoría.
func (c Category) Info() CategoryInfo {
	return CategoryInfo{
		ID:        c.ID,
		Name:      c.Name,
		Icon:      c.Icon,
		BaseUnit:  c.BaseUnit,
		UnitCount: len(c.Units),
	}
}

// CategoryInfo metadatos de una categoría para listados.
type CategoryInfo struct {
	ID        string
	Name      string
	Icon      string
	BaseUnit  string
	UnitCount int
}
