package entity

// Unit es una unidad de medida dentro de una categoría (no existe fuera de ella).
type Unit struct {
	ID         string     `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Symbol     string     `json:"symbol" yaml:"symbol"`
	Conversion Conversion `json:"conversion" yaml:"conversion"`
}

// ToBase convierte un valor en esta unidad a la unidad base de la categoría.
func (u Unit) ToBase(v float64) float64 { return u.Conversion.ToBase(v) }

// FromBase convierte un valor en unidad base a esta unidad.
func (u Unit) FromBase(v float64) float64 { return u.Conversion.FromBase(v) }

// Info devuelve los metadatos de presentación de la unidad.
func (u Unit) Info() UnitInfo {
	return UnitInfo{ID: u.ID, Name: u.Name, Symbol: u.Symbol}
}

// UnitInfo metadatos de una unidad para listados.
type UnitInfo struct {
	ID     string
	Name   string
	Symbol string
}
