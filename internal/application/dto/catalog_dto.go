package dto

import "github.com/jhoicas/conversor-api/internal/domain/entity"

// CategoryResponse salida de una categoría en el listado.
type CategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	BaseUnit  string `json:"base_unit"`
	UnitCount int    `json:"unit_count"`
}

// CategoryListResponse listado ordenado de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}

// UnitResponse salida de una unidad.
type UnitResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// UnitListResponse unidades de una categoría con la selección por defecto.
type UnitListResponse struct {
	Category    string         `json:"category"`
	BaseUnit    string         `json:"base_unit"`
	DefaultFrom string         `json:"default_from"`
	DefaultTo   string         `json:"default_to"`
	Items       []UnitResponse `json:"items"`
}

// CatalogExport representación completa del catálogo (incluye las estrategias de conversión).
type CatalogExport struct {
	Categories []entity.Category `json:"categories" yaml:"categories"`
}
