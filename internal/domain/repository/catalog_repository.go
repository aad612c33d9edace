package repository

import "github.com/jhoicas/conversor-api/internal/domain/entity"

// CatalogRepository define el puerto de lectura del catálogo de unidades (DIP).
// Es de solo lectura: ninguna operación modifica el catálogo.
type CatalogRepository interface {
	ListCategories() []entity.CategoryInfo
	ListUnits(categoryID string) ([]entity.UnitInfo, error)
	GetCategory(categoryID string) (*entity.Category, error)
	GetUnit(categoryID, unitID string) (*entity.Unit, error)
	// DefaultPair devuelve la selección inicial from/to: primera y segunda unidad (o la primera dos veces).
	DefaultPair(categoryID string) (from, to string, err error)
}
