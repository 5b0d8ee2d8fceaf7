package repository

import "github.com/jhoicas/Dispensario-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByIDAndDispensary(id, dispensaryID string) (*entity.Category, error)
	GetByNameAndDispensary(name, dispensaryID string) (*entity.Category, error)
	// MaxPosition devuelve la posición máxima entre las categorías del
	// dispensario, 0 si no hay ninguna.
	MaxPosition(dispensaryID string) (int, error)
	Update(category *entity.Category) error
	Delete(id string) error
	// ListWithProducts ejecuta el join categoría-productos. Con dispensaryID
	// vacío incluye todos los tenants.
	ListWithProducts(dispensaryID string) ([]*entity.CategoryWithProducts, error)
}
