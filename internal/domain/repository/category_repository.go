package repository

import "almacen/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// List devuelve cada categoría con su conteo de artículos derivado.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	List() ([]*entity.Category, error)
	Delete(id string) error
}
