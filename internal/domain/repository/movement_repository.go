package repository

import "almacen/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el libro de movimientos.
// El libro es append-only: no hay Update ni Delete individual, los movimientos
// solo desaparecen en cascada con su artículo (DeleteByArticle / DeleteByCategory).
type MovementRepository interface {
	Create(movement *entity.Movement) error
	ListByArticle(articleID string) ([]*entity.Movement, error) // más recientes primero
	CountByArticle(articleID string) (int, error)
	DeleteByArticle(articleID string) (int, error)  // devuelve movimientos eliminados
	DeleteByCategory(categoryID string) (int, error)
}
