package inventory

import (
	"context"

	"almacen/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad del libro: ningún estado intermedio donde
// el movimiento exista con el stock desactualizado es observable; si una escritura
// falla, ninguna persiste.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		catRepo repository.CategoryRepository,
		artRepo repository.ArticleRepository,
		movRepo repository.MovementRepository,
	) error) error
}
