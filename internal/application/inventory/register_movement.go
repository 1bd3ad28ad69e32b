package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"almacen/internal/domain"
	"almacen/internal/domain/entity"
	"almacen/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos del libro de inventario de forma
// transaccional (ENTRADA, SALIDA) con bloqueo de fila (SELECT FOR UPDATE) y
// Commit/Rollback: el alta del movimiento y la actualización del stock del
// artículo son una sola unidad.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, movRepo repository.MovementRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, movRepo: movRepo}
}

// MovementInput entrada para registrar un movimiento.
// Cantidad siempre positiva; UnitCost obligatorio en ENTRADA y nil en SALIDA.
type MovementInput struct {
	ArticleID string
	Action    string // ENTRADA | SALIDA
	Quantity  decimal.Decimal
	UnitCost  *decimal.Decimal
	Doc       string
	Detail    string
}

// Register valida la entrada, inicia una transacción, bloquea la fila del
// artículo, verifica stock suficiente en SALIDA y persiste movimiento + stock.
// El bloqueo de fila serializa movimientos concurrentes del mismo artículo;
// artículos distintos no se bloquean entre sí.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, input MovementInput) (*entity.Movement, error) {
	if input.ArticleID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	switch input.Action {
	case entity.ActionEntrada:
		if input.UnitCost == nil || !input.UnitCost.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	case entity.ActionSalida:
		if input.UnitCost != nil {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	mov := &entity.Movement{
		ID:        uuid.New().String(),
		ArticleID: input.ArticleID,
		Action:    input.Action,
		Quantity:  input.Quantity,
		UnitCost:  input.UnitCost,
		Doc:       input.Doc,
		Detail:    input.Detail,
		CreatedAt: now,
	}

	err := uc.txRunner.Run(ctx, func(
		_ repository.CategoryRepository,
		artRepo repository.ArticleRepository,
		movRepo repository.MovementRepository,
	) error {
		// Bloquea la fila del artículo para evitar lost updates entre movimientos concurrentes
		article, err := artRepo.GetForUpdate(input.ArticleID)
		if err != nil {
			return err
		}
		if article == nil {
			return domain.ErrNotFound
		}
		newStock := article.Stock.Add(mov.SignedQuantity())
		if input.Action == entity.ActionSalida && article.Stock.LessThan(input.Quantity) {
			// Se valida contra el stock vigente, no contra el histórico
			return domain.ErrInsufficientStock
		}
		if err := artRepo.UpdateStock(article.ID, newStock); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// ListByArticle devuelve el libro de un artículo, más recientes primero.
// Cada consulta es un snapshot fresco; no hay semántica de suscripción.
func (uc *RegisterMovementUseCase) ListByArticle(_ context.Context, articleID string) ([]*entity.Movement, error) {
	if articleID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.movRepo.ListByArticle(articleID)
}
