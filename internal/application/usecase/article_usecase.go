package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"almacen/internal/application/dto"
	"almacen/internal/application/inventory"
	"almacen/internal/domain"
	"almacen/internal/domain/entity"
	"almacen/internal/domain/repository"
)

// ArticleUseCase CRUD de artículos. El stock de creación es saldo de apertura
// (no genera movimiento); la edición puede sobreescribir el stock directamente.
type ArticleUseCase struct {
	articleRepo  repository.ArticleRepository
	categoryRepo repository.CategoryRepository
	txRunner     inventory.TxRunner
}

// NewArticleUseCase construye el caso de uso.
func NewArticleUseCase(
	articleRepo repository.ArticleRepository,
	categoryRepo repository.CategoryRepository,
	txRunner inventory.TxRunner,
) *ArticleUseCase {
	return &ArticleUseCase{articleRepo: articleRepo, categoryRepo: categoryRepo, txRunner: txRunner}
}

// Create crea un artículo con su saldo de apertura.
func (uc *ArticleUseCase) Create(_ context.Context, in dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	code := strings.TrimSpace(in.Codigo)
	name := strings.TrimSpace(in.Nombre)
	if in.CategoriaID == "" || code == "" || name == "" || in.Unidad == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	cat, err := uc.categoryRepo.GetByID(in.CategoriaID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	if existing, err := uc.articleRepo.GetByCode(code); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	expiration, err := parseExpiration(in.FechaVencimiento)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	art := &entity.Article{
		ID:             uuid.New().String(),
		CategoryID:     in.CategoriaID,
		Code:           code,
		Name:           name,
		Unit:           in.Unidad,
		Detail:         strings.TrimSpace(in.Detalle),
		ExpirationDate: expiration,
		Other:          strings.TrimSpace(in.Otros),
		Stock:          in.Stock,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.articleRepo.Create(art); err != nil {
		return nil, err
	}
	return toArticleResponse(art), nil
}

// ListByCategory devuelve los artículos de una categoría.
func (uc *ArticleUseCase) ListByCategory(_ context.Context, categoryID string) ([]dto.ArticleResponse, error) {
	if categoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	arts, err := uc.articleRepo.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ArticleResponse, 0, len(arts))
	for _, a := range arts {
		out = append(out, *toArticleResponse(a))
	}
	return out, nil
}

// Update modifica el artículo en sitio. Stock no nil SOBREESCRIBE el stock al
// margen del libro: es la vía de corrección manual, y rompe la equivalencia
// formal stock == apertura + suma del libro. Se registra en el log con el
// valor anterior y el nuevo; la reconstrucción histórica puede divergir después.
func (uc *ArticleUseCase) Update(_ context.Context, id string, in dto.UpdateArticleRequest) (*dto.ArticleResponse, error) {
	art, err := uc.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if art == nil {
		return nil, domain.ErrNotFound
	}
	if in.Codigo != nil {
		code := strings.TrimSpace(*in.Codigo)
		if code == "" {
			return nil, domain.ErrInvalidInput
		}
		if code != art.Code {
			if existing, err := uc.articleRepo.GetByCode(code); err != nil {
				return nil, err
			} else if existing != nil {
				return nil, domain.ErrDuplicate
			}
		}
		art.Code = code
	}
	if in.Nombre != nil {
		name := strings.TrimSpace(*in.Nombre)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		art.Name = name
	}
	if in.Unidad != nil {
		art.Unit = *in.Unidad
	}
	if in.Detalle != nil {
		art.Detail = strings.TrimSpace(*in.Detalle)
	}
	if in.FechaVencimiento != nil {
		expiration, err := parseExpiration(*in.FechaVencimiento)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		art.ExpirationDate = expiration
	}
	if in.Otros != nil {
		art.Other = strings.TrimSpace(*in.Otros)
	}
	if in.Stock != nil {
		if in.Stock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		log.Warn().
			Str("article_id", art.ID).
			Str("stock_anterior", art.Stock.String()).
			Str("stock_nuevo", in.Stock.String()).
			Msg("sobreescritura manual de stock, el libro queda desalineado")
		art.Stock = *in.Stock
	}
	art.UpdatedAt = time.Now()
	if err := uc.articleRepo.Update(art); err != nil {
		return nil, err
	}
	return toArticleResponse(art), nil
}

// Delete elimina el artículo junto con todo su libro de movimientos, en una
// sola transacción, y devuelve cuántos movimientos cayeron en la cascada.
func (uc *ArticleUseCase) Delete(ctx context.Context, id string) (*dto.DeleteArticleResponse, error) {
	art, err := uc.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if art == nil {
		return nil, domain.ErrNotFound
	}
	var out dto.DeleteArticleResponse
	err = uc.txRunner.Run(ctx, func(
		_ repository.CategoryRepository,
		artRepo repository.ArticleRepository,
		movRepo repository.MovementRepository,
	) error {
		movs, err := movRepo.DeleteByArticle(id)
		if err != nil {
			return err
		}
		if err := artRepo.Delete(id); err != nil {
			return err
		}
		out = dto.DeleteArticleResponse{MovimientosEliminados: movs}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func parseExpiration(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toArticleResponse(a *entity.Article) *dto.ArticleResponse {
	out := &dto.ArticleResponse{
		ID:          a.ID,
		CategoriaID: a.CategoryID,
		Codigo:      a.Code,
		Nombre:      a.Name,
		Unidad:      a.Unit,
		Detalle:     a.Detail,
		Otros:       a.Other,
		Stock:       a.Stock,
	}
	if a.ExpirationDate != nil {
		out.FechaVencimiento = a.ExpirationDate.Format("2006-01-02")
	}
	return out
}
