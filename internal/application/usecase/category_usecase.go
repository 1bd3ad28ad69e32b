package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"almacen/internal/application/dto"
	"almacen/internal/application/inventory"
	"almacen/internal/domain"
	"almacen/internal/domain/entity"
	"almacen/internal/domain/repository"
	"almacen/pkg/iconos"
	"almacen/pkg/slug"
)

// CategoryUseCase CRUD de categorías. La eliminación cascadea movimientos y
// artículos dentro de una transacción: operación destructiva e irreversible,
// la confirmación es responsabilidad de la consola.
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
	txRunner     inventory.TxRunner
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository, txRunner inventory.TxRunner) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo, txRunner: txRunner}
}

// Create crea una categoría. Si no trae icono se resuelve por palabra clave
// del nombre (tabla de respaldo de presentación, fuera del motor).
func (uc *CategoryUseCase) Create(_ context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Nombre)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.categoryRepo.GetByName(name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	icon := in.Icono
	if icon == "" {
		icon = iconos.IconFor(name)
	}
	now := time.Now()
	cat := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Icon:        icon,
		Description: strings.TrimSpace(in.Descripcion),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categoryRepo.Create(cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// List devuelve las categorías con su conteo de artículos derivado.
func (uc *CategoryUseCase) List(_ context.Context) ([]dto.CategoryResponse, error) {
	cats, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// Update modifica nombre, icono o descripción. Campos nil no cambian.
func (uc *CategoryUseCase) Update(_ context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	cat, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		name := strings.TrimSpace(*in.Nombre)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		cat.Name = name
	}
	if in.Icono != nil {
		cat.Icon = *in.Icono
	}
	if in.Descripcion != nil {
		cat.Description = strings.TrimSpace(*in.Descripcion)
	}
	cat.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// Delete elimina la categoría con todos sus artículos y los movimientos de
// estos, en una sola transacción. No quedan movimientos huérfanos.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) (*dto.DeleteCategoryResponse, error) {
	cat, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	var out dto.DeleteCategoryResponse
	err = uc.txRunner.Run(ctx, func(
		catRepo repository.CategoryRepository,
		artRepo repository.ArticleRepository,
		movRepo repository.MovementRepository,
	) error {
		movs, err := movRepo.DeleteByCategory(id)
		if err != nil {
			return err
		}
		arts, err := artRepo.DeleteByCategory(id)
		if err != nil {
			return err
		}
		if err := catRepo.Delete(id); err != nil {
			return err
		}
		out = dto.DeleteCategoryResponse{ArticulosEliminados: arts, MovimientosEliminados: movs}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:             c.ID,
		Nombre:         c.Name,
		Icono:          c.Icon,
		Descripcion:    c.Description,
		Slug:           slug.Make(c.Name),
		TotalArticulos: c.ArticleCount,
	}
}
