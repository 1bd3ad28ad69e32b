package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almacen/internal/application/dto"
	"almacen/internal/application/usecase"
	"almacen/internal/domain"
	"almacen/internal/domain/entity"
)

func setupArticles() (*store, *usecase.ArticleUseCase) {
	s := newStore()
	s.categories["c1"] = &entity.Category{ID: "c1", Name: "Materiales"}
	uc := usecase.NewArticleUseCase(&artRepo{s: s}, &catRepo{s: s}, &txRunner{s: s})
	return s, uc
}

func createReq() dto.CreateArticleRequest {
	return dto.CreateArticleRequest{
		CategoriaID: "c1",
		Codigo:      "M-01",
		Nombre:      "Cemento",
		Unidad:      "bolsa",
		Stock:       d(10),
	}
}

// TestArticleCreate el stock de creación es saldo de apertura: el artículo
// nace con stock pero con el libro vacío.
func TestArticleCreate(t *testing.T) {
	s, uc := setupArticles()

	out, err := uc.Create(context.Background(), createReq())

	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.True(t, out.Stock.Equal(d(10)))
	assert.Empty(t, s.movements, "el saldo de apertura no genera movimiento")
}

// TestArticleCreate_CategoriaInexistente el artículo exige categoría válida.
func TestArticleCreate_CategoriaInexistente(t *testing.T) {
	_, uc := setupArticles()

	in := createReq()
	in.CategoriaID = "fantasma"
	_, err := uc.Create(context.Background(), in)

	require.ErrorIs(t, err, domain.ErrNotFound)
}

// TestArticleCreate_CodigoDuplicado el código es único entre artículos.
func TestArticleCreate_CodigoDuplicado(t *testing.T) {
	_, uc := setupArticles()
	ctx := context.Background()

	_, err := uc.Create(ctx, createReq())
	require.NoError(t, err)

	in := createReq()
	in.Nombre = "Otro cemento"
	_, err = uc.Create(ctx, in)
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

// TestArticleCreate_StockNegativo el saldo de apertura no puede ser negativo.
func TestArticleCreate_StockNegativo(t *testing.T) {
	_, uc := setupArticles()

	in := createReq()
	in.Stock = d(-1)
	_, err := uc.Create(context.Background(), in)

	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestArticleCreate_FechaVencimiento se acepta YYYY-MM-DD y vuelve igual.
func TestArticleCreate_FechaVencimiento(t *testing.T) {
	_, uc := setupArticles()

	in := createReq()
	in.FechaVencimiento = "2027-03-15"
	out, err := uc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "2027-03-15", out.FechaVencimiento)
}

// TestArticleCreate_FechaInvalida formatos distintos a YYYY-MM-DD se rechazan.
func TestArticleCreate_FechaInvalida(t *testing.T) {
	_, uc := setupArticles()

	in := createReq()
	in.FechaVencimiento = "15/03/2027"
	_, err := uc.Create(context.Background(), in)

	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestArticleUpdate_SobreescrituraDeStock Stock no nil reemplaza el stock
// directamente, sin pasar por el libro (vía de corrección manual).
func TestArticleUpdate_SobreescrituraDeStock(t *testing.T) {
	s, uc := setupArticles()
	s.articles["a1"] = &entity.Article{ID: "a1", CategoryID: "c1", Code: "M-01", Name: "Cemento", Stock: d(10)}
	newStock := d(99)

	out, err := uc.Update(context.Background(), "a1", dto.UpdateArticleRequest{Stock: &newStock})

	require.NoError(t, err)
	assert.True(t, out.Stock.Equal(d(99)))
	assert.Empty(t, s.movements, "la sobreescritura no inventa movimientos")
}

// TestArticleUpdate_CodigoDuplicado cambiar el código a uno ya ocupado falla.
func TestArticleUpdate_CodigoDuplicado(t *testing.T) {
	s, uc := setupArticles()
	s.articles["a1"] = &entity.Article{ID: "a1", CategoryID: "c1", Code: "M-01", Name: "Cemento"}
	s.articles["a2"] = &entity.Article{ID: "a2", CategoryID: "c1", Code: "M-02", Name: "Arena"}

	_, err := uc.Update(context.Background(), "a1", dto.UpdateArticleRequest{Codigo: strPtr("M-02")})

	require.ErrorIs(t, err, domain.ErrDuplicate)
}

// TestArticleUpdate_MismoCodigo conservar el propio código no cuenta como duplicado.
func TestArticleUpdate_MismoCodigo(t *testing.T) {
	s, uc := setupArticles()
	s.articles["a1"] = &entity.Article{ID: "a1", CategoryID: "c1", Code: "M-01", Name: "Cemento"}

	out, err := uc.Update(context.Background(), "a1", dto.UpdateArticleRequest{
		Codigo: strPtr("M-01"),
		Nombre: strPtr("Cemento gris"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Cemento gris", out.Nombre)
}

// TestArticleDelete_Cascada eliminar el artículo borra todo su libro y
// devuelve el conteo; el libro de otros artículos no se toca.
func TestArticleDelete_Cascada(t *testing.T) {
	s, uc := setupArticles()
	s.articles["a1"] = &entity.Article{ID: "a1", CategoryID: "c1", Code: "M-01", Stock: d(4)}
	s.articles["a2"] = &entity.Article{ID: "a2", CategoryID: "c1", Code: "M-02", Stock: d(2)}
	s.movements = []*entity.Movement{
		{ID: "m1", ArticleID: "a1", Action: entity.ActionEntrada, Quantity: d(5)},
		{ID: "m2", ArticleID: "a1", Action: entity.ActionSalida, Quantity: d(1)},
		{ID: "m3", ArticleID: "a2", Action: entity.ActionEntrada, Quantity: d(2)},
	}

	out, err := uc.Delete(context.Background(), "a1")

	require.NoError(t, err)
	assert.Equal(t, 2, out.MovimientosEliminados)
	assert.NotContains(t, s.articles, "a1")
	require.Len(t, s.movements, 1)
	assert.Equal(t, "m3", s.movements[0].ID)
}

// TestArticleDelete_NoExiste eliminar un artículo inexistente.
func TestArticleDelete_NoExiste(t *testing.T) {
	_, uc := setupArticles()

	_, err := uc.Delete(context.Background(), "fantasma")

	require.ErrorIs(t, err, domain.ErrNotFound)
}

// TestArticleListByCategory devuelve solo los artículos de la categoría.
func TestArticleListByCategory(t *testing.T) {
	s, uc := setupArticles()
	s.categories["c2"] = &entity.Category{ID: "c2", Name: "Equipos"}
	s.articles["a1"] = &entity.Article{ID: "a1", CategoryID: "c1", Code: "M-01"}
	s.articles["a2"] = &entity.Article{ID: "a2", CategoryID: "c2", Code: "E-01"}

	out, err := uc.ListByCategory(context.Background(), "c1")

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "M-01", out[0].Codigo)
}
