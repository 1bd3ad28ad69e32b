package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almacen/internal/application/usecase"
	"almacen/internal/domain/report"
)

type fakeReportRepo struct {
	rows []report.Row
	err  error

	gotFrom, gotTo *time.Time
}

func (r *fakeReportRepo) GeneralRows(_ context.Context, from, to *time.Time) ([]report.Row, error) {
	r.gotFrom, r.gotTo = from, to
	return r.rows, r.err
}

type fakePDFGen struct {
	out []byte
	err error

	gotGroups []report.CategoryGroup
	gotTotals report.GrandTotals
}

func (g *fakePDFGen) GenerateGeneralReport(_ context.Context, groups []report.CategoryGroup, totals report.GrandTotals, _ time.Time) ([]byte, error) {
	g.gotGroups = groups
	g.gotTotals = totals
	return g.out, g.err
}

func reportRows() []report.Row {
	return []report.Row{
		{CategoryName: "Materiales", ArticleID: "a1", Code: "M-01", Name: "Cemento", Unit: "bolsa",
			CurrentStock: d(50), MovementCount: 3, Accumulated: d(20)},
		{CategoryName: "Materiales", ArticleID: "a2", Code: "M-02", Name: "Arena", Unit: "m3",
			CurrentStock: d(8), MovementCount: 4, Accumulated: d(-12)},
		{CategoryName: "Equipos", ArticleID: "", Code: "", Name: "", Unit: ""},
	}
}

// TestReportGeneral arma el informe completo: reconstrucción por artículo,
// subtotales por categoría y resumen general con los nombres del wire.
func TestReportGeneral(t *testing.T) {
	repo := &fakeReportRepo{rows: reportRows()}
	uc := usecase.NewReportUseCase(repo, &fakePDFGen{})

	out, err := uc.General(context.Background(), nil, nil)

	require.NoError(t, err)
	require.Len(t, out.Categorias, 2)

	mat := out.Categorias[0]
	assert.Equal(t, "Materiales", mat.Nombre)
	require.Len(t, mat.Articulos, 2)
	assert.True(t, mat.Articulos[0].Inicial.Equal(d(30)), "50 - 20")
	assert.True(t, mat.Articulos[1].Inicial.Equal(d(20)), "8 - (-12)")
	assert.True(t, mat.TotalInicial.Equal(d(50)))
	assert.True(t, mat.TotalFinal.Equal(d(58)))

	assert.Equal(t, "Equipos", out.Categorias[1].Nombre)
	assert.Empty(t, out.Categorias[1].Articulos, "la categoría vacía conserva su encabezado")

	assert.Equal(t, 2, out.TotalArticulos)
	assert.True(t, out.TotalInicial.Equal(d(50)))
	assert.True(t, out.TotalFinal.Equal(d(58)))
	assert.True(t, out.TotalDiferencia.Equal(d(8)))
}

// TestReportGeneral_VentanaSePropaga from/to llegan intactos al repositorio.
func TestReportGeneral_VentanaSePropaga(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := usecase.NewReportUseCase(repo, &fakePDFGen{})
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC)

	_, err := uc.General(context.Background(), &from, &to)

	require.NoError(t, err)
	require.NotNil(t, repo.gotFrom)
	require.NotNil(t, repo.gotTo)
	assert.True(t, repo.gotFrom.Equal(from))
	assert.True(t, repo.gotTo.Equal(to))
}

// TestReportGeneral_ErrorDeConsulta el error del repositorio se propaga.
func TestReportGeneral_ErrorDeConsulta(t *testing.T) {
	repo := &fakeReportRepo{err: errors.New("conexión perdida")}
	uc := usecase.NewReportUseCase(repo, &fakePDFGen{})

	_, err := uc.General(context.Background(), nil, nil)

	require.Error(t, err)
}

// TestReportGeneralPDF entrega los grupos agregados y totales al generador.
func TestReportGeneralPDF(t *testing.T) {
	repo := &fakeReportRepo{rows: reportRows()}
	gen := &fakePDFGen{out: []byte("%PDF-1.7")}
	uc := usecase.NewReportUseCase(repo, gen)

	pdf, err := uc.GeneralPDF(context.Background(), nil, nil)

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7"), pdf)
	require.Len(t, gen.gotGroups, 2)
	assert.Equal(t, 2, gen.gotTotals.Articles)
}

// TestReportGeneralPDF_FalloDeRender si el generador falla no hay documento.
func TestReportGeneralPDF_FalloDeRender(t *testing.T) {
	repo := &fakeReportRepo{rows: reportRows()}
	gen := &fakePDFGen{err: errors.New("render")}
	uc := usecase.NewReportUseCase(repo, gen)

	pdf, err := uc.GeneralPDF(context.Background(), nil, nil)

	require.Error(t, err)
	assert.Nil(t, pdf, "nunca se entrega un documento parcial")
}
