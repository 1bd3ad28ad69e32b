package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"almacen/internal/application/dto"
	"almacen/internal/domain/report"
	"almacen/internal/domain/repository"
)

// ReportPDFGenerator renderiza el informe general ya agregado como documento.
// La paginación y el layout son del generador; este caso de uso solo entrega
// filas y totales tipados y ordenados.
type ReportPDFGenerator interface {
	GenerateGeneralReport(ctx context.Context, groups []report.CategoryGroup, totals report.GrandTotals, generatedAt time.Time) ([]byte, error)
}

// ReportUseCase informe general de inventario: filas desnormalizadas →
// reconstrucción por artículo → agregación por categoría → resumen general.
// Pipeline puro sobre datos ya leídos; el único I/O es la consulta inicial.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	pdfGen     ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository, pdfGen ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, pdfGen: pdfGen}
}

// General devuelve el informe agregado para la consola.
// from/to nil = ventana sobre toda la historia (comportamiento por defecto).
func (uc *ReportUseCase) General(ctx context.Context, from, to *time.Time) (*dto.GeneralReportResponse, error) {
	rows, err := uc.reportRepo.GeneralRows(ctx, from, to)
	if err != nil {
		return nil, err
	}
	groups := uc.aggregate(rows)
	totals := report.GrandTotal(groups)

	out := &dto.GeneralReportResponse{
		Categorias:      make([]dto.ReportCategoryDTO, 0, len(groups)),
		TotalArticulos:  totals.Articles,
		TotalInicial:    totals.Initial,
		TotalFinal:      totals.Final,
		TotalDiferencia: totals.Difference,
	}
	for _, g := range groups {
		cat := dto.ReportCategoryDTO{
			Nombre:          g.Name,
			Articulos:       make([]dto.ReportArticleDTO, 0, len(g.Articles)),
			TotalInicial:    g.Totals.Initial,
			TotalFinal:      g.Totals.Final,
			TotalDiferencia: g.Totals.Difference,
		}
		for _, a := range g.Articles {
			cat.Articulos = append(cat.Articulos, dto.ReportArticleDTO{
				Codigo:     a.Code,
				Nombre:     a.Name,
				Unidad:     a.Unit,
				Inicial:    a.Initial,
				Final:      a.Final,
				Diferencia: a.Difference,
			})
		}
		out.Categorias = append(out.Categorias, cat)
	}
	return out, nil
}

// GeneralPDF genera el documento del informe. Si la consulta o el render
// fallan se aborta completo: nunca se entrega un documento parcial.
func (uc *ReportUseCase) GeneralPDF(ctx context.Context, from, to *time.Time) ([]byte, error) {
	rows, err := uc.reportRepo.GeneralRows(ctx, from, to)
	if err != nil {
		return nil, err
	}
	groups := uc.aggregate(rows)
	return uc.pdfGen.GenerateGeneralReport(ctx, groups, report.GrandTotal(groups), time.Now())
}

// aggregate agrupa y deja rastro de las reconstrucciones que el piso en cero
// ajustó (libro inconsistente: retro-fechados o sobreescrituras manuales).
func (uc *ReportUseCase) aggregate(rows []report.Row) []report.CategoryGroup {
	for _, r := range rows {
		if r.ArticleID == "" {
			continue
		}
		if rec := report.Reconstruct(r.CurrentStock, r.MovementCount, r.Accumulated); !rec.Consistent() {
			log.Warn().
				Str("article_id", r.ArticleID).
				Str("codigo", r.Code).
				Str("stock_inicial_crudo", rec.RawInitial.String()).
				Msg("stock inicial negativo ajustado a cero en el informe")
		}
	}
	return report.AggregateByCategory(rows)
}
