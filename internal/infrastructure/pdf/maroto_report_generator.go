// Package pdf implementa la generación del Informe General de Inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del informe + fecha de generación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por categoría:                                              │
//	│    Encabezado de categoría                                   │
//	│    TABLA: Código | Artículo | Unidad | Inicial|Final|Difer.  │
//	│    Fila TOTAL CATEGORÍA                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN GENERAL: subtotales por categoría + TOTAL GENERAL   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"almacen/internal/application/usecase"
	"almacen/internal/domain/report"
)

var _ usecase.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 47, Green: 84, Blue: 150}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 0, Green: 128, Blue: 0}
	colorRed     = &props.Color{Red: 220, Green: 0, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa usecase.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	Title    string // encabezado principal
	Subtitle string // institución u oficina, opcional
}

// NewMarotoReportGenerator construye el generador con los encabezados de la entidad.
func NewMarotoReportGenerator(title, subtitle string) *MarotoReportGenerator {
	if title == "" {
		title = "INFORME GENERAL DE INVENTARIO"
	}
	return &MarotoReportGenerator{Title: title, Subtitle: subtitle}
}

// GenerateGeneralReport genera el PDF del informe y devuelve sus bytes.
// No toca el libro: consume filas y totales ya agregados.
func (g *MarotoReportGenerator) GenerateGeneralReport(
	_ context.Context,
	groups []report.CategoryGroup,
	totals report.GrandTotals,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRows(generatedAt)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, group := range groups {
		m.AddRows(categoryTitleRow(group.Name))
		if len(group.Articles) == 0 {
			m.AddRows(row.New(6).Add(col.New(12).Add(
				text.New("No hay artículos en esta categoría.", props.Text{
					Size: 9, Style: fontstyle.Italic, Color: colorGray, Top: 1, Left: 2,
				}),
			)))
			continue
		}
		m.AddRows(tableHeaderRow())
		for _, a := range group.Articles {
			m.AddRows(articleRow(a))
		}
		m.AddRows(categoryTotalsRow(group.Totals))
		m.AddRows(line.NewRow(2))
	}

	m.AddRows(summaryRows(groups, totals)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar informe: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRows: título, subtítulo y fecha de generación.
func (g *MarotoReportGenerator) headerRows(generatedAt time.Time) []core.Row {
	rows := []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New(g.Title, props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Center, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	if g.Subtitle != "" {
		rows = append(rows, row.New(7).Add(col.New(12).Add(
			text.New(g.Subtitle, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Color: colorPrimary,
			}),
		)))
	}
	rows = append(rows, row.New(6).Add(col.New(12).Add(
		text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
			Size: 9, Align: align.Center, Color: colorGray,
		}),
	)))
	return rows
}

// categoryTitleRow: encabezado de la sección de una categoría.
func categoryTitleRow(name string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(name, props.Text{
			Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 2, Left: 1,
		}),
	))
}

// tableHeaderRow: cabecera de la tabla de artículos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		h("CÓDIGO", 2, align.Left),
		h("ARTÍCULO", 4, align.Left),
		h("UNIDAD", 1, align.Center),
		h("INICIAL", 2, align.Right),
		h("FINAL", 2, align.Right),
		h("DIFER.", 1, align.Right),
	)
}

// articleRow: una fila por artículo reconstruido.
func articleRow(a report.ArticleLine) core.Row {
	return row.New(6).Add(
		col.New(2).Add(text.New(a.Code, props.Text{Size: 8, Top: 1})),
		col.New(4).Add(text.New(a.Name, props.Text{Size: 8, Top: 1})),
		col.New(1).Add(text.New(a.Unit, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(a.Initial.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(2).Add(text.New(a.Final.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(1).Add(text.New(a.Difference.StringFixed(2), props.Text{
			Size: 8, Align: align.Right, Top: 1, Color: diffColor(a.Difference),
		})),
	)
}

// categoryTotalsRow: subtotales elemento a elemento de la categoría.
func categoryTotalsRow(t report.CategoryTotals) core.Row {
	return row.New(8).Add(
		col.New(7).Add(text.New("TOTAL CATEGORÍA", props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 2, Left: 1,
		})),
		col.New(2).Add(text.New(t.Initial.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
		})),
		col.New(2).Add(text.New(t.Final.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
		})),
		col.New(1).Add(text.New(t.Difference.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Color: diffColor(t.Difference),
		})),
	)
}

// summaryRows: tabla RESUMEN GENERAL con una fila por categoría y el total general.
func summaryRows(groups []report.CategoryGroup, totals report.GrandTotals) []core.Row {
	rows := []core.Row{
		row.New(12).Add(col.New(12).Add(
			text.New("RESUMEN GENERAL", props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center, Color: colorPrimary, Top: 4,
			}),
		)),
		row.New(7).Add(
			col.New(5).Add(text.New("CATEGORÍA", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1})),
			col.New(2).Add(text.New("ARTÍCULOS", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: colorPrimary, Top: 1})),
			col.New(2).Add(text.New("INICIAL", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1})),
			col.New(2).Add(text.New("FINAL", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1})),
			col.New(1).Add(text.New("DIFER.", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1})),
		),
	}
	for _, g := range groups {
		rows = append(rows, row.New(6).Add(
			col.New(5).Add(text.New(g.Name, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", len(g.Articles)), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(g.Totals.Initial.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(g.Totals.Final.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(1).Add(text.New(g.Totals.Difference.StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: diffColor(g.Totals.Difference),
			})),
		))
	}
	rows = append(rows, row.New(8).Add(
		col.New(5).Add(text.New("TOTAL GENERAL", props.Text{Style: fontstyle.Bold, Size: 9, Top: 2})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", totals.Articles), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 2})),
		col.New(2).Add(text.New(totals.Initial.StringFixed(2), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2})),
		col.New(2).Add(text.New(totals.Final.StringFixed(2), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2})),
		col.New(1).Add(text.New(totals.Difference.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Color: diffColor(totals.Difference),
		})),
	))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// diffColor: verde para superávit, rojo para déficit, gris para cero.
func diffColor(d decimal.Decimal) *props.Color {
	switch {
	case d.IsPositive():
		return colorGreen
	case d.IsNegative():
		return colorRed
	default:
		return colorGray
	}
}
