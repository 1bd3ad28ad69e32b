package report

import "github.com/shopspring/decimal"

// ArticleLine es la línea de un artículo ya reconstruido dentro de su categoría.
type ArticleLine struct {
	Code       string
	Name       string
	Unit       string
	Initial    decimal.Decimal
	Final      decimal.Decimal
	Difference decimal.Decimal
}

// CategoryTotals son los subtotales elemento a elemento de una categoría.
type CategoryTotals struct {
	Initial    decimal.Decimal
	Final      decimal.Decimal
	Difference decimal.Decimal
}

// CategoryGroup agrupa las líneas de una categoría con sus subtotales.
type CategoryGroup struct {
	Name     string
	Articles []ArticleLine
	Totals   CategoryTotals
}

// GrandTotals es el resumen general del informe.
type GrandTotals struct {
	Articles   int
	Initial    decimal.Decimal
	Final      decimal.Decimal
	Difference decimal.Decimal
}

// AggregateByCategory agrupa las filas por NOMBRE de categoría (no por id),
// en orden de primera aparición. Filas sin nombre de categoría se descartan;
// filas con categoría pero sin artículo solo aportan el encabezado (categoría
// vacía en el informe). Los subtotales son la suma elemento a elemento de
// inicial/final/diferencia: como la suma es lineal, la diferencia agregada
// coincide con final - inicial del agregado.
func AggregateByCategory(rows []Row) []CategoryGroup {
	index := make(map[string]int)
	var groups []CategoryGroup

	for _, row := range rows {
		if row.CategoryName == "" {
			continue
		}
		i, ok := index[row.CategoryName]
		if !ok {
			i = len(groups)
			index[row.CategoryName] = i
			groups = append(groups, CategoryGroup{Name: row.CategoryName})
		}
		if row.ArticleID == "" {
			continue
		}
		rec := Reconstruct(row.CurrentStock, row.MovementCount, row.Accumulated)
		groups[i].Articles = append(groups[i].Articles, ArticleLine{
			Code:       row.Code,
			Name:       row.Name,
			Unit:       row.Unit,
			Initial:    rec.Initial,
			Final:      rec.Final,
			Difference: rec.Difference,
		})
		groups[i].Totals.Initial = groups[i].Totals.Initial.Add(rec.Initial)
		groups[i].Totals.Final = groups[i].Totals.Final.Add(rec.Final)
		groups[i].Totals.Difference = groups[i].Totals.Difference.Add(rec.Difference)
	}
	return groups
}

// GrandTotal suma los subtotales de todas las categorías.
// La diferencia total se deriva como final - inicial del total.
func GrandTotal(groups []CategoryGroup) GrandTotals {
	var t GrandTotals
	for _, g := range groups {
		t.Articles += len(g.Articles)
		t.Initial = t.Initial.Add(g.Totals.Initial)
		t.Final = t.Final.Add(g.Totals.Final)
	}
	t.Difference = t.Final.Sub(t.Initial)
	return t
}
