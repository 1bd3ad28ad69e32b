package dto

import "github.com/shopspring/decimal"

// ReportArticleDTO línea de artículo reconciliada dentro de su categoría.
type ReportArticleDTO struct {
	Codigo     string          `json:"codigo"`
	Nombre     string          `json:"nombre"`
	Unidad     string          `json:"unidad"`
	Inicial    decimal.Decimal `json:"stock_inicial"`
	Final      decimal.Decimal `json:"stock_final"`
	Diferencia decimal.Decimal `json:"diferencia"`
}

// ReportCategoryDTO categoría con sus artículos y subtotales.
type ReportCategoryDTO struct {
	Nombre          string             `json:"nombre_categoria"`
	Articulos       []ReportArticleDTO `json:"articulos"`
	TotalInicial    decimal.Decimal    `json:"total_inicial"`
	TotalFinal      decimal.Decimal    `json:"total_final"`
	TotalDiferencia decimal.Decimal    `json:"total_diferencia"`
}

// GeneralReportResponse informe general: categorías + resumen.
type GeneralReportResponse struct {
	Categorias      []ReportCategoryDTO `json:"categorias"`
	TotalArticulos  int                 `json:"total_articulos"`
	TotalInicial    decimal.Decimal     `json:"total_inicial"`
	TotalFinal      decimal.Decimal     `json:"total_final"`
	TotalDiferencia decimal.Decimal     `json:"total_diferencia"`
}
