package dto

import (
	"github.com/shopspring/decimal"
)

// CreateArticleRequest body para POST /api/article.
// Stock es el saldo de apertura del artículo: NO genera movimiento en el libro.
type CreateArticleRequest struct {
	CategoriaID      string          `json:"id_categoria"`
	Codigo           string          `json:"codigo"`
	Nombre           string          `json:"nombre"`
	Unidad           string          `json:"unidad"`
	Detalle          string          `json:"detalle"`
	FechaVencimiento string          `json:"fecha_vencimiento"` // YYYY-MM-DD, vacío = sin vencimiento
	Otros            string          `json:"otros"`
	Stock            decimal.Decimal `json:"stock"`
}

// UpdateArticleRequest body para PUT /api/article/:id. Campos nil = sin cambio.
// Stock no nil sobreescribe el stock directamente, al margen del libro
// (corrección manual; la reconstrucción histórica puede divergir después).
type UpdateArticleRequest struct {
	Codigo           *string          `json:"codigo,omitempty"`
	Nombre           *string          `json:"nombre,omitempty"`
	Unidad           *string          `json:"unidad,omitempty"`
	Detalle          *string          `json:"detalle,omitempty"`
	FechaVencimiento *string          `json:"fecha_vencimiento,omitempty"`
	Otros            *string          `json:"otros,omitempty"`
	Stock            *decimal.Decimal `json:"stock,omitempty"`
}

// ArticleResponse representación de un artículo.
type ArticleResponse struct {
	ID               string          `json:"id_articulo"`
	CategoriaID      string          `json:"id_categoria"`
	Codigo           string          `json:"codigo"`
	Nombre           string          `json:"nombre"`
	Unidad           string          `json:"unidad"`
	Detalle          string          `json:"detalle"`
	FechaVencimiento string          `json:"fecha_vencimiento,omitempty"`
	Otros            string          `json:"otros"`
	Stock            decimal.Decimal `json:"stock"`
}

// DeleteArticleResponse conteo de la eliminación en cascada.
type DeleteArticleResponse struct {
	MovimientosEliminados int `json:"movimientos_eliminados"`
}
