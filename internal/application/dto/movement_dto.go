package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest body para POST /api/movement.
// CostoUnidad es obligatorio (> 0) en ENTRADA y debe omitirse en SALIDA.
type CreateMovementRequest struct {
	ArticuloID  string           `json:"id_articulo"`
	Accion      string           `json:"accion"` // ENTRADA | SALIDA
	Cantidad    decimal.Decimal  `json:"cantidad"`
	CostoUnidad *decimal.Decimal `json:"costo_unidad,omitempty"`
	Doc         string           `json:"doc"`
	Detalle     string           `json:"detalle"`
}

// MovementResponse representación de un movimiento del libro.
type MovementResponse struct {
	ID          string           `json:"id_movimiento"`
	ArticuloID  string           `json:"id_articulo"`
	Accion      string           `json:"accion"`
	Cantidad    decimal.Decimal  `json:"cantidad"`
	CostoUnidad *decimal.Decimal `json:"costo_unidad,omitempty"`
	Doc         string           `json:"doc"`
	Detalle     string           `json:"detalle"`
	CreatedAt   time.Time        `json:"fecha_creacion"`
}
