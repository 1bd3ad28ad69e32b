package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Acciones de movimiento de inventario.
const (
	ActionEntrada = "ENTRADA" // suma stock
	ActionSalida  = "SALIDA"  // resta stock
)

// Movement representa un movimiento del libro de inventario (append-only).
// Cantidad siempre positiva; la acción define el signo sobre el stock.
// UnitCost es obligatorio en ENTRADA y nil en SALIDA.
// CreatedAt no está garantizado como no-decreciente por artículo: correcciones
// de datos pueden retro-fechar movimientos y la reconstrucción debe tolerarlo.
type Movement struct {
	ID        string
	ArticleID string
	Action    string // ENTRADA | SALIDA
	Quantity  decimal.Decimal
	UnitCost  *decimal.Decimal
	Doc       string // referencia documental (factura, pecosa, etc.)
	Detail    string
	CreatedAt time.Time
}

// SignedQuantity devuelve la cantidad con signo: positiva en ENTRADA, negativa en SALIDA.
func (m *Movement) SignedQuantity() decimal.Decimal {
	if m.Action == ActionSalida {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
