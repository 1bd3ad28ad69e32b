package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Article representa un artículo del almacén con su stock vigente.
// Stock se mantiene incrementalmente desde los movimientos: el stock inicial
// de creación más la suma de cantidades firmadas del libro. La edición puede
// sobreescribirlo directamente (corrección manual), ver ArticleUseCase.Update.
type Article struct {
	ID             string
	CategoryID     string
	Code           string // código único legible
	Name           string
	Unit           string // unidad de medida
	Detail         string
	ExpirationDate *time.Time
	Other          string
	Stock          decimal.Decimal // nunca negativo
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
