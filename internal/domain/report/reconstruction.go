// Package report implementa el motor de conciliación del inventario:
// reconstrucción de stock inicial/final por artículo a partir del stock
// vigente y los acumulados de movimientos de una ventana, y la agregación
// por categoría y total general del informe. Funciones puras, sin I/O.
package report

import "github.com/shopspring/decimal"

// Row es una fila desnormalizada del informe general:
// artículo × categoría × estadísticas de movimientos en la ventana.
// Las columnas numéricas nulas se coercionan a cero en el scan, nunca aquí.
type Row struct {
	CategoryName  string
	ArticleID     string
	Code          string
	Name          string
	Unit          string
	CurrentStock  decimal.Decimal // stock_actual
	MovementCount int             // total_movimientos en la ventana
	Accumulated   decimal.Decimal // total_movimientos_acumulado (suma firmada)
}

// Reconstruction es el resultado de reconstruir la ventana de un artículo.
// RawInitial conserva el stock inicial SIN el piso en cero: permite detectar
// inconsistencias del libro (retro-fechados, sobreescrituras manuales) sin
// cambiar la salida por defecto.
type Reconstruction struct {
	Initial    decimal.Decimal // stock_inicial, con piso en cero
	Final      decimal.Decimal // stock_final, con piso en cero
	Difference decimal.Decimal // Final - Initial
	RawInitial decimal.Decimal // stock_inicial antes del piso
}

// Reconstruct calcula el stock al inicio de la ventana desde el stock vigente
// y la suma firmada de lo movido durante la ventana:
//
//	stock_inicial = stock_actual                            si no hubo movimientos
//	stock_inicial = stock_actual - acumulado                en otro caso
//	stock_inicial, stock_final = max(0, ...)                piso de presentación
//
// El piso en cero oculta deliberadamente aritmética negativa producida por
// anomalías del libro; el valor crudo queda en RawInitial.
func Reconstruct(currentStock decimal.Decimal, movementCount int, accumulated decimal.Decimal) Reconstruction {
	raw := currentStock
	if movementCount != 0 {
		raw = currentStock.Sub(accumulated)
	}
	initial := clampZero(raw)
	final := clampZero(currentStock)
	return Reconstruction{
		Initial:    initial,
		Final:      final,
		Difference: final.Sub(initial),
		RawInitial: raw,
	}
}

// Consistent indica si el piso en cero no alteró el resultado.
func (r Reconstruction) Consistent() bool {
	return r.RawInitial.Equal(r.Initial)
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
