package repository

import (
	"context"
	"time"

	"almacen/internal/domain/report"
)

// ReportRepository define el puerto de solo lectura del informe general:
// una fila por artículo (y por categoría vacía) con el conteo y la suma
// firmada de movimientos de la ventana. from/to nil = historia completa.
type ReportRepository interface {
	GeneralRows(ctx context.Context, from, to *time.Time) ([]report.Row, error)
}
