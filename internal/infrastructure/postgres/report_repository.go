package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"almacen/internal/domain/report"
	"almacen/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura del informe general de inventario.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador del informe.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GeneralRows devuelve la fila desnormalizada por artículo: categoría, datos
// del artículo, stock vigente, conteo de movimientos de la ventana y suma
// firmada (ENTRADA positiva, SALIDA negativa) de lo movido en la ventana.
// Categorías sin artículos producen una fila con article_id vacío (encabezado
// vacío en el informe). COALESCE coerciona nulos numéricos a cero: el motor de
// agregación nunca ve valores faltantes. from/to nil = historia completa.
func (r *ReportRepo) GeneralRows(ctx context.Context, from, to *time.Time) ([]report.Row, error) {
	query := `
	SELECT
	    c.name                                                         AS category_name,
	    COALESCE(a.id::TEXT, '')                                       AS article_id,
	    COALESCE(a.code, '')                                           AS code,
	    COALESCE(a.name, '')                                           AS article_name,
	    COALESCE(a.unit, '')                                           AS unit,
	    COALESCE(a.stock, 0)                                           AS current_stock,
	    COUNT(m.id)                                                    AS movement_count,
	    COALESCE(SUM(
	        CASE WHEN m.action = 'ENTRADA' THEN m.quantity
	             ELSE -m.quantity END), 0)                             AS accumulated
	FROM categories c
	LEFT JOIN articles  a ON a.category_id = c.id
	LEFT JOIN movements m ON m.article_id  = a.id`
	args := []any{}
	pos := 1
	if from != nil {
		query += fmt.Sprintf(" AND m.created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND m.created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += `
	GROUP BY c.name, a.id, a.code, a.name, a.unit, a.stock
	ORDER BY c.name, a.code`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report.GeneralRows: %w", err)
	}
	defer rows.Close()

	var result []report.Row
	for rows.Next() {
		var row report.Row
		if err := rows.Scan(
			&row.CategoryName,
			&row.ArticleID,
			&row.Code,
			&row.Name,
			&row.Unit,
			&row.CurrentStock,
			&row.MovementCount,
			&row.Accumulated,
		); err != nil {
			return nil, fmt.Errorf("report.GeneralRows scan: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
