package postgres

import (
	"context"
	"fmt"

	"almacen/internal/domain/entity"
	"almacen/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Append-only: no expone update ni delete individual.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento del libro.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, article_id, action, quantity, unit_cost, doc, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ArticleID, movement.Action, movement.Quantity,
		movement.UnitCost, movement.Doc, movement.Detail, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListByArticle lista los movimientos de un artículo, más recientes primero.
func (r *MovementRepo) ListByArticle(articleID string) ([]*entity.Movement, error) {
	query := `
		SELECT id, article_id, action, quantity, unit_cost, doc, detail, created_at
		FROM movements WHERE article_id = $1
		ORDER BY created_at DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, articleID)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ArticleID, &m.Action, &m.Quantity,
			&m.UnitCost, &m.Doc, &m.Detail, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CountByArticle cuenta los movimientos del libro de un artículo.
func (r *MovementRepo) CountByArticle(articleID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM movements WHERE article_id = $1`, articleID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}

// DeleteByArticle elimina el libro completo de un artículo (cascada) y devuelve el conteo.
func (r *MovementRepo) DeleteByArticle(articleID string) (int, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM movements WHERE article_id = $1`, articleID)
	if err != nil {
		return 0, fmt.Errorf("delete movements by article: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// DeleteByCategory elimina los movimientos de todos los artículos de una categoría.
func (r *MovementRepo) DeleteByCategory(categoryID string) (int, error) {
	query := `
		DELETE FROM movements
		WHERE article_id IN (SELECT id FROM articles WHERE category_id = $1)`
	tag, err := r.q.Exec(context.Background(), query, categoryID)
	if err != nil {
		return 0, fmt.Errorf("delete movements by category: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
