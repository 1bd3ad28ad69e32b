package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"almacen/internal/domain"
	"almacen/internal/domain/entity"
	"almacen/internal/domain/repository"
)

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// ArticleRepo implementación de ArticleRepository sobre PostgreSQL (usable con pool o tx).
type ArticleRepo struct {
	q Querier
}

// NewArticleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewArticleRepository(q Querier) *ArticleRepo {
	return &ArticleRepo{q: q}
}

const articleColumns = `id, category_id, code, name, unit, detail, expiration_date, other, stock, created_at, updated_at`

// Create persiste un artículo con su saldo de apertura.
func (r *ArticleRepo) Create(article *entity.Article) error {
	query := `
		INSERT INTO articles (id, category_id, code, name, unit, detail, expiration_date, other, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		article.ID, article.CategoryID, article.Code, article.Name, article.Unit,
		article.Detail, article.ExpirationDate, article.Other, article.Stock,
		article.CreatedAt, article.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *ArticleRepo) GetByID(id string) (*entity.Article, error) {
	return r.getOne(`SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
}

// GetByCode obtiene un artículo por su código único.
func (r *ArticleRepo) GetByCode(code string) (*entity.Article, error) {
	return r.getOne(`SELECT `+articleColumns+` FROM articles WHERE code = $1`, code)
}

// GetForUpdate obtiene el artículo y bloquea la fila (SELECT FOR UPDATE).
// Usar dentro de una transacción: serializa los movimientos del mismo artículo.
func (r *ArticleRepo) GetForUpdate(id string) (*entity.Article, error) {
	return r.getOne(`SELECT `+articleColumns+` FROM articles WHERE id = $1 FOR UPDATE`, id)
}

func (r *ArticleRepo) getOne(query string, arg any) (*entity.Article, error) {
	var a entity.Article
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&a.ID, &a.CategoryID, &a.Code, &a.Name, &a.Unit, &a.Detail,
		&a.ExpirationDate, &a.Other, &a.Stock, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return &a, nil
}

// Update modifica el artículo completo, incluido el stock (sobreescritura manual).
func (r *ArticleRepo) Update(article *entity.Article) error {
	query := `
		UPDATE articles
		SET code = $2, name = $3, unit = $4, detail = $5, expiration_date = $6,
		    other = $7, stock = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		article.ID, article.Code, article.Name, article.Unit, article.Detail,
		article.ExpirationDate, article.Other, article.Stock, article.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock fija el stock del artículo. Se invoca con la fila ya bloqueada
// por GetForUpdate dentro de la tx del movimiento.
func (r *ArticleRepo) UpdateStock(id string, stock decimal.Decimal) error {
	query := `UPDATE articles SET stock = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, stock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCategory devuelve los artículos de una categoría ordenados por código.
func (r *ArticleRepo) ListByCategory(categoryID string) ([]*entity.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE category_id = $1 ORDER BY code`
	rows, err := r.q.Query(context.Background(), query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Article
	for rows.Next() {
		var a entity.Article
		if err := rows.Scan(&a.ID, &a.CategoryID, &a.Code, &a.Name, &a.Unit, &a.Detail,
			&a.ExpirationDate, &a.Other, &a.Stock, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete elimina un artículo. Sus movimientos deben eliminarse antes en la misma tx.
func (r *ArticleRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByCategory elimina todos los artículos de una categoría y devuelve el conteo.
func (r *ArticleRepo) DeleteByCategory(categoryID string) (int, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM articles WHERE category_id = $1`, categoryID)
	if err != nil {
		return 0, fmt.Errorf("delete articles by category: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
