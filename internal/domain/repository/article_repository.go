package repository

import (
	"github.com/shopspring/decimal"

	"almacen/internal/domain/entity"
)

// ArticleRepository define el puerto de persistencia para Article (DIP).
// GetForUpdate bloquea la fila (SELECT FOR UPDATE); usar solo dentro de una
// transacción para serializar movimientos concurrentes del mismo artículo.
type ArticleRepository interface {
	Create(article *entity.Article) error
	GetByID(id string) (*entity.Article, error)
	GetByCode(code string) (*entity.Article, error)
	GetForUpdate(id string) (*entity.Article, error)
	Update(article *entity.Article) error
	UpdateStock(id string, stock decimal.Decimal) error
	ListByCategory(categoryID string) ([]*entity.Article, error)
	Delete(id string) error
	DeleteByCategory(categoryID string) (int, error) // devuelve artículos eliminados
}
