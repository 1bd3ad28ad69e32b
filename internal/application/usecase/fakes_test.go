package usecase_test

import (
	"context"

	"github.com/shopspring/decimal"

	"almacen/internal/domain"
	"almacen/internal/domain/entity"
	"almacen/internal/domain/repository"
)

// store simula la BD completa para los casos de uso CRUD: los tres repos
// fake comparten el mismo estado, igual que los repos reales comparten pool.
type store struct {
	categories map[string]*entity.Category
	articles   map[string]*entity.Article
	movements  []*entity.Movement
}

func newStore() *store {
	return &store{
		categories: make(map[string]*entity.Category),
		articles:   make(map[string]*entity.Article),
	}
}

type catRepo struct{ s *store }

func (r *catRepo) Create(c *entity.Category) error { r.s.categories[c.ID] = c; return nil }
func (r *catRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}
func (r *catRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.s.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *catRepo) Update(c *entity.Category) error { r.s.categories[c.ID] = c; return nil }
func (r *catRepo) List() ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.s.categories {
		cp := *c
		for _, a := range r.s.articles {
			if a.CategoryID == c.ID {
				cp.ArticleCount++
			}
		}
		out = append(out, &cp)
	}
	return out, nil
}
func (r *catRepo) Delete(id string) error { delete(r.s.categories, id); return nil }

type artRepo struct{ s *store }

func (r *artRepo) Create(a *entity.Article) error { r.s.articles[a.ID] = a; return nil }
func (r *artRepo) GetByID(id string) (*entity.Article, error) {
	a, ok := r.s.articles[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}
func (r *artRepo) GetByCode(code string) (*entity.Article, error) {
	for _, a := range r.s.articles {
		if a.Code == code {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *artRepo) GetForUpdate(id string) (*entity.Article, error) { return r.GetByID(id) }
func (r *artRepo) Update(a *entity.Article) error                  { r.s.articles[a.ID] = a; return nil }
func (r *artRepo) UpdateStock(id string, stock decimal.Decimal) error {
	a, ok := r.s.articles[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Stock = stock
	return nil
}
func (r *artRepo) ListByCategory(categoryID string) ([]*entity.Article, error) {
	var out []*entity.Article
	for _, a := range r.s.articles {
		if a.CategoryID == categoryID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *artRepo) Delete(id string) error { delete(r.s.articles, id); return nil }
func (r *artRepo) DeleteByCategory(categoryID string) (int, error) {
	n := 0
	for id, a := range r.s.articles {
		if a.CategoryID == categoryID {
			delete(r.s.articles, id)
			n++
		}
	}
	return n, nil
}

type movRepo struct{ s *store }

func (r *movRepo) Create(m *entity.Movement) error {
	r.s.movements = append(r.s.movements, m)
	return nil
}
func (r *movRepo) ListByArticle(articleID string) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.s.movements {
		if m.ArticleID == articleID {
			out = append(out, m)
		}
	}
	return out, nil
}
func (r *movRepo) CountByArticle(articleID string) (int, error) {
	n := 0
	for _, m := range r.s.movements {
		if m.ArticleID == articleID {
			n++
		}
	}
	return n, nil
}
func (r *movRepo) DeleteByArticle(articleID string) (int, error) {
	kept := r.s.movements[:0]
	n := 0
	for _, m := range r.s.movements {
		if m.ArticleID == articleID {
			n++
			continue
		}
		kept = append(kept, m)
	}
	r.s.movements = kept
	return n, nil
}
func (r *movRepo) DeleteByCategory(categoryID string) (int, error) {
	inCategory := make(map[string]bool)
	for id, a := range r.s.articles {
		if a.CategoryID == categoryID {
			inCategory[id] = true
		}
	}
	kept := r.s.movements[:0]
	n := 0
	for _, m := range r.s.movements {
		if inCategory[m.ArticleID] {
			n++
			continue
		}
		kept = append(kept, m)
	}
	r.s.movements = kept
	return n, nil
}

// txRunner entrega los repos fake dentro del "tx"; los tests no necesitan
// simular rollback porque verifican solo rutas felices y validaciones previas.
type txRunner struct{ s *store }

func (tr *txRunner) Run(_ context.Context, fn func(
	repository.CategoryRepository,
	repository.ArticleRepository,
	repository.MovementRepository,
) error) error {
	return fn(&catRepo{s: tr.s}, &artRepo{s: tr.s}, &movRepo{s: tr.s})
}

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func strPtr(s string) *string { return &s }
