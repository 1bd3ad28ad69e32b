package entity

import "time"

// Category representa una categoría del almacén (agrupa artículos).
// ArticleCount es derivado al listar; no se persiste.
type Category struct {
	ID           string
	Name         string
	Icon         string // glifo simbólico (ej. "🔧"); vacío = se resuelve con pkg/iconos
	Description  string
	ArticleCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
