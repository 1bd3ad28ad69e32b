package dto

// Nombres de campos en el wire en español: son el contrato histórico de la
// consola (id_categoria, nombre, icono, descripcion, total_articulos).

// CreateCategoryRequest body para POST /api/category.
type CreateCategoryRequest struct {
	Nombre      string `json:"nombre"`
	Icono       string `json:"icono"`
	Descripcion string `json:"descripcion"`
}

// UpdateCategoryRequest body para PUT /api/category/:id. Campos nil = sin cambio.
type UpdateCategoryRequest struct {
	Nombre      *string `json:"nombre,omitempty"`
	Icono       *string `json:"icono,omitempty"`
	Descripcion *string `json:"descripcion,omitempty"`
}

// CategoryResponse representación de una categoría con su conteo derivado.
type CategoryResponse struct {
	ID             string `json:"id_categoria"`
	Nombre         string `json:"nombre"`
	Icono          string `json:"icono"`
	Descripcion    string `json:"descripcion"`
	Slug           string `json:"slug"`
	TotalArticulos int    `json:"total_articulos"`
}

// DeleteCategoryResponse conteos de la eliminación en cascada.
type DeleteCategoryResponse struct {
	ArticulosEliminados   int `json:"articulos_eliminados"`
	MovimientosEliminados int `json:"movimientos_eliminados"`
}
