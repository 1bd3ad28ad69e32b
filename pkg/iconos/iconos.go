// Package iconos contiene la tabla de iconos por defecto para categorías.
// Es lógica de presentación de respaldo: si la categoría no trae icono,
// se elige por palabra clave del nombre. Queda fuera del motor de inventario.
package iconos

import "strings"

// DefaultIcon es el icono cuando ningún término coincide.
const DefaultIcon = "📋"

// iconMap asocia términos del nombre de la categoría con un glifo.
// El orden de evaluación es fijo para que la resolución sea determinista.
var iconTerms = []struct {
	term string
	icon string
}{
	{"herramientas", "🔧"},
	{"materiales", "📦"},
	{"equipos de comunicación", "📡"},
	{"equipos", "💻"},
	{"consumibles", "🧪"},
	{"vehículos", "🚗"},
	{"armamento", "🔫"},
	{"comunicaciones", "📻"},
	{"seguridad", "🛡️"},
	{"tecnología", "💻"},
	{"logística", "🚚"},
	{"medicina", "🏥"},
	{"ropa", "👕"},
	{"alimentación", "🍽️"},
}

// IconFor devuelve el icono asociado al nombre de categoría,
// o DefaultIcon si ningún término coincide.
func IconFor(categoryName string) string {
	lower := strings.ToLower(categoryName)
	for _, e := range iconTerms {
		if strings.Contains(lower, e.term) {
			return e.icon
		}
	}
	return DefaultIcon
}
