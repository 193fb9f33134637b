package entity

import "github.com/shopspring/decimal"

// Categorías conocidas del catálogo. Cualquier otro valor se acepta y se muestra con el glifo genérico.
const (
	CategoryLanche         = "lanche"
	CategoryBebida         = "bebida"
	CategoryAcompanhamento = "acompanhamento"
	CategorySobremesa      = "sobremesa"
)

// Product representa un ítem del catálogo.
// Stock y Sales solo cambian por transiciones de estado de pedidos, nunca desde el formulario.
type Product struct {
	ID          ID              `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Sales       int             `json:"sales"` // unidades vendidas acumuladas
	Description string          `json:"description"`
}

var categoryGlyphs = map[string]string{
	CategoryLanche:         "🍔",
	CategoryBebida:         "🥤",
	CategoryAcompanhamento: "🍟",
	CategorySobremesa:      "🍰",
}

// GenericGlyph se usa para categorías desconocidas.
const GenericGlyph = "📦"

// CategoryGlyph devuelve el glifo de la categoría; nunca falla.
func CategoryGlyph(category string) string {
	if g, ok := categoryGlyphs[category]; ok {
		return g
	}
	return GenericGlyph
}

// FindProduct busca por id. Devuelve nil si no existe (referencia débil).
func FindProduct(products []Product, id ID) *Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}
