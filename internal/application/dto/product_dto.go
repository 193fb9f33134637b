package dto

import "github.com/shopspring/decimal"

// SaveProductRequest entrada del formulario de producto (crear o editar). Sales no es editable.
type SaveProductRequest struct {
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       FormValue `json:"price"`
	Stock       FormValue `json:"stock"`
	Description string    `json:"description"`
}

// ProductRow fila del listado de productos.
type ProductRow struct {
	ID            string          `json:"id"`
	Glyph         string          `json:"glyph"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	CategoryLabel string          `json:"category_label"`
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock"`
	Sales         int             `json:"sales"`
	Description   string          `json:"description"`
}

// ProductListResponse listado completo del catálogo (en orden de catálogo).
type ProductListResponse struct {
	Items []ProductRow `json:"items"`
	Total int          `json:"total"`
}

// ProductOption opción del selector de productos al armar un pedido.
type ProductOption struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
