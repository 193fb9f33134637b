package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest ítem del formulario de pedido.
type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// SaveOrderRequest entrada para crear o editar un pedido.
// Status se ignora: un pedido nuevo siempre nace "preparando".
type SaveOrderRequest struct {
	Customer string             `json:"customer"`
	Phone    string             `json:"phone"`
	Notes    string             `json:"notes"`
	Items    []OrderItemRequest `json:"items"`
	Status   string             `json:"status,omitempty"`
}

// PreviewOrderRequest ítems para el total en vivo.
type PreviewOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

// PreviewOrderResponse total en vivo con precios actuales.
type PreviewOrderResponse struct {
	Total decimal.Decimal `json:"total"`
}

// UpdateOrderStatusRequest transición de estado.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemRow ítem resuelto contra el catálogo actual.
type OrderItemRow struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// OrderRow fila del listado de pedidos.
type OrderRow struct {
	ID          string          `json:"id"`
	Customer    string          `json:"customer"`
	Phone       string          `json:"phone,omitempty"`
	ItemCount   int             `json:"item_count"`
	Items       []OrderItemRow  `json:"items"`
	Total       decimal.Decimal `json:"total"`
	Status      string          `json:"status"`
	StatusLabel string          `json:"status_label"`
	Date        time.Time       `json:"date"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	CanDeliver  bool            `json:"can_deliver"`
}

// OrderListResponse listado de pedidos, más reciente primero.
type OrderListResponse struct {
	Items []OrderRow `json:"items"`
	Total int        `json:"total"`
}
