package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	OrderStatusPreparando = "preparando"
	OrderStatusEntregue   = "entregue"
	OrderStatusCancelado  = "cancelado"
)

// ValidOrderStatus indica si el estado pertenece al enum.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPreparando, OrderStatusEntregue, OrderStatusCancelado:
		return true
	}
	return false
}

// OrderItem referencia débil a un producto: el producto puede haber sido eliminado.
type OrderItem struct {
	ProductID ID  `json:"productId"`
	Quantity  int `json:"quantity"`
}

// Resolve devuelve el producto referenciado o nil si ya no existe.
func (it OrderItem) Resolve(catalog []Product) *Product {
	return FindProduct(catalog, it.ProductID)
}

// Order pedido de un cliente. Total es una foto tomada al guardar; no sigue cambios de precio.
type Order struct {
	ID       ID              `json:"id"`
	Customer string          `json:"customer"`
	Phone    string          `json:"phone,omitempty"`
	Items    []OrderItem     `json:"items"`
	Total    decimal.Decimal `json:"total"`
	Status   string          `json:"status"`
	Date     time.Time       `json:"date"`
	Notes    string          `json:"notes,omitempty"`
	// UpdatedAt se fija en cada cambio de estado.
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	// InventoryApplied marca que el descuento de stock/ventas de la entrega ya se aplicó.
	InventoryApplied bool `json:"inventoryApplied"`
}

// ItemCount suma las cantidades de todos los ítems.
func (o Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}

// FindOrder devuelve el índice del pedido o -1.
func FindOrder(orders []Order, id ID) int {
	for i := range orders {
		if orders[i].ID == id {
			return i
		}
	}
	return -1
}

// BuildOrderTotal total en vivo: suma cantidad * precio actual de los ítems que resuelven en el catálogo.
// Ítems sin producto o con cantidad < 1 aportan cero.
func BuildOrderTotal(items []OrderItem, catalog []Product) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		if it.Quantity < 1 {
			continue
		}
		if p := it.Resolve(catalog); p != nil {
			total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
	}
	return total
}
