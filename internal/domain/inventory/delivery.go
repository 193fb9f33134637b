package inventory

import (
	"github.com/jhoicas/lunchcontrol-api/internal/domain"
	"github.com/jhoicas/lunchcontrol-api/internal/domain/entity"
)

// ApplyDelivery descuenta stock y suma ventas por cada ítem del pedido (servicio de dominio).
// Ítems cuyo producto ya no existe se omiten. Si algún producto no alcanza, no modifica nada
// y devuelve domain.ErrInsufficientStock.
func ApplyDelivery(catalog []entity.Product, items []entity.OrderItem) error {
	need := make(map[entity.ID]int, len(items))
	for _, it := range items {
		if it.Resolve(catalog) == nil {
			continue
		}
		need[it.ProductID] += it.Quantity
	}
	for id, qty := range need {
		if p := entity.FindProduct(catalog, id); p.Stock < qty {
			return domain.ErrInsufficientStock
		}
	}
	for _, it := range items {
		if p := it.Resolve(catalog); p != nil {
			p.Stock -= it.Quantity
			p.Sales += it.Quantity
		}
	}
	return nil
}

// ReverseDelivery deshace ApplyDelivery: devuelve stock y resta ventas (sin bajar de cero).
func ReverseDelivery(catalog []entity.Product, items []entity.OrderItem) {
	for _, it := range items {
		p := it.Resolve(catalog)
		if p == nil {
			continue
		}
		p.Stock += it.Quantity
		p.Sales -= it.Quantity
		if p.Sales < 0 {
			p.Sales = 0
		}
	}
}
