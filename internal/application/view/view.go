// Package view proyecta el estado de dominio en estructuras listas para mostrar (filas, tarjetas).
// Son funciones puras: no mutan el estado y no conocen HTML.
package view

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/lunchcontrol-api/internal/application/dto"
	"github.com/jhoicas/lunchcontrol-api/internal/domain/entity"
)

var statusLabels = map[string]string{
	entity.OrderStatusPreparando: "Em Preparo",
	entity.OrderStatusEntregue:   "Entregue",
	entity.OrderStatusCancelado:  "Cancelado",
}

var roleGlyphs = map[string]string{
	entity.RoleAtendente:     "👨‍💼",
	entity.RoleGerente:       "👨‍💼",
	entity.RoleAdministrador: "👑",
}

// Label capitaliza un valor de enum para mostrarlo ("lanche" -> "Lanche").
func Label(s string) string {
	return cases.Title(language.BrazilianPortuguese).String(s)
}

// StatusLabel texto del estado de un pedido.
func StatusLabel(status string) string {
	if l, ok := statusLabels[status]; ok {
		return l
	}
	return Label(status)
}

// Excerpt recorta a n runas agregando "..." si hizo falta.
func Excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// ProductRows filas del catálogo en orden de catálogo.
func ProductRows(products []entity.Product) []dto.ProductRow {
	out := make([]dto.ProductRow, 0, len(products))
	for _, p := range products {
		out = append(out, ProductRow(p))
	}
	return out
}

// ProductRow proyección de un producto.
func ProductRow(p entity.Product) dto.ProductRow {
	return dto.ProductRow{
		ID:            p.ID.String(),
		Glyph:         entity.CategoryGlyph(p.Category),
		Name:          p.Name,
		Category:      p.Category,
		CategoryLabel: Label(p.Category),
		Price:         p.Price.Round(2),
		Stock:         p.Stock,
		Sales:         p.Sales,
		Description:   p.Description,
	}
}

// ProductOptions opciones del selector de productos del formulario de pedido.
func ProductOptions(products []entity.Product) []dto.ProductOption {
	out := make([]dto.ProductOption, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductOption{ID: p.ID.String(), Name: p.Name, Price: p.Price.Round(2)})
	}
	return out
}

// OrderRows filas de pedidos en el orden recibido.
func OrderRows(orders []entity.Order, catalog []entity.Product) []dto.OrderRow {
	out := make([]dto.OrderRow, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderRow(o, catalog))
	}
	return out
}

// OrderRow proyección de un pedido. Los ítems cuyo producto ya no existe se omiten del detalle
// pero siguen contando en ItemCount.
func OrderRow(o entity.Order, catalog []entity.Product) dto.OrderRow {
	items := make([]dto.OrderItemRow, 0, len(o.Items))
	for _, it := range o.Items {
		p := it.Resolve(catalog)
		if p == nil {
			continue
		}
		items = append(items, dto.OrderItemRow{
			ProductID:   p.ID.String(),
			ProductName: p.Name,
			Quantity:    it.Quantity,
			UnitPrice:   p.Price.Round(2),
		})
	}
	return dto.OrderRow{
		ID:          o.ID.String(),
		Customer:    o.Customer,
		Phone:       o.Phone,
		ItemCount:   o.ItemCount(),
		Items:       items,
		Total:       o.Total.Round(2),
		Status:      o.Status,
		StatusLabel: StatusLabel(o.Status),
		Date:        o.Date,
		UpdatedAt:   o.UpdatedAt,
		Notes:       o.Notes,
		CanDeliver:  o.Status != entity.OrderStatusEntregue,
	}
}

// UserRows filas de usuarios.
func UserRows(users []entity.User) []dto.UserRow {
	out := make([]dto.UserRow, 0, len(users))
	for _, u := range users {
		out = append(out, UserRow(u))
	}
	return out
}

// UserRow proyección de un usuario; nunca incluye el password.
func UserRow(u entity.User) dto.UserRow {
	glyph, ok := roleGlyphs[u.Role]
	if !ok {
		glyph = "👤"
	}
	perms := append([]string{}, u.Permissions...)
	text := strings.Join(perms, ", ")
	if text == "" {
		text = "Nenhuma"
	}
	statusLabel := "Inativo"
	if u.Status == entity.UserStatusAtivo {
		statusLabel = "Ativo"
	}
	return dto.UserRow{
		ID:              u.ID.String(),
		Glyph:           glyph,
		Name:            u.Name,
		Email:           u.Email,
		Role:            u.Role,
		RoleLabel:       Label(u.Role),
		Permissions:     perms,
		PermissionsText: text,
		Status:          u.Status,
		StatusLabel:     statusLabel,
	}
}

// Company proyección de una empresa.
func Company(c entity.Company, currentKey string) dto.CompanyResponse {
	return dto.CompanyResponse{
		Key:      c.Key,
		Name:     c.Name,
		Location: c.Location,
		Logo:     c.Logo,
		Color:    c.Color,
		CNPJ:     c.CNPJ,
		Phone:    c.Phone,
		Address:  c.Address,
		Current:  c.Key == currentKey,
	}
}

// Session proyección de la sesión activa.
func Session(u entity.SessionUser, c entity.Company) dto.SessionResponse {
	return dto.SessionResponse{
		User: dto.SessionUserResponse{
			ID:          u.ID.String(),
			Name:        u.Name,
			Email:       u.Email,
			Role:        u.Role,
			Avatar:      u.Avatar,
			Permissions: entity.PermissionsFor(u.Role),
		},
		Company: Company(c, c.Key),
	}
}
