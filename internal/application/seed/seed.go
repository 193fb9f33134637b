// Package seed carga los datos de demostración (catálogo, pedidos del día y usuarios).
package seed

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lunchcontrol-api/internal/application/state"
	"github.com/jhoicas/lunchcontrol-api/internal/domain/entity"
)

// Apply reemplaza catálogo, pedidos y usuarios por los de demostración si el catálogo está vacío
// (o siempre con force). Los pedidos quedan fechados en el día de now. Devuelve si aplicó.
func Apply(ctx context.Context, store *state.Store, now time.Time, force bool) (bool, error) {
	applied := false
	err := store.Run(ctx, func(st *state.State) error {
		if len(st.Products) > 0 && !force {
			return nil
		}
		st.Products = Products()
		st.Orders = Orders(now)
		st.Users = Users()
		applied = true
		return nil
	})
	return applied, err
}

// Products catálogo de demostración.
func Products() []entity.Product {
	return []entity.Product{
		{ID: "1", Name: "Cheeseburger Clássico", Category: entity.CategoryLanche, Price: decimal.RequireFromString("18.90"), Stock: 50, Sales: 120,
			Description: "Hambúrguer de carne bovina com queijo cheddar, alface, tomate e molho especial."},
		{ID: "2", Name: "Coca-Cola 350ml", Category: entity.CategoryBebida, Price: decimal.RequireFromString("5.00"), Stock: 200, Sales: 300,
			Description: "Refrigerante Coca-Cola em lata de 350ml."},
		{ID: "3", Name: "Batata Frita Grande", Category: entity.CategoryAcompanhamento, Price: decimal.RequireFromString("12.00"), Stock: 80, Sales: 95,
			Description: "Batata frita crocante com sal fino."},
		{ID: "4", Name: "X-Salada", Category: entity.CategoryLanche, Price: decimal.RequireFromString("22.50"), Stock: 30, Sales: 85,
			Description: "Hambúrguer com carne, queijo, presunto, alface, tomate e milho."},
		{ID: "5", Name: "Suco de Laranja Natural", Category: entity.CategoryBebida, Price: decimal.RequireFromString("8.50"), Stock: 40, Sales: 60,
			Description: "Suco natural de laranja fresca."},
		{ID: "6", Name: "Sobremesa Cheesecake", Category: entity.CategorySobremesa, Price: decimal.RequireFromString("15.90"), Stock: 25, Sales: 45,
			Description: "Delicioso cheesecake com calda de morango."},
	}
}

// Orders pedidos de demostración del día de now, más reciente primero.
// Los entregues ya están contados en las ventas del catálogo: nacen con InventoryApplied.
func Orders(now time.Time) []entity.Order {
	at := func(h, m int) time.Time {
		return time.Date(now.Year(), now.Month(), now.Day(), h, m, 0, 0, now.Location())
	}
	// items(productID, quantity, productID, quantity, ...)
	items := func(pairs ...int) []entity.OrderItem {
		out := make([]entity.OrderItem, 0, len(pairs)/2)
		for i := 0; i+1 < len(pairs); i += 2 {
			out = append(out, entity.OrderItem{ProductID: entity.ID(strconv.Itoa(pairs[i])), Quantity: pairs[i+1]})
		}
		return out
	}
	return []entity.Order{
		{ID: "5", Customer: "Fernanda Lima", Items: items(2, 2, 3, 1), Total: decimal.RequireFromString("22.00"), Status: entity.OrderStatusEntregue, Date: at(16, 30), InventoryApplied: true},
		{ID: "4", Customer: "Lucas Oliveira", Items: items(6, 1), Total: decimal.RequireFromString("15.90"), Status: entity.OrderStatusCancelado, Date: at(16, 0), Notes: "Cliente não compareceu"},
		{ID: "3", Customer: "Ana Costa", Items: items(1, 1, 5, 1), Total: decimal.RequireFromString("27.40"), Status: entity.OrderStatusPreparando, Date: at(15, 45), Notes: "Rápido por favor"},
		{ID: "2", Customer: "Pedro Santos", Items: items(4, 1, 3, 1), Total: decimal.RequireFromString("34.50"), Status: entity.OrderStatusEntregue, Date: at(15, 10), InventoryApplied: true},
		{ID: "1", Customer: "Maria Silva", Items: items(1, 2, 2, 1), Total: decimal.RequireFromString("42.80"), Status: entity.OrderStatusPreparando, Date: at(14, 30), Notes: "Sem cebola"},
	}
}

// Users usuarios de demostración (sin password: el acceso usa la credencial fija).
func Users() []entity.User {
	user := func(id, name, email, role, status string) entity.User {
		return entity.User{ID: entity.ID(id), Name: name, Email: email, Role: role, Status: status, Permissions: entity.PermissionsFor(role)}
	}
	return []entity.User{
		user("1", "João Silva", "admin@demo.com", entity.RoleAdministrador, entity.UserStatusAtivo),
		user("2", "Maria Santos", "gerente@lanchonete.com", entity.RoleGerente, entity.UserStatusAtivo),
		user("3", "Carlos Souza", "atendente@lanchonete.com", entity.RoleAtendente, entity.UserStatusAtivo),
		user("4", "Ana Oliveira", "atendente2@lanchonete.com", entity.RoleAtendente, entity.UserStatusInativo),
	}
}
