package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/lunchcontrol-api/internal/application/dto"
	"github.com/jhoicas/lunchcontrol-api/internal/application/ports"
	"github.com/jhoicas/lunchcontrol-api/internal/application/state"
	"github.com/jhoicas/lunchcontrol-api/internal/application/view"
	"github.com/jhoicas/lunchcontrol-api/internal/domain"
	"github.com/jhoicas/lunchcontrol-api/internal/domain/entity"
	"github.com/jhoicas/lunchcontrol-api/internal/domain/inventory"
)

// OrderUseCase casos de uso de pedidos: alta, edición, transición de estado y baja.
type OrderUseCase struct {
	store    *state.Store
	recorder ports.Recorder
	notifier
}

// NewOrderUseCase construye el caso de uso. recorder puede ser nil.
func NewOrderUseCase(store *state.Store, n ports.Notifier, recorder ports.Recorder) *OrderUseCase {
	if recorder == nil {
		recorder = ports.NopRecorder{}
	}
	return &OrderUseCase{store: store, recorder: recorder, notifier: newNotifier(n)}
}

// WithClock reemplaza el reloj (tests y simulaciones).
func (uc *OrderUseCase) WithClock(now ports.Clock) *OrderUseCase {
	uc.now = now
	return uc
}

// List pedidos, más reciente primero.
func (uc *OrderUseCase) List(ctx context.Context) (*dto.OrderListResponse, error) {
	var out *dto.OrderListResponse
	err := uc.store.View(func(st *state.State) error {
		if _, err := st.RequireSession(); err != nil {
			return err
		}
		rows := view.OrderRows(st.Orders, st.Products)
		out = &dto.OrderListResponse{Items: rows, Total: len(rows)}
		return nil
	})
	return out, err
}

// GetByID obtiene un pedido. domain.ErrNotFound si no existe.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderRow, error) {
	var out *dto.OrderRow
	err := uc.store.View(func(st *state.State) error {
		if _, err := st.RequireSession(); err != nil {
			return err
		}
		i := entity.FindOrder(st.Orders, entity.ID(id))
		if i < 0 {
			return domain.ErrNotFound
		}
		row := view.OrderRow(st.Orders[i], st.Products)
		out = &row
		return nil
	})
	return out, err
}

// Preview total en vivo con los precios actuales del catálogo.
func (uc *OrderUseCase) Preview(ctx context.Context, in dto.PreviewOrderRequest) (*dto.PreviewOrderResponse, error) {
	var out *dto.PreviewOrderResponse
	err := uc.store.View(func(st *state.State) error {
		if _, err := st.RequireSession(); err != nil {
			return err
		}
		total := entity.BuildOrderTotal(toOrderItems(in.Items), st.Products)
		out = &dto.PreviewOrderResponse{Total: total}
		return nil
	})
	return out, err
}

// Save crea (existingID vacío) o edita un pedido. El total se congela con los precios del momento.
// Un pedido nuevo nace "preparando" y va al principio de la lista; la edición conserva estado, fecha y posición.
func (uc *OrderUseCase) Save(ctx context.Context, in dto.SaveOrderRequest, existingID string) (*dto.OrderRow, error) {
	if err := uc.store.RequireSession(); err != nil {
		return nil, err
	}
	if err := required("customer", "Informe o nome do cliente!", in.Customer); err != nil {
		return nil, uc.fail(ctx, err)
	}
	var saved dto.OrderRow
	err := uc.store.Run(ctx, func(st *state.State) error {
		if _, err := st.RequireSession(); err != nil {
			return err
		}
		items := resolvableItems(in.Items, st.Products)
		if len(items) == 0 {
			return domain.NewValidationError("items", "Adicione pelo menos um item ao pedido!")
		}
		total := entity.BuildOrderTotal(items, st.Products)

		if existingID == "" {
			o := entity.Order{
				ID:       entity.NewID(),
				Customer: strings.TrimSpace(in.Customer),
				Phone:    strings.TrimSpace(in.Phone),
				Items:    items,
				Total:    total,
				Status:   entity.OrderStatusPreparando,
				Date:     uc.now(),
				Notes:    strings.TrimSpace(in.Notes),
			}
			st.Orders = append([]entity.Order{o}, st.Orders...)
			saved = view.OrderRow(o, st.Products)
			return nil
		}

		i := entity.FindOrder(st.Orders, entity.ID(existingID))
		if i < 0 {
			return domain.ErrNotFound
		}
		o := &st.Orders[i]
		if o.InventoryApplied {
			inventory.ReverseDelivery(st.Products, o.Items)
			if err := inventory.ApplyDelivery(st.Products, items); err != nil {
				return err
			}
		}
		o.Customer = strings.TrimSpace(in.Customer)
		o.Phone = strings.TrimSpace(in.Phone)
		o.Notes = strings.TrimSpace(in.Notes)
		o.Items = items
		o.Total = total
		saved = view.OrderRow(*o, st.Products)
		return nil
	})
	if err != nil {
		return nil, uc.fail(ctx, err)
	}
	if existingID == "" {
		uc.recorder.OrderCreated()
		uc.out.Notify(ctx, ports.Notification{Level: ports.LevelSuccess, Message: "Pedido criado com sucesso!", Sound: true, At: uc.now()})
	} else {
		uc.success(ctx, "Pedido atualizado com sucesso!")
	}
	return &saved, nil
}

// Transition cambia el estado del pedido. Cualquier estado es alcanzable desde cualquier otro.
// Entrar en "entregue" aplica el efecto de inventario una sola vez; salir de "entregue" lo revierte.
func (uc *OrderUseCase) Transition(ctx context.Context, id, status string) (*dto.OrderRow, error) {
	if err := uc.store.RequireSession(); err != nil {
		return nil, err
	}
	if !entity.ValidOrderStatus(status) {
		return nil, uc.fail(ctx, domain.NewValidationError("status", "Status inválido!"))
	}
	var (
		saved dto.OrderRow
		from  string
	)
	err := uc.store.Run(ctx, func(st *state.State) error {
		if _, err := st.RequireSession(); err != nil {
			return err
		}
		i := entity.FindOrder(st.Orders, entity.ID(id))
		if i < 0 {
			return domain.ErrNotFound
		}
		o := &st.Orders[i]
		from = o.Status
		if err := applyTransition(o, status, st.Products); err != nil {
			return err
		}
		now := uc.now()
		o.UpdatedAt = &now
		saved = view.OrderRow(*o, st.Products)
		return nil
	})
	if err != nil {
		return nil, uc.fail(ctx, err)
	}
	uc.recorder.OrderTransitioned(from, status)
	uc.success(ctx, fmt.Sprintf("Status do pedido %s atualizado para: %s", id, status))
	return &saved, nil
}

// Delete elimina el pedido sin revertir inventario.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	err := uc.store.Run(ctx, func(st *state.State) error {
		if _, err := st.RequireSession(); err != nil {
			return err
		}
		i := entity.FindOrder(st.Orders, entity.ID(id))
		if i < 0 {
			return domain.ErrNotFound
		}
		st.Orders = append(st.Orders[:i], st.Orders[i+1:]...)
		return nil
	})
	if err != nil {
		return err
	}
	uc.success(ctx, "Pedido excluído com sucesso!")
	return nil
}

func applyTransition(o *entity.Order, status string, catalog []entity.Product) error {
	switch {
	case status == entity.OrderStatusEntregue && o.Status != entity.OrderStatusEntregue && !o.InventoryApplied:
		if err := inventory.ApplyDelivery(catalog, o.Items); err != nil {
			return err
		}
		o.InventoryApplied = true
	case status != entity.OrderStatusEntregue && o.InventoryApplied:
		inventory.ReverseDelivery(catalog, o.Items)
		o.InventoryApplied = false
	}
	o.Status = status
	return nil
}

func toOrderItems(in []dto.OrderItemRequest) []entity.OrderItem {
	out := make([]entity.OrderItem, 0, len(in))
	for _, it := range in {
		out = append(out, entity.OrderItem{ProductID: entity.ID(strings.TrimSpace(it.ProductID)), Quantity: it.Quantity})
	}
	return out
}

// resolvableItems descarta filas vacías, cantidades < 1 y productos inexistentes.
func resolvableItems(in []dto.OrderItemRequest, catalog []entity.Product) []entity.OrderItem {
	out := make([]entity.OrderItem, 0, len(in))
	for _, it := range toOrderItems(in) {
		if it.ProductID.IsZero() || it.Quantity < 1 || it.Resolve(catalog) == nil {
			continue
		}
		out = append(out, it)
	}
	return out
}

