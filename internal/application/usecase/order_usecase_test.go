package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lunchcontrol-api/internal/application/dto"
	"github.com/jhoicas/lunchcontrol-api/internal/application/usecase"
	"github.com/jhoicas/lunchcontrol-api/internal/domain"
	"github.com/jhoicas/lunchcontrol-api/internal/domain/entity"
)

type countingRecorder struct {
	created     int
	transitions []string
}

func (r *countingRecorder) OrderCreated() { r.created++ }
func (r *countingRecorder) OrderTransitioned(from, to string) {
	r.transitions = append(r.transitions, from+"->"+to)
}
func (r *countingRecorder) LoginAttempt(bool) {}

func saveOrder(t *testing.T, uc *usecase.OrderUseCase, items ...dto.OrderItemRequest) *dto.OrderRow {
	t.Helper()
	row, err := uc.Save(context.Background(), dto.SaveOrderRequest{Customer: "Maria Santos", Phone: "(11) 99999-0000", Items: items}, "")
	require.NoError(t, err)
	return row
}

// ── Save ────────────────────────────────────────────────────────────────────

func TestOrderSave_SinItemsResolublesFalla(t *testing.T) {
	store := newStore(t, product("1", 10, 5))
	uc := usecase.NewOrderUseCase(store, nil, nil)
	saveOrder(t, uc, dto.OrderItemRequest{ProductID: "1", Quantity: 1})
	before := len(snapshot(t, store).Orders)

	_, err := uc.Save(context.Background(), dto.SaveOrderRequest{
		Customer: "Pedro",
		Items: []dto.OrderItemRequest{
			{ProductID: "", Quantity: 2},
			{ProductID: "nao-existe", Quantity: 1},
			{ProductID: "1", Quantity: 0},
		},
	}, "")

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "items", ve.Field)
	assert.Len(t, snapshot(t, store).Orders, before)
}

func TestOrderSave_AltaNacePreparandoYVaAlPrincipio(t *testing.T) {
	store := newStore(t, product("1", 10, 5))
	n := &recordingNotifier{}
	rec := &countingRecorder{}
	uc := usecase.NewOrderUseCase(store, n, rec).WithClock(clock)

	first := saveOrder(t, uc, dto.OrderItemRequest{ProductID: "1", Quantity: 1})
	second, err := uc.Save(context.Background(), dto.SaveOrderRequest{
		Customer: "Ana",
		Status:   entity.OrderStatusEntregue,
		Items:    []dto.OrderItemRequest{{ProductID: "1", Quantity: 2}},
	}, "")
	require.NoError(t, err)

	st := snapshot(t, store)
	require.Len(t, st.Orders, 2)
	assert.Equal(t, second.ID, st.Orders[0].ID.String())
	assert.Equal(t, first.ID, st.Orders[1].ID.String())
	assert.Equal(t, entity.OrderStatusPreparando, st.Orders[0].Status)
	assert.Equal(t, fixedNow, st.Orders[0].Date)
	assert.Equal(t, 5, st.Products[0].Stock, "crear no toca inventario")
	assert.Equal(t, 2, rec.created)
	assert.True(t, n.last().Sound)
	assert.Equal(t, "Pedido criado com sucesso!", n.last().Message)
}

func TestOrderSave_TotalCongelado(t *testing.T) {
	store := newStore(t, product("1", 10, 5))
	orders := usecase.NewOrderUseCase(store, nil, nil)
	items := []dto.OrderItemRequest{{ProductID: "1", Quantity: 3}}

	preview, err := orders.Preview(context.Background(), dto.PreviewOrderRequest{Items: items})
	require.NoError(t, err)
	assert.True(t, preview.Total.Equal(decimal.NewFromInt(30)))

	row := saveOrder(t, orders, items...)
	assert.True(t, row.Total.Equal(decimal.NewFromInt(30)))

	products := usecase.NewProductUseCase(store, nil)
	_, err = products.Save(context.Background(), dto.SaveProductRequest{Name: "Produto 1", Category: "lanche", Price: "20", Stock: "5", Description: "desc"}, "1")
	require.NoError(t, err)

	got, err := orders.GetByID(context.Background(), row.ID)
	require.NoError(t, err)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(30)), "el total no sigue al precio nuevo")
}

func TestOrderSave_EdicionConservaEstadoFechaYPosicion(t *testing.T) {
	store := newStore(t, product("1", 10, 5), product("2", 5, 5))
	uc := usecase.NewOrderUseCase(store, nil, nil).WithClock(clock)
	older := saveOrder(t, uc, dto.OrderItemRequest{ProductID: "1", Quantity: 1})
	saveOrder(t, uc, dto.OrderItemRequest{ProductID: "1", Quantity: 1})
	_, err := uc.Transition(context.Background(), older.ID, entity.OrderStatusCancelado)
	require.NoError(t, err)

	row, err := uc.Save(context.Background(), dto.SaveOrderRequest{
		Customer: "Maria Editada",
		Items:    []dto.OrderItemRequest{{ProductID: "2", Quantity: 2}},
	}, older.ID)
	require.NoError(t, err)

	st := snapshot(t, store)
	assert.Equal(t, older.ID, st.Orders[1].ID.String())
	assert.Equal(t, entity.OrderStatusCancelado, st.Orders[1].Status)
	assert.Equal(t, fixedNow, st.Orders[1].Date)
	assert.Equal(t, "Maria Editada", row.Customer)
	assert.True(t, row.Total.Equal(decimal.NewFromInt(10)))
}

func TestOrderSave_EdicionDePedidoEntregueReajustaInventario(t *testing.T) {
	store := newStore(t, product("1", 10, 10), product("2", 5, 10))
	uc := usecase.NewOrderUseCase(store, nil, nil)
	row := saveOrder(t, uc, dto.OrderItemRequest{ProductID: "1", Quantity: 3})
	_, err := uc.Transition(context.Background(), row.ID, entity.OrderStatusEntregue)
	require.NoError(t, err)

	_, err = uc.Save(context.Background(), dto.SaveOrderRequest{
		Customer: "Maria",
		Items:    []dto.OrderItemRequest{{ProductID: "2", Quantity: 4}},
	}, row.ID)
	require.NoError(t, err)

	st := snapshot(t, store)
	assert.Equal(t, 10, st.Products[0].Stock)
	assert.Equal(t, 0, st.Products[0].Sales)
	assert.Equal(t, 6, st.Products[1].Stock)
	assert.Equal(t, 4, st.Products[1].Sales)
}

// ── Transition ──────────────────────────────────────────────────────────────

func TestTransition_EntregueAplicaUnaSolaVez(t *testing.T) {
	store := newStore(t, product("1", 10, 10), product("2", 5, 10))
	rec := &countingRecorder{}
	uc := usecase.NewOrderUseCase(store, nil, rec).WithClock(clock)
	row := saveOrder(t, uc,
		dto.OrderItemRequest{ProductID: "1", Quantity: 3},
		dto.OrderItemRequest{ProductID: "2", Quantity: 1},
	)

	got, err := uc.Transition(context.Background(), row.ID, entity.OrderStatusEntregue)
	require.NoError(t, err)
	require.NotNil(t, got.UpdatedAt)
	assert.Equal(t, fixedNow, *got.UpdatedAt)

	_, err = uc.Transition(context.Background(), row.ID, entity.OrderStatusEntregue)
	require.NoError(t, err)

	st := snapshot(t, store)
	assert.Equal(t, 7, st.Products[0].Stock)
	assert.Equal(t, 3, st.Products[0].Sales)
	assert.Equal(t, 9, st.Products[1].Stock)
	assert.Equal(t, 1, st.Products[1].Sales)
	assert.Equal(t, []string{"preparando->entregue", "entregue->entregue"}, rec.transitions)
}

func TestTransition_SalirDeEntregueRevierteYReentrarReaplica(t *testing.T) {
	store := newStore(t, product("1", 10, 10))
	uc := usecase.NewOrderUseCase(store, nil, nil)
	row := saveOrder(t, uc, dto.OrderItemRequest{ProductID: "1", Quantity: 2})
	ctx := context.Background()

	_, err := uc.Transition(ctx, row.ID, entity.OrderStatusEntregue)
	require.NoError(t, err)
	_, err = uc.Transition(ctx, row.ID, entity.OrderStatusPreparando)
	require.NoError(t, err)
	st := snapshot(t, store)
	assert.Equal(t, 10, st.Products[0].Stock)
	assert.Equal(t, 0, st.Products[0].Sales)

	_, err = uc.Transition(ctx, row.ID, entity.OrderStatusEntregue)
	require.NoError(t, err)
	st = snapshot(t, store)
	assert.Equal(t, 8, st.Products[0].Stock)
	assert.Equal(t, 2, st.Products[0].Sales)
}

func TestTransition_StockInsuficienteNoCambiaNada(t *testing.T) {
	store := newStore(t, product("1", 10, 1))
	n := &recordingNotifier{}
	uc := usecase.NewOrderUseCase(store, n, nil)
	row := saveOrder(t, uc, dto.OrderItemRequest{ProductID: "1", Quantity: 2})

	_, err := uc.Transition(context.Background(), row.ID, entity.OrderStatusEntregue)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	st := snapshot(t, store)
	assert.Equal(t, entity.OrderStatusPreparando, st.Orders[0].Status)
	assert.Nil(t, st.Orders[0].UpdatedAt)
	assert.Equal(t, 1, st.Products[0].Stock)
	assert.Equal(t, "error", n.last().Level)
}

func TestTransition_OmiteProductosEliminados(t *testing.T) {
	store := newStore(t, product("1", 10, 10), product("2", 5, 10))
	uc := usecase.NewOrderUseCase(store, nil, nil)
	row := saveOrder(t, uc, dto.OrderItemRequest{ProductID: "1", Quantity: 2}, dto.OrderItemRequest{ProductID: "2", Quantity: 1})
	require.NoError(t, usecase.NewProductUseCase(store, nil).Delete(context.Background(), "2"))

	_, err := uc.Transition(context.Background(), row.ID, entity.OrderStatusEntregue)
	require.NoError(t, err)
	assert.Equal(t, 8, snapshot(t, store).Products[0].Stock)
}

func TestTransition_EstadoInvalido(t *testing.T) {
	store := newStore(t, product("1", 10, 10))
	uc := usecase.NewOrderUseCase(store, nil, nil)
	row := saveOrder(t, uc, dto.OrderItemRequest{ProductID: "1", Quantity: 1})

	_, err := uc.Transition(context.Background(), row.ID, "voando")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransition_NotificaEstado(t *testing.T) {
	store := newStore(t, product("1", 10, 10))
	n := &recordingNotifier{}
	uc := usecase.NewOrderUseCase(store, n, nil)
	row := saveOrder(t, uc, dto.OrderItemRequest{ProductID: "1", Quantity: 1})

	_, err := uc.Transition(context.Background(), row.ID, entity.OrderStatusCancelado)
	require.NoError(t, err)
	assert.Equal(t, "Status do pedido "+row.ID+" atualizado para: cancelado", n.last().Message)
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestOrderDelete_NoRevierteInventario(t *testing.T) {
	store := newStore(t, product("1", 10, 10))
	uc := usecase.NewOrderUseCase(store, nil, nil)
	row := saveOrder(t, uc, dto.OrderItemRequest{ProductID: "1", Quantity: 4})
	_, err := uc.Transition(context.Background(), row.ID, entity.OrderStatusEntregue)
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), row.ID))

	st := snapshot(t, store)
	assert.Empty(t, st.Orders)
	assert.Equal(t, 6, st.Products[0].Stock)
	assert.ErrorIs(t, uc.Delete(context.Background(), row.ID), domain.ErrNotFound)
}
