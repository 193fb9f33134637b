package seed_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lunchcontrol-api/internal/application/analytics"
	"github.com/jhoicas/lunchcontrol-api/internal/application/seed"
	"github.com/jhoicas/lunchcontrol-api/internal/application/state"
	"github.com/jhoicas/lunchcontrol-api/internal/application/usecase"
	"github.com/jhoicas/lunchcontrol-api/internal/domain/entity"
	"github.com/jhoicas/lunchcontrol-api/internal/infrastructure/memory"
)

var now = time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)

func TestApply_CatalogoVacio(t *testing.T) {
	store := state.NewStore(memory.NewKVStore())

	applied, err := seed.Apply(context.Background(), store, now, false)
	require.NoError(t, err)
	assert.True(t, applied)

	_ = store.View(func(st *state.State) error {
		assert.Len(t, st.Products, 6)
		assert.Len(t, st.Orders, 5)
		assert.Len(t, st.Users, 4)
		assert.Equal(t, "Fernanda Lima", st.Orders[0].Customer, "más reciente primero")

		summary := analytics.Dashboard(st, now)
		assert.Equal(t, 5, summary.TotalOrders)
		assert.Equal(t, 2, summary.ActiveOrders)
		assert.Equal(t, "142.6", summary.TotalSales.String())
		return nil
	})
}

func TestApply_NoPisaCatalogoExistente(t *testing.T) {
	store := state.NewStore(memory.NewKVStore())
	require.NoError(t, store.Run(context.Background(), func(st *state.State) error {
		st.Products = []entity.Product{{ID: "x", Name: "Próprio"}}
		return nil
	}))

	applied, err := seed.Apply(context.Background(), store, now, false)
	require.NoError(t, err)
	assert.False(t, applied)

	applied, err = seed.Apply(context.Background(), store, now, true)
	require.NoError(t, err)
	assert.True(t, applied)
	_ = store.View(func(st *state.State) error {
		assert.Len(t, st.Products, 6)
		return nil
	})
}

func TestUsers_PermisosDerivados(t *testing.T) {
	for _, u := range seed.Users() {
		assert.Equal(t, entity.PermissionsFor(u.Role), u.Permissions, u.Email)
	}
}

// Los pedidos entregues de la demo ya están contados: salir y volver a "entregue" no duplica ventas.
func TestApply_EntreguesNoSeCuentanDosVeces(t *testing.T) {
	ctx := context.Background()
	store := state.NewStore(memory.NewKVStore())
	_, err := seed.Apply(ctx, store, now, false)
	require.NoError(t, err)
	require.NoError(t, store.Run(ctx, func(st *state.State) error {
		st.Session.CurrentUser = &entity.SessionUser{ID: "1", Name: "João Silva", Role: entity.RoleAdministrador}
		return nil
	}))

	stockSales := func() (int, int) {
		var stock, sales int
		_ = store.View(func(st *state.State) error {
			p := entity.FindProduct(st.Products, "2")
			stock, sales = p.Stock, p.Sales
			return nil
		})
		return stock, sales
	}
	seedStock, seedSales := stockSales()

	orders := usecase.NewOrderUseCase(store, nil, nil)
	_, err = orders.Transition(ctx, "5", entity.OrderStatusPreparando)
	require.NoError(t, err)
	_, err = orders.Transition(ctx, "5", entity.OrderStatusEntregue)
	require.NoError(t, err)

	stock, sales := stockSales()
	assert.Equal(t, seedStock, stock)
	assert.Equal(t, seedSales, sales)
}
