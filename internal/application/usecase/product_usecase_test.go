package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lunchcontrol-api/internal/application/dto"
	"github.com/jhoicas/lunchcontrol-api/internal/application/ports"
	"github.com/jhoicas/lunchcontrol-api/internal/application/usecase"
	"github.com/jhoicas/lunchcontrol-api/internal/domain"
)

func validProduct() dto.SaveProductRequest {
	return dto.SaveProductRequest{Name: "X-Bacon", Category: "lanche", Price: "22,50", Stock: "10", Description: "Pão, carne e bacon"}
}

// ── Save (alta) ─────────────────────────────────────────────────────────────

func TestProductSave_CreaConSalesCeroEIDNuevo(t *testing.T) {
	store := newStore(t, product("p1", 10, 5), product("p2", 8, 5))
	n := &recordingNotifier{}
	uc := usecase.NewProductUseCase(store, n)

	row, err := uc.Save(context.Background(), validProduct(), "")
	require.NoError(t, err)

	st := snapshot(t, store)
	require.Len(t, st.Products, 3)
	created := st.Products[2]
	assert.Equal(t, 0, created.Sales)
	assert.NotEqual(t, "p1", created.ID.String())
	assert.NotEqual(t, "p2", created.ID.String())
	assert.Equal(t, created.ID.String(), row.ID)
	assert.Equal(t, "22.5", created.Price.String())
	assert.Equal(t, "Produto criado com sucesso!", n.last().Message)
}

func TestProductSave_EdicionConservaSales(t *testing.T) {
	p := product("p1", 10, 5)
	p.Sales = 42
	store := newStore(t, p)
	uc := usecase.NewProductUseCase(store, nil)

	in := validProduct()
	in.Stock = "3"
	_, err := uc.Save(context.Background(), in, "p1")
	require.NoError(t, err)

	st := snapshot(t, store)
	require.Len(t, st.Products, 1)
	assert.Equal(t, 42, st.Products[0].Sales)
	assert.Equal(t, 3, st.Products[0].Stock)
	assert.Equal(t, "X-Bacon", st.Products[0].Name)
}

func TestProductSave_ValidacionNoModificaCatalogo(t *testing.T) {
	cases := map[string]func(*dto.SaveProductRequest){
		"precio negativo":    func(r *dto.SaveProductRequest) { r.Price = "-1" },
		"precio no numérico": func(r *dto.SaveProductRequest) { r.Price = "abc" },
		"stock decimal":      func(r *dto.SaveProductRequest) { r.Stock = "1.5" },
		"stock negativo":     func(r *dto.SaveProductRequest) { r.Stock = "-2" },
		"sin nombre":         func(r *dto.SaveProductRequest) { r.Name = "  " },
		"sin categoría":      func(r *dto.SaveProductRequest) { r.Category = "" },
		"sin descripción":    func(r *dto.SaveProductRequest) { r.Description = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			store := newStore(t, product("p1", 10, 5))
			n := &recordingNotifier{}
			uc := usecase.NewProductUseCase(store, n)
			in := validProduct()
			mutate(&in)

			_, err := uc.Save(context.Background(), in, "")
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Len(t, snapshot(t, store).Products, 1)
			assert.Equal(t, ports.LevelWarning, n.last().Level)
		})
	}
}

func TestProductSave_EdicionDeIDInexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newStore(t), nil)
	_, err := uc.Save(context.Background(), validProduct(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductSave_SinSesionEsAccesoDenegado(t *testing.T) {
	uc := usecase.NewProductUseCase(newAnonymousStore(), nil)
	_, err := uc.Save(context.Background(), validProduct(), "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestProductDelete_NoCascadeEnPedidos(t *testing.T) {
	store := newStore(t, product("p1", 10, 5), product("p2", 4, 5))
	orders := usecase.NewOrderUseCase(store, nil, nil).WithClock(clock)
	_, err := orders.Save(context.Background(), dto.SaveOrderRequest{
		Customer: "Maria",
		Items:    []dto.OrderItemRequest{{ProductID: "p1", Quantity: 1}, {ProductID: "p2", Quantity: 2}},
	}, "")
	require.NoError(t, err)

	uc := usecase.NewProductUseCase(store, nil)
	require.NoError(t, uc.Delete(context.Background(), "p1"))

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	for _, row := range list.Items {
		assert.NotEqual(t, "p1", row.ID)
	}
	st := snapshot(t, store)
	require.Len(t, st.Orders, 1)
	assert.Len(t, st.Orders[0].Items, 2, "el pedido conserva la referencia colgante")

	preview, err := orders.Preview(context.Background(), dto.PreviewOrderRequest{Items: []dto.OrderItemRequest{{ProductID: "p1", Quantity: 3}, {ProductID: "p2", Quantity: 1}}})
	require.NoError(t, err)
	assert.Equal(t, "4", preview.Total.String())
}

func TestProductDelete_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newStore(t), nil)
	assert.ErrorIs(t, uc.Delete(context.Background(), "x"), domain.ErrNotFound)
}
