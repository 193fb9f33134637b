package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lunchcontrol-api/internal/application/ports"
	"github.com/jhoicas/lunchcontrol-api/internal/application/state"
	"github.com/jhoicas/lunchcontrol-api/internal/domain/entity"
	"github.com/jhoicas/lunchcontrol-api/internal/infrastructure/memory"
)

// recordingNotifier guarda los avisos publicados.
type recordingNotifier struct {
	mu    sync.Mutex
	items []ports.Notification
}

func (r *recordingNotifier) Notify(_ context.Context, n ports.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

func (r *recordingNotifier) last() ports.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return ports.Notification{}
	}
	return r.items[len(r.items)-1]
}

var fixedNow = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// newStore estado con sesión activa y el catálogo indicado.
func newStore(t *testing.T, products ...entity.Product) *state.Store {
	t.Helper()
	store := state.NewStore(memory.NewKVStore())
	err := store.Run(context.Background(), func(st *state.State) error {
		st.Session.CurrentUser = &entity.SessionUser{ID: "1", Name: "João Silva", Email: "admin@demo.com", Role: entity.RoleAdministrador, Avatar: "JS"}
		st.Products = append(st.Products, products...)
		return nil
	})
	require.NoError(t, err)
	return store
}

// newAnonymousStore estado sin sesión.
func newAnonymousStore() *state.Store {
	return state.NewStore(memory.NewKVStore())
}

func product(id string, price int64, stock int) entity.Product {
	return entity.Product{ID: entity.ID(id), Name: "Produto " + id, Category: entity.CategoryLanche, Price: decimal.NewFromInt(price), Stock: stock, Description: "desc"}
}

func snapshot(t *testing.T, store *state.Store) *state.State {
	t.Helper()
	var out *state.State
	require.NoError(t, store.View(func(st *state.State) error {
		out = st.Clone()
		return nil
	}))
	return out
}
