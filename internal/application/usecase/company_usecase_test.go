package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lunchcontrol-api/internal/application/dto"
	"github.com/jhoicas/lunchcontrol-api/internal/application/usecase"
	"github.com/jhoicas/lunchcontrol-api/internal/domain"
	"github.com/jhoicas/lunchcontrol-api/internal/domain/entity"
	"github.com/jhoicas/lunchcontrol-api/internal/infrastructure/memory"
)

// ── Companies ───────────────────────────────────────────────────────────────

func TestCompanyList_NoRequiereSesion(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newAnonymousStore(), nil)
	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Items, 4)
	assert.Equal(t, "burger-king", list.Items[0].Key)
	for _, c := range list.Items {
		assert.Equal(t, c.Key == entity.DefaultCompanyKey, c.Current)
	}
}

func TestCompanySwitch_NoReiniciaCatalogo(t *testing.T) {
	store := newStore(t, product("1", 10, 5))
	n := &recordingNotifier{}
	uc := usecase.NewCompanyUseCase(store, n)

	c, err := uc.Switch(context.Background(), "subway")
	require.NoError(t, err)
	assert.True(t, c.Current)
	assert.Equal(t, "Empresa alterada para: Subway", n.last().Message)

	st := snapshot(t, store)
	assert.Equal(t, "subway", st.Session.CurrentCompany)
	assert.Len(t, st.Products, 1)

	_, err = uc.Switch(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanySaveSettings(t *testing.T) {
	store := newStore(t)
	uc := usecase.NewCompanyUseCase(store, nil)

	_, err := uc.SaveSettings(context.Background(), dto.SaveCompanySettingsRequest{Name: "A+Burgers Centro", CNPJ: "12.345.678/0001-90", Phone: "(11) 3333-4444"})
	require.NoError(t, err)

	cur, err := uc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A+Burgers Centro", cur.Name)
	assert.Equal(t, "12.345.678/0001-90", cur.CNPJ)

	_, err = uc.SaveSettings(context.Background(), dto.SaveCompanySettingsRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Settings ────────────────────────────────────────────────────────────────

func TestSettingsSave(t *testing.T) {
	uc := usecase.NewSettingsUseCase(newStore(t), nil)
	ctx := context.Background()

	got, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 15, got.PrepTime)

	saved, err := uc.Save(ctx, dto.SaveSettingsRequest{PrepTime: "20", DeliveryFee: "7,50"})
	require.NoError(t, err)
	assert.Equal(t, 20, saved.PrepTime)
	assert.Equal(t, "7.5", saved.DeliveryFee.String())
	assert.Equal(t, entity.AutoStatusManual, saved.AutoStatus)

	_, err = uc.Save(ctx, dto.SaveSettingsRequest{PrepTime: "-1", DeliveryFee: "5"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Save(ctx, dto.SaveSettingsRequest{PrepTime: "10", DeliveryFee: "5", AutoStatus: "turbo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsGet_SinSesion(t *testing.T) {
	_, err := usecase.NewSettingsUseCase(newAnonymousStore(), nil).Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ── Preferences ─────────────────────────────────────────────────────────────

func TestPreferencesTheme(t *testing.T) {
	kv := memory.NewKVStore()
	n := &recordingNotifier{}
	uc := usecase.NewPreferencesUseCase(kv, n)
	ctx := context.Background()

	cur, err := uc.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ThemeLight, cur.Theme)

	next, err := uc.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ThemeDark, next.Theme)
	assert.Equal(t, "Tema alterado para escuro", n.last().Message)

	v, ok, _ := kv.Get(ctx, "theme")
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	_, err = uc.SetTheme(ctx, "sepia")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
