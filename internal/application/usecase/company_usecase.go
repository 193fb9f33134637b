package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/lunchcontrol-api/internal/application/dto"
	"github.com/jhoicas/lunchcontrol-api/internal/application/ports"
	"github.com/jhoicas/lunchcontrol-api/internal/application/state"
	"github.com/jhoicas/lunchcontrol-api/internal/application/view"
	"github.com/jhoicas/lunchcontrol-api/internal/domain"
)

// CompanyUseCase empresas (locales). Cambiar de empresa no reinicia catálogo, pedidos ni usuarios.
type CompanyUseCase struct {
	store *state.Store
	notifier
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(store *state.Store, n ports.Notifier) *CompanyUseCase {
	return &CompanyUseCase{store: store, notifier: newNotifier(n)}
}

// List empresas disponibles ordenadas por clave. No requiere sesión (selector del login).
func (uc *CompanyUseCase) List(ctx context.Context) (*dto.CompanyListResponse, error) {
	out := &dto.CompanyListResponse{}
	err := uc.store.View(func(st *state.State) error {
		for _, c := range st.Companies {
			out.Items = append(out.Items, view.Company(c, st.Session.CurrentCompany))
		}
		return nil
	})
	sort.Slice(out.Items, func(i, j int) bool { return out.Items[i].Key < out.Items[j].Key })
	return out, err
}

// Current empresa activa de la sesión.
func (uc *CompanyUseCase) Current(ctx context.Context) (*dto.CompanyResponse, error) {
	var out *dto.CompanyResponse
	err := uc.store.View(func(st *state.State) error {
		if _, err := st.RequireSession(); err != nil {
			return err
		}
		c := view.Company(st.CurrentCompany(), st.Session.CurrentCompany)
		out = &c
		return nil
	})
	return out, err
}

// Switch cambia la empresa activa. domain.ErrNotFound si la clave no existe.
func (uc *CompanyUseCase) Switch(ctx context.Context, key string) (*dto.CompanyResponse, error) {
	var out dto.CompanyResponse
	err := uc.store.Run(ctx, func(st *state.State) error {
		if _, err := st.RequireSession(); err != nil {
			return err
		}
		c, ok := st.Companies[strings.TrimSpace(key)]
		if !ok {
			return domain.ErrNotFound
		}
		st.Session.CurrentCompany = c.Key
		out = view.Company(c, c.Key)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.success(ctx, "Empresa alterada para: "+out.Name)
	return &out, nil
}

// SaveSettings actualiza los datos de la empresa activa.
func (uc *CompanyUseCase) SaveSettings(ctx context.Context, in dto.SaveCompanySettingsRequest) (*dto.CompanyResponse, error) {
	if err := uc.store.RequireSession(); err != nil {
		return nil, err
	}
	if err := required("name", "Informe o nome da empresa!", in.Name); err != nil {
		return nil, uc.fail(ctx, err)
	}
	var out dto.CompanyResponse
	err := uc.store.Run(ctx, func(st *state.State) error {
		if _, err := st.RequireSession(); err != nil {
			return err
		}
		c := st.CurrentCompany()
		c.Name = strings.TrimSpace(in.Name)
		c.CNPJ = strings.TrimSpace(in.CNPJ)
		c.Phone = strings.TrimSpace(in.Phone)
		c.Address = strings.TrimSpace(in.Address)
		st.Companies[c.Key] = c
		out = view.Company(c, c.Key)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.success(ctx, "Configurações da empresa salvas!")
	return &out, nil
}
