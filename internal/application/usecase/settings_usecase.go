package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/lunchcontrol-api/internal/application/dto"
	"github.com/jhoicas/lunchcontrol-api/internal/application/ports"
	"github.com/jhoicas/lunchcontrol-api/internal/application/state"
	"github.com/jhoicas/lunchcontrol-api/internal/domain"
	"github.com/jhoicas/lunchcontrol-api/internal/domain/entity"
)

// SettingsUseCase configuración operativa del sistema.
type SettingsUseCase struct {
	store *state.Store
	notifier
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(store *state.Store, n ports.Notifier) *SettingsUseCase {
	return &SettingsUseCase{store: store, notifier: newNotifier(n)}
}

// Get configuración vigente.
func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	var out *dto.SettingsResponse
	err := uc.store.View(func(st *state.State) error {
		if _, err := st.RequireSession(); err != nil {
			return err
		}
		out = toSettingsResponse(st.Settings)
		return nil
	})
	return out, err
}

// Save reemplaza la configuración. AutoStatus vacío conserva el valor actual.
func (uc *SettingsUseCase) Save(ctx context.Context, in dto.SaveSettingsRequest) (*dto.SettingsResponse, error) {
	if err := uc.store.RequireSession(); err != nil {
		return nil, err
	}
	prep, err := parseCount("prep_time", "Tempo de preparo inválido!", in.PrepTime)
	if err != nil {
		return nil, uc.fail(ctx, err)
	}
	fee, err := parseMoney("delivery_fee", "Taxa de entrega inválida!", in.DeliveryFee)
	if err != nil {
		return nil, uc.fail(ctx, err)
	}
	mode := strings.TrimSpace(in.AutoStatus)
	if mode != "" && mode != entity.AutoStatusManual && mode != entity.AutoStatusAuto {
		return nil, uc.fail(ctx, domain.NewValidationError("auto_status", "Modo de status inválido!"))
	}
	var out *dto.SettingsResponse
	err = uc.store.Run(ctx, func(st *state.State) error {
		if _, err := st.RequireSession(); err != nil {
			return err
		}
		if mode == "" {
			mode = st.Settings.AutoStatus
		}
		st.Settings = entity.Settings{PrepTime: prep, DeliveryFee: fee, AutoStatus: mode}
		out = toSettingsResponse(st.Settings)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.success(ctx, "Configurações do sistema salvas!")
	return out, nil
}

func toSettingsResponse(s entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{PrepTime: s.PrepTime, DeliveryFee: s.DeliveryFee, AutoStatus: s.AutoStatus}
}
