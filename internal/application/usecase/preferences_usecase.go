package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/lunchcontrol-api/internal/application/dto"
	"github.com/jhoicas/lunchcontrol-api/internal/application/ports"
	"github.com/jhoicas/lunchcontrol-api/internal/domain"
	"github.com/jhoicas/lunchcontrol-api/internal/domain/entity"
	"github.com/jhoicas/lunchcontrol-api/internal/domain/repository"
)

// PreferencesUseCase preferencias de presentación que viven fuera del snapshot (clave "theme").
// No requieren sesión: la pantalla de login también respeta el tema.
type PreferencesUseCase struct {
	kv repository.KeyValueStore
	notifier
}

// NewPreferencesUseCase construye el caso de uso.
func NewPreferencesUseCase(kv repository.KeyValueStore, n ports.Notifier) *PreferencesUseCase {
	return &PreferencesUseCase{kv: kv, notifier: newNotifier(n)}
}

// Theme tema vigente; "light" si no hay valor o el guardado no es válido.
func (uc *PreferencesUseCase) Theme(ctx context.Context) (*dto.ThemeResponse, error) {
	v, ok, err := uc.kv.Get(ctx, repository.KeyTheme)
	if err != nil {
		return nil, fmt.Errorf("get theme: %w", err)
	}
	if !ok || (v != entity.ThemeLight && v != entity.ThemeDark) {
		v = entity.ThemeLight
	}
	return &dto.ThemeResponse{Theme: v}, nil
}

// SetTheme guarda el tema ("light" o "dark").
func (uc *PreferencesUseCase) SetTheme(ctx context.Context, theme string) (*dto.ThemeResponse, error) {
	if theme != entity.ThemeLight && theme != entity.ThemeDark {
		return nil, uc.fail(ctx, domain.NewValidationError("theme", "Tema inválido!"))
	}
	if err := uc.kv.Set(ctx, repository.KeyTheme, theme); err != nil {
		return nil, fmt.Errorf("set theme: %w", err)
	}
	if theme == entity.ThemeDark {
		uc.success(ctx, "Tema alterado para escuro")
	} else {
		uc.success(ctx, "Tema alterado para claro")
	}
	return &dto.ThemeResponse{Theme: theme}, nil
}

// Toggle alterna entre claro y escuro.
func (uc *PreferencesUseCase) Toggle(ctx context.Context) (*dto.ThemeResponse, error) {
	cur, err := uc.Theme(ctx)
	if err != nil {
		return nil, err
	}
	next := entity.ThemeDark
	if cur.Theme == entity.ThemeDark {
		next = entity.ThemeLight
	}
	return uc.SetTheme(ctx, next)
}
