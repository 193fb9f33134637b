// Package auth implementa la puerta de sesión: una credencial fija de demostración ligada a la
// empresa elegida en el login, y la emisión del token de sesión.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/lunchcontrol-api/internal/application/dto"
	"github.com/jhoicas/lunchcontrol-api/internal/application/ports"
	"github.com/jhoicas/lunchcontrol-api/internal/application/state"
	"github.com/jhoicas/lunchcontrol-api/internal/application/view"
	"github.com/jhoicas/lunchcontrol-api/internal/domain"
	"github.com/jhoicas/lunchcontrol-api/internal/domain/entity"
	"github.com/jhoicas/lunchcontrol-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Credential par email/password aceptado. El password se guarda solo como hash bcrypt.
type Credential struct {
	Email string
	hash  []byte
}

// NewCredential hashea el password con el costo indicado (0 = bcrypt.DefaultCost).
func NewCredential(email, password string, cost int) (Credential, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return Credential{}, fmt.Errorf("hash credential: %w", err)
	}
	return Credential{Email: strings.ToLower(strings.TrimSpace(email)), hash: hash}, nil
}

func (c Credential) matches(email, password string) bool {
	pwOK := bcrypt.CompareHashAndPassword(c.hash, []byte(password)) == nil
	return pwOK && strings.EqualFold(strings.TrimSpace(email), c.Email)
}

// Identity identidad fija con la que se abre la sesión.
type Identity struct {
	ID   string
	Name string
}

// AuthUseCase login, logout y validación de la sesión viva.
type AuthUseCase struct {
	store    *state.Store
	cred     Credential
	identity Identity
	jwtCfg   JWTConfig
	notifier ports.Notifier
	recorder ports.Recorder
	now      ports.Clock
}

// NewAuthUseCase construye el caso de uso. notifier y recorder pueden ser nil.
func NewAuthUseCase(store *state.Store, cred Credential, identity Identity, jwtCfg JWTConfig, notifier ports.Notifier, recorder ports.Recorder) *AuthUseCase {
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}
	if recorder == nil {
		recorder = ports.NopRecorder{}
	}
	return &AuthUseCase{store: store, cred: cred, identity: identity, jwtCfg: jwtCfg, notifier: notifier, recorder: recorder, now: time.Now}
}

// Login valida la credencial y la empresa elegida. Cualquier fallo devuelve domain.ErrUnauthorized
// sin indicar qué campo estaba mal.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	company := strings.TrimSpace(in.Company)
	if !uc.cred.matches(in.Email, in.Password) || company == "" {
		return nil, uc.reject(ctx)
	}
	user := entity.SessionUser{
		ID:     entity.ID(uc.identity.ID),
		Name:   uc.identity.Name,
		Email:  uc.cred.Email,
		Role:   entity.RoleAdministrador,
		Avatar: entity.Initials(uc.identity.Name),
	}
	var session dto.SessionResponse
	err := uc.store.Run(ctx, func(st *state.State) error {
		c, ok := st.Companies[company]
		if !ok {
			return domain.ErrUnauthorized
		}
		u := user
		st.Session.CurrentUser = &u
		st.Session.CurrentCompany = c.Key
		session = view.Session(u, c)
		return nil
	})
	if errors.Is(err, domain.ErrUnauthorized) {
		return nil, uc.reject(ctx)
	}
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID.String(), company, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.recorder.LoginAttempt(true)
	uc.notifier.Notify(ctx, ports.Notification{Level: ports.LevelSuccess, Message: "Login realizado com sucesso!", At: uc.now()})
	return &dto.LoginResponse{Token: token, Session: session}, nil
}

// Logout limpia la sesión (memoria y almacén). El resto del estado no cambia.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	if err := uc.store.Logout(ctx); err != nil {
		return err
	}
	uc.notifier.Notify(ctx, ports.Notification{Level: ports.LevelSuccess, Message: "Logout realizado com sucesso!", At: uc.now()})
	return nil
}

// Session sesión activa. domain.ErrUnauthorized si no hay.
func (uc *AuthUseCase) Session(ctx context.Context) (*dto.SessionResponse, error) {
	var out *dto.SessionResponse
	err := uc.store.View(func(st *state.State) error {
		u := st.Session.CurrentUser
		if u == nil {
			return domain.ErrUnauthorized
		}
		s := view.Session(*u, st.CurrentCompany())
		out = &s
		return nil
	})
	return out, err
}

// ValidateSession comprueba que el usuario del token siga siendo el de la sesión viva.
// Un token emitido antes de un logout deja de ser válido.
func (uc *AuthUseCase) ValidateSession(userID string) error {
	return uc.store.View(func(st *state.State) error {
		u := st.Session.CurrentUser
		if u == nil || u.ID.String() != userID {
			return domain.ErrUnauthorized
		}
		return nil
	})
}

func (uc *AuthUseCase) reject(ctx context.Context) error {
	uc.recorder.LoginAttempt(false)
	uc.notifier.Notify(ctx, ports.Notification{Level: ports.LevelError, Message: "Credenciais inválidas!", At: uc.now()})
	return domain.ErrUnauthorized
}
