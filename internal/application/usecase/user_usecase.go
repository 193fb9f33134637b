package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/lunchcontrol-api/internal/application/dto"
	"github.com/jhoicas/lunchcontrol-api/internal/application/ports"
	"github.com/jhoicas/lunchcontrol-api/internal/application/state"
	"github.com/jhoicas/lunchcontrol-api/internal/application/view"
	"github.com/jhoicas/lunchcontrol-api/internal/domain"
	"github.com/jhoicas/lunchcontrol-api/internal/domain/entity"
)

// UserUseCase aplica reglas de negocio para usuarios gestionados.
type UserUseCase struct {
	store *state.Store
	cost  int
	notifier
}

// NewUserUseCase construye el caso de uso. cost es el costo bcrypt (0 = bcrypt.DefaultCost).
func NewUserUseCase(store *state.Store, n ports.Notifier, cost int) *UserUseCase {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &UserUseCase{store: store, cost: cost, notifier: newNotifier(n)}
}

// List usuarios en orden de alta.
func (uc *UserUseCase) List(ctx context.Context) (*dto.UserListResponse, error) {
	var out *dto.UserListResponse
	err := uc.store.View(func(st *state.State) error {
		if _, err := st.RequireSession(); err != nil {
			return err
		}
		rows := view.UserRows(st.Users)
		out = &dto.UserListResponse{Items: rows, Total: len(rows)}
		return nil
	})
	return out, err
}

// GetByID obtiene un usuario. domain.ErrNotFound si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserRow, error) {
	var out *dto.UserRow
	err := uc.store.View(func(st *state.State) error {
		if _, err := st.RequireSession(); err != nil {
			return err
		}
		i := entity.FindUser(st.Users, entity.ID(id))
		if i < 0 {
			return domain.ErrNotFound
		}
		row := view.UserRow(st.Users[i])
		out = &row
		return nil
	})
	return out, err
}

// Save crea o edita un usuario. Permissions se recalcula siempre desde Role.
// Al editar, un password vacío conserva el hash anterior.
func (uc *UserUseCase) Save(ctx context.Context, in dto.SaveUserRequest, existingID string) (*dto.UserRow, error) {
	if err := uc.store.RequireSession(); err != nil {
		return nil, err
	}
	u, err := uc.validate(in, existingID == "")
	if err != nil {
		return nil, uc.fail(ctx, err)
	}
	var saved entity.User
	err = uc.store.Run(ctx, func(st *state.State) error {
		if _, err := st.RequireSession(); err != nil {
			return err
		}
		for _, other := range st.Users {
			if other.ID != entity.ID(existingID) && strings.EqualFold(other.Email, u.Email) {
				return domain.ErrEmailAlreadyExists
			}
		}
		if existingID == "" {
			u.ID = entity.NewID()
			st.Users = append(st.Users, u)
			saved = u
			return nil
		}
		i := entity.FindUser(st.Users, entity.ID(existingID))
		if i < 0 {
			return domain.ErrNotFound
		}
		u.ID = st.Users[i].ID
		if u.PasswordHash == "" {
			u.PasswordHash = st.Users[i].PasswordHash
		}
		st.Users[i] = u
		saved = u
		return nil
	})
	if err != nil {
		return nil, uc.fail(ctx, err)
	}
	if existingID == "" {
		uc.success(ctx, "Usuário criado com sucesso!")
	} else {
		uc.success(ctx, "Usuário atualizado com sucesso!")
	}
	row := view.UserRow(saved)
	return &row, nil
}

// Delete elimina el usuario.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	err := uc.store.Run(ctx, func(st *state.State) error {
		if _, err := st.RequireSession(); err != nil {
			return err
		}
		i := entity.FindUser(st.Users, entity.ID(id))
		if i < 0 {
			return domain.ErrNotFound
		}
		st.Users = append(st.Users[:i], st.Users[i+1:]...)
		return nil
	})
	if err != nil {
		return err
	}
	uc.success(ctx, "Usuário excluído com sucesso!")
	return nil
}

func (uc *UserUseCase) validate(in dto.SaveUserRequest, creating bool) (entity.User, error) {
	if in.Password != in.PasswordConfirm {
		return entity.User{}, domain.NewValidationError("password_confirm", "As senhas não coincidem!")
	}
	if err := required("name", "Informe o nome do usuário!", in.Name); err != nil {
		return entity.User{}, err
	}
	if err := required("email", "Informe o email do usuário!", in.Email); err != nil {
		return entity.User{}, err
	}
	if creating && in.Password == "" {
		return entity.User{}, domain.NewValidationError("password", "Informe a senha do usuário!")
	}
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = entity.UserStatusAtivo
	}
	if status != entity.UserStatusAtivo && status != entity.UserStatusInativo {
		return entity.User{}, domain.NewValidationError("status", "Status inválido!")
	}
	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = entity.RoleAtendente
	}
	u := entity.User{
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		Role:        role,
		Status:      status,
		Permissions: entity.PermissionsFor(role),
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
		if err != nil {
			return entity.User{}, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = string(hash)
	}
	return u, nil
}
