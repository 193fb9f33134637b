package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/lunchcontrol-api/internal/application/dto"
	"github.com/jhoicas/lunchcontrol-api/internal/application/usecase"
	"github.com/jhoicas/lunchcontrol-api/internal/domain"
	"github.com/jhoicas/lunchcontrol-api/internal/domain/entity"
)

func newUserUseCase(t *testing.T) (*usecase.UserUseCase, *recordingNotifier) {
	t.Helper()
	n := &recordingNotifier{}
	return usecase.NewUserUseCase(newStore(t), n, bcrypt.MinCost), n
}

func validUser(role string) dto.SaveUserRequest {
	return dto.SaveUserRequest{Name: "Carlos Souza", Email: "carlos@lanchonete.com", Password: "segredo", PasswordConfirm: "segredo", Role: role, Status: entity.UserStatusAtivo}
}

func TestUserSave_SenhasDiferentesNoModifica(t *testing.T) {
	uc, n := newUserUseCase(t)
	in := validUser(entity.RoleAtendente)
	in.PasswordConfirm = "outra"

	_, err := uc.Save(context.Background(), in, "")
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "As senhas não coincidem!", ve.Message)
	assert.Equal(t, "As senhas não coincidem!", n.last().Message)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Zero(t, list.Total)
}

func TestUserSave_PermisosSiempreDerivadosDelRol(t *testing.T) {
	uc, _ := newUserUseCase(t)
	ctx := context.Background()

	row, err := uc.Save(ctx, validUser(entity.RoleAdministrador), "")
	require.NoError(t, err)
	assert.Equal(t, []string{entity.PermissionAll}, row.Permissions)

	for _, role := range []string{entity.RoleAtendente, entity.RoleGerente, "estagiario", entity.RoleAdministrador} {
		in := validUser(role)
		in.Password, in.PasswordConfirm = "", ""
		row, err = uc.Save(ctx, in, row.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.PermissionsFor(role), row.Permissions, role)
	}
}

func TestUserSave_EdicionSinPasswordConservaHash(t *testing.T) {
	store := newStore(t)
	uc := usecase.NewUserUseCase(store, nil, bcrypt.MinCost)
	row, err := uc.Save(context.Background(), validUser(entity.RoleGerente), "")
	require.NoError(t, err)
	hash := snapshot(t, store).Users[0].PasswordHash
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("segredo")))

	in := validUser(entity.RoleGerente)
	in.Name = "Carlos S."
	in.Password, in.PasswordConfirm = "", ""
	_, err = uc.Save(context.Background(), in, row.ID)
	require.NoError(t, err)

	u := snapshot(t, store).Users[0]
	assert.Equal(t, hash, u.PasswordHash)
	assert.Equal(t, "Carlos S.", u.Name)
}

func TestUserSave_AltaRequierePassword(t *testing.T) {
	uc, _ := newUserUseCase(t)
	in := validUser(entity.RoleAtendente)
	in.Password, in.PasswordConfirm = "", ""

	_, err := uc.Save(context.Background(), in, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserSave_EmailDuplicado(t *testing.T) {
	uc, _ := newUserUseCase(t)
	_, err := uc.Save(context.Background(), validUser(entity.RoleAtendente), "")
	require.NoError(t, err)

	in := validUser(entity.RoleGerente)
	in.Email = "CARLOS@lanchonete.com"
	_, err = uc.Save(context.Background(), in, "")
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserSave_StatusInvalido(t *testing.T) {
	uc, _ := newUserUseCase(t)
	in := validUser(entity.RoleAtendente)
	in.Status = "suspenso"
	_, err := uc.Save(context.Background(), in, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserDelete(t *testing.T) {
	uc, n := newUserUseCase(t)
	row, err := uc.Save(context.Background(), validUser(entity.RoleAtendente), "")
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), row.ID))
	assert.Equal(t, "Usuário excluído com sucesso!", n.last().Message)
	_, err = uc.GetByID(context.Background(), row.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
