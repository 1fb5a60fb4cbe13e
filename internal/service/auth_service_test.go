package service

import (
	"context"
	"testing"

	"viewspos/internal/config"
	"viewspos/internal/dto"
	"viewspos/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}

func newAuthFixture() (*fakeUsuarioRepo, AuthService) {
	repo := &fakeUsuarioRepo{}
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 12}
	return repo, NewAuthService(repo, cfg)
}

func TestLoginPrimerUsuarioGana(t *testing.T) {
	_, svc := newAuthFixture()

	// Dos usuarios con el mismo PIN: gana el creado primero.
	primero, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Nombre: "Helen", PIN: "4455", Rol: model.RolRecepcionista,
	})
	require.NoError(t, err)
	_, err = svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Nombre: "Mario", PIN: "4455", Rol: model.RolRecepcionista,
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{PIN: "4455"})
	require.NoError(t, err)
	assert.Equal(t, primero.ID, resp.User.ID)
	assert.Equal(t, "Helen", resp.User.Nombre)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 12*3600, resp.ExpiresIn)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestLoginPINIncorrecto(t *testing.T) {
	_, svc := newAuthFixture()
	_, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Nombre: "Helen", PIN: "4455", Rol: model.RolRecepcionista,
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{PIN: "0000"})
	assert.Error(t, err)
}

func TestSuperAdminNoSePuedeEliminar(t *testing.T) {
	repo, svc := newAuthFixture()

	admin := &model.Usuario{Nombre: "Diego (Admin)", PIN: "2211", Rol: model.RolAdmin, SuperAdmin: true}
	require.NoError(t, repo.Create(context.Background(), admin))

	err := svc.EliminarUsuario(context.Background(), admin.ID)
	assert.ErrorIs(t, err, ErrProhibido)
	usuarios, _ := repo.List(context.Background())
	assert.Len(t, usuarios, 1)
}

func TestSuperAdminConservaRol(t *testing.T) {
	repo, svc := newAuthFixture()

	admin := &model.Usuario{Nombre: "Diego (Admin)", PIN: "2211", Rol: model.RolAdmin, SuperAdmin: true}
	require.NoError(t, repo.Create(context.Background(), admin))

	resp, err := svc.ActualizarUsuario(context.Background(), admin.ID, dto.ActualizarUsuarioRequest{
		Nombre: "Diego (Admin)", PIN: "9999", Rol: model.RolRecepcionista,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RolAdmin, resp.Rol)
	assert.True(t, resp.SuperAdmin)

	// El nuevo PIN si aplica.
	login, err := svc.Login(context.Background(), dto.LoginRequest{PIN: "9999"})
	require.NoError(t, err)
	assert.Equal(t, admin.ID.String(), login.User.ID)
}

func TestActualizarUsuarioNormal(t *testing.T) {
	_, svc := newAuthFixture()

	creado, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Nombre: "Helen", PIN: "4455", Rol: model.RolRecepcionista,
	})
	require.NoError(t, err)

	id := mustUUID(t, creado.ID)
	resp, err := svc.ActualizarUsuario(context.Background(), id, dto.ActualizarUsuarioRequest{
		Nombre: "Helen", PIN: "4455", Rol: model.RolAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RolAdmin, resp.Rol)
}

func TestEliminarUsuarioNormal(t *testing.T) {
	repo, svc := newAuthFixture()

	creado, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Nombre: "Mario", PIN: "1234", Rol: model.RolRecepcionista,
	})
	require.NoError(t, err)

	require.NoError(t, svc.EliminarUsuario(context.Background(), mustUUID(t, creado.ID)))
	usuarios, _ := repo.List(context.Background())
	assert.Empty(t, usuarios)
}

func TestUsuarioInexistenteEsNoEncontrado(t *testing.T) {
	_, svc := newAuthFixture()

	_, err := svc.ActualizarUsuario(context.Background(), uuid.New(), dto.ActualizarUsuarioRequest{
		Nombre: "Nadie", PIN: "0000", Rol: model.RolRecepcionista,
	})
	assert.ErrorIs(t, err, ErrNoEncontrado)
	assert.ErrorIs(t, svc.EliminarUsuario(context.Background(), uuid.New()), ErrNoEncontrado)
}
