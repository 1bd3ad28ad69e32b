package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almacen/internal/application/auth"
	"almacen/internal/application/dto"
	"almacen/internal/domain"
	"almacen/internal/domain/entity"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func newAuthUC() (*fakeUserRepo, *auth.AuthUseCase) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "secret-de-test",
		ExpMinutes: 60,
		Issuer:     "almacen-test",
	})
	return repo, uc
}

// TestRegisterUser el registro hashea la contraseña y normaliza el email.
func TestRegisterUser(t *testing.T) {
	repo, uc := newAuthUC()

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Name:     "Ana",
		Email:    "  ANA@Ejemplo.com ",
		Password: "s3creta",
	})

	require.NoError(t, err)
	assert.Equal(t, "ana@ejemplo.com", out.Email, "el email se guarda normalizado")
	assert.Equal(t, "active", out.Status)

	stored := repo.byEmail["ana@ejemplo.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3creta", stored.PasswordHash, "nunca se guarda la contraseña en claro")
}

// TestRegisterUser_EmailDuplicado el email es único.
func TestRegisterUser_EmailDuplicado(t *testing.T) {
	_, uc := newAuthUC()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@ejemplo.com", Password: "x1"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ANA@ejemplo.com", Password: "x2"})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists, "la unicidad ignora mayúsculas")
}

// TestLogin credenciales correctas devuelven token y usuario.
func TestLogin(t *testing.T) {
	_, uc := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{Name: "Ana", Email: "ana@ejemplo.com", Password: "s3creta"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@ejemplo.com", Password: "s3creta"})

	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@ejemplo.com", out.User.Email)
}

// TestLogin_PasswordIncorrecta.
func TestLogin_PasswordIncorrecta(t *testing.T) {
	_, uc := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@ejemplo.com", Password: "s3creta"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@ejemplo.com", Password: "otra"})

	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

// TestLogin_UsuarioInexistente.
func TestLogin_UsuarioInexistente(t *testing.T) {
	_, uc := newAuthUC()

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@ejemplo.com", Password: "x"})

	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

// TestLogin_UsuarioInactivo un usuario desactivado no puede entrar aunque
// la contraseña sea correcta.
func TestLogin_UsuarioInactivo(t *testing.T) {
	repo, uc := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@ejemplo.com", Password: "s3creta"})
	require.NoError(t, err)
	repo.byEmail["ana@ejemplo.com"].Status = "inactive"

	_, err = uc.Login(dto.LoginRequest{Email: "ana@ejemplo.com", Password: "s3creta"})

	require.ErrorIs(t, err, domain.ErrUnauthorized)
}
