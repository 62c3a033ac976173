package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jvalencia/crm-ventas/internal/application/auth"
	"github.com/jvalencia/crm-ventas/internal/application/dto"
	"github.com/jvalencia/crm-ventas/internal/domain"
	"github.com/jvalencia/crm-ventas/internal/infrastructure/memory"
	pkgjwt "github.com/jvalencia/crm-ventas/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "crm-ventas-test"
)

func newAuthUC() (*auth.UseCase, *memory.UserRepo) {
	repo := memory.NewUserRepository()
	uc := auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
	return uc, repo
}

func registrar(t *testing.T, uc *auth.UseCase) *dto.UserResponse {
	t.Helper()
	out, err := uc.Register(dto.RegisterRequest{
		Name:     "Juan",
		Surname:  "Valencia",
		Email:    "juan@crm.com",
		Password: "secreto123",
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_HasheaElPassword(t *testing.T) {
	uc, repo := newAuthUC()
	out := registrar(t, uc)

	stored, err := repo.GetByEmail("juan@crm.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
	assert.NotEmpty(t, out.ID)
}

func TestRegister_EmailDuplicado_RetornaConflicto(t *testing.T) {
	uc, _ := newAuthUC()
	registrar(t, uc)

	_, err := uc.Register(dto.RegisterRequest{
		Name:     "Otro",
		Email:    "juan@crm.com",
		Password: "otropass123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas_RetornaTokenConClaims(t *testing.T) {
	uc, _ := newAuthUC()
	user := registrar(t, uc)

	out, err := uc.Login(dto.LoginRequest{Email: "juan@crm.com", Password: "secreto123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, user.ID, out.User.ID)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "juan@crm.com", claims.Email)
	assert.Equal(t, "Juan", claims.Name)
	assert.Equal(t, "Valencia", claims.Surname)
}

func TestLogin_EmailDesconocido_RetornaUserNotFound(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@crm.com", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_PasswordIncorrecto_RetornaUnauthorized(t *testing.T) {
	uc, _ := newAuthUC()
	registrar(t, uc)

	_, err := uc.Login(dto.LoginRequest{Email: "juan@crm.com", Password: "incorrecto"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Me
// ──────────────────────────────────────────────────────────────────────────────

func TestMe_RetornaPerfilSinHash(t *testing.T) {
	uc, _ := newAuthUC()
	user := registrar(t, uc)

	out, err := uc.Me(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "juan@crm.com", out.Email)
}

func TestMe_UsuarioInexistente_RetornaUserNotFound(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.Me("no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
