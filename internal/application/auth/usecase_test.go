package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// fakeUserRepo repositorio de usuarios en memoria para los tests.
type fakeUserRepo struct {
	byLogin map[string]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byLogin: map[string]*entity.User{}, byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.byLogin[u.LoginID]; ok {
		return domain.ErrDuplicate
	}
	r.byLogin[u.LoginID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByLoginID(loginID string) (*entity.User, error) {
	return r.byLogin[loginID], nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) UpdatePassword(email, passwordHash string) error {
	u, ok := r.byEmail[email]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func newAuthFixture() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "almacen-api-test",
	})
	return uc, repo
}

func TestSignup_CreaUsuarioConHash(t *testing.T) {
	uc, repo := newAuthFixture()

	out, err := uc.Signup(dto.SignupRequest{
		LoginID: "maria", Email: "maria@example.com",
		Password: "secreta123", ConfirmPassword: "secreta123",
	})
	require.NoError(t, err)
	assert.Equal(t, "maria", out.LoginID)
	assert.Equal(t, entity.RoleUser, out.Role, "los registros nuevos entran como user")

	stored := repo.byLogin["maria"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")))
}

func TestSignup_ContrasenasNoCoinciden(t *testing.T) {
	uc, _ := newAuthFixture()
	_, err := uc.Signup(dto.SignupRequest{
		LoginID: "maria", Email: "maria@example.com",
		Password: "una", ConfirmPassword: "otra",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSignup_LoginDuplicado(t *testing.T) {
	uc, _ := newAuthFixture()
	in := dto.SignupRequest{
		LoginID: "maria", Email: "maria@example.com",
		Password: "secreta123", ConfirmPassword: "secreta123",
	}
	_, err := uc.Signup(in)
	require.NoError(t, err)

	in.Email = "otra@example.com"
	_, err = uc.Signup(in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSignup_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthFixture()
	_, err := uc.Signup(dto.SignupRequest{
		LoginID: "maria", Email: "maria@example.com",
		Password: "secreta123", ConfirmPassword: "secreta123",
	})
	require.NoError(t, err)

	_, err = uc.Signup(dto.SignupRequest{
		LoginID: "otra", Email: "maria@example.com",
		Password: "secreta123", ConfirmPassword: "secreta123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_Exitoso(t *testing.T) {
	uc, _ := newAuthFixture()
	_, err := uc.Signup(dto.SignupRequest{
		LoginID: "maria", Email: "maria@example.com",
		Password: "secreta123", ConfirmPassword: "secreta123",
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{LoginID: "maria", Password: "secreta123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "maria", out.User.LoginID)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newAuthFixture()
	_, err := uc.Signup(dto.SignupRequest{
		LoginID: "maria", Email: "maria@example.com",
		Password: "secreta123", ConfirmPassword: "secreta123",
	})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{LoginID: "maria", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthFixture()
	_, err := uc.Login(dto.LoginRequest{LoginID: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestForgot_SinOTPSoloSenala(t *testing.T) {
	uc, _ := newAuthFixture()
	reset, err := uc.Forgot(dto.ForgotRequest{Email: "maria@example.com"})
	require.NoError(t, err)
	assert.False(t, reset, "sin OTP no se restablece nada")
}

func TestForgot_ConOTPReemplazaElHash(t *testing.T) {
	uc, repo := newAuthFixture()
	_, err := uc.Signup(dto.SignupRequest{
		LoginID: "maria", Email: "maria@example.com",
		Password: "secreta123", ConfirmPassword: "secreta123",
	})
	require.NoError(t, err)
	oldHash := repo.byLogin["maria"].PasswordHash

	reset, err := uc.Forgot(dto.ForgotRequest{
		Email: "maria@example.com", OTP: "0000",
		NewPassword: "nueva456", ConfirmPassword: "nueva456",
	})
	require.NoError(t, err)
	assert.True(t, reset)
	assert.NotEqual(t, oldHash, repo.byLogin["maria"].PasswordHash)

	_, err = uc.Login(dto.LoginRequest{LoginID: "maria", Password: "nueva456"})
	assert.NoError(t, err, "la contraseña nueva debe permitir login")
}
