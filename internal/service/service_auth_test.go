package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fogonmemorias/restaurante-api/internal/config"
	"github.com/fogonmemorias/restaurante-api/internal/logger"
	"github.com/fogonmemorias/restaurante-api/internal/store"
	"github.com/fogonmemorias/restaurante-api/internal/utils"
	"github.com/fogonmemorias/restaurante-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepository implements store.UserRepository with overridable
// function fields. Only the methods a test sets are expected to be called.
type fakeUserRepository struct {
	createUserFn        func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn   func(ctx context.Context, email string) (models.User, error)
	getAllUsersFn       func(ctx context.Context) ([]models.User, error)
	updateUserFn        func(ctx context.Context, update models.UserUpdate) (models.User, error)
	deleteUserByEmailFn func(ctx context.Context, email string) error
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return f.createUserFn(ctx, user)
}

func (f *fakeUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return f.findUserByEmailFn(ctx, email)
}

func (f *fakeUserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return f.getAllUsersFn(ctx)
}

func (f *fakeUserRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	return f.updateUserFn(ctx, update)
}

func (f *fakeUserRepository) DeleteUserByEmail(ctx context.Context, email string) error {
	return f.deleteUserByEmailFn(ctx, email)
}

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "restaurante-api",
	TokenDuration: time.Hour,
	BcryptCost:    4, // minimum cost keeps the test fast
}

func newTestAuthService(repo store.UserRepository) AuthService {
	return NewAuthService(repo, testAppConfig, logger.Nop())
}

func TestRegister_Success(t *testing.T) {
	var persisted models.User
	repo := &fakeUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			persisted = user
			user.ID = 1
			return user, nil
		},
	}

	svc := newTestAuthService(repo)
	registered, err := svc.Register(context.Background(), models.User{
		FirstName: "Prueba",
		Email:     "prueba@ejemplo.com",
	}, "secreto123")
	require.NoError(t, err)

	assert.Equal(t, int64(1), registered.ID)
	assert.NotEqual(t, "secreto123", persisted.PasswordHash, "plaintext must never be persisted")
	assert.True(t, utils.CheckPassword("secreto123", persisted.PasswordHash))
}

func TestRegister_DigestsDifferPerCall(t *testing.T) {
	digests := make([]string, 0, 2)
	repo := &fakeUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			digests = append(digests, user.PasswordHash)
			return user, nil
		},
	}

	svc := newTestAuthService(repo)
	for i := 0; i < 2; i++ {
		_, err := svc.Register(context.Background(), models.User{Email: "prueba@ejemplo.com"}, "secreto123")
		require.NoError(t, err)
	}

	require.Len(t, digests, 2)
	assert.NotEqual(t, digests[0], digests[1], "bcrypt salt must randomise the digest")
	assert.True(t, utils.CheckPassword("secreto123", digests[0]))
	assert.True(t, utils.CheckPassword("secreto123", digests[1]))
}

func TestRegister_EmailAlreadyRegistered(t *testing.T) {
	repo := &fakeUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: 1, Email: email}, nil
		},
	}

	svc := newTestAuthService(repo)
	_, err := svc.Register(context.Background(), models.User{Email: "prueba@ejemplo.com"}, "secreto123")
	require.ErrorIs(t, err, store.ErrEmailAlreadyRegistered)
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newTestAuthService(&fakeUserRepository{})

	_, err := svc.Register(context.Background(), models.User{}, "secreto123")
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Register(context.Background(), models.User{Email: "prueba@ejemplo.com"}, "")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestLogin_UnknownEmailAndWrongPasswordShareSentinel(t *testing.T) {
	digest, err := utils.HashPassword("secreto123", testAppConfig.BcryptCost)
	require.NoError(t, err)

	repo := &fakeUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			if email == "existe@ejemplo.com" {
				return models.User{ID: 1, Email: email, PasswordHash: digest}, nil
			}
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := newTestAuthService(repo)

	_, unknownErr := svc.Login(context.Background(), "desconocido@ejemplo.com", "secreto123")
	_, wrongPassErr := svc.Login(context.Background(), "existe@ejemplo.com", "incorrecta")

	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	require.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongPassErr, "both failures must be indistinguishable")
}

func TestLogin_Success(t *testing.T) {
	digest, err := utils.HashPassword("secreto123", testAppConfig.BcryptCost)
	require.NoError(t, err)

	repo := &fakeUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: 1, Email: email, PasswordHash: digest}, nil
		},
	}

	svc := newTestAuthService(repo)
	user, err := svc.Login(context.Background(), "existe@ejemplo.com", "secreto123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestCreateToken_ParseTokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(&fakeUserRepository{})

	token, err := svc.CreateToken(context.Background(), models.User{Email: "prueba@ejemplo.com"})
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := svc.ParseToken(context.Background(), token.String())
	require.NoError(t, err)

	email, err := parsed.GetEmail()
	require.NoError(t, err)
	assert.Equal(t, "prueba@ejemplo.com", email)
}

func TestParseToken_InvalidNormalised(t *testing.T) {
	svc := newTestAuthService(&fakeUserRepository{})

	_, err := svc.ParseToken(context.Background(), "no-es-un-token")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_WrongSignKey(t *testing.T) {
	foreign, err := utils.GenerateJWTToken("restaurante-api", "prueba@ejemplo.com", time.Hour, "otra-clave")
	require.NoError(t, err)

	svc := newTestAuthService(&fakeUserRepository{})
	_, parseErr := svc.ParseToken(context.Background(), foreign.String())
	require.ErrorIs(t, parseErr, ErrTokenIsExpiredOrInvalid)
	require.False(t, errors.Is(parseErr, ErrInvalidCredentials))
}
