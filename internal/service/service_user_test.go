package service

import (
	"context"
	"testing"

	"github.com/fogonmemorias/restaurante-api/internal/logger"
	"github.com/fogonmemorias/restaurante-api/internal/store"
	"github.com/fogonmemorias/restaurante-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUpdateUser_ForeignEmailRejected(t *testing.T) {
	svc := NewUserService(&fakeUserRepository{}, logger.Nop())

	update := models.UserUpdate{
		Email: "otro@ejemplo.com",
		Phone: strPtr("123456789"),
	}
	_, err := svc.UpdateUser(context.Background(), "propio@ejemplo.com", update)
	require.ErrorIs(t, err, ErrNotAuthorized)
}

func TestUpdateUser_MissingEmailRejected(t *testing.T) {
	svc := NewUserService(&fakeUserRepository{}, logger.Nop())

	_, err := svc.UpdateUser(context.Background(), "propio@ejemplo.com", models.UserUpdate{Phone: strPtr("123456789")})
	require.ErrorIs(t, err, ErrNotAuthorized)
}

func TestUpdateUser_OwnAccount(t *testing.T) {
	repo := &fakeUserRepository{
		updateUserFn: func(ctx context.Context, update models.UserUpdate) (models.User, error) {
			return models.User{ID: 1, Email: update.Email, Phone: *update.Phone}, nil
		},
	}
	svc := NewUserService(repo, logger.Nop())

	updated, err := svc.UpdateUser(context.Background(), "propio@ejemplo.com", models.UserUpdate{
		Email: "propio@ejemplo.com",
		Phone: strPtr("987654321"),
	})
	require.NoError(t, err)
	assert.Equal(t, "987654321", updated.Phone)
}

func TestUpdateUser_EmptyFieldSetPropagated(t *testing.T) {
	repo := &fakeUserRepository{
		updateUserFn: func(ctx context.Context, update models.UserUpdate) (models.User, error) {
			return models.User{}, store.ErrNoFieldsToUpdate
		},
	}
	svc := NewUserService(repo, logger.Nop())

	_, err := svc.UpdateUser(context.Background(), "propio@ejemplo.com", models.UserUpdate{Email: "propio@ejemplo.com"})
	require.ErrorIs(t, err, store.ErrNoFieldsToUpdate)
}

func TestGetAllUsers_EmptyTable(t *testing.T) {
	repo := &fakeUserRepository{
		getAllUsersFn: func(ctx context.Context) ([]models.User, error) {
			return []models.User{}, nil
		},
	}
	svc := NewUserService(repo, logger.Nop())

	users, err := svc.GetAllUsers(context.Background())
	require.NoError(t, err)
	require.NotNil(t, users)
	assert.Empty(t, users)
}

func TestDeleteUser_MissingEmail(t *testing.T) {
	svc := NewUserService(&fakeUserRepository{}, logger.Nop())

	err := svc.DeleteUser(context.Background(), "")
	require.ErrorIs(t, err, ErrEmailRequired)
}

func TestDeleteUser_NotFoundPropagated(t *testing.T) {
	repo := &fakeUserRepository{
		deleteUserByEmailFn: func(ctx context.Context, email string) error {
			return store.ErrUserNotFound
		},
	}
	svc := NewUserService(repo, logger.Nop())

	err := svc.DeleteUser(context.Background(), "desconocido@ejemplo.com")
	require.ErrorIs(t, err, store.ErrUserNotFound)
}
