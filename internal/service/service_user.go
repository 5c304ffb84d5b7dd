package service

import (
	"context"
	"fmt"

	"github.com/fogonmemorias/restaurante-api/internal/logger"
	"github.com/fogonmemorias/restaurante-api/internal/store"
	"github.com/fogonmemorias/restaurante-api/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetUserByEmail returns the account for the given email.
//
// Returns store.ErrUserNotFound when no account matches.
func (u *userService) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" {
		log.Error().Str("func", "*userService.GetUserByEmail").Msg("empty email provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := u.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("func", "*userService.GetUserByEmail").Str("correo", email).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// GetAllUsers returns every registered account. An empty table yields an
// empty slice, not an error.
func (u *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := u.userRepository.GetAllUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userService.GetAllUsers").Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

// UpdateUser applies a partial update to the account selected by the email
// carried in the update payload.
//
// The payload email must match the authenticated email; otherwise the caller
// is attempting to modify a foreign account and ErrNotAuthorized is returned.
// An update with no fields set propagates store.ErrNoFieldsToUpdate from the
// repository's query builder.
func (u *userService) UpdateUser(ctx context.Context, authenticatedEmail string, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.Email == "" || update.Email != authenticatedEmail {
		log.Warn().
			Str("func", "*userService.UpdateUser").
			Str("correo", update.Email).
			Str("authenticated", authenticatedEmail).
			Msg("attempt to update a foreign account")
		return models.User{}, ErrNotAuthorized
	}

	updated, err := u.userRepository.UpdateUser(ctx, update)
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateUser").Str("correo", update.Email).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return updated, nil
}

// DeleteUser removes the account for the given email.
//
// Returns ErrEmailRequired when the email is empty and store.ErrUserNotFound
// when no account matches.
func (u *userService) DeleteUser(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		log.Error().Str("func", "*userService.DeleteUser").Msg("empty email provided")
		return ErrEmailRequired
	}

	if err := u.userRepository.DeleteUserByEmail(ctx, email); err != nil {
		log.Err(err).Str("func", "*userService.DeleteUser").Str("correo", email).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}
