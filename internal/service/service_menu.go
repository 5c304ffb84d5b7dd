package service

import (
	"context"
	"fmt"

	"github.com/fogonmemorias/restaurante-api/internal/logger"
	"github.com/fogonmemorias/restaurante-api/internal/store"
	"github.com/fogonmemorias/restaurante-api/models"
)

// menuService is the concrete implementation of MenuService. All multi-row
// consistency (ingredient links, the unreferenced-ingredient sweep) lives in
// the repository transactions; this layer validates input and translates
// errors.
type menuService struct {
	dishRepository store.DishRepository
	logger         *logger.Logger
}

// NewMenuService constructs a MenuService wired to the given DishRepository.
func NewMenuService(dishRepository store.DishRepository, logger *logger.Logger) MenuService {
	return &menuService{
		dishRepository: dishRepository,
		logger:         logger,
	}
}

// CreateDish persists a dish together with its ingredient list and returns
// the new dish id.
//
// Returns ErrInvalidDataProvided when the dish has no name.
func (m *menuService) CreateDish(ctx context.Context, dish models.NewDish) (int64, error) {
	log := logger.FromContext(ctx)

	if dish.Name == "" {
		log.Error().Str("func", "*menuService.CreateDish").Msg("dish without name provided")
		return 0, ErrInvalidDataProvided
	}

	dishID, err := m.dishRepository.CreateDish(ctx, dish)
	if err != nil {
		log.Err(err).Str("func", "*menuService.CreateDish").Str("nombre", dish.Name).Msg("dish creation failed")
		return 0, fmt.Errorf("dish creation failed: %w", err)
	}

	return dishID, nil
}

// GetAllDishes returns every dish on the menu.
func (m *menuService) GetAllDishes(ctx context.Context) ([]models.Dish, error) {
	log := logger.FromContext(ctx)

	dishes, err := m.dishRepository.GetAllDishes(ctx)
	if err != nil {
		log.Err(err).Str("func", "*menuService.GetAllDishes").Msg("listing dishes failed")
		return nil, fmt.Errorf("listing dishes failed: %w", err)
	}

	return dishes, nil
}

// GetDishByID returns one dish with its ingredient list.
//
// Returns store.ErrDishNotFound when no dish matches the id.
func (m *menuService) GetDishByID(ctx context.Context, id int64) (models.DishWithIngredients, error) {
	log := logger.FromContext(ctx)

	dish, err := m.dishRepository.GetDishByID(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*menuService.GetDishByID").Int64("id", id).Msg("dish lookup failed")
		return models.DishWithIngredients{}, fmt.Errorf("dish lookup failed: %w", err)
	}

	return dish, nil
}

// UpdateDish applies a partial update to the dish selected by id and returns
// the updated row. The ingredient list is never modified by this path.
//
// Propagates store.ErrNoFieldsToUpdate for an empty update and
// store.ErrDishNotFound when no row matches.
func (m *menuService) UpdateDish(ctx context.Context, id int64, update models.DishUpdate) (models.Dish, error) {
	log := logger.FromContext(ctx)

	updated, err := m.dishRepository.UpdateDish(ctx, id, update)
	if err != nil {
		log.Err(err).Str("func", "*menuService.UpdateDish").Int64("id", id).Msg("dish update failed")
		return models.Dish{}, fmt.Errorf("dish update failed: %w", err)
	}

	return updated, nil
}

// DeleteDish removes the dish, its ingredient links, and any ingredients left
// unreferenced by the removal. Deleting an absent dish is a no-op.
func (m *menuService) DeleteDish(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := m.dishRepository.DeleteDish(ctx, id); err != nil {
		log.Err(err).Str("func", "*menuService.DeleteDish").Int64("id", id).Msg("dish deletion failed")
		return fmt.Errorf("dish deletion failed: %w", err)
	}

	return nil
}
