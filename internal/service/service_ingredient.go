package service

import (
	"context"
	"fmt"

	"github.com/fogonmemorias/restaurante-api/internal/logger"
	"github.com/fogonmemorias/restaurante-api/internal/store"
	"github.com/fogonmemorias/restaurante-api/models"
)

// ingredientService is the concrete implementation of IngredientService.
// Ingredients are written only through dish operations, so this service is
// strictly read-only.
type ingredientService struct {
	ingredientRepository store.IngredientRepository
	logger               *logger.Logger
}

// NewIngredientService constructs an IngredientService wired to the given
// IngredientRepository.
func NewIngredientService(ingredientRepository store.IngredientRepository, logger *logger.Logger) IngredientService {
	return &ingredientService{
		ingredientRepository: ingredientRepository,
		logger:               logger,
	}
}

// GetAllIngredients returns every ingredient row.
func (i *ingredientService) GetAllIngredients(ctx context.Context) ([]models.Ingredient, error) {
	log := logger.FromContext(ctx)

	ingredients, err := i.ingredientRepository.GetAllIngredients(ctx)
	if err != nil {
		log.Err(err).Str("func", "*ingredientService.GetAllIngredients").Msg("listing ingredients failed")
		return nil, fmt.Errorf("listing ingredients failed: %w", err)
	}

	return ingredients, nil
}

// GetIngredientByID returns one ingredient row.
//
// Returns store.ErrIngredientNotFound when no row matches.
func (i *ingredientService) GetIngredientByID(ctx context.Context, id int64) (models.Ingredient, error) {
	log := logger.FromContext(ctx)

	ingredient, err := i.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*ingredientService.GetIngredientByID").Int64("id", id).Msg("ingredient lookup failed")
		return models.Ingredient{}, fmt.Errorf("ingredient lookup failed: %w", err)
	}

	return ingredient, nil
}
