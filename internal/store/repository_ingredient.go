package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fogonmemorias/restaurante-api/internal/logger"
	"github.com/fogonmemorias/restaurante-api/models"
)

// ingredientRepository is the read-only PostgreSQL-backed implementation of
// [IngredientRepository]. Ingredient rows are written exclusively by the dish
// creation and deletion transactions in the dish repository.
type ingredientRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewIngredientRepository constructs an [IngredientRepository] backed by the
// provided database connection and logger.
func NewIngredientRepository(db *DB, logger *logger.Logger) IngredientRepository {
	logger.Debug().Msg("creating ingredient repository")
	return &ingredientRepository{
		db:     db,
		logger: logger,
	}
}

// GetAllIngredients returns every row of the ingrediente table.
func (r *ingredientRepository) GetAllIngredients(ctx context.Context) ([]models.Ingredient, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllIngredients)
	if err != nil {
		log.Err(err).Str("func", "*ingredientRepository.GetAllIngredients").Msg("error querying all ingredients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ingredients := make([]models.Ingredient, 0)
	for rows.Next() {
		var ing models.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.TypeID); err != nil {
			log.Err(err).Str("func", "*ingredientRepository.GetAllIngredients").Msg("error scanning ingredient row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ingredients = append(ingredients, ing)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*ingredientRepository.GetAllIngredients").Msg("error during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ingredients, nil
}

// GetIngredientByID retrieves one ingredient row by id.
//
// Returns [ErrIngredientNotFound] when no row matches.
func (r *ingredientRepository) GetIngredientByID(ctx context.Context, id int64) (models.Ingredient, error) {
	log := logger.FromContext(ctx)

	var ing models.Ingredient
	err := r.db.QueryRowContext(ctx, getIngredientByID, id).Scan(&ing.ID, &ing.Name, &ing.TypeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Ingredient{}, ErrIngredientNotFound
		}
		log.Err(err).Str("func", "*ingredientRepository.GetIngredientByID").Int64("id", id).Msg("error querying ingredient by id")
		return models.Ingredient{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return ing, nil
}
