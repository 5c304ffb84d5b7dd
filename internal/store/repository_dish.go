package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fogonmemorias/restaurante-api/internal/logger"
	"github.com/fogonmemorias/restaurante-api/models"
)

// dishRepository is the PostgreSQL-backed implementation of [DishRepository].
// Dish creation and deletion are multi-statement operations executed inside
// a single transaction checked out from the pool; any failure rolls the
// whole operation back, leaving the database in its pre-request state.
type dishRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDishRepository constructs a [DishRepository] backed by the provided
// database connection and logger.
func NewDishRepository(db *DB, logger *logger.Logger) DishRepository {
	logger.Debug().Msg("creating dish repository")
	return &dishRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDish inserts the dish row and, sequentially in payload order, each
// ingredient: the type is upserted (insert-if-absent, else the existing id
// is fetched), the ingredient row is inserted bound to that type, and the
// dish-ingredient link row is inserted.
//
// The whole operation runs inside one transaction; a failure at any step
// undoes every earlier insert of the same request. Returns the new dish id.
func (r *dishRepository) CreateDish(ctx context.Context, dish models.NewDish) (int64, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*dishRepository.CreateDish").Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var dishID int64
	err = tx.QueryRowContext(ctx, createDish,
		dish.Name, dish.Description, dish.Image, dish.Calories, dish.Price).Scan(&dishID)
	if err != nil {
		log.Err(err).Str("func", "*dishRepository.CreateDish").Str("nombre", dish.Name).Msg("failed to insert dish")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for idx, ingredient := range dish.Ingredients {
		log.Debug().
			Str("func", "*dishRepository.CreateDish").
			Int("iteration", idx+1).
			Int("total", len(dish.Ingredients)).
			Str("ingrediente", ingredient.Name).
			Str("tipo", ingredient.Type).
			Msg("inserting ingredient in transaction")

		typeID, typeErr := r.upsertIngredientType(ctx, tx, ingredient.Type)
		if typeErr != nil {
			log.Err(typeErr).Str("func", "*dishRepository.CreateDish").Int("iteration", idx+1).Msg("failed to upsert ingredient type")
			return 0, typeErr
		}

		var ingredientID int64
		if err := tx.QueryRowContext(ctx, createIngredient, ingredient.Name, typeID).Scan(&ingredientID); err != nil {
			log.Err(err).Str("func", "*dishRepository.CreateDish").Int("iteration", idx+1).Msg("failed to insert ingredient")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if _, err := tx.ExecContext(ctx, linkDishIngredient, dishID, ingredientID); err != nil {
			log.Err(err).Str("func", "*dishRepository.CreateDish").Int("iteration", idx+1).Msg("failed to insert dish-ingredient link")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*dishRepository.CreateDish").Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "*dishRepository.CreateDish").
		Int64("plato_id", dishID).
		Int("ingredientes", len(dish.Ingredients)).
		Msg("dish created successfully")

	return dishID, nil
}

// upsertIngredientType inserts the type label if absent and returns its id.
// On a name conflict the insert returns no row and the existing id is looked
// up instead, so no duplicate type rows are ever created for the same label.
func (r *dishRepository) upsertIngredientType(ctx context.Context, tx *sql.Tx, typeName string) (int64, error) {
	var typeID int64

	err := tx.QueryRowContext(ctx, upsertIngredientType, typeName).Scan(&typeID)
	if err == nil {
		return typeID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	// conflict: the type already exists, fetch its id
	if err := tx.QueryRowContext(ctx, findIngredientTypeByName, typeName).Scan(&typeID); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return typeID, nil
}

// GetAllDishes returns every row of the plato table.
func (r *dishRepository) GetAllDishes(ctx context.Context) ([]models.Dish, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllDishes)
	if err != nil {
		log.Err(err).Str("func", "*dishRepository.GetAllDishes").Msg("error querying all dishes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	dishes := make([]models.Dish, 0)
	for rows.Next() {
		var d models.Dish
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.Image, &d.Calories, &d.Price); err != nil {
			log.Err(err).Str("func", "*dishRepository.GetAllDishes").Msg("error scanning dish row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		dishes = append(dishes, d)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*dishRepository.GetAllDishes").Msg("error during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return dishes, nil
}

// GetDishByID retrieves one dish row together with its joined ingredient
// list (link, ingredient name, and type label) from an auxiliary query.
//
// Returns [ErrDishNotFound] when no dish matches the id.
func (r *dishRepository) GetDishByID(ctx context.Context, id int64) (models.DishWithIngredients, error) {
	log := logger.FromContext(ctx)

	var result models.DishWithIngredients
	err := r.db.QueryRowContext(ctx, getDishByID, id).Scan(
		&result.ID, &result.Name, &result.Description, &result.Image, &result.Calories, &result.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DishWithIngredients{}, ErrDishNotFound
		}
		log.Err(err).Str("func", "*dishRepository.GetDishByID").Int64("id", id).Msg("error querying dish by id")
		return models.DishWithIngredients{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, getDishIngredients, id)
	if err != nil {
		log.Err(err).Str("func", "*dishRepository.GetDishByID").Int64("id", id).Msg("error querying dish ingredients")
		return models.DishWithIngredients{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result.Ingredients = make([]models.DishIngredient, 0)
	for rows.Next() {
		var di models.DishIngredient
		if err := rows.Scan(&di.DishID, &di.IngredientID, &di.Name, &di.Type); err != nil {
			log.Err(err).Str("func", "*dishRepository.GetDishByID").Msg("error scanning dish ingredient row")
			return models.DishWithIngredients{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		result.Ingredients = append(result.Ingredients, di)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*dishRepository.GetDishByID").Msg("error during rows iteration")
		return models.DishWithIngredients{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// UpdateDish applies the present fields of update to the dish selected by id
// and returns the updated row. The ingredient list is never touched by a
// partial update.
//
// Returns [ErrNoFieldsToUpdate] when the update carries no fields and
// [ErrDishNotFound] when no row matches the id.
func (r *dishRepository) UpdateDish(ctx context.Context, id int64, update models.DishUpdate) (models.Dish, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateDishQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*dishRepository.UpdateDish").Int64("id", id).Msg("failed to build update query")
		return models.Dish{}, err
	}

	var updated models.Dish
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&updated.ID, &updated.Name, &updated.Description, &updated.Image, &updated.Calories, &updated.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Dish{}, ErrDishNotFound
		}
		log.Err(err).Str("func", "*dishRepository.UpdateDish").Int64("id", id).Msg("error executing update")
		return models.Dish{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteDish removes the dish and sweeps ingredients left unreferenced.
//
// Inside one transaction: all link rows of the dish are removed, ingredients
// without any remaining link row are collected and bulk-deleted through the
// squirrel IN-clause builder, and finally the dish row itself is deleted.
// Ingredients still used by other dishes are left intact; the sweep only
// ever deletes rows with zero references.
func (r *dishRepository) DeleteDish(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*dishRepository.DeleteDish").Int64("id", id).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteDishLinks, id); err != nil {
		log.Err(err).Str("func", "*dishRepository.DeleteDish").Int64("id", id).Msg("failed to delete dish-ingredient links")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	unreferenced, err := r.collectUnreferencedIngredients(ctx, tx)
	if err != nil {
		log.Err(err).Str("func", "*dishRepository.DeleteDish").Int64("id", id).Msg("failed to collect unreferenced ingredients")
		return err
	}

	if len(unreferenced) > 0 {
		query, args, buildErr := buildDeleteIngredientsQuery(unreferenced)
		if buildErr != nil {
			log.Err(buildErr).Str("func", "*dishRepository.DeleteDish").Msg("failed to build sweep delete query")
			return buildErr
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*dishRepository.DeleteDish").Ints64("ingredient_ids", unreferenced).Msg("failed to sweep unreferenced ingredients")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if _, err := tx.ExecContext(ctx, deleteDish, id); err != nil {
		log.Err(err).Str("func", "*dishRepository.DeleteDish").Int64("id", id).Msg("failed to delete dish")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*dishRepository.DeleteDish").Int64("id", id).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "*dishRepository.DeleteDish").
		Int64("plato_id", id).
		Int("swept_ingredients", len(unreferenced)).
		Msg("dish deleted successfully")

	return nil
}

// collectUnreferencedIngredients returns the ids of every ingredient without
// a single remaining link row, evaluated inside the caller's transaction.
func (r *dishRepository) collectUnreferencedIngredients(ctx context.Context, tx *sql.Tx) ([]int64, error) {
	rows, err := tx.QueryContext(ctx, getUnreferencedIngredients)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}
