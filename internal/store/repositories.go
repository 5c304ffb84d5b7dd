package store

import (
	"context"

	"github.com/fogonmemorias/restaurante-api/internal/config"
	"github.com/fogonmemorias/restaurante-api/internal/logger"
)

// Repositories aggregates all data-access implementations wired to one
// pooled database handle.
type Repositories struct {
	UserRepository       UserRepository
	DishRepository       DishRepository
	IngredientRepository IngredientRepository
}

// NewRepositories connects to PostgreSQL, runs pending migrations, and
// constructs every repository on top of the shared pool.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		log.Err(err).Msg("connection to database failed")
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Msg("database migration failed")
		return nil, err
	}

	return &Repositories{
		UserRepository:       NewUserRepository(db, log),
		DishRepository:       NewDishRepository(db, log),
		IngredientRepository: NewIngredientRepository(db, log),
	}, nil
}
