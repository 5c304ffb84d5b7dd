package store

import (
	"context"

	"github.com/fogonmemorias/restaurante-api/models"
)

// UserRepository is the data-access contract for the usuarios table.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
	DeleteUserByEmail(ctx context.Context, email string) error
}

// DishRepository is the data-access contract for dishes and their ingredient
// links. Creation and deletion are multi-statement transactional operations.
type DishRepository interface {
	CreateDish(ctx context.Context, dish models.NewDish) (int64, error)
	GetAllDishes(ctx context.Context) ([]models.Dish, error)
	GetDishByID(ctx context.Context, id int64) (models.DishWithIngredients, error)
	UpdateDish(ctx context.Context, id int64, update models.DishUpdate) (models.Dish, error)
	DeleteDish(ctx context.Context, id int64) error
}

// IngredientRepository is the read-only data-access contract for the
// ingrediente table. Ingredients are mutated only through dish operations.
type IngredientRepository interface {
	GetAllIngredients(ctx context.Context) ([]models.Ingredient, error)
	GetIngredientByID(ctx context.Context, id int64) (models.Ingredient, error)
}
