package service

import (
	"context"

	"github.com/fogonmemorias/restaurante-api/models"
)

// AuthService handles account registration, credential verification and the
// JWT token lifecycle.
type AuthService interface {
	Register(ctx context.Context, user models.User, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService exposes account queries and mutations for authenticated users.
type UserService interface {
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, authenticatedEmail string, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, email string) error
}

// MenuService exposes dish CRUD. Creation and deletion cascade over the
// dish's ingredient links inside repository transactions.
type MenuService interface {
	CreateDish(ctx context.Context, dish models.NewDish) (int64, error)
	GetAllDishes(ctx context.Context) ([]models.Dish, error)
	GetDishByID(ctx context.Context, id int64) (models.DishWithIngredients, error)
	UpdateDish(ctx context.Context, id int64, update models.DishUpdate) (models.Dish, error)
	DeleteDish(ctx context.Context, id int64) error
}

// IngredientService exposes read-only ingredient queries.
type IngredientService interface {
	GetAllIngredients(ctx context.Context) ([]models.Ingredient, error)
	GetIngredientByID(ctx context.Context, id int64) (models.Ingredient, error)
}
