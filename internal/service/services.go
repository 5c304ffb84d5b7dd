package service

import (
	"github.com/fogonmemorias/restaurante-api/internal/config"
	"github.com/fogonmemorias/restaurante-api/internal/logger"
	"github.com/fogonmemorias/restaurante-api/internal/store"
)

type Services struct {
	AuthService       AuthService
	UserService       UserService
	MenuService       MenuService
	IngredientService IngredientService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(repositories.UserRepository, cfg.App, logger),
		UserService:       NewUserService(repositories.UserRepository, logger),
		MenuService:       NewMenuService(repositories.DishRepository, logger),
		IngredientService: NewIngredientService(repositories.IngredientRepository, logger),
	}
}
