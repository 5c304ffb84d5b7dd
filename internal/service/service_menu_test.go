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

type fakeDishRepository struct {
	createDishFn    func(ctx context.Context, dish models.NewDish) (int64, error)
	getAllDishesFn  func(ctx context.Context) ([]models.Dish, error)
	getDishByIDFn   func(ctx context.Context, id int64) (models.DishWithIngredients, error)
	updateDishFn    func(ctx context.Context, id int64, update models.DishUpdate) (models.Dish, error)
	deleteDishFn    func(ctx context.Context, id int64) error
}

func (f *fakeDishRepository) CreateDish(ctx context.Context, dish models.NewDish) (int64, error) {
	return f.createDishFn(ctx, dish)
}

func (f *fakeDishRepository) GetAllDishes(ctx context.Context) ([]models.Dish, error) {
	return f.getAllDishesFn(ctx)
}

func (f *fakeDishRepository) GetDishByID(ctx context.Context, id int64) (models.DishWithIngredients, error) {
	return f.getDishByIDFn(ctx, id)
}

func (f *fakeDishRepository) UpdateDish(ctx context.Context, id int64, update models.DishUpdate) (models.Dish, error) {
	return f.updateDishFn(ctx, id, update)
}

func (f *fakeDishRepository) DeleteDish(ctx context.Context, id int64) error {
	return f.deleteDishFn(ctx, id)
}

func TestCreateDish_MissingName(t *testing.T) {
	svc := NewMenuService(&fakeDishRepository{}, logger.Nop())

	_, err := svc.CreateDish(context.Background(), models.NewDish{Price: 10})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCreateDish_Success(t *testing.T) {
	repo := &fakeDishRepository{
		createDishFn: func(ctx context.Context, dish models.NewDish) (int64, error) {
			return 42, nil
		},
	}
	svc := NewMenuService(repo, logger.Nop())

	id, err := svc.CreateDish(context.Background(), models.NewDish{
		Name:        "Bandeja Paisa",
		Ingredients: []models.NewIngredient{{Name: "Frijoles", Type: "Legumbre"}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestUpdateDish_NotFoundPropagated(t *testing.T) {
	repo := &fakeDishRepository{
		updateDishFn: func(ctx context.Context, id int64, update models.DishUpdate) (models.Dish, error) {
			return models.Dish{}, store.ErrDishNotFound
		},
	}
	svc := NewMenuService(repo, logger.Nop())

	nombre := "Nuevo"
	_, err := svc.UpdateDish(context.Background(), 99, models.DishUpdate{Name: &nombre})
	require.ErrorIs(t, err, store.ErrDishNotFound)
}

func TestUpdateDish_EmptyFieldSetPropagated(t *testing.T) {
	repo := &fakeDishRepository{
		updateDishFn: func(ctx context.Context, id int64, update models.DishUpdate) (models.Dish, error) {
			return models.Dish{}, store.ErrNoFieldsToUpdate
		},
	}
	svc := NewMenuService(repo, logger.Nop())

	_, err := svc.UpdateDish(context.Background(), 10, models.DishUpdate{})
	require.ErrorIs(t, err, store.ErrNoFieldsToUpdate)
}
