package http

import (
	"context"
	"net/http/httptest"

	"github.com/fogonmemorias/restaurante-api/internal/logger"
	"github.com/fogonmemorias/restaurante-api/internal/service"
	"github.com/fogonmemorias/restaurante-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// Hand-rolled service fakes with overridable function fields, one per
// service interface. Only the methods a test sets are expected to be called.

type fakeAuthService struct {
	registerFn    func(ctx context.Context, user models.User, password string) (models.User, error)
	loginFn       func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) Register(ctx context.Context, user models.User, password string) (models.User, error) {
	return f.registerFn(ctx, user, password)
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return f.loginFn(ctx, email, password)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return f.createTokenFn(ctx, user)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return f.parseTokenFn(ctx, tokenString)
}

type fakeUserService struct {
	getUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	getAllUsersFn    func(ctx context.Context) ([]models.User, error)
	updateUserFn     func(ctx context.Context, authenticatedEmail string, update models.UserUpdate) (models.User, error)
	deleteUserFn     func(ctx context.Context, email string) error
}

func (f *fakeUserService) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return f.getUserByEmailFn(ctx, email)
}

func (f *fakeUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return f.getAllUsersFn(ctx)
}

func (f *fakeUserService) UpdateUser(ctx context.Context, authenticatedEmail string, update models.UserUpdate) (models.User, error) {
	return f.updateUserFn(ctx, authenticatedEmail, update)
}

func (f *fakeUserService) DeleteUser(ctx context.Context, email string) error {
	return f.deleteUserFn(ctx, email)
}

type fakeMenuService struct {
	createDishFn   func(ctx context.Context, dish models.NewDish) (int64, error)
	getAllDishesFn func(ctx context.Context) ([]models.Dish, error)
	getDishByIDFn  func(ctx context.Context, id int64) (models.DishWithIngredients, error)
	updateDishFn   func(ctx context.Context, id int64, update models.DishUpdate) (models.Dish, error)
	deleteDishFn   func(ctx context.Context, id int64) error
}

func (f *fakeMenuService) CreateDish(ctx context.Context, dish models.NewDish) (int64, error) {
	return f.createDishFn(ctx, dish)
}

func (f *fakeMenuService) GetAllDishes(ctx context.Context) ([]models.Dish, error) {
	return f.getAllDishesFn(ctx)
}

func (f *fakeMenuService) GetDishByID(ctx context.Context, id int64) (models.DishWithIngredients, error) {
	return f.getDishByIDFn(ctx, id)
}

func (f *fakeMenuService) UpdateDish(ctx context.Context, id int64, update models.DishUpdate) (models.Dish, error) {
	return f.updateDishFn(ctx, id, update)
}

func (f *fakeMenuService) DeleteDish(ctx context.Context, id int64) error {
	return f.deleteDishFn(ctx, id)
}

type fakeIngredientService struct {
	getAllIngredientsFn func(ctx context.Context) ([]models.Ingredient, error)
	getIngredientByIDFn func(ctx context.Context, id int64) (models.Ingredient, error)
}

func (f *fakeIngredientService) GetAllIngredients(ctx context.Context) ([]models.Ingredient, error) {
	return f.getAllIngredientsFn(ctx)
}

func (f *fakeIngredientService) GetIngredientByID(ctx context.Context, id int64) (models.Ingredient, error) {
	return f.getIngredientByIDFn(ctx, id)
}

// newTestServer builds the full router (middleware included) on top of the
// provided fakes and serves it from an httptest server.
func newTestServer(services *service.Services) *httptest.Server {
	h := NewHandler(services, logger.Nop())
	return httptest.NewServer(h.Init())
}

// tokenForEmail builds a parsed-token fake result whose subject claim is the
// given email.
func tokenForEmail(email string) models.Token {
	return models.Token{
		RegisteredClaims: jwt.RegisteredClaims{Subject: email},
		Email:            email,
	}
}

// acceptingAuth returns a fake auth service whose ParseToken accepts any
// token string as belonging to the given email.
func acceptingAuth(email string) *fakeAuthService {
	return &fakeAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			return tokenForEmail(email), nil
		},
	}
}
