package http

import (
	"net/http"

	"github.com/fogonmemorias/restaurante-api/internal/logger"
	"github.com/fogonmemorias/restaurante-api/internal/utils"
	"github.com/fogonmemorias/restaurante-api/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const welcomeMessage = "¡Bienvenido a la API del restaurante Fogón de Memorias!"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)

	router.Get("/", h.welcome)

	router.Route("/ingredientes", func(r chi.Router) {
		r.Get("/", h.getAllIngredients)
		r.Get("/{id}", h.getIngredientByID)
	})

	router.Route("/menus", func(r chi.Router) {
		r.Post("/", h.createMenu)
		r.Get("/", h.getAllMenus)
		r.Get("/{id}", h.getMenuByID)
		r.Patch("/{id}", h.updateMenu)
		r.Delete("/{id}", h.deleteMenu)
	})

	router.Route("/usuarios", func(r chi.Router) {
		// routes without authorization
		r.Post("/", h.register)
		r.Post("/login", h.login)
		r.Delete("/", h.deleteUser)

		// routes with authorization
		r.Group(func(protected chi.Router) {
			protected.Use(h.auth)
			protected.Get("/", h.getAuthenticatedUser)
			protected.Get("/all", h.getAllUsers)
			protected.Put("/{id}", h.updateUser)
		})
	})

	return router
}

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if _, err := utils.WriteJSON(w, models.MessageResponse{Message: welcomeMessage}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing welcome response")
	}
}
