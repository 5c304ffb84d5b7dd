package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fogonmemorias/restaurante-api/internal/logger"
	"github.com/fogonmemorias/restaurante-api/internal/service"
	"github.com/fogonmemorias/restaurante-api/internal/store"
	"github.com/fogonmemorias/restaurante-api/internal/utils"
	"github.com/fogonmemorias/restaurante-api/models"
	"github.com/go-chi/chi/v5"
)

// idFromURL parses the {id} path segment of the current route.
func idFromURL(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}
	return id, nil
}

// createMenu handles POST /menus. The dish and its full ingredient list are
// persisted in one repository transaction.
func (h *Handler) createMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var dish models.NewDish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	if _, err := h.services.MenuService.CreateDish(ctx, dish); err != nil {
		h.writeError(w, r, err)
		return
	}

	message := fmt.Sprintf("Menú creado con éxito: %s", dish.Name)
	if _, err := utils.WriteJSON(w, models.MessageResponse{Message: message}, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing create menu response")
	}
}

// getAllMenus handles GET /menus.
func (h *Handler) getAllMenus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	dishes, err := h.services.MenuService.GetAllDishes(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, dishes, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing menus response")
	}
}

// getMenuByID handles GET /menus/{id}: the dish row plus its joined
// ingredient list.
func (h *Handler) getMenuByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromURL(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	dish, err := h.services.MenuService.GetDishByID(ctx, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, dish, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing menu response")
	}
}

// updateMenu handles PATCH /menus/{id}. Only the fields present in the body
// reach the SET clause; an empty body is rejected before any SQL is built.
func (h *Handler) updateMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromURL(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var update models.DishUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	updated, err := h.services.MenuService.UpdateDish(ctx, id, update)
	if err != nil {
		// this endpoint has its own not-found wording
		if errors.Is(err, store.ErrDishNotFound) {
			log.Err(err).Int64("id", id).Msg("menu to update does not exist")
			if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Error: "El menú no existe"}, http.StatusNotFound); writeErr != nil {
				log.Err(writeErr).Msg("error writing error response")
			}
			return
		}
		h.writeError(w, r, err)
		return
	}

	message := fmt.Sprintf("Menú actualizado con éxito: %s", updated.Name)
	if _, err := utils.WriteJSON(w, models.MessageResponse{Message: message}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing update menu response")
	}
}

// deleteMenu handles DELETE /menus/{id}. Deleting an absent dish is a no-op
// and still answers 200.
func (h *Handler) deleteMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromURL(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.MenuService.DeleteDish(ctx, id); err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, models.MessageResponse{Message: "Plato eliminado exitosamente"}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing delete menu response")
	}
}
