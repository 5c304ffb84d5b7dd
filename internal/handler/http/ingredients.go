package http

import (
	"net/http"

	"github.com/fogonmemorias/restaurante-api/internal/logger"
	"github.com/fogonmemorias/restaurante-api/internal/utils"
)

// getAllIngredients handles GET /ingredientes.
func (h *Handler) getAllIngredients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ingredients, err := h.services.IngredientService.GetAllIngredients(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, ingredients, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing ingredients response")
	}
}

// getIngredientByID handles GET /ingredientes/{id}.
func (h *Handler) getIngredientByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromURL(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	ingredient, err := h.services.IngredientService.GetIngredientByID(ctx, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, ingredient, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing ingredient response")
	}
}
