package http

import (
	"errors"
	"net/http"

	"github.com/fogonmemorias/restaurante-api/internal/logger"
	"github.com/fogonmemorias/restaurante-api/internal/service"
	"github.com/fogonmemorias/restaurante-api/internal/store"
	"github.com/fogonmemorias/restaurante-api/internal/utils"
	"github.com/fogonmemorias/restaurante-api/models"
)

// msgInternalError is the generic message for every failure the catalogue
// does not name. Raw error detail is logged, never serialized.
const msgInternalError = "Error interno del servidor"

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotAuthorized:           http.StatusForbidden,
	service.ErrEmailRequired:           http.StatusBadRequest,

	store.ErrEmailAlreadyRegistered: http.StatusBadRequest,
	store.ErrUserNotFound:           http.StatusNotFound,
	store.ErrDishNotFound:           http.StatusNotFound,
	store.ErrIngredientNotFound:     http.StatusNotFound,
	store.ErrNoFieldsToUpdate:       http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorMessageMap is the fixed catalogue of client-facing messages.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:     "Datos inválidos",
	service.ErrInvalidCredentials:      "Credenciales inválidas",
	service.ErrTokenIsExpiredOrInvalid: msgTokenInvalid,
	service.ErrNotAuthorized:           "No estás autorizado para actualizar este usuario",
	service.ErrEmailRequired:           "Correo requerido para la eliminación",

	store.ErrEmailAlreadyRegistered: "Correo electrónico ya registrado",
	store.ErrUserNotFound:           "Usuario no encontrado",
	store.ErrDishNotFound:           "Plato no encontrado",
	store.ErrIngredientNotFound:     "Ingrediente no encontrado",
	store.ErrNoFieldsToUpdate:       "No se proporcionaron campos para actualizar",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return msgInternalError
}

// writeError logs err and writes the catalogue message for it with the mapped
// status code.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	log.Err(err).Msg("request failed")

	status := statusFromError(err)
	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Error: messageFromError(err)}, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
