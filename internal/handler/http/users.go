package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fogonmemorias/restaurante-api/internal/logger"
	"github.com/fogonmemorias/restaurante-api/internal/service"
	"github.com/fogonmemorias/restaurante-api/internal/utils"
	"github.com/fogonmemorias/restaurante-api/models"
)

// register handles POST /usuarios.
//
// The plaintext password arrives in the "contrasena" body field and exists
// only for the duration of this request; the service persists a bcrypt
// digest.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req struct {
		models.User
		Password string `json:"contrasena"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	if _, err := h.services.AuthService.Register(ctx, req.User, req.Password); err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, models.MessageResponse{Message: "Usuario registrado exitosamente"}, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing register response")
	}
}

// login handles POST /usuarios/login.
//
// On success the issued bearer token travels twice: in the JSON body and in
// the "Authorization" response header (which the CORS layer exposes).
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials struct {
		Email    string `json:"correo"`
		Password string `json:"contrasena"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials.Email, credentials.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("correo", foundUser.Email).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.String()))
	if _, err := utils.WriteJSON(w, models.LoginResponse{Token: token.String(), User: foundUser}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing login response")
	}
}

// getAuthenticatedUser handles GET /usuarios: the account of the token's
// email.
func (h *Handler) getAuthenticatedUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email, ok := utils.GetEmailFromContext(ctx)
	if !ok {
		log.Error().Msg("authenticated email missing from context")
		h.writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	user, err := h.services.UserService.GetUserByEmail(ctx, email)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, user, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing user response")
	}
}

// getAllUsers handles GET /usuarios/all. An empty table yields 200 with an
// empty array.
func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.GetAllUsers(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, users, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing users response")
	}
}

// updateUser handles PUT /usuarios/{id}.
//
// Authorization compares the body's "correo" against the authenticated
// email; the path id is deliberately not consulted, so the URL segment is
// decorative. The row is selected by email.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email, ok := utils.GetEmailFromContext(ctx)
	if !ok {
		log.Error().Msg("authenticated email missing from context")
		h.writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	updated, err := h.services.UserService.UpdateUser(ctx, email, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, updated, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing updated user response")
	}
}

// deleteUser handles DELETE /usuarios with body {"correo": ...}.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req struct {
		Email string `json:"correo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, service.ErrEmailRequired)
		return
	}

	if err := h.services.UserService.DeleteUser(ctx, req.Email); err != nil {
		h.writeError(w, r, err)
		return
	}

	message := fmt.Sprintf("Usuario %s eliminado con éxito", req.Email)
	if _, err := utils.WriteJSON(w, models.MessageResponse{Message: message}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing delete response")
	}
}
