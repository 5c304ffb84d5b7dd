// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, and CORS concerns are
// all handled at this layer before requests are forwarded to the service
// layer.
package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/fogonmemorias/restaurante-api/internal/logger"
	"github.com/fogonmemorias/restaurante-api/internal/utils"
	"github.com/fogonmemorias/restaurante-api/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and — on success — stores
// the authenticated user's email in the request context under
// [utils.EmailCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in exactly one
// of three ways:
//   - No "Authorization" header at all → "Token no proporcionado".
//   - The header is not two space-separated parts with a (case-insensitive)
//     "Bearer" scheme → "Error en el token".
//   - Signature or expiry verification fails → "Token inválido".
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteJSON(w, models.ErrorResponse{Error: msgTokenNotProvided}, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Str("header", authHeader).Send()
			utils.WriteJSON(w, models.ErrorResponse{Error: msgTokenHeaderError}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgTokenInvalid}, http.StatusUnauthorized)
			return
		}

		// Store the authenticated email in the context so that downstream
		// handlers can retrieve it without re-parsing the token. ParseToken
		// guarantees the Email field is populated from the "sub" claim.
		ctx = context.WithValue(ctx, utils.EmailCtxKey, token.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header must follow the standard format:
//
//	Authorization: Bearer <token>
//
// The scheme is matched case-insensitively. Anything other than exactly two
// space-separated parts with a "Bearer" scheme returns
// [ErrMalformedAuthorizationHeader].
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrMalformedAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrMalformedAuthorizationHeader
	}

	return tokenString, nil
}
