package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrMalformedAuthorizationHeader is returned when the "Authorization"
	// header is present but is not exactly two space-separated parts with a
	// "Bearer" scheme.
	ErrMalformedAuthorizationHeader = errors.New("malformed `Authorization` header")
)

// Client-facing messages of the authentication middleware. Exactly one of
// the three is returned per rejected request, always with status 401.
const (
	msgTokenNotProvided = "Token no proporcionado"
	msgTokenHeaderError = "Error en el token"
	msgTokenInvalid     = "Token inválido"
)
