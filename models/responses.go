package models

// MessageResponse is the envelope for confirmation messages
// ("Usuario registrado exitosamente", "Plato eliminado exitosamente", ...).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the envelope for every client-facing error. The message
// is always one of a fixed catalogue; internal error detail is logged and
// never serialized here.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginResponse carries a freshly issued bearer token together with the
// authenticated user record (password digest excluded by the User model).
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
