package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/fogonmemorias/restaurante-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	rr := httptest.NewRecorder()

	n, err := WriteJSON(rr, models.MessageResponse{Message: "ok"}, 201)
	require.NoError(t, err)
	assert.Positive(t, n)

	assert.Equal(t, 201, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"ok"}`, rr.Body.String())
}

func TestWriteJSON_MarshalFailure(t *testing.T) {
	rr := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(rr, make(chan int), 200)
	require.Error(t, err)
	assert.Equal(t, 500, rr.Code)
}

func TestWriteJSON_PasswordNeverSerialized(t *testing.T) {
	rr := httptest.NewRecorder()

	user := models.User{Email: "a@b.com", PasswordHash: "$2a$10$secret"}
	_, err := WriteJSON(rr, user, 200)
	require.NoError(t, err)

	assert.NotContains(t, rr.Body.String(), "secret")
	assert.NotContains(t, rr.Body.String(), "contrasena")
}
