package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEmailFromContext_Present(t *testing.T) {
	ctx := context.WithValue(context.Background(), EmailCtxKey, "prueba@ejemplo.com")

	email, ok := GetEmailFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "prueba@ejemplo.com", email)
}

func TestGetEmailFromContext_Missing(t *testing.T) {
	email, ok := GetEmailFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, email)
}

func TestGetEmailFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), EmailCtxKey, 42)

	_, ok := GetEmailFromContext(ctx)
	assert.False(t, ok)
}
