package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.Generate(42, "user@example.com", "USER", "Иванов Иван", "+79161234567")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.ID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "USER", claims.Role)
	assert.Equal(t, "Иванов Иван", claims.Fio)
	assert.Equal(t, "+79161234567", claims.Phone)
}

func TestValidateExpired(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)

	token, err := svc.Generate(1, "a@b.com", "USER", "", "")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-one", time.Hour)
	verifier := NewJWTService("secret-two", time.Hour)

	token, err := issuer.Generate(1, "a@b.com", "USER", "", "")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	_, err := svc.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
