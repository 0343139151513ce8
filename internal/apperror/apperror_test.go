package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindOwnership, http.StatusForbidden},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindConflict, http.StatusConflict},
		{KindInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := &Error{Kind: tt.kind, Message: "x"}
			assert.Equal(t, tt.want, err.HTTPStatus())
		})
	}
}

func TestFromError(t *testing.T) {
	appErr := NotFound("Pet with id %d not found", 7)
	assert.Same(t, appErr, FromError(appErr))

	wrapped := fmt.Errorf("outer: %w", appErr)
	assert.Same(t, appErr, FromError(wrapped))

	plain := errors.New("boom")
	got := FromError(plain)
	assert.Equal(t, KindInternal, got.Kind)
	assert.Equal(t, plain, got.Err)
}

func TestIsKind(t *testing.T) {
	err := Ownership("not yours")
	assert.True(t, IsKind(err, KindOwnership))
	assert.False(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(errors.New("plain"), KindOwnership))

	wrapped := fmt.Errorf("ctx: %w", err)
	assert.True(t, IsKind(wrapped, KindOwnership))
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := Internal(cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "cause")
}
