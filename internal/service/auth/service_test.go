package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetdesk/vetclinic-api/internal/apperror"
	"github.com/vetdesk/vetclinic-api/internal/model"
	"github.com/vetdesk/vetclinic-api/internal/repository/repositorytest"
	"github.com/vetdesk/vetclinic-api/pkg/auth"
	"github.com/vetdesk/vetclinic-api/pkg/security"
)

func newTestService() (*Service, *repositorytest.Store, auth.JWTService) {
	store := repositorytest.NewStore()
	tokens := auth.NewJWTService("test-secret", time.Hour)
	svc := NewService(store.Users(), security.NewBcryptHasher(4), tokens)
	return svc, store, tokens
}

func validRegistration() *model.RegisterRequest {
	return &model.RegisterRequest{
		Fio:      "Иванов Иван",
		Phone:    "+79161234567",
		Email:    "ivanov@example.com",
		Password: "secret123",
	}
}

func TestRegisterIssuesDecodableToken(t *testing.T) {
	svc, store, tokens := newTestService()

	token, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	claims, err := tokens.Validate(token)
	require.NoError(t, err)

	stored, err := store.Users().GetByEmail(context.Background(), "ivanov@example.com")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, claims.ID)
	assert.Equal(t, stored.Email, claims.Email)
	assert.Equal(t, string(model.RoleUser), claims.Role)
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "ivanov@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newTestService()

	tests := []struct {
		name   string
		mutate func(*model.RegisterRequest)
	}{
		{"single-token name", func(r *model.RegisterRequest) { r.Fio = "Иванов" }},
		{"bad phone", func(r *model.RegisterRequest) { r.Phone = "12345" }},
		{"bad email", func(r *model.RegisterRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *model.RegisterRequest) { r.Password = "abc" }},
		{"unknown role", func(r *model.RegisterRequest) { r.Role = "SUPERUSER" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegistration()
			tt.mutate(req)
			_, err := svc.Register(context.Background(), req)
			assert.True(t, apperror.IsKind(err, apperror.KindValidation), "got %v", err)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	dup := validRegistration()
	dup.Phone = "+79160000000"
	_, err = svc.Register(context.Background(), dup)
	assert.True(t, apperror.IsKind(err, apperror.KindConflict), "got %v", err)
}

func TestRegisterDuplicatePhone(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	dup := validRegistration()
	dup.Email = "other@example.com"
	_, err = svc.Register(context.Background(), dup)
	assert.True(t, apperror.IsKind(err, apperror.KindConflict), "got %v", err)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.True(t, apperror.IsKind(err, apperror.KindConflict), "got %v", err)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &model.LoginRequest{
		Email:    "ivanov@example.com",
		Password: "wrong-password",
	})
	assert.True(t, apperror.IsKind(err, apperror.KindConflict), "got %v", err)
}

func TestCheckReissuesToken(t *testing.T) {
	svc, _, tokens := newTestService()

	token, err := svc.Check(context.Background(), &auth.Claims{
		ID:    7,
		Email: "x@y.com",
		Role:  string(model.RoleManager),
	})
	require.NoError(t, err)

	claims, err := tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.ID)
	assert.Equal(t, string(model.RoleManager), claims.Role)
}
