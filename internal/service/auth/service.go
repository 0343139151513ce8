// Package auth implements registration, login and token introspection.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/vetdesk/vetclinic-api/internal/apperror"
	"github.com/vetdesk/vetclinic-api/internal/model"
	"github.com/vetdesk/vetclinic-api/internal/repository"
	"github.com/vetdesk/vetclinic-api/pkg/auth"
	"github.com/vetdesk/vetclinic-api/pkg/security"
	"github.com/vetdesk/vetclinic-api/pkg/validation"
)

type AuthServicer interface {
	Register(ctx context.Context, req *model.RegisterRequest) (string, error)
	Login(ctx context.Context, req *model.LoginRequest) (string, error)
	Check(ctx context.Context, claims *auth.Claims) (string, error)
}

type Service struct {
	users  repository.UserRepository
	hasher security.PasswordHasher
	tokens auth.JWTService
}

func NewService(users repository.UserRepository, hasher security.PasswordHasher, tokens auth.JWTService) *Service {
	return &Service{users: users, hasher: hasher, tokens: tokens}
}

// Register creates an account and returns a fresh session token. Shape checks
// run before any store access; email and phone uniqueness is pre-checked and
// ultimately enforced by the store constraints.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (string, error) {
	if !validation.IsFullName(req.Fio) {
		return "", apperror.Validation("Incorrect Fio")
	}
	if !validation.IsPhone(req.Phone) {
		return "", apperror.Validation("Incorrect phone")
	}
	if !validation.IsEmail(req.Email) {
		return "", apperror.Validation("Incorrect email")
	}
	if !validation.IsPassword(req.Password) {
		return "", apperror.Validation("Password must be at least %d characters", validation.MinPasswordLen)
	}

	role := model.RoleUser
	if req.Role != "" {
		role = model.Role(req.Role)
		if !role.Valid() {
			return "", apperror.Validation("Unknown role %s", req.Role)
		}
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return "", apperror.Conflict("A user with this email already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", fmt.Errorf("failed to check email: %w", err)
	}
	if _, err := s.users.GetByPhone(ctx, req.Phone); err == nil {
		return "", apperror.Conflict("A user with this phone already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", fmt.Errorf("failed to check phone: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Fio:          req.Fio,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", apperror.Conflict("A user with this email or phone already exists")
		}
		return "", err
	}

	return s.issueToken(user)
}

// Login verifies credentials and returns a session token. Unknown email and
// wrong password both surface as Conflict, the taxonomy existing clients
// depend on.
func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (string, error) {
	if !validation.IsEmail(req.Email) {
		return "", apperror.Validation("Incorrect email")
	}
	if !validation.IsPassword(req.Password) {
		return "", apperror.Validation("Password must be at least %d characters", validation.MinPasswordLen)
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", apperror.Conflict("User with this email not found")
		}
		return "", err
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return "", apperror.Conflict("Incorrect password")
	}

	return s.issueToken(user)
}

// Check re-issues a token for an already authenticated principal, refreshing
// its expiry window.
func (s *Service) Check(ctx context.Context, claims *auth.Claims) (string, error) {
	token, err := s.tokens.Generate(claims.ID, claims.Email, claims.Role, claims.Fio, claims.Phone)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

func (s *Service) issueToken(user *model.User) (string, error) {
	token, err := s.tokens.Generate(user.ID, user.Email, string(user.Role), user.Fio, user.Phone)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
