package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims is the principal embedded in a session token. Fio and Phone are
// optional and omitted from the payload when empty.
type Claims struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Fio   string `json:"fio,omitempty"`
	Phone string `json:"phone,omitempty"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies session tokens.
type JWTService interface {
	Generate(id int64, email, role, fio, phone string) (string, error)
	Validate(token string) (*Claims, error)
}

type jwtService struct {
	secret []byte
	expiry time.Duration
}

// NewJWTService returns an HS256 token service. Tokens carry the principal
// and expire after the configured duration.
func NewJWTService(secret string, expiry time.Duration) JWTService {
	return &jwtService{secret: []byte(secret), expiry: expiry}
}

func (s *jwtService) Generate(id int64, email, role, fio, phone string) (string, error) {
	now := time.Now()
	claims := &Claims{
		ID:    id,
		Email: email,
		Role:  role,
		Fio:   fio,
		Phone: phone,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *jwtService) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
