package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vetdesk/vetclinic-api/internal/apperror"
	"github.com/vetdesk/vetclinic-api/internal/model"
	"github.com/vetdesk/vetclinic-api/pkg/auth"
	"github.com/vetdesk/vetclinic-api/pkg/httputil"
)

const contextPrincipal = "principal"

type AuthMiddleware struct {
	tokens auth.JWTService
}

func NewAuthMiddleware(tokens auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate verifies the bearer token and attaches the decoded principal
// to the request context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			httputil.RespondWithError(c, apperror.Unauthorized("missing authorization header"))
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			httputil.RespondWithError(c, apperror.Unauthorized("invalid authorization format"))
			return
		}

		claims, err := m.tokens.Validate(parts[1])
		if err != nil {
			if err == auth.ErrExpiredToken {
				httputil.RespondWithError(c, apperror.Unauthorized("token expired"))
				return
			}
			httputil.RespondWithError(c, apperror.Unauthorized("invalid token"))
			return
		}

		c.Set(contextPrincipal, claims)
		c.Next()
	}
}

// Authorize requires the principal's role to carry the given capability.
func (m *AuthMiddleware) Authorize(op model.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Principal(c)
		if claims == nil {
			httputil.RespondWithError(c, apperror.Unauthorized("missing principal"))
			return
		}
		if !model.Role(claims.Role).Can(op) {
			httputil.RespondWithError(c, apperror.Forbidden("insufficient role"))
			return
		}
		c.Next()
	}
}

// Principal returns the authenticated claims attached by Authenticate, or
// nil when the request is unauthenticated.
func Principal(c *gin.Context) *auth.Claims {
	value, ok := c.Get(contextPrincipal)
	if !ok {
		return nil
	}
	claims, ok := value.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
