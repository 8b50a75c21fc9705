package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/david8219501/leader-app-server-08-09-25/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated manager, taken from verified token
// claims. Handlers bind every query to Principal.ManagerID; a manager id in
// a request body or path is never trusted.
type Principal struct {
	ManagerID int64
	Email     string
}

// AuthMiddleware validates bearer tokens and stores the principal.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes. A missing or
// malformed header is 401; a present but invalid or expired token is 403.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewForbidden("invalid or expired token")
	}

	c.Locals(principalKey, &Principal{ManagerID: claims.ManagerID, Email: claims.Email})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated manager identity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
