package http

import (
	"fmt"
	"net/http"
	"strings"

	"delivr/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// principalKey is the echo context key the auth middleware stores the
// Principal under.
const principalKey = "principal"

// Principal is the authenticated actor behind a request: the user account id
// and the role carried by the token.
type Principal struct {
	UserID kernel.UUID
	Role   kernel.Role
}

// tokenClaims is the JWT payload: standard claims plus the actor role.
// Subject carries the user id.
type tokenClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Authenticator validates bearer tokens and resolves them into Principals.
type Authenticator struct {
	secret []byte
}

// NewAuthenticator creates an authenticator for HS256 tokens signed with the
// given secret.
func NewAuthenticator(secret string) Authenticator {
	return Authenticator{secret: []byte(secret)}
}

// Middleware returns an echo middleware that rejects requests without a valid
// bearer token and stores the resolved Principal in the request context.
func (a Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return respondMessage(ctx, http.StatusUnauthorized, "missing bearer token")
			}

			principal, err := a.resolve(token)
			if err != nil {
				return respondMessage(ctx, http.StatusUnauthorized, "invalid token")
			}

			ctx.Set(principalKey, principal)
			return next(ctx)
		}
	}
}

// RequireRole returns a middleware that admits only the given roles. It runs
// after Middleware, so the Principal is already present.
func RequireRole(roles ...kernel.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			principal, err := CurrentPrincipal(ctx)
			if err != nil {
				return respondMessage(ctx, http.StatusUnauthorized, "missing bearer token")
			}

			for _, role := range roles {
				if principal.Role == role {
					return next(ctx)
				}
			}
			return respondMessage(ctx, http.StatusUnauthorized,
				fmt.Sprintf("role %s may not access this resource", principal.Role))
		}
	}
}

// CurrentPrincipal extracts the authenticated actor from the request context.
func CurrentPrincipal(ctx echo.Context) (Principal, error) {
	principal, ok := ctx.Get(principalKey).(Principal)
	if !ok {
		return Principal{}, fmt.Errorf("no principal in request context")
	}
	return principal, nil
}

// IssueToken signs a token for the given user and role. Used by the seed tool
// and tests; a real deployment would have an identity provider doing this.
func (a Authenticator) IssueToken(userID kernel.UUID, role kernel.Role) (string, error) {
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: userID.String(),
		},
		Role: string(role),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func (a Authenticator) resolve(token string) (Principal, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return Principal{}, err
	}
	if !parsed.Valid {
		return Principal{}, fmt.Errorf("token is not valid")
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Principal{}, err
	}

	role, err := kernel.ParseRole(claims.Role)
	if err != nil {
		return Principal{}, err
	}

	return Principal{UserID: userID, Role: role}, nil
}
