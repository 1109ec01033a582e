package middleware

import (
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/caffeinepub/cupcakemc/external/identity"
)

// SessionCookie is the signed session cookie name.
const SessionCookie = "cupcake_session"

// Claims is the session JWT payload. BackendToken is the bearer token the
// identity provider issued for the remote backend; it never reaches the
// browser unencoded.
type Claims struct {
	Principal    string `json:"principal"`
	Name         string `json:"name"`
	BackendToken string `json:"backendToken"`
	jwt.RegisteredClaims
}

// sessionSecret is read per call, not captured at package init: main loads
// .env after this package initializes, so an init-time read would silently
// sign every session with the dev fallback.
func sessionSecret() []byte {
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("dev-secret-please-change")
}

// IssueSessionCookie signs a session for the authenticated identity.
func IssueSessionCookie(id identity.Identity) (*http.Cookie, error) {
	expiry := id.ExpiresAt
	if expiry.IsZero() {
		expiry = time.Now().Add(24 * time.Hour)
	}
	claims := &Claims{
		Principal:    id.Principal,
		Name:         id.Name,
		BackendToken: id.Token,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "cupcakemc-web",
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(sessionSecret())
	if err != nil {
		return nil, err
	}
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    signed,
		Path:     "/",
		Expires:  expiry,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// ClearSessionCookie expires the session cookie; logout is synchronous from
// the caller's point of view.
func ClearSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// SessionMiddleware parses the session cookie when present and attaches the
// claims plus the backend bearer token to the request. An anonymous or
// invalid session is not an error; identity-gated reads simply stay
// disabled.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			token, err := jwt.ParseWithClaims(cookie.Value, &Claims{}, func(t *jwt.Token) (interface{}, error) {
				return sessionSecret(), nil
			})
			if err != nil || !token.Valid {
				return next(c)
			}
			claims, ok := token.Claims.(*Claims)
			if !ok {
				return next(c)
			}
			c.Set("session_claims", claims)

			req := c.Request()
			c.SetRequest(req.WithContext(identity.WithToken(req.Context(), claims.BackendToken)))
			return next(c)
		}
	}
}

// GetClaims returns the session claims, or nil for anonymous requests.
func GetClaims(c echo.Context) *Claims {
	v := c.Get("session_claims")
	if v == nil {
		return nil
	}
	if cl, ok := v.(*Claims); ok {
		return cl
	}
	return nil
}

// Principal returns the canonical principal string, "" when anonymous.
func Principal(c echo.Context) string {
	if cl := GetClaims(c); cl != nil {
		return cl.Principal
	}
	return ""
}

// RequireAuth rejects anonymous requests.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if GetClaims(c) == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		}
		return next(c)
	}
}
