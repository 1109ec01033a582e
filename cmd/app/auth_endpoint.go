package main

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/caffeinepub/cupcakemc/external/identity"
	"github.com/caffeinepub/cupcakemc/internal/cache"
	"github.com/caffeinepub/cupcakemc/internal/middleware"
)

const stateCookie = "cupcake_login_state"

// registerAuthRoutes mounts login/logout. The cache store is cleared on every
// identity change so one principal's entries can never be served to another.
func registerAuthRoutes(g *echo.Group, provider *identity.Provider, store *cache.Store) {
	g.GET("/auth/login", func(c echo.Context) error {
		state := uuid.NewString()
		c.SetCookie(&http.Cookie{
			Name:     stateCookie,
			Value:    state,
			Path:     "/",
			Expires:  time.Now().Add(10 * time.Minute),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return c.Redirect(http.StatusFound, provider.BeginLogin(state))
	})

	g.GET("/auth/callback", func(c echo.Context) error {
		cookie, err := c.Cookie(stateCookie)
		if err != nil || cookie.Value == "" || cookie.Value != c.QueryParam("state") {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "login state mismatch"})
		}
		// state is single-use; expire it the moment it is consumed
		c.SetCookie(&http.Cookie{
			Name:     stateCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		code := c.QueryParam("code")
		if code == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing code"})
		}

		id, err := provider.CompleteLogin(c.Request().Context(), code)
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}

		session, err := middleware.IssueSessionCookie(id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		c.SetCookie(session)

		// identity switched: drop every cached entry
		store.Clear()
		return c.Redirect(http.StatusFound, "/")
	})

	g.POST("/auth/logout", func(c echo.Context) error {
		c.SetCookie(middleware.ClearSessionCookie())
		store.Clear()
		return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
	})

	g.GET("/auth/me", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if claims == nil {
			return c.JSON(http.StatusOK, map[string]any{"authenticated": false})
		}
		return c.JSON(http.StatusOK, map[string]any{
			"authenticated": true,
			"principal":     claims.Principal,
			"name":          claims.Name,
		})
	})
}
