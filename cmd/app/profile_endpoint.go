package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caffeinepub/cupcakemc/internal/middleware"
	"github.com/caffeinepub/cupcakemc/internal/model"
	"github.com/caffeinepub/cupcakemc/internal/services"
)

// registerProfileRoutes mounts profile read/setup. GET returns null until the
// identity completes profile setup; the shell uses that to open the setup
// modal after first login.
func registerProfileRoutes(g *echo.Group, ps *services.ProfileService) {
	p := g.Group("/profile")
	p.Use(middleware.RequireAuth)

	p.GET("", func(c echo.Context) error {
		profile, err := ps.Profile(c.Request().Context(), middleware.Principal(c))
		if err != nil {
			return c.JSON(remoteStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, profile)
	})

	p.POST("", func(c echo.Context) error {
		req := new(model.UserProfile)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := ps.Save(c.Request().Context(), middleware.Principal(c), *req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "saved"})
	})
}
