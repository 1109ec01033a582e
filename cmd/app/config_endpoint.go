package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caffeinepub/cupcakemc/internal/middleware"
	"github.com/caffeinepub/cupcakemc/internal/services"
)

// registerConfigRoutes mounts the singleton config reads. The website config
// is public and feeds every page shell; the UPI config requires a session.
func registerConfigRoutes(g *echo.Group, cs *services.ConfigService) {
	g.GET("/config/website", func(c echo.Context) error {
		cfg, err := cs.Website(c.Request().Context())
		if err != nil {
			return c.JSON(remoteStatus(err), map[string]string{"error": err.Error()})
		}
		// resolve the appearance sum types for the shell
		return c.JSON(http.StatusOK, map[string]any{
			"config":     cfg,
			"logoSrc":    cfg.Logo.Src(),
			"background": cfg.Background.Resolve(),
		})
	})

	g.GET("/config/upi", middleware.RequireAuth(func(c echo.Context) error {
		cfg, err := cs.UPI(c.Request().Context(), middleware.Principal(c))
		if err != nil {
			return c.JSON(remoteStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, cfg)
	}))
}
