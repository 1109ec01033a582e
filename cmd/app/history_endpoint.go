package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caffeinepub/cupcakemc/internal/middleware"
	"github.com/caffeinepub/cupcakemc/internal/services"
)

// registerHistoryRoutes mounts the caller's purchase history.
func registerHistoryRoutes(g *echo.Group, os *services.OrderService) {
	p := g.Group("/history")
	p.Use(middleware.RequireAuth)

	p.GET("", func(c echo.Context) error {
		records, err := os.History(c.Request().Context(), middleware.Principal(c))
		if err != nil {
			return c.JSON(remoteStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, records)
	})
}
