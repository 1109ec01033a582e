package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caffeinepub/cupcakemc/internal/middleware"
	"github.com/caffeinepub/cupcakemc/internal/services"
)

type addCartRequest struct {
	ItemID   int64 `json:"itemId"`
	Quantity int64 `json:"quantity"`
}

// registerCartRoutes mounts the authenticated cart endpoints.
func registerCartRoutes(g *echo.Group, cs *services.CartService) {
	p := g.Group("/cart")
	p.Use(middleware.RequireAuth)

	// GET cart
	p.GET("", func(c echo.Context) error {
		cart, err := cs.Get(c.Request().Context(), middleware.Principal(c))
		if err != nil {
			return c.JSON(remoteStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, cart)
	})

	// ADD item
	p.POST("", func(c echo.Context) error {
		req := new(addCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		if err := cs.Add(c.Request().Context(), middleware.Principal(c), req.ItemID, req.Quantity); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]string{"message": "added"})
	})

	// CLEAR cart
	p.DELETE("", func(c echo.Context) error {
		if err := cs.Clear(c.Request().Context(), middleware.Principal(c)); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "cleared"})
	})
}
