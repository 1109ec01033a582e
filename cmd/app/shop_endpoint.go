package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/caffeinepub/cupcakemc/internal/model"
	"github.com/caffeinepub/cupcakemc/internal/services"
)

// registerShopRoutes mounts the public catalog endpoints.
//
//	GET /shop/items            -> all items (?category=Rank|CrateKey|Perk)
//	GET /shop/items/:id        -> item detail
func registerShopRoutes(g *echo.Group, ss *services.ShopService) {
	g.GET("/shop/items", func(c echo.Context) error {
		ctx := c.Request().Context()

		if cat := c.QueryParam("category"); cat != "" {
			items, err := ss.ItemsByCategory(ctx, model.Category(cat))
			if err != nil {
				if !model.Category(cat).Valid() {
					return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
				}
				return c.JSON(remoteStatus(err), map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusOK, items)
		}

		items, err := ss.AllItems(ctx)
		if err != nil {
			return c.JSON(remoteStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, items)
	})

	g.GET("/shop/items/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		item, err := ss.Item(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrItemNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "item not found"})
			}
			return c.JSON(remoteStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, item)
	})
}
