package main

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// page maps a URL path to its shell title. The table is static and routing-
// library agnostic; the SPA bundle hydrates the rest.
type page struct {
	Path  string `json:"path"`
	Title string `json:"title"`
}

var pages = []page{
	{Path: "/", Title: "CupCakeMC"},
	{Path: "/shop", Title: "Shop - CupCakeMC"},
	{Path: "/shop/:id", Title: "Item Details - CupCakeMC"},
	{Path: "/vote", Title: "Vote - CupCakeMC"},
	{Path: "/discord", Title: "Discord - CupCakeMC"},
	{Path: "/history", Title: "History - CupCakeMC"},
	{Path: "/admin", Title: "Admin Dashboard - CupCakeMC"},
	{Path: "/admin/shop", Title: "Shop Management - CupCakeMC"},
}

const shellTemplate = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>%s</title></head>
<body><div id="root"></div><script src="/assets/app.js"></script></body>
</html>
`

// registerPageRoutes serves the HTML shell for every known path and a 404
// shell for everything else.
func registerPageRoutes(e *echo.Echo) {
	for _, p := range pages {
		title := p.Title
		e.GET(p.Path, func(c echo.Context) error {
			return c.HTML(http.StatusOK, fmt.Sprintf(shellTemplate, title))
		})
	}
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.HTML(http.StatusNotFound, fmt.Sprintf(shellTemplate, "Page Not Found - CupCakeMC"))
	})
}
