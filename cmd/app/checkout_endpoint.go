package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caffeinepub/cupcakemc/internal/checkout"
	"github.com/caffeinepub/cupcakemc/internal/middleware"
	"github.com/caffeinepub/cupcakemc/internal/services"
)

type accountStepRequest struct {
	MinecraftUsername string `json:"minecraftUsername"`
	DiscordUsername   string `json:"discordUsername"`
}

// registerCheckoutRoutes mounts the two-step purchase flow. A session
// snapshots the cart and UPI target when the modal opens and is discarded on
// close or completion.
func registerCheckoutRoutes(
	g *echo.Group,
	mgr *checkout.Manager,
	carts *services.CartService,
	configs *services.ConfigService,
	orders *services.OrderService,
	qrgen checkout.QRGenerator,
) {
	p := g.Group("/checkout")
	p.Use(middleware.RequireAuth)

	// open the modal: snapshot cart + payment target
	p.POST("", func(c echo.Context) error {
		ctx := c.Request().Context()
		principal := middleware.Principal(c)

		cart, err := carts.Get(ctx, principal)
		if err != nil {
			return c.JSON(remoteStatus(err), map[string]string{"error": err.Error()})
		}
		upi, err := configs.UPI(ctx, principal)
		if err != nil {
			return c.JSON(remoteStatus(err), map[string]string{"error": err.Error()})
		}

		complete := func(ctx context.Context, mc, dc string) error {
			return orders.CompletePurchase(ctx, principal, mc, dc)
		}
		session, err := checkout.NewSession(cart.Items, upi, complete, qrgen)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		mgr.Put(principal, session)
		return c.JSON(http.StatusCreated, session.View())
	})

	p.GET("", func(c echo.Context) error {
		session, ok := mgr.Get(middleware.Principal(c))
		if !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "no checkout in progress"})
		}
		return c.JSON(http.StatusOK, session.View())
	})

	// account step -> payment step; QR generation runs inline and its
	// failure is reported through the view's qrState, not a failed request
	p.POST("/account", func(c echo.Context) error {
		session, ok := mgr.Get(middleware.Principal(c))
		if !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "no checkout in progress"})
		}
		req := new(accountStepRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := session.ProceedToPayment(req.MinecraftUsername, req.DiscordUsername); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		_ = session.GenerateQR(c.Request().Context())
		return c.JSON(http.StatusOK, session.View())
	})

	p.GET("/qr", func(c echo.Context) error {
		session, ok := mgr.Get(middleware.Principal(c))
		if !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "no checkout in progress"})
		}
		img, err := session.QRImage()
		if err != nil {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return c.Blob(http.StatusOK, "image/png", img)
	})

	// manual retry after a failed generation; entered identifiers survive
	p.POST("/qr/retry", func(c echo.Context) error {
		session, ok := mgr.Get(middleware.Principal(c))
		if !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "no checkout in progress"})
		}
		if err := session.GenerateQR(c.Request().Context()); err != nil && errors.Is(err, checkout.ErrWrongStep) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, session.View())
	})

	p.POST("/back", func(c echo.Context) error {
		session, ok := mgr.Get(middleware.Principal(c))
		if !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "no checkout in progress"})
		}
		if err := session.Back(); err != nil {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, session.View())
	})

	p.POST("/confirm", func(c echo.Context) error {
		principal := middleware.Principal(c)
		session, ok := mgr.Get(principal)
		if !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "no checkout in progress"})
		}
		if err := session.Confirm(c.Request().Context()); err != nil {
			switch {
			case errors.Is(err, checkout.ErrCompletionPending), errors.Is(err, checkout.ErrSessionCompleted), errors.Is(err, checkout.ErrWrongStep):
				return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
			default:
				// remote failure: stay in the payment step, retryable
				return c.JSON(remoteStatus(err), map[string]string{"error": err.Error()})
			}
		}
		mgr.Discard(principal)
		return c.JSON(http.StatusOK, map[string]string{"status": "completed"})
	})

	// closing the modal discards the session
	p.DELETE("", func(c echo.Context) error {
		mgr.Discard(middleware.Principal(c))
		return c.JSON(http.StatusOK, map[string]string{"message": "discarded"})
	})
}
