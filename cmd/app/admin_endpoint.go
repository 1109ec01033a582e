package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/caffeinepub/cupcakemc/external/cloudinary"
	"github.com/caffeinepub/cupcakemc/internal/middleware"
	"github.com/caffeinepub/cupcakemc/internal/model"
	"github.com/caffeinepub/cupcakemc/internal/services"
)

type approveOrderRequest struct {
	User    string `json:"user"`
	OrderID int64  `json:"orderId"`
}

type updateUPIRequest struct {
	UPIID        string `json:"upiId"`
	MerchantName string `json:"merchantName"`
}

// adminOnly gates the privileged routes on the cached isCallerAdmin check.
// Non-admins get a soft 403, never a crash; the backend re-checks anyway.
func adminOnly(ps *services.ProfileService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := middleware.GetClaims(c)
			if claims == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
			}
			if !ps.IsAdmin(c.Request().Context(), claims.Principal) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin access required"})
			}
			return next(c)
		}
	}
}

// registerAdminRoutes mounts item management, order approval and site
// configuration. uploads may be nil when Cloudinary is not configured.
func registerAdminRoutes(
	g *echo.Group,
	shop *services.ShopService,
	orders *services.OrderService,
	configs *services.ConfigService,
	profiles *services.ProfileService,
	uploads *cloudinary.Uploader,
) {
	p := g.Group("/admin")
	p.Use(adminOnly(profiles))

	// item management
	p.POST("/items", func(c echo.Context) error {
		req := new(model.NewShopItem)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		id, err := shop.Add(c.Request().Context(), *req)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]int64{"id": id})
	})

	p.PUT("/items/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		req := new(model.ShopItem)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		req.ID = id
		if err := shop.Edit(c.Request().Context(), *req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})

	p.DELETE("/items/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		if err := shop.Delete(c.Request().Context(), id); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	})

	// order management
	p.GET("/orders", func(c echo.Context) error {
		list, err := orders.AllOrders(c.Request().Context())
		if err != nil {
			return c.JSON(remoteStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	p.POST("/orders/approve", func(c echo.Context) error {
		req := new(approveOrderRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if req.User == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "user is required"})
		}
		if err := orders.Approve(c.Request().Context(), req.User, req.OrderID); err != nil {
			return c.JSON(remoteStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "approved"})
	})

	// site configuration
	p.PUT("/config/website", func(c echo.Context) error {
		req := new(model.WebsiteConfig)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := configs.UpdateWebsite(c.Request().Context(), *req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})

	p.PUT("/config/upi", func(c echo.Context) error {
		req := new(updateUPIRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := configs.UpdateUPI(c.Request().Context(), req.UPIID, req.MerchantName); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})

	// logo upload: store on the CDN, then point the website config at it
	p.POST("/config/logo", func(c echo.Context) error {
		if uploads == nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "logo upload not configured"})
		}
		fh, err := c.FormFile("logo")
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "logo file is required"})
		}
		f, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "cannot read logo file"})
		}
		defer f.Close()

		ctx := c.Request().Context()
		res, err := uploads.UploadLogo(ctx, f)
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}

		cfg, err := configs.Website(ctx)
		if err != nil {
			return c.JSON(remoteStatus(err), map[string]string{"error": err.Error()})
		}
		cfg.Logo = model.Logo{
			Kind:   model.LogoUpload,
			Upload: &model.LogoAsset{URL: res.URL, PublicID: res.PublicID},
		}
		if err := configs.UpdateWebsite(ctx, cfg); err != nil {
			return c.JSON(remoteStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"url": res.URL})
	})
}
