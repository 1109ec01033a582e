package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/caffeinepub/cupcakemc/external/backend"
	"github.com/caffeinepub/cupcakemc/external/cloudinary"
	"github.com/caffeinepub/cupcakemc/external/identity"
	"github.com/caffeinepub/cupcakemc/external/qrserver"
	"github.com/caffeinepub/cupcakemc/internal/cache"
	"github.com/caffeinepub/cupcakemc/internal/checkout"
	"github.com/caffeinepub/cupcakemc/internal/middleware"
	"github.com/caffeinepub/cupcakemc/internal/services"
)

func main() {
	// local development convenience; the file is absent in production
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// ======================
	// EXTERNALS
	// ======================
	remote, err := backend.NewClient()
	if err != nil {
		logger.Fatal("backend client", zap.Error(err))
	}
	provider, err := identity.NewProvider()
	if err != nil {
		logger.Fatal("identity provider", zap.Error(err))
	}
	qr := qrserver.NewClient()

	var uploads *cloudinary.Uploader
	if up, err := cloudinary.NewUploader(); err != nil {
		logger.Warn("logo upload disabled", zap.Error(err))
	} else {
		uploads = up
	}

	// ======================
	// CACHE + SERVICES
	// ======================
	store := cache.NewStore(logger)

	shopSvc := services.NewShopService(remote, store)
	cartSvc := services.NewCartService(remote, store)
	orderSvc := services.NewOrderService(remote, store)
	configSvc := services.NewConfigService(remote, store)
	profileSvc := services.NewProfileService(remote, store)

	checkouts := checkout.NewManager()

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.SessionMiddleware())

	api := e.Group("/api")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(api, provider, store)
	registerShopRoutes(api, shopSvc)
	registerCartRoutes(api, cartSvc)
	registerCheckoutRoutes(api, checkouts, cartSvc, configSvc, orderSvc, qr)
	registerHistoryRoutes(api, orderSvc)
	registerProfileRoutes(api, profileSvc)
	registerConfigRoutes(api, configSvc)
	registerAdminRoutes(api, shopSvc, orderSvc, configSvc, profileSvc, uploads)
	registerPageRoutes(e)

	// ======================
	// SERVER
	// ======================
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
