package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wardrobe-assistant/config"
	"wardrobe-assistant/internal/billing"
	entitlementRepo "wardrobe-assistant/internal/entitlement/repository/closetapi"
	entitlementUC "wardrobe-assistant/internal/entitlement/usecase"
	"wardrobe-assistant/internal/httpserver"
	"wardrobe-assistant/internal/middleware"
	stylistUC "wardrobe-assistant/internal/stylist/usecase"
	wardrobeRepo "wardrobe-assistant/internal/wardrobe/repository/closetapi"
	wardrobeUC "wardrobe-assistant/internal/wardrobe/usecase"
	"wardrobe-assistant/pkg/bgremoval"
	"wardrobe-assistant/pkg/log"
	"wardrobe-assistant/pkg/renderprovider"
	"wardrobe-assistant/pkg/vision"
	"wardrobe-assistant/pkg/weather"
)

// @title       Wardrobe Assistant API
// @description Personal wardrobe assistant with AI garment analysis, outfit suggestions, avatar try-on, and subscription tiers.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Wardrobe Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Closet URL: %s", cfg.Closet.URL)

	// 3. Provider clients
	visionClient, err := vision.New(vision.Config{
		APIKey: cfg.Vision.APIKey,
		Model:  cfg.Vision.Model,
		APIURL: cfg.Vision.APIURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize vision client: ", err)
		return
	}

	renderRegistry, err := renderprovider.InitializeRegistry(&cfg.Render)
	if err != nil {
		logger.Error(ctx, "Failed to initialize render providers: ", err)
		return
	}
	logger.Infof(ctx, "Render providers: %v", renderRegistry.Names())

	var bgRemovalClient bgremoval.IBgRemoval
	if cfg.BgRemoval.APIKey != "" {
		client, bgErr := bgremoval.New(cfg.BgRemoval.APIKey)
		if bgErr != nil {
			logger.Warnf(ctx, "Background removal not available (optional): %v", bgErr)
		} else {
			bgRemovalClient = client
		}
	} else {
		logger.Warn(ctx, "BG_REMOVAL_API_KEY missing, background removal disabled")
	}

	var weatherClient weather.IWeather
	if cfg.Weather.Enabled {
		weatherClient = weather.New()
	}

	stripeProcessor, err := billing.NewStripeProcessor(logger, billing.Config{
		SecretKey: cfg.Stripe.SecretKey,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize billing: ", err)
		return
	}

	// 4. Repositories
	subscriptionRepo := entitlementRepo.New(cfg.Closet.URL, cfg.Closet.AccessToken, logger)
	wardrobeGateway := wardrobeRepo.New(cfg.Closet.URL, cfg.Closet.AccessToken, logger)

	// 5. Use cases
	entitlement := entitlementUC.New(logger, subscriptionRepo, stripeProcessor)
	wardrobe := wardrobeUC.New(logger, wardrobeGateway, entitlement)
	stylist := stylistUC.New(logger, visionClient, bgRemovalClient, weatherClient,
		cfg.Weather, renderRegistry, wardrobe, entitlement)

	if err := wardrobe.Load(ctx); err != nil {
		logger.Error(ctx, "Failed to hydrate the wardrobe projection: ", err)
		return
	}

	// 6. Middleware
	mw := middleware.New(logger, cfg.Auth, cfg.RateLimit)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		Middleware:    mw,
		WardrobeUC:    wardrobe,
		StylistUC:     stylist,
		EntitlementUC: entitlement,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
