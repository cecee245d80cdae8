package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"wardrobe-assistant/internal/entitlement"
	"wardrobe-assistant/internal/middleware"
	"wardrobe-assistant/internal/stylist"
	"wardrobe-assistant/internal/wardrobe"
	"wardrobe-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw middleware.Middleware

	// Domain use cases
	wardrobeUC    wardrobe.UseCase
	stylistUC     stylist.UseCase
	entitlementUC entitlement.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	WardrobeUC    wardrobe.UseCase
	StylistUC     stylist.UseCase
	EntitlementUC entitlement.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.Default(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		mw:            cfg.Middleware,
		wardrobeUC:    cfg.WardrobeUC,
		stylistUC:     cfg.StylistUC,
		entitlementUC: cfg.EntitlementUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.wardrobeUC == nil {
		return errors.New("wardrobe use case is required")
	}
	if srv.stylistUC == nil {
		return errors.New("stylist use case is required")
	}
	if srv.entitlementUC == nil {
		return errors.New("entitlement use case is required")
	}
	return nil
}
