package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	entitlementHTTP "wardrobe-assistant/internal/entitlement/delivery/http"
	stylistHTTP "wardrobe-assistant/internal/stylist/delivery/http"
	wardrobeHTTP "wardrobe-assistant/internal/wardrobe/delivery/http"
)

// setupWardrobeDomain registers the wardrobe routes at /api/v1/wardrobe.
func (srv *HTTPServer) setupWardrobeDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := wardrobeHTTP.New(srv.l, srv.wardrobeUC)
	wardrobeHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Wardrobe domain registered")
	return nil
}

// setupStylistDomain registers the stylist routes at /api/v1/stylist.
func (srv *HTTPServer) setupStylistDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := stylistHTTP.New(srv.l, srv.stylistUC)
	stylistHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Stylist domain registered")
	return nil
}

// setupEntitlementDomain registers the subscription routes at
// /api/v1/subscription.
func (srv *HTTPServer) setupEntitlementDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := entitlementHTTP.New(srv.l, srv.entitlementUC)
	entitlementHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Entitlement domain registered")
	return nil
}
