package http

import (
	"github.com/gin-gonic/gin"

	"wardrobe-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sub := rg.Group("/subscription")
	{
		sub.GET("", mw.Auth(), h.Current)
		sub.GET("/plans", mw.Auth(), h.Plans)
		sub.POST("/subscribe", mw.Auth(), h.Subscribe)
		sub.POST("/payment-sheet", mw.Auth(), h.PaymentSheet)
		sub.POST("/cancel", mw.Auth(), h.Cancel)
		sub.PUT("/plan", mw.Auth(), h.UpdatePlan)
		sub.POST("/refresh", mw.Auth(), h.Refresh)
	}
}
