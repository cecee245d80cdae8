package http

import (
	"github.com/gin-gonic/gin"

	"wardrobe-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The AI routes
// are rate limited per caller on top of authentication.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	st := rg.Group("/stylist")
	{
		st.POST("/analyze", mw.Auth(), mw.AIRateLimit(), h.Analyze)
		st.POST("/suggest", mw.Auth(), mw.AIRateLimit(), h.Suggest)
		st.POST("/render", mw.Auth(), mw.AIRateLimit(), h.Render)
		st.GET("/invocations/:id", mw.Auth(), h.GetInvocation)
	}
}
