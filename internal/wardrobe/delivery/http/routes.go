package http

import (
	"github.com/gin-gonic/gin"

	"wardrobe-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	wd := rg.Group("/wardrobe")
	{
		wd.POST("/items", mw.Auth(), h.AddItem)
		wd.POST("/items/shared", mw.Auth(), h.AddSharedItem)
		wd.GET("/items", mw.Auth(), h.ListItems)
		wd.GET("/items/search", mw.Auth(), h.SearchItems)
		wd.GET("/items/filter", mw.Auth(), h.FilterItems)
		wd.GET("/items/:id", mw.Auth(), h.GetItem)
		wd.PUT("/items/:id", mw.Auth(), h.UpdateItem)
		wd.DELETE("/items/:id", mw.Auth(), h.RemoveItem)

		wd.POST("/outfits", mw.Auth(), h.CreateOutfit)
		wd.GET("/outfits", mw.Auth(), h.ListOutfits)
		wd.PUT("/outfits/:id/rating", mw.Auth(), h.RateOutfit)
		wd.DELETE("/outfits/:id", mw.Auth(), h.DeleteOutfit)

		wd.PUT("/avatar", mw.Auth(), h.SaveAvatar)
		wd.GET("/avatar", mw.Auth(), h.GetAvatar)
		wd.GET("/avatar/clothing", mw.Auth(), h.ListAvatarClothing)
		wd.POST("/avatar/tryon/:itemId", mw.Auth(), h.TryOnItem)
		wd.DELETE("/avatar/tryon/:itemId", mw.Auth(), h.RemoveFromAvatar)

		wd.GET("/stats", mw.Auth(), h.Stats)
		wd.GET("/export", mw.Auth(), h.Export)
	}
}
