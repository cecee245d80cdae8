package http

import (
	"github.com/gin-gonic/gin"

	"wardrobe-assistant/internal/wardrobe"
	pkgLog "wardrobe-assistant/pkg/log"
)

// Handler is the public interface for the wardrobe HTTP delivery layer.
type Handler interface {
	AddItem(c *gin.Context)
	AddSharedItem(c *gin.Context)
	UpdateItem(c *gin.Context)
	RemoveItem(c *gin.Context)
	GetItem(c *gin.Context)
	ListItems(c *gin.Context)
	SearchItems(c *gin.Context)
	FilterItems(c *gin.Context)

	CreateOutfit(c *gin.Context)
	RateOutfit(c *gin.Context)
	DeleteOutfit(c *gin.Context)
	ListOutfits(c *gin.Context)

	SaveAvatar(c *gin.Context)
	GetAvatar(c *gin.Context)
	TryOnItem(c *gin.Context)
	RemoveFromAvatar(c *gin.Context)
	ListAvatarClothing(c *gin.Context)

	Stats(c *gin.Context)
	Export(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc wardrobe.UseCase
}

// New creates a new HTTP handler for the wardrobe domain.
func New(l pkgLog.Logger, uc wardrobe.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
