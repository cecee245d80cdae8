package http

import (
	"github.com/gin-gonic/gin"

	"wardrobe-assistant/internal/stylist"
	pkgLog "wardrobe-assistant/pkg/log"
)

// Handler is the public interface for the stylist HTTP delivery layer.
type Handler interface {
	Analyze(c *gin.Context)
	Suggest(c *gin.Context)
	Render(c *gin.Context)
	GetInvocation(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc stylist.UseCase
}

// New creates a new HTTP handler for the stylist pipeline.
func New(l pkgLog.Logger, uc stylist.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
