package http

import (
	"github.com/gin-gonic/gin"

	"wardrobe-assistant/internal/entitlement"
	pkgLog "wardrobe-assistant/pkg/log"
)

// Handler is the public interface for the subscription HTTP delivery layer.
type Handler interface {
	Current(c *gin.Context)
	Plans(c *gin.Context)
	Subscribe(c *gin.Context)
	Cancel(c *gin.Context)
	UpdatePlan(c *gin.Context)
	Refresh(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc entitlement.UseCase
}

// New creates a new HTTP handler for the subscription domain.
func New(l pkgLog.Logger, uc entitlement.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
