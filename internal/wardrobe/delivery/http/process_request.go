package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "wardrobe-assistant/pkg/errors"
)

// processItemReq binds and validates the add item request body.
func (h *handler) processItemReq(c *gin.Context) (itemReq, error) {
	var req itemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError("body", err.Error())
	}
	return req, nil
}

// processSharedItemReq binds and validates the shared item request body.
func (h *handler) processSharedItemReq(c *gin.Context) (sharedItemReq, error) {
	var req sharedItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError("body", err.Error())
	}
	return req, nil
}

// processUpdateItemReq binds the update body and the URI id.
func (h *handler) processUpdateItemReq(c *gin.Context) (updateItemReq, error) {
	var req updateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError("body", err.Error())
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, pkgErrors.NewValidationError("id", "is required")
	}
	return req, nil
}

// processFilterReq binds the typed filter query parameters.
func (h *handler) processFilterReq(c *gin.Context) (filterReq, error) {
	var req filterReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewValidationError("query", err.Error())
	}
	return req, nil
}

// processCreateOutfitReq binds and validates the create outfit body.
func (h *handler) processCreateOutfitReq(c *gin.Context) (createOutfitReq, error) {
	var req createOutfitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError("body", err.Error())
	}
	return req, nil
}

// processRateOutfitReq binds the rating body and the URI id.
func (h *handler) processRateOutfitReq(c *gin.Context) (rateOutfitReq, error) {
	var req rateOutfitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError("body", err.Error())
	}
	req.OutfitID = c.Param("id")
	if req.OutfitID == "" {
		return req, pkgErrors.NewValidationError("id", "is required")
	}
	return req, nil
}

// processSaveAvatarReq binds and validates the avatar body.
func (h *handler) processSaveAvatarReq(c *gin.Context) (saveAvatarReq, error) {
	var req saveAvatarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError("body", err.Error())
	}
	return req, nil
}
