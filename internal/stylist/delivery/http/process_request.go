package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "wardrobe-assistant/pkg/errors"
)

// processAnalyzeReq binds and validates the analyze request body.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError("body", err.Error())
	}
	return req, nil
}

// processSuggestReq binds and validates the suggest request body.
func (h *handler) processSuggestReq(c *gin.Context) (suggestReq, error) {
	var req suggestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError("body", err.Error())
	}
	return req, nil
}

// processRenderReq binds and validates the render request body.
func (h *handler) processRenderReq(c *gin.Context) (renderReq, error) {
	var req renderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError("body", err.Error())
	}
	return req, nil
}
