package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "wardrobe-assistant/pkg/errors"
)

// processSubscribeReq binds and validates the subscribe request body.
func (h *handler) processSubscribeReq(c *gin.Context) (subscribeReq, error) {
	var req subscribeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError("body", err.Error())
	}
	return req, nil
}

// processPaymentSheetReq binds and validates the payment sheet request body.
func (h *handler) processPaymentSheetReq(c *gin.Context) (paymentSheetReq, error) {
	var req paymentSheetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError("body", err.Error())
	}
	return req, nil
}

// processUpdatePlanReq binds and validates the update plan request body.
func (h *handler) processUpdatePlanReq(c *gin.Context) (updatePlanReq, error) {
	var req updatePlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError("body", err.Error())
	}
	return req, nil
}
