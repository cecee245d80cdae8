package http

import (
	"github.com/gin-gonic/gin"

	"wardrobe-assistant/internal/entitlement"
	"wardrobe-assistant/internal/middleware"
	"wardrobe-assistant/pkg/response"
)

// Current godoc
// @Summary     Get current subscription
// @Description Returns the caller's subscription with the effective tier and limits.
// @Tags        Subscription
// @Produce     json
// @Success     200 {object} subscriptionResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/subscription [GET]
func (h *handler) Current(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Current(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Current: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSubscriptionResp(output))
}

// Plans godoc
// @Summary     List available plans
// @Description Returns the purchasable plan catalog.
// @Tags        Subscription
// @Produce     json
// @Success     200 {object} plansResp
// @Router      /api/v1/subscription/plans [GET]
func (h *handler) Plans(c *gin.Context) {
	response.OK(c, h.newPlansResp(entitlement.Plans()))
}

// Subscribe godoc
// @Summary     Subscribe to a plan
// @Description Moves the caller from the free tier to a paid plan.
// @Tags        Subscription
// @Accept      json
// @Produce     json
// @Param       body body subscribeReq true "Plan selection"
// @Success     200 {object} subscriptionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - already subscribed"
// @Failure     502 {object} response.Resp "Payment provider unavailable"
// @Router      /api/v1/subscription/subscribe [POST]
func (h *handler) Subscribe(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubscribeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Subscribe(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Subscribe: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSubscriptionResp(output))
}

// PaymentSheet godoc
// @Summary     Prepare a payment sheet
// @Description Returns a payment intent and ephemeral key for paying a plan client-side.
// @Tags        Subscription
// @Accept      json
// @Produce     json
// @Param       body body paymentSheetReq true "Plan selection"
// @Success     200 {object} paymentSheetResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Payment provider unavailable"
// @Router      /api/v1/subscription/payment-sheet [POST]
func (h *handler) PaymentSheet(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPaymentSheetReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.PaymentSheet(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.PaymentSheet: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPaymentSheetResp(output))
}

// Cancel godoc
// @Summary     Cancel the subscription
// @Description Stops auto-renew; the paid tier stays active until period end.
// @Tags        Subscription
// @Produce     json
// @Success     200 {object} subscriptionResp
// @Failure     400 {object} response.Resp "No paid subscription"
// @Failure     502 {object} response.Resp "Payment provider unavailable"
// @Router      /api/v1/subscription/cancel [POST]
func (h *handler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Cancel(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Cancel: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSubscriptionResp(output))
}

// UpdatePlan godoc
// @Summary     Switch to a different paid plan
// @Description Moves an active subscription to another paid plan.
// @Tags        Subscription
// @Accept      json
// @Produce     json
// @Param       body body updatePlanReq true "New plan"
// @Success     200 {object} subscriptionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Payment provider unavailable"
// @Router      /api/v1/subscription/plan [PUT]
func (h *handler) UpdatePlan(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdatePlanReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdatePlan(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdatePlan: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSubscriptionResp(output))
}

// Refresh godoc
// @Summary     Refresh subscription state
// @Description Reconciles the local subscription against the payment provider.
// @Tags        Subscription
// @Produce     json
// @Success     200 {object} subscriptionResp
// @Failure     502 {object} response.Resp "Payment provider unavailable"
// @Router      /api/v1/subscription/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Refresh(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Refresh: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSubscriptionResp(output))
}
