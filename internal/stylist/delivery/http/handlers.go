package http

import (
	"github.com/gin-gonic/gin"

	"wardrobe-assistant/internal/middleware"
	"wardrobe-assistant/pkg/response"
)

// Analyze godoc
// @Summary     Analyze a garment photo
// @Description Runs image analysis with optional background removal and returns a structured garment draft. Provider failures degrade to a basic record instead of erroring.
// @Tags        Stylist
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Photo data"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/stylist/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.AnalyzeGarment(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AnalyzeGarment: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newAnalyzeResp(out))
}

// Suggest godoc
// @Summary     Compose an outfit
// @Description Suggests one outfit from the available inventory for the given occasion. Needs at least 2 available items.
// @Tags        Stylist
// @Accept      json
// @Produce     json
// @Param       body body suggestReq true "Occasion and preferences"
// @Success     200 {object} suggestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Feature not included in plan"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/stylist/suggest [POST]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.SuggestOutfit(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestOutfit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSuggestResp(out))
}

// Render godoc
// @Summary     Render a try-on image
// @Description Renders the named outfit or items, on the personalized avatar or a generic model. A provider failure is final; retry with another provider explicitly.
// @Tags        Stylist
// @Accept      json
// @Produce     json
// @Param       body body renderReq true "Render parameters"
// @Success     200 {object} renderResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Feature not included in plan"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Render provider unavailable"
// @Router      /api/v1/stylist/render [POST]
func (h *handler) Render(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRenderReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.RenderTryOn(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.RenderTryOn: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRenderResp(out))
}

// GetInvocation godoc
// @Summary     Get pipeline invocation status
// @Description Returns the step, percent complete, and step log of a pipeline invocation.
// @Tags        Stylist
// @Produce     json
// @Param       id path string true "Invocation ID"
// @Success     200 {object} invocationResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/stylist/invocations/{id} [GET]
func (h *handler) GetInvocation(c *gin.Context) {
	ctx := c.Request.Context()

	inv, err := h.uc.GetInvocation(ctx, middleware.GetScope(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.GetInvocation: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newInvocationResp(inv))
}
