package http

import (
	"wardrobe-assistant/internal/entitlement"
	"wardrobe-assistant/pkg/response"
)

// --- Request DTOs ---

type subscribeReq struct {
	PlanID string `json:"plan_id" binding:"required"`
	Email  string `json:"email"   binding:"omitempty,email"`
	Name   string `json:"name"    binding:"max=255"`
}

func (r subscribeReq) toInput() entitlement.SubscribeInput {
	return entitlement.SubscribeInput{
		PlanID: r.PlanID,
		Email:  r.Email,
		Name:   r.Name,
	}
}

type updatePlanReq struct {
	PlanID string `json:"plan_id" binding:"required"`
}

func (r updatePlanReq) toInput() entitlement.UpdatePlanInput {
	return entitlement.UpdatePlanInput{PlanID: r.PlanID}
}

type paymentSheetReq struct {
	PlanID string `json:"plan_id" binding:"required"`
	Email  string `json:"email"   binding:"omitempty,email"`
	Name   string `json:"name"    binding:"max=255"`
}

func (r paymentSheetReq) toInput() entitlement.PaymentSheetInput {
	return entitlement.PaymentSheetInput{PlanID: r.PlanID, Email: r.Email, Name: r.Name}
}

// --- Response DTOs ---

type limitsResp struct {
	MaxAvatars       int  `json:"max_avatars"`
	MaxClothingItems int  `json:"max_clothing_items"`
	MaxOutfits       int  `json:"max_outfits"`
	AISuggestions    bool `json:"ai_suggestions"`
	Weather          bool `json:"weather_integration"`
	VirtualTryOn     bool `json:"virtual_try_on"`
	Export           bool `json:"wardrobe_export"`
	Priority         bool `json:"priority_support"`
	Community        bool `json:"community_features"`
}

type subscriptionResp struct {
	PlanID        string             `json:"plan_id"`
	Status        string             `json:"status"`
	EffectiveTier string             `json:"effective_tier"`
	AutoRenew     bool               `json:"auto_renew"`
	ExpiresAt     *response.DateTime `json:"expires_at,omitempty"`
	Limits        limitsResp         `json:"limits"`
}

func (h *handler) newSubscriptionResp(out entitlement.SubscriptionOutput) subscriptionResp {
	var expiresAt *response.DateTime
	if out.ExpiresAt != nil {
		dt := response.DateTime(*out.ExpiresAt)
		expiresAt = &dt
	}
	return subscriptionResp{
		PlanID:        out.Subscription.PlanID,
		Status:        string(out.Subscription.Status),
		EffectiveTier: string(out.EffectiveTier),
		AutoRenew:     out.Subscription.AutoRenew,
		ExpiresAt:     expiresAt,
		Limits: limitsResp{
			MaxAvatars:       out.Limits.MaxAvatars,
			MaxClothingItems: out.Limits.MaxClothingItems,
			MaxOutfits:       out.Limits.MaxOutfits,
			AISuggestions:    out.Limits.AISuggestions,
			Weather:          out.Limits.Weather,
			VirtualTryOn:     out.Limits.VirtualTryOn,
			Export:           out.Limits.Export,
			Priority:         out.Limits.Priority,
			Community:        out.Limits.Community,
		},
	}
}

type paymentSheetResp struct {
	CustomerID          string `json:"customer_id"`
	EphemeralKey        string `json:"ephemeral_key"`
	PaymentIntentID     string `json:"payment_intent_id"`
	PaymentIntentSecret string `json:"payment_intent_client_secret"`
	AmountCents         int    `json:"amount_cents"`
	Currency            string `json:"currency"`
}

func (h *handler) newPaymentSheetResp(out entitlement.PaymentSheetOutput) paymentSheetResp {
	return paymentSheetResp{
		CustomerID:          out.CustomerID,
		EphemeralKey:        out.EphemeralKey,
		PaymentIntentID:     out.PaymentIntentID,
		PaymentIntentSecret: out.PaymentIntentSecret,
		AmountCents:         out.AmountCents,
		Currency:            out.Currency,
	}
}

type planResp struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Tier       string `json:"tier"`
	PriceCents int    `json:"price_cents"`
	Interval   string `json:"interval,omitempty"`
	TrialDays  int    `json:"trial_days,omitempty"`
}

type plansResp struct {
	Plans []planResp `json:"plans"`
}

func (h *handler) newPlansResp(plans []entitlement.Plan) plansResp {
	out := make([]planResp, len(plans))
	for i, p := range plans {
		out[i] = planResp{
			ID:         p.ID,
			Name:       p.Name,
			Tier:       string(p.Tier),
			PriceCents: p.PriceCents,
			Interval:   p.Interval,
			TrialDays:  p.TrialDays,
		}
	}
	return plansResp{Plans: out}
}
