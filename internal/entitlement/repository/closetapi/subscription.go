package closetapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"wardrobe-assistant/internal/model"
	pkgErrors "wardrobe-assistant/pkg/errors"
	"wardrobe-assistant/pkg/log"
)

// Repository is the closet-service-backed subscription store.
type Repository struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	l           log.Logger
}

// New creates a new subscription repository against the closet service.
func New(baseURL, accessToken string, l log.Logger) *Repository {
	return &Repository{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{},
		l:           l,
	}
}

type subscriptionDTO struct {
	ID                   string     `json:"id"`
	PlanID               string     `json:"plan_id"`
	Tier                 string     `json:"tier"`
	Status               string     `json:"status"`
	StartDate            time.Time  `json:"start_date"`
	EndDate              *time.Time `json:"end_date,omitempty"`
	AutoRenew            bool       `json:"auto_renew"`
	StripeCustomerID     string     `json:"stripe_customer_id,omitempty"`
	StripeSubscriptionID string     `json:"stripe_subscription_id,omitempty"`
}

// Get returns the stored subscription, or nil when none was ever stored.
func (r *Repository) Get(ctx context.Context) (*model.UserSubscription, error) {
	url := fmt.Sprintf("%s/api/v1/subscription", r.baseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build get subscription request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.accessToken))

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return nil, &pkgErrors.PersistenceError{Op: "get subscription", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &pkgErrors.PersistenceError{
			Op:  "get subscription",
			Err: fmt.Errorf("closet API error %d: %s", resp.StatusCode, string(raw)),
		}
	}

	var dto subscriptionDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, &pkgErrors.PersistenceError{Op: "get subscription", Err: err}
	}

	sub := fromDTO(dto)
	return &sub, nil
}

// Save stores the subscription, replacing any previous record.
func (r *Repository) Save(ctx context.Context, sub model.UserSubscription) error {
	url := fmt.Sprintf("%s/api/v1/subscription", r.baseURL)

	body, err := json.Marshal(toDTO(sub))
	if err != nil {
		return fmt.Errorf("failed to marshal subscription: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build save subscription request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.accessToken))

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return &pkgErrors.PersistenceError{Op: "save subscription", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return &pkgErrors.PersistenceError{
			Op:  "save subscription",
			Err: fmt.Errorf("closet API error %d: %s", resp.StatusCode, string(raw)),
		}
	}
	return nil
}

func toDTO(sub model.UserSubscription) subscriptionDTO {
	return subscriptionDTO{
		ID:                   sub.ID,
		PlanID:               sub.PlanID,
		Tier:                 string(sub.Tier),
		Status:               string(sub.Status),
		StartDate:            sub.StartDate,
		EndDate:              sub.EndDate,
		AutoRenew:            sub.AutoRenew,
		StripeCustomerID:     sub.StripeCustomerID,
		StripeSubscriptionID: sub.StripeSubscriptionID,
	}
}

func fromDTO(dto subscriptionDTO) model.UserSubscription {
	return model.UserSubscription{
		ID:                   dto.ID,
		PlanID:               dto.PlanID,
		Tier:                 model.Tier(dto.Tier),
		Status:               model.SubscriptionStatus(dto.Status),
		StartDate:            dto.StartDate,
		EndDate:              dto.EndDate,
		AutoRenew:            dto.AutoRenew,
		StripeCustomerID:     dto.StripeCustomerID,
		StripeSubscriptionID: dto.StripeSubscriptionID,
	}
}
