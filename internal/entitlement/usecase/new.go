package usecase

import (
	"sync"

	"wardrobe-assistant/internal/billing"
	"wardrobe-assistant/internal/entitlement/repository"
	pkgLog "wardrobe-assistant/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	repo    repository.SubscriptionRepository
	billing billing.Processor

	// Local replica of the stored subscription; billing stays the source
	// of truth and is consulted only on explicit refresh.
	mu     sync.RWMutex
	cached *cachedSubscription
}

// New creates a new entitlement UseCase instance.
func New(l pkgLog.Logger, repo repository.SubscriptionRepository, proc billing.Processor) *implUseCase {
	return &implUseCase{
		l:       l,
		repo:    repo,
		billing: proc,
	}
}
