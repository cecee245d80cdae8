package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"wardrobe-assistant/internal/model"
	"wardrobe-assistant/internal/stylist"
)

// invocation tracks one pipeline run. Mutated only by the goroutine driving
// the run; readers take snapshots under the mutex.
type invocation struct {
	mu         sync.Mutex
	id         string
	kind       string
	status     stylist.InvocationStatus
	step       string
	totalSteps int
	doneSteps  int
	log        []string
	startedAt  time.Time
	finishedAt time.Time
	err        string
}

// begin registers a new invocation with the total sub-step count known at
// start.
func (uc *implUseCase) begin(kind string, totalSteps int) *invocation {
	inv := &invocation{
		id:         uuid.NewString(),
		kind:       kind,
		status:     stylist.StatusIdle,
		totalSteps: totalSteps,
		startedAt:  time.Now(),
	}
	uc.invMu.Lock()
	uc.invocations.Add(inv.id, inv)
	uc.invMu.Unlock()
	return inv
}

// enter marks the invocation running on the named sub-step.
func (inv *invocation) enter(step string) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.status = stylist.StatusRunning
	inv.step = step
}

// complete marks the current sub-step done and appends a human-readable log
// line.
func (inv *invocation) complete(note string) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.doneSteps++
	inv.log = append(inv.log, note)
}

func (inv *invocation) finish() {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.status = stylist.StatusCompleted
	inv.step = ""
	inv.doneSteps = inv.totalSteps
	inv.finishedAt = time.Now()
}

func (inv *invocation) fail(err error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.status = stylist.StatusFailed
	inv.err = err.Error()
	inv.finishedAt = time.Now()
}

func (inv *invocation) snapshot() stylist.Invocation {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	percent := 0
	if inv.totalSteps > 0 {
		percent = inv.doneSteps * 100 / inv.totalSteps
	}
	logCopy := make([]string, len(inv.log))
	copy(logCopy, inv.log)
	return stylist.Invocation{
		ID:         inv.id,
		Kind:       inv.kind,
		Status:     inv.status,
		Step:       inv.step,
		Percent:    percent,
		StepLog:    logCopy,
		StartedAt:  inv.startedAt,
		FinishedAt: inv.finishedAt,
		Error:      inv.err,
	}
}

// GetInvocation returns the tracked state of a pipeline invocation.
func (uc *implUseCase) GetInvocation(ctx context.Context, sc model.Scope, id string) (stylist.Invocation, error) {
	uc.invMu.Lock()
	inv, ok := uc.invocations.Get(id)
	uc.invMu.Unlock()
	if !ok {
		return stylist.Invocation{}, stylist.ErrInvocationNotFound
	}
	return inv.snapshot(), nil
}
