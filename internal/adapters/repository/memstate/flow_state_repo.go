package memstate

import (
	"PocketFormsBot/internal/domain/repository"
	"PocketFormsBot/internal/domain/schema"
	"context"
	"sync"
)

// FlowStateRepo is the in-process state store, used when no Redis address is
// configured. Drafts live and die with the process.
type FlowStateRepo struct {
	mu     sync.RWMutex
	states map[int64]schema.FlowState
}

var _ repository.FlowStateRepository = (*FlowStateRepo)(nil)

func NewFlowStateRepo() *FlowStateRepo {
	return &FlowStateRepo{states: make(map[int64]schema.FlowState)}
}

func (r *FlowStateRepo) Get(_ context.Context, userID int64) (schema.FlowState, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	state, ok := r.states[userID]
	return state, ok, nil
}

func (r *FlowStateRepo) Set(_ context.Context, userID int64, state schema.FlowState) error {
	r.mu.Lock()
	r.states[userID] = state
	r.mu.Unlock()
	return nil
}

func (r *FlowStateRepo) Delete(_ context.Context, userID int64) error {
	r.mu.Lock()
	delete(r.states, userID)
	r.mu.Unlock()
	return nil
}
