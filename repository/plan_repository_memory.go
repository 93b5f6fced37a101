package repository

import (
	"context"
	"sync"

	"property-plan/domain"
)

// PlanRepositoryMemory is an in-memory implementation of PlanRepository.
type PlanRepositoryMemory struct {
	mu   sync.RWMutex
	data []domain.PlanRecord
}

// NewPlanRepositoryMemory creates a new in-memory plan repository.
func NewPlanRepositoryMemory() *PlanRepositoryMemory {
	return &PlanRepositoryMemory{
		data: []domain.PlanRecord{},
	}
}

// Save stores the plan record in memory.
func (r *PlanRepositoryMemory) Save(
	_ context.Context,
	record domain.PlanRecord,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, record)
	return nil
}

// List returns the latest records, newest first.
func (r *PlanRepositoryMemory) List(_ context.Context, limit int) ([]domain.PlanRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.data) {
		limit = len(r.data)
	}

	records := make([]domain.PlanRecord, 0, limit)
	for i := len(r.data) - 1; i >= 0 && len(records) < limit; i-- {
		records = append(records, r.data[i])
	}
	return records, nil
}
