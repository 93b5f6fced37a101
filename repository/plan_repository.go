package repository

import (
	"context"

	"property-plan/domain"
)

type PlanRepository interface {
	Save(ctx context.Context, record domain.PlanRecord) error
	// List returns at most limit records, newest first.
	List(ctx context.Context, limit int) ([]domain.PlanRecord, error)
}
