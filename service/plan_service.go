package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"property-plan/domain"
	"property-plan/repository"
)

type PlanService struct {
	repo  repository.PlanRepository
	cache repository.CacheRepository
	now   func() time.Time
}

// NewPlanService creates a new PlanService with the given repository and cache.
func NewPlanService(repo repository.PlanRepository,
	cache repository.CacheRepository,
) *PlanService {
	return &PlanService{repo: repo, cache: cache, now: time.Now}
}

func cacheKey(params domain.LoanParameters) string {
	return fmt.Sprintf("plan:%g:%g:%g:%g:%d",
		params.Cost, params.DownpaymentRate, params.NotaryRate, params.AnnualRate, params.TermYears)
}

// CalculatePlan derives the plan for params and records it in the history.
func (s *PlanService) CalculatePlan(
	ctx context.Context,
	params domain.LoanParameters,
) (domain.PlanRecord, error) {
	result, err := s.lookupOrDerive(ctx, params)
	if err != nil {
		return domain.PlanRecord{}, err
	}

	record := domain.PlanRecord{
		ID:         uuid.NewString(),
		Parameters: params,
		Result:     result,
		CreatedAt:  s.now().UTC(),
	}

	// Guardar el resultado (no crítico si falla)
	if err := s.repo.Save(ctx, record); err != nil {
		log.Printf("Warning: failed to save plan calculation: %v", err)
	}

	return record, nil
}

func (s *PlanService) lookupOrDerive(
	ctx context.Context,
	params domain.LoanParameters,
) (domain.PlanResult, error) {
	key := cacheKey(params)

	if cached, ok := s.cache.Get(ctx, key); ok {
		var result domain.PlanResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
		log.Printf("Warning: discarding unreadable cache entry %s", key)
	}

	result, err := DerivePlan(params)
	if err != nil {
		return domain.PlanResult{}, err
	}

	if payload, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(ctx, key, string(payload)); err != nil {
			log.Printf("Warning: failed to cache plan: %v", err)
		}
	}

	return result, nil
}

// History returns the latest recorded plans, newest first.
func (s *PlanService) History(ctx context.Context, limit int) ([]domain.PlanRecord, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative, got %d", ErrInvalidArgument, limit)
	}
	return s.repo.List(ctx, limit)
}
