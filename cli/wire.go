package cli

import (
	"context"
	"fmt"
	"log"
	"time"

	"property-plan/config"
	"property-plan/repository"
	"property-plan/service"
)

type closer func() error

func newPlanRepository(cfg *config.Config) (repository.PlanRepository, closer, error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		repo, err := repository.NewPlanRepositorySQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil
	case "postgres":
		repo, err := repository.NewPlanRepositoryPostgres(cfg.Storage.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil
	case "memory":
		return repository.NewPlanRepositoryMemory(), func() error { return nil }, nil
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

func newCache(ctx context.Context, cfg *config.Config) (repository.CacheRepository, closer) {
	if cfg.Cache.Backend != "redis" {
		return repository.NewMockCache(), func() error { return nil }
	}

	cache := repository.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.TTL)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := cache.Ping(pingCtx); err != nil {
		// sin caché las consultas simplemente fallan y se recalcula
		log.Printf("Warning: redis at %s unavailable: %v", cfg.Cache.RedisAddr, err)
	}
	return cache, cache.Close
}

// newPlanService wires storage and cache from cfg. The returned func releases both.
func newPlanService(ctx context.Context, cfg *config.Config) (*service.PlanService, func(), error) {
	repo, closeRepo, err := newPlanRepository(cfg)
	if err != nil {
		return nil, nil, err
	}
	cache, closeCache := newCache(ctx, cfg)

	cleanup := func() {
		if err := closeCache(); err != nil {
			log.Printf("Error closing cache: %v", err)
		}
		if err := closeRepo(); err != nil {
			log.Printf("Error closing plan repository: %v", err)
		}
	}

	return service.NewPlanService(repo, cache), cleanup, nil
}
