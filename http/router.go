package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter mounts the plan API; every route goes through the rate limiter.
func NewRouter(
	plans *PlanHandler,
	terms *TermComparisonHandler,
	limiter *RateLimiter,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return RateLimitMiddleware(limiter, next)
	})

	r.HandleFunc("/plan/calculate", plans.CalculatePlan)
	r.HandleFunc("/plan/history", plans.History)
	r.HandleFunc("/plan/compare-terms", terms.CompareTerms)

	return r
}
