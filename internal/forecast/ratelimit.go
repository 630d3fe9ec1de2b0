package forecast

import (
	"context"
	"fmt"

	"daycast/internal/providers/openweathermap"

	"golang.org/x/time/rate"
)

// RateLimitedProvider wraps a Provider with a token bucket limiter
type RateLimitedProvider struct {
	provider Provider
	limiter  *rate.Limiter
}

// NewRateLimitedProvider allows rps requests per second with the given burst.
// rps can be fractional for less than one request per second; rps <= 0 disables limiting.
func NewRateLimitedProvider(provider Provider, rps float64, burst int) *RateLimitedProvider {
	if burst < 1 {
		burst = 1
	}
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &RateLimitedProvider{
		provider: provider,
		limiter:  rate.NewLimiter(limit, burst),
	}
}

// GetOneCall waits for the limiter, then forwards to the underlying provider
func (r *RateLimitedProvider) GetOneCall(ctx context.Context, latitude, longitude float64) (*openweathermap.OneCallAPIResponse, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.GetOneCall(ctx, latitude, longitude)
}
