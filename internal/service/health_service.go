package service

import (
	"context"
	"sync"
	"time"

	"trivia-api/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	HealthStatusOK          = "ok"
	HealthStatusDisabled    = "disabled"
	HealthStatusUnavailable = "unavailable" // check error details are only logged

	defaultHealthTimeout = 3 * time.Second
)

// HealthCheck pings one dependency.
type HealthCheck func(ctx context.Context) error

// HealthService runs named dependency checks concurrently
type HealthService interface {
	Check(ctx context.Context) (statuses map[string]string, healthy bool)
}

type healthService struct {
	checks  map[string]HealthCheck
	timeout time.Duration
}

// NewHealthService creates a health service. A nil check marks the dependency
// as disabled; it never fails the overall status.
func NewHealthService(checks map[string]HealthCheck) HealthService {
	return &healthService{checks: checks, timeout: defaultHealthTimeout}
}

func (s *healthService) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		mu       sync.Mutex
		statuses = make(map[string]string, len(s.checks))
		healthy  = true
	)

	var g errgroup.Group
	for name, check := range s.checks {
		if check == nil {
			mu.Lock()
			statuses[name] = HealthStatusDisabled
			mu.Unlock()
			continue
		}
		g.Go(func() error {
			err := check(ctx)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Get().Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
				statuses[name] = HealthStatusUnavailable
				healthy = false
				return nil
			}
			statuses[name] = HealthStatusOK
			return nil
		})
	}
	_ = g.Wait()

	return statuses, healthy
}
