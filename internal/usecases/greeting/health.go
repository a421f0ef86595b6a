package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"
)

var (
	ErrEmptyName = errors.New("name is empty")
	ErrUnhealthy = errors.New("dependency unhealthy")
)

// Pinger is anything the health check can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthUseCase interface {
	Execute(ctx context.Context) (map[string]string, error)
}

type healthUseCase struct {
	checks  map[string]Pinger
	timeout time.Duration
}

func NewHealthUseCase(checks map[string]Pinger, timeout time.Duration) HealthUseCase {
	return &healthUseCase{checks: checks, timeout: timeout}
}

// Execute pings every dependency concurrently. The returned map always has
// one entry per check, "ok" or the failure text.
func (u *healthUseCase) Execute(ctx context.Context) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	type result struct {
		name string
		err  error
	}
	p := pool.NewWithResults[result]().WithContext(ctx)
	for name, check := range u.checks {
		p.Go(func(ctx context.Context) (result, error) {
			return result{name: name, err: check.Ping(ctx)}, nil
		})
	}
	results, _ := p.Wait()

	status := make(map[string]string, len(results))
	var failed error
	for _, r := range results {
		if r.err != nil {
			status[r.name] = r.err.Error()
			failed = fmt.Errorf("%w: %s", ErrUnhealthy, r.name)
			continue
		}
		status[r.name] = "ok"
	}
	return status, failed
}
