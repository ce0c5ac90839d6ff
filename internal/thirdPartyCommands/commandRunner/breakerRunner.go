package commandrunner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os/exec"
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerRunner keeps one circuit breaker per executable so a tool that cannot be started,
// or keeps timing out, is skipped for the rest of the run. A non-zero exit is an answer
// about the project, not a broken tool, and never counts towards the threshold.
type BreakerRunner struct {
	runner    CommandRunner
	threshold uint32
	mu        sync.Mutex
	breakers  map[string]*gobreaker.CircuitBreaker
}

func NewBreakerRunner(runner CommandRunner, failureThreshold uint32) *BreakerRunner {
	return &BreakerRunner{
		runner:    runner,
		threshold: failureThreshold,
		breakers:  make(map[string]*gobreaker.CircuitBreaker),
	}
}

func (b *BreakerRunner) Run(ctx context.Context, command Command) ([]byte, error) {
	cb := b.breaker(command.Name)

	result, err := cb.Execute(func() (interface{}, error) {
		return b.runner.Run(ctx, command)
	})
	if err != nil {
		return nil, fmt.Errorf("running %s: %w", command.Name, err)
	}

	output, ok := result.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected output type from %s", command.Name)
	}

	return output, nil
}

func (b *BreakerRunner) State(name string) gobreaker.State {
	return b.breaker(name).State()
}

func (b *BreakerRunner) breaker(name string) *gobreaker.CircuitBreaker {
	b.mu.Lock()
	defer b.mu.Unlock()

	if cb, ok := b.breakers[name]; ok {
		return cb
	}

	threshold := b.threshold
	cbSettings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return !isToolFailure(err)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Info("command circuit breaker state changed", "command", name, "from", from.String(), "to", to.String())
		},
	}

	cb := gobreaker.NewCircuitBreaker(cbSettings)
	b.breakers[name] = cb
	return cb
}

// isToolFailure reports whether err says the executable itself is unusable.
func isToolFailure(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, exec.ErrNotFound) ||
		errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, context.DeadlineExceeded)
}
