package services

import (
	"errors"
	"sync"
	"time"

	"finance-dashboard/internal/models"
)

var ErrCircuitBreakerOpen = errors.New("circuit breaker is open")

type CircuitBreakerConfig struct {
	Name            string
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:            name,
		MaxFailures:     3,
		ResetTimeout:    time.Minute,
		HalfOpenMaxSucc: 1,
	}
}

const (
	StateClosed models.CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

// CircuitBreaker stops calls to a failing upstream for ResetTimeout after
// MaxFailures consecutive failures, then lets calls through half-open until
// HalfOpenMaxSucc of them succeed.
type CircuitBreaker struct {
	mu                sync.Mutex
	config            CircuitBreakerConfig
	metrics           MetricsRecorderInterface
	state             models.CircuitBreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	now               func() time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig, metrics MetricsRecorderInterface) CircuitBreakerInterface {
	return &CircuitBreaker{
		config:  config,
		metrics: metrics,
		state:   StateClosed,
		now:     time.Now,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && cb.now().Sub(cb.lastFailureTime) > cb.config.ResetTimeout {
		cb.setState(StateHalfOpen)
		return false
	}

	return cb.state == StateOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.setState(StateClosed)
		}
	case StateClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = cb.now()

	switch cb.state {
	case StateHalfOpen:
		cb.setState(StateOpen)
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.setState(StateOpen)
			cb.metrics.IncrementCounter("circuit_breaker.open", map[string]string{"service": cb.config.Name})
		}
	}
}

// setState must be called with mu held.
func (cb *CircuitBreaker) setState(state models.CircuitBreakerState) {
	cb.state = state
	cb.halfOpenSuccesses = 0
	if state == StateClosed {
		cb.failures = 0
	}
	cb.metrics.RecordGauge("circuit_breaker.state", float64(state), map[string]string{"service": cb.config.Name})
}

func (cb *CircuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.setState(StateClosed)
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.failures
}
