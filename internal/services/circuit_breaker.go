package services

import (
	"errors"
	"sync"
	"time"

	"dipadubank/internal/models"
)

// ErrCircuitBreakerOpen is returned instead of calling a dependency that keeps failing
var ErrCircuitBreakerOpen = errors.New("circuit breaker is open")

const (
	StateClosed models.CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

// CircuitBreakerConfig tunes a CircuitBreaker. Now defaults to time.Now.
type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
	// OnStateChange runs after every transition with the breaker lock held
	OnStateChange func(from, to models.CircuitBreakerState)
	Now           func() time.Time
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

// CircuitBreaker opens after MaxFailures consecutive failures, lets probes through once
// ResetTimeout has passed and closes again after HalfOpenMaxSucc probe successes.
type CircuitBreaker struct {
	mu       sync.Mutex
	cfg      CircuitBreakerConfig
	state    models.CircuitBreakerState
	failures int
	probes   int
	openedAt time.Time
}

func NewCircuitBreaker(cfg CircuitBreakerConfig) CircuitBreakerInterface {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &CircuitBreaker{cfg: cfg}
}

// IsOpen reports whether calls must be refused. An open breaker whose timeout has
// elapsed moves to half-open and admits the caller as a probe.
func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != StateOpen {
		return false
	}
	if cb.cfg.Now().Sub(cb.openedAt) <= cb.cfg.ResetTimeout {
		return true
	}
	cb.moveTo(StateHalfOpen)
	return false
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateHalfOpen {
		cb.probes++
		if cb.probes < cb.cfg.HalfOpenMaxSucc {
			return
		}
	}
	cb.moveTo(StateClosed)
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures++
	if cb.state == StateHalfOpen || cb.failures >= cb.cfg.MaxFailures {
		cb.moveTo(StateOpen)
	}
}

// moveTo resets the counters of the target state and fires OnStateChange on a real change
func (cb *CircuitBreaker) moveTo(to models.CircuitBreakerState) {
	switch to {
	case StateClosed:
		cb.failures = 0
	case StateOpen:
		cb.openedAt = cb.cfg.Now()
	}
	cb.probes = 0

	from := cb.state
	if from == to {
		return
	}
	cb.state = to
	if cb.cfg.OnStateChange != nil {
		cb.cfg.OnStateChange(from, to)
	}
}

func (cb *CircuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.moveTo(StateClosed)
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.failures
}
