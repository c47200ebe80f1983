package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"finance-tracker/internal/messaging"
)

var (
	ErrCircuitOpen = errors.New("circuit breaker is open")
)

type BreakerState int

const (
	BreakerClosed BreakerState = iota
	BreakerOpen
	BreakerHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case BreakerClosed:
		return "closed"
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

type CircuitBreakerConfig struct {
	MaxFailures       int
	ResetTimeout      time.Duration
	HalfOpenSuccesses int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:       5,
		ResetTimeout:      30 * time.Second,
		HalfOpenSuccesses: 3,
	}
}

type circuitBreaker struct {
	mu                sync.Mutex
	config            CircuitBreakerConfig
	state             BreakerState
	failures          int
	halfOpenSuccesses int
	lastFailure       time.Time
	now               func() time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig) CircuitBreakerInterface {
	return newCircuitBreaker(config, time.Now)
}

func newCircuitBreaker(config CircuitBreakerConfig, now func() time.Time) *circuitBreaker {
	return &circuitBreaker{
		config: config,
		state:  BreakerClosed,
		now:    now,
	}
}

// Allow reports whether a call may go through. An open breaker moves to
// half-open once ResetTimeout has passed since the last failure.
func (cb *circuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == BreakerOpen && cb.now().Sub(cb.lastFailure) > cb.config.ResetTimeout {
		cb.state = BreakerHalfOpen
		cb.halfOpenSuccesses = 0
	}

	return cb.state != BreakerOpen
}

func (cb *circuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case BreakerHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenSuccesses {
			cb.state = BreakerClosed
			cb.failures = 0
			cb.halfOpenSuccesses = 0
		}
	case BreakerClosed:
		cb.failures = 0
	}
}

func (cb *circuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailure = cb.now()

	switch cb.state {
	case BreakerHalfOpen:
		cb.state = BreakerOpen
		cb.halfOpenSuccesses = 0
	case BreakerClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.state = BreakerOpen
		}
	}
}

func (cb *circuitBreaker) State() BreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

type breakingPublisher struct {
	next    LedgerEventPublisherInterface
	breaker CircuitBreakerInterface
}

// NewBreakingPublisher stops calling the broker while the breaker is open and
// fails fast with ErrCircuitOpen instead.
func NewBreakingPublisher(next LedgerEventPublisherInterface, breaker CircuitBreakerInterface) LedgerEventPublisherInterface {
	return &breakingPublisher{next: next, breaker: breaker}
}

func (p *breakingPublisher) PublishLedgerChanged(ctx context.Context, msg *messaging.LedgerChangedMessage) error {
	if !p.breaker.Allow() {
		return ErrCircuitOpen
	}

	if err := p.next.PublishLedgerChanged(ctx, msg); err != nil {
		p.breaker.RecordFailure()
		return err
	}

	p.breaker.RecordSuccess()
	return nil
}
