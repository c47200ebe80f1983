package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"finance-tracker/internal/messaging"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func testBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:       2,
		ResetTimeout:      time.Minute,
		HalfOpenSuccesses: 2,
	}
}

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cb := newCircuitBreaker(testBreakerConfig(), clock.Now)

	assert.True(t, cb.Allow())
	cb.RecordFailure()
	assert.Equal(t, BreakerClosed, cb.State())

	cb.RecordFailure()
	assert.Equal(t, BreakerOpen, cb.State())
	assert.False(t, cb.Allow())
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb := newCircuitBreaker(testBreakerConfig(), time.Now)

	cb.RecordFailure()
	cb.RecordSuccess()
	cb.RecordFailure()

	assert.Equal(t, BreakerClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cb := newCircuitBreaker(testBreakerConfig(), clock.Now)
	cb.RecordFailure()
	cb.RecordFailure()
	require.Equal(t, BreakerOpen, cb.State())

	clock.now = clock.now.Add(30 * time.Second)
	assert.False(t, cb.Allow())

	clock.now = clock.now.Add(time.Minute)
	assert.True(t, cb.Allow())
	assert.Equal(t, BreakerHalfOpen, cb.State())

	cb.RecordSuccess()
	assert.Equal(t, BreakerHalfOpen, cb.State())
	cb.RecordSuccess()
	assert.Equal(t, BreakerClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cb := newCircuitBreaker(testBreakerConfig(), clock.Now)
	cb.RecordFailure()
	cb.RecordFailure()

	clock.now = clock.now.Add(2 * time.Minute)
	require.True(t, cb.Allow())

	cb.RecordFailure()
	assert.Equal(t, BreakerOpen, cb.State())
	assert.False(t, cb.Allow())
}

func TestBreakerState_String(t *testing.T) {
	assert.Equal(t, "closed", BreakerClosed.String())
	assert.Equal(t, "open", BreakerOpen.String())
	assert.Equal(t, "half_open", BreakerHalfOpen.String())
	assert.Equal(t, "unknown", BreakerState(9).String())
}

func TestBreakingPublisher_FailsFastWhenOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := service_mocks.NewMockLedgerEventPublisherInterface(ctrl)
	brokerErr := errors.New("channel closed")

	next.EXPECT().PublishLedgerChanged(gomock.Any(), gomock.Any()).Return(brokerErr).Times(2)

	publisher := NewBreakingPublisher(next, newCircuitBreaker(testBreakerConfig(), time.Now))
	msg := messaging.NewLedgerChangedMessage("add", 1, 1, 1)

	assert.ErrorIs(t, publisher.PublishLedgerChanged(context.Background(), msg), brokerErr)
	assert.ErrorIs(t, publisher.PublishLedgerChanged(context.Background(), msg), brokerErr)
	assert.ErrorIs(t, publisher.PublishLedgerChanged(context.Background(), msg), ErrCircuitOpen)
}

func TestBreakingPublisher_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := service_mocks.NewMockLedgerEventPublisherInterface(ctrl)
	msg := messaging.NewLedgerChangedMessage("reset", 0, 0, 0)

	next.EXPECT().PublishLedgerChanged(gomock.Any(), msg).Return(nil)

	publisher := NewBreakingPublisher(next, NewCircuitBreaker(DefaultCircuitBreakerConfig()))

	assert.NoError(t, publisher.PublishLedgerChanged(context.Background(), msg))
}
