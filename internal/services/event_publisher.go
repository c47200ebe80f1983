package services

import (
	"context"

	"finance-tracker/internal/messaging"
)

type noopEventPublisher struct{}

// NewNoopEventPublisher returns a publisher that drops every message, used when AMQP is not configured
func NewNoopEventPublisher() LedgerEventPublisherInterface {
	return noopEventPublisher{}
}

func (noopEventPublisher) PublishLedgerChanged(context.Context, *messaging.LedgerChangedMessage) error {
	return nil
}
