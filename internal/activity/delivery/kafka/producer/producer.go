package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"arkive-client/internal/activity"
	kafkaDelivery "arkive-client/internal/activity/delivery/kafka"
)

// Publish publishes one activity event keyed by owner so a user's events stay ordered.
func (p *implProducer) Publish(ctx context.Context, event activity.Event) error {
	msg := kafkaDelivery.ActivityMessage{
		EventType:  string(event.Type),
		UserID:     event.OwnerID,
		SessionID:  event.SessionID,
		Attributes: event.Attributes,
		OccurredAt: event.OccurredAt.UTC(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal activity event: %w", err)
	}

	if err := p.producer.Publish([]byte(event.OwnerID), body); err != nil {
		return fmt.Errorf("failed to publish activity event: %w", err)
	}

	p.l.Debugf(ctx, "activity.delivery.kafka.producer.Publish: published %s for %s", event.Type, event.OwnerID)
	return nil
}
