package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"arkive-client/internal/activity"
	kafkaDelivery "arkive-client/internal/activity/delivery/kafka"
	pkgKafka "arkive-client/pkg/kafka"
	"arkive-client/pkg/log"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish(t *testing.T) {
	mock := mocks.NewSyncProducer(t, pkgKafka.NewSaramaConfig(pkgKafka.DefaultClientID))
	mock.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var msg kafkaDelivery.ActivityMessage
		if err := json.Unmarshal(val, &msg); err != nil {
			return err
		}
		if msg.EventType != "chat.answered" || msg.UserID != "alice" || msg.SessionID != "s-1" {
			return errors.New("unexpected message")
		}
		return nil
	})
	mock.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	kp, err := pkgKafka.NewProducerWith(mock, kafkaDelivery.TopicClientActivity)
	require.NoError(t, err)
	p := New(log.NewNopLogger(), kp)

	err = p.Publish(context.Background(), activity.Event{
		Type:       activity.EventChatAnswered,
		OwnerID:    "alice",
		SessionID:  "s-1",
		Attributes: map[string]any{"confidence": 80},
		OccurredAt: time.Now(),
	})
	assert.NoError(t, err)

	err = p.Publish(context.Background(), activity.Event{Type: activity.EventChatFailed, OwnerID: "alice"})
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	assert.NoError(t, activity.NewNop().Publish(context.Background(), activity.Event{Type: activity.EventSessionBound}))
}
