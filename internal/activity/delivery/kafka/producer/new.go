package producer

import (
	"arkive-client/internal/activity"
	pkgKafka "arkive-client/pkg/kafka"
	"arkive-client/pkg/log"
)

// implProducer implements activity.Publisher over Kafka.
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a Kafka-backed activity publisher.
func New(l log.Logger, producer pkgKafka.IProducer) activity.Publisher {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
