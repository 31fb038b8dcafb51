package kafka

import "github.com/IBM/sarama"

// IProducer defines the interface for Kafka producer.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(key, value []byte) error
	Close() error
	HealthCheck() error
}

// NewProducer creates a new Kafka producer. Returns the interface.
func NewProducer(cfg Config) (IProducer, error) {
	if err := validateProducerConfig(cfg); err != nil {
		return nil, err
	}
	return newProducerImpl(cfg)
}

// NewProducerWith wraps an existing sarama producer, e.g. sarama/mocks in tests.
func NewProducerWith(producer sarama.SyncProducer, topic string) (IProducer, error) {
	if err := validateProducerConfig(Config{Brokers: []string{"preconfigured"}, Topic: topic}); err != nil {
		return nil, err
	}
	return &producerImpl{producer: producer, topic: topic}, nil
}
