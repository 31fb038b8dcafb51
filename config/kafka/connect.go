package kafka

import (
	"fmt"
	"sync"

	"arkive-client/config"
	"arkive-client/pkg/kafka"
)

var (
	instance kafka.IProducer
	mu       sync.Mutex
)

// Connect initializes the Kafka producer once. Safe for concurrent use; a failed
// attempt is retried on the next call.
func Connect(cfg config.KafkaConfig) (kafka.IProducer, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := kafka.NewProducer(kafka.Config{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		ClientID: cfg.ClientID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}
	instance = client
	return instance, nil
}

// HealthCheck checks if Kafka is initialized
func HealthCheck() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return fmt.Errorf("Kafka producer not initialized")
	}
	return instance.HealthCheck()
}

// Disconnect closes the Kafka producer
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
