package notification

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/nats-io/nats.go"

	"github.com/NextRouter/routingFlow/internal/config"
	"github.com/NextRouter/routingFlow/internal/model"
)

// Publisher publishes cycle results to a NATS subject so downstream
// consumers can subscribe instead of scraping the text report.
type Publisher struct {
	nc      *nats.Conn
	subject string
}

// NewPublisher connects to the configured NATS server.
func NewPublisher(cfg config.NATSConfig) (*Publisher, error) {
	nc, err := nats.Connect(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	log.Printf("Connected to NATS server at %s", cfg.URL)
	return &Publisher{nc: nc, subject: cfg.Subject}, nil
}

// Publish serializes the cycle result to JSON and publishes it to the
// configured subject.
func (p *Publisher) Publish(result *model.CycleResult) error {
	data, err := encodeResult(result)
	if err != nil {
		return err
	}
	return p.nc.Publish(p.subject, data)
}

func encodeResult(result *model.CycleResult) ([]byte, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cycle result: %w", err)
	}
	return data, nil
}

// Close drains and closes the NATS connection.
func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Drain()
		log.Println("NATS connection drained and closed.")
	}
}
