package services

import (
	"encoding/json"
	"time"

	"github.com/hashicorp/go-hclog"
)

// EventPublisher publishes domain events to the message broker.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// ClickEvent is published after an affiliate click is stored.
type ClickEvent struct {
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	At        time.Time `json:"at"`
}

// CapsuleEvent is published after a capsule is created.
type CapsuleEvent struct {
	CapsuleID string    `json:"capsuleId"`
	UserID    string    `json:"userId"`
	Products  int       `json:"products"`
	At        time.Time `json:"at"`
}

// publishEvent sends payload if a broker is configured. Failures are logged
// and never fail the request that produced the event.
func publishEvent(p EventPublisher, logger hclog.Logger, routingKey string, payload any) {
	if p == nil {
		logger.Debug("no message broker configured, skipping event", "routing_key", routingKey)
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		logger.Error("failed to marshal event", "routing_key", routingKey, "error", err)
		return
	}
	if err := p.Publish(routingKey, body); err != nil {
		logger.Warn("failed to publish event", "routing_key", routingKey, "error", err)
	}
}
