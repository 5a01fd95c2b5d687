package service

import (
	"context"
)

// ActionEvent represents a remote action to be delivered by the action worker
type ActionEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	ActionID     string `json:"action_id"`
	Action       string `json:"action"`
	DeviceID     string `json:"device_id,omitempty"`
	TelevisionID string `json:"television_id,omitempty"`
	Description  string `json:"description,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishActionEvent publishes an action event for async delivery
	PublishActionEvent(ctx context.Context, event *ActionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
