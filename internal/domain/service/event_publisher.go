package service

import (
	"context"
	"time"
)

// ContactReceivedEvent is published after a visitor submits the contact form.
type ContactReceivedEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	ContactID  string    `json:"contact_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	PublishContactReceived(ctx context.Context, event *ContactReceivedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
