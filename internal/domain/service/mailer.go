package service

import "context"

// Mailer notifies site operators.
type Mailer interface {
	SendContactNotification(ctx context.Context, event *ContactReceivedEvent) error
}
