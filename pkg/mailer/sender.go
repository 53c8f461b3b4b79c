package mailer

import "context"

// Sender is implemented by email providers.
// Email arrives validated: at least one recipient, a subject and a body.
type Sender interface {
	Send(ctx context.Context, email *Email) error
}
