package application

import "context"

// MailSender is the notification port. Implementations may deliver
// directly or enqueue for asynchronous delivery; the services make a
// single attempt and never retry.
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
