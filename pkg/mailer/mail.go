// Package mailer holds the mail job payload and the delivery adapters:
// a RabbitMQ-backed sender that enqueues for the email worker, and the
// Mailgun client that performs the real delivery.
package mailer

// Mail is the JSON payload put on the RabbitMQ queue for sending email.
type Mail struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}
