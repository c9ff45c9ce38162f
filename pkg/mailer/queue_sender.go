package mailer

import (
	"context"

	"github.com/ohsung-dev/community-api/pkg/helpers"
)

// QueueSender enqueues mail jobs on RabbitMQ instead of delivering
// them; the email worker picks them up and sends via Mailgun. From the
// caller's viewpoint a successful publish is a successful send.
type QueueSender struct {
	Pub *helpers.RabbitPublisher
}

func NewQueueSender(pub *helpers.RabbitPublisher) *QueueSender {
	return &QueueSender{Pub: pub}
}

func (s *QueueSender) Send(ctx context.Context, to, subject, text string) error {
	return s.Pub.PublishJSON(ctx, Mail{To: to, Subject: subject, Text: text})
}
