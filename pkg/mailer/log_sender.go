package mailer

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogSender drops mail on the floor and logs it instead. Used when
// MAIL_SEND_ENABLED=false so local development never needs a mail
// transport.
type LogSender struct {
	Logger *logrus.Logger
}

func NewLogSender(logger *logrus.Logger) *LogSender {
	return &LogSender{Logger: logger}
}

func (s *LogSender) Send(_ context.Context, to, subject, _ string) error {
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"to": to, "subject": subject}).Info("mail sending disabled, dropping mail")
	}
	return nil
}
