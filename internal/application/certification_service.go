package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// CertificationService composes the account verification mail and hands
// it to the notification port. One attempt per call, no queuing of its
// own — asynchronous delivery is the sender implementation's business.
type CertificationService struct {
	Sender  MailSender
	BaseURL string // e.g. http://localhost:8080
	Logger  *logrus.Logger
}

func NewCertificationService(sender MailSender, baseURL string, logger *logrus.Logger) *CertificationService {
	return &CertificationService{Sender: sender, BaseURL: baseURL, Logger: logger}
}

// CertificationURL returns the verification link embedded in the mail.
func (s *CertificationService) CertificationURL(userID int64, code string) string {
	return fmt.Sprintf("%s/api/users/%d/verify?certificationCode=%s", s.BaseURL, userID, code)
}

// Send delivers the certification mail for the given account.
func (s *CertificationService) Send(ctx context.Context, email string, userID int64, code string) error {
	link := s.CertificationURL(userID, code)
	subject := "Please certify your email address"
	body := "Please click the following link to certify your email address.\n\n" + link
	if err := s.Sender.Send(ctx, email, subject, body); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", email).Warn("certification mail send failed")
		}
		return fmt.Errorf("%w: %v", ErrCertificationSendFailed, err)
	}
	return nil
}
