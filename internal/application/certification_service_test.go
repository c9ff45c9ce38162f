package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohsung-dev/community-api/internal/application"
	"github.com/ohsung-dev/community-api/internal/infrastructure/fake"
)

func TestCertificationURL(t *testing.T) {
	s := application.NewCertificationService(&fake.MailBox{}, "http://localhost:8080", nil)

	url := s.CertificationURL(1, "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")

	assert.Equal(t, "http://localhost:8080/api/users/1/verify?certificationCode=aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa", url)
}

func TestCertificationSend(t *testing.T) {
	mailBox := &fake.MailBox{}
	s := application.NewCertificationService(mailBox, "http://localhost:8080", nil)

	err := s.Send(context.Background(), "a@x.com", 1, "code-1")
	require.NoError(t, err)

	require.Len(t, mailBox.Sent, 1)
	mail := mailBox.Sent[0]
	assert.Equal(t, "a@x.com", mail.To)
	assert.Equal(t, "Please certify your email address", mail.Subject)
	assert.Contains(t, mail.Body, "http://localhost:8080/api/users/1/verify?certificationCode=code-1")
}

func TestCertificationSendFailure(t *testing.T) {
	cause := errors.New("broker unreachable")
	s := application.NewCertificationService(&fake.MailBox{Err: cause}, "http://localhost:8080", nil)

	err := s.Send(context.Background(), "a@x.com", 1, "code-1")

	assert.ErrorIs(t, err, application.ErrCertificationSendFailed)
	assert.Contains(t, err.Error(), "broker unreachable")
}
