package fake

import (
	"context"
	"time"
)

// Clock returns a frozen instant.
type Clock struct {
	T time.Time
}

func (c Clock) Now() time.Time { return c.T }

// UUID returns a fixed token, pinning certification codes in tests.
type UUID struct {
	Value string
}

func (u UUID) UUID() string { return u.Value }

// SentMail is one recorded delivery attempt.
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// MailBox records every send instead of delivering. Set Err to make the
// next sends fail, e.g. to exercise the signup partial-success path.
type MailBox struct {
	Sent []SentMail
	Err  error
}

func (m *MailBox) Send(_ context.Context, to, subject, body string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, SentMail{To: to, Subject: subject, Body: body})
	return nil
}
