package helpers

import (
	"time"

	"github.com/google/uuid"
)

// SystemClock is the production clock source.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// SystemUUID is the production identifier source, backed by random
// UUIDv4 tokens.
type SystemUUID struct{}

func (SystemUUID) UUID() string { return uuid.NewString() }
