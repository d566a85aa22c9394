package verification

import (
	"context"
	"time"
)

// Store holds at most one outstanding code per email.
type Store interface {
	// Save stores code for email, replacing any previous code. A ttl of zero
	// means the code never expires.
	Save(ctx context.Context, email, code string, ttl time.Duration) error
	// Consume deletes the entry and reports true only if the stored code equals
	// code. A mismatch leaves the entry in place.
	Consume(ctx context.Context, email, code string) (bool, error)
}
