package shared

import (
	"context"
	"time"
)

// IdempotencyStore remembers which event IDs were already handled
type IdempotencyStore interface {
	// MarkProcessed atomically records eventID with a TTL.
	// It returns true if the id was newly recorded and false if it was already present.
	MarkProcessed(ctx context.Context, eventID string, ttl time.Duration) (bool, error)

	// IsProcessed reports whether eventID has been recorded and not yet expired
	IsProcessed(ctx context.Context, eventID string) (bool, error)

	Close() error
}

// IdempotencyConfig controls idempotent event handling
type IdempotencyConfig struct {
	// TTL after which the same event id may be handled again
	TTL time.Duration
	// Enabled toggles the check; when false every delivery is handled
	Enabled bool
}

// DefaultIdempotencyConfig returns a 24h, enabled configuration
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		TTL:     24 * time.Hour,
		Enabled: true,
	}
}
