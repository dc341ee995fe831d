package session

import (
	"context" // Context for Redis operations
	"time"    // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// Revocations tracks logged-out session tokens in Redis. Entries live only
// until the token itself would have expired, so the set stays small.
type Revocations struct {
	rdb *redis.Client // Redis handle
}

// NewRevocations creates a revocation list over the given Redis client
func NewRevocations(rdb *redis.Client) *Revocations {
	return &Revocations{rdb: rdb}
}

// key builds the Redis key for a token id
func key(jti string) string {
	return "session:revoked:" + jti
}

// Revoke marks the token id as logged out for the remaining token lifetime
func (r *Revocations) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // Already expired, nothing to track
	}
	return r.rdb.Set(ctx, key(jti), "1", ttl).Err() // Set marker with TTL
}

// IsRevoked reports whether the token id was logged out
func (r *Revocations) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.rdb.Exists(ctx, key(jti)).Result() // Check marker presence
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
