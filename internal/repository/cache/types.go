package cache

import (
	"encoding/json"
	"time"
)

// Envelope wraps a cached payload with a logical expiry: the redis key never
// expires physically, readers check ExpireAt and rebuild in the background
// while stale data keeps being served.
type Envelope struct {
	Data      json.RawMessage `json:"data"`
	ExpireAt  time.Time       `json:"expire_at"`
	CreatedAt time.Time       `json:"created_at"`
}

// IsLogicalExpired reports whether the payload is past its logical TTL.
func (e *Envelope) IsLogicalExpired() bool {
	return time.Now().After(e.ExpireAt)
}

// Wrap marshals data into an Envelope with the given logical TTL.
func Wrap(data any, ttl time.Duration) (Envelope, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Envelope{}, err
	}
	now := time.Now()
	return Envelope{
		Data:      raw,
		ExpireAt:  now.Add(ttl),
		CreatedAt: now,
	}, nil
}
