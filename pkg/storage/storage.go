// Package storage defines the durable client-local key/value store that
// backs the session tokens and the cart. It mirrors the browser
// localStorage contract: string keys, string values, and absence of a key
// is a valid, expected state rather than a failure.
package storage

import (
	"context"
	"errors"
)

// Keys owned by the session manager and the cart store. Each component
// owns a disjoint key, so there is no cross-component contention.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyCart         = "cart"
)

// ErrNotFound is returned by Get when the key has never been set or has
// been deleted. Callers treat it as "logged out" / "empty cart", not as an
// error condition.
var ErrNotFound = errors.New("storage: key not found")

// Store is a durable string key/value store. Implementations must make Set
// atomic per key: a failed Set leaves the previous value intact.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
