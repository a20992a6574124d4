// Package storage provides the durable local key-value store backing session
// state (auth token, per-user cart, preferences) across restarts.
//
// The store deliberately swallows failures: a read that cannot be decoded
// reports absence, a write that cannot complete is a logged no-op. Losing a
// preference or a cached cart must never take the application down.
package storage

import (
	"encoding/json"
	"strconv"
)

// Well-known keys. The cart key is per-identity; see CartKey.
const (
	KeyToken  = "token"
	KeyUserID = "userId"
	KeyTheme  = "theme_preference"

	cartKeyPrefix = "marketfy_cart_"
	// AnonymousIdentity buckets the cart of a signed-out session.
	AnonymousIdentity = "guest"
)

// CartKey returns the storage key for the cart owned by the given user.
// A nil user id maps to the anonymous bucket, so switching accounts cannot
// leak one user's cart into another's.
func CartKey(userID *int64) string {
	if userID == nil {
		return cartKeyPrefix + AnonymousIdentity
	}
	return cartKeyPrefix + strconv.FormatInt(*userID, 10)
}

// Store is a typed get/set/remove wrapper over durable local storage.
// Writes are synchronous: when Set returns, the value is durable.
type Store interface {
	// Get returns the raw value for key, or ok=false when the key is absent
	// or unreadable.
	Get(key string) (value []byte, ok bool)
	// GetJSON decodes the value for key into v. It returns false (leaving v
	// untouched where possible) on absence or any decoding failure.
	GetJSON(key string, v any) bool
	// Set stores a raw value. Failures are swallowed.
	Set(key string, value []byte)
	// SetJSON encodes v and stores it. Failures are swallowed.
	SetJSON(key string, v any)
	// GetString returns the value as a string, or "" when absent.
	GetString(key string) string
	// SetString stores a string value.
	SetString(key, value string)
	// Has reports whether key is present.
	Has(key string) bool
	// Remove deletes a key. Removing an absent key is a no-op.
	Remove(key string)
	// Clear deletes every key.
	Clear()
}

func encodeJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}

func decodeJSON(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
