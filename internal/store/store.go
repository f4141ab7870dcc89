// Package store provides the key-value persistence layer. Each entity
// collection is stored as one JSON document under a well-known key.
package store

// Storage keys. The names match the original program's storage layout.
const (
	KeyApplications = "referral_applications"
	KeyUsers        = "referral_users"
	KeyWithdrawals  = "withdrawal_requests"
	KeySettings     = "program_settings"
	KeyAdmin        = "admin_credentials"
	KeySession      = "current_session"
)

// Store is a durable key-value store with JSON-serializable values.
//
// Read reports whether the key held a decodable value. On a missing key
// or corrupted data it returns (false, nil) and leaves dest untouched,
// so the caller's pre-filled default survives. A failure of the backend
// itself returns a non-nil error: the caller must not treat "the store
// is unreachable" as "the collection is empty", or a later write would
// replace real data with defaults. Write replaces the value under key.
// Cross-process conflict resolution is last-writer-wins; each call is
// atomic on its own but no multi-key transaction exists.
type Store interface {
	Read(key string, dest any) (bool, error)
	Write(key string, value any) error
}
