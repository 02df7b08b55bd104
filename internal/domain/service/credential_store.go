package service

// CredentialStore persists the admin token across process runs. The backing
// storage keeps the token under several redundant keys for backward
// compatibility; the interface hides that quirk from every caller.
type CredentialStore interface {
	// ReadToken returns the first token found in the priority key list,
	// or ok=false when no key holds a value.
	ReadToken() (token string, ok bool)

	// WriteToken stores the token under every known key.
	WriteToken(token string) error

	// Clear removes the token from all known keys. Idempotent.
	Clear() error
}
