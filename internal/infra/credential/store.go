// Package credential implements durable storage and local validation for the
// admin API token.
package credential

import (
	"encoding/json"
	"os"
	"path/filepath"

	"plastpack/internal/errors"
)

// storageKeys is the priority-ordered list of keys a token may live under.
// Older releases wrote different keys, so reads scan all of them and writes
// populate all of them.
var storageKeys = []string{"adminToken", "token", "access_token"}

// FileStore keeps the token keyring in a small JSON file, the CLI's
// equivalent of browser local storage. Reads and writes go through the whole
// file, last write wins.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path. The file and
// its directory are created lazily on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// ReadToken returns the first token found in the priority key list.
func (s *FileStore) ReadToken() (string, bool) {
	keyring, err := s.load()
	if err != nil {
		return "", false
	}

	for _, key := range storageKeys {
		if token, ok := keyring[key]; ok && token != "" {
			return token, true
		}
	}

	return "", false
}

// WriteToken stores the token under every known key.
func (s *FileStore) WriteToken(token string) error {
	keyring, err := s.load()
	if err != nil {
		keyring = map[string]string{}
	}

	for _, key := range storageKeys {
		keyring[key] = token
	}

	return s.save(keyring)
}

// Clear removes the token from all known keys. Removing from an absent or
// already-empty keyring is a no-op.
func (s *FileStore) Clear() error {
	keyring, err := s.load()
	if err != nil {
		return nil
	}

	for _, key := range storageKeys {
		delete(keyring, key)
	}

	return s.save(keyring)
}

func (s *FileStore) load() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrap(err, "read credential file")
	}

	keyring := map[string]string{}
	if err := json.Unmarshal(raw, &keyring); err != nil {
		return nil, errors.Wrap(err, "decode credential file")
	}

	return keyring, nil
}

func (s *FileStore) save(keyring map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "create credential dir")
	}

	raw, err := json.Marshal(keyring)
	if err != nil {
		return errors.Wrap(err, "encode credential file")
	}

	// The keyring holds a live credential, keep it owner-only.
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return errors.Wrap(err, "write credential file")
	}

	return nil
}
