//go:build !darwin

package secret

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// SystemStore provides CRUD operations for secrets through the platform
// secret service: the freedesktop Secret Service on Linux, the Credential
// Manager on Windows.
type SystemStore struct {
	service string
}

// NewSystemStore creates a new keyring-backed secret store.
func NewSystemStore() *SystemStore {
	return &SystemStore{service: Service}
}

// Set stores a secret in the keyring. Overwrites if it already exists.
func (s *SystemStore) Set(account, value string) error {
	if err := keyring.Set(s.service, account, value); err != nil {
		return fmt.Errorf("keyring set %q: %w", account, err)
	}
	return nil
}

// Get retrieves a secret from the keyring.
func (s *SystemStore) Get(account string) (string, error) {
	val, err := keyring.Get(s.service, account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, account)
		}
		return "", fmt.Errorf("keyring get %q: %w", account, err)
	}
	return val, nil
}

// Delete removes a secret from the keyring. Deleting a secret that does
// not exist is not an error.
func (s *SystemStore) Delete(account string) error {
	err := keyring.Delete(s.service, account)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("keyring delete %q: %w", account, err)
	}
	return nil
}
