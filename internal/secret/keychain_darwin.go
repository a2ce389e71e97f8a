//go:build darwin

package secret

import (
	"errors"
	"fmt"

	gokeychain "github.com/keybase/go-keychain"
)

// SystemStore provides CRUD operations for secrets in macOS Keychain.
type SystemStore struct {
	service string
}

// NewSystemStore creates a new Keychain-backed secret store.
func NewSystemStore() *SystemStore {
	return &SystemStore{service: Service}
}

// Set stores a secret in the Keychain. Overwrites if it already exists.
func (s *SystemStore) Set(account, value string) error {
	// Try to delete existing item first (update = delete + add)
	_ = s.Delete(account)

	item := gokeychain.NewGenericPassword(
		s.service,
		account,
		fmt.Sprintf("lockbox: %s", account),
		[]byte(value),
		"",
	)
	item.SetSynchronizable(gokeychain.SynchronizableNo)
	item.SetAccessible(gokeychain.AccessibleWhenUnlockedThisDeviceOnly)

	if err := gokeychain.AddItem(item); err != nil {
		return fmt.Errorf("keychain add %q: %w", account, err)
	}
	return nil
}

// Get retrieves a secret from the Keychain.
func (s *SystemStore) Get(account string) (string, error) {
	data, err := gokeychain.GetGenericPassword(s.service, account, "", "")
	if err != nil {
		if errors.Is(err, gokeychain.ErrorItemNotFound) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, account)
		}
		return "", fmt.Errorf("keychain get %q: %w", account, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNotFound, account)
	}
	return string(data), nil
}

// Delete removes a secret from the Keychain. Deleting a secret that does
// not exist is not an error.
func (s *SystemStore) Delete(account string) error {
	err := gokeychain.DeleteGenericPasswordItem(s.service, account)
	if err != nil && !errors.Is(err, gokeychain.ErrorItemNotFound) {
		return fmt.Errorf("keychain delete %q: %w", account, err)
	}
	return nil
}
