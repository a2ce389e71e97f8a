// Package secret stores account passwords in the operating system's
// secret service.
//
// On macOS, secrets are stored as Keychain generic passwords with:
//   - Service: "com.lockbox" (all lockbox secrets share this service)
//   - Account: the account name (e.g. "github")
//   - Label: "lockbox: <account>" (for Keychain Access.app visibility)
//
// Secrets are scoped with kSecAttrAccessibleWhenUnlockedThisDeviceOnly:
// never synced to iCloud, never available when the machine is locked.
// On other platforms the same (service, account) pair maps onto the
// freedesktop Secret Service or the Windows Credential Manager.
package secret

import "errors"

// Service is the namespace under which all lockbox secrets are stored.
const Service = "com.lockbox"

// ErrNotFound is returned when a secret does not exist in the backend.
var ErrNotFound = errors.New("secret not found")

// Backend is the interface for secret storage operations.
type Backend interface {
	Set(account, value string) error
	Get(account string) (string, error)
	Delete(account string) error
}
