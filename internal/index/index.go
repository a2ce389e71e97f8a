// Package index maintains the registry of known account names.
//
// Secret values live in the OS secret service; only the names are persisted,
// as JSON at ~/.password/accounts.json. The two stores are kept paired:
// every name in the index has a matching backend secret, and removing a name
// deletes its secret in the same operation. The backend call always runs
// first and the name set is only updated on success, so a failed call never
// leaves the stores diverged.
package index

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/benaskins/lockbox/internal/secret"
)

// FileMode is the required permission for the index file: owner read/write
// only. Load repairs drifted modes on every run.
const FileMode fs.FileMode = 0600

var (
	// ErrNotFound is returned when an account is not in the index.
	ErrNotFound = errors.New("account not found")

	// ErrCorrupt is returned when the index lists an account that has no
	// matching secret in the backend.
	ErrCorrupt = errors.New("index out of sync with secret store")
)

// Index is the set of known account names, backed by a secret store for
// the values.
type Index struct {
	names   map[string]bool
	backend secret.Backend
}

// indexFile is the on-disk shape of the persisted index.
type indexFile struct {
	Accounts []string `json:"accounts"`
}

// New builds an index over the given names. The backend is not touched
// until an operation needs it.
func New(names []string, backend secret.Backend) *Index {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return &Index{names: set, backend: backend}
}

// Load reads the persisted index at path. A missing file yields an empty
// index; an existing file with group or world access bits is chmodded back
// to owner-only.
func Load(path string, backend secret.Backend) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(nil, backend), nil
		}
		return nil, fmt.Errorf("reading index: %w", err)
	}

	if info, err := os.Stat(path); err == nil && info.Mode().Perm() != FileMode {
		if err := os.Chmod(path, FileMode); err != nil {
			return nil, fmt.Errorf("repairing index permissions: %w", err)
		}
	}

	var f indexFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing index %s: %w", path, err)
	}
	return New(f.Accounts, backend), nil
}

// Contains reports whether name is a known account.
func (ix *Index) Contains(name string) bool {
	return ix.names[name]
}

// Names returns all account names in ascending byte order.
func (ix *Index) Names() []string {
	names := make([]string, 0, len(ix.names))
	for name := range ix.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the secret for a known account. An account the index knows
// but the backend does not is reported as corruption, never as an empty
// secret.
func (ix *Index) Get(name string) (string, error) {
	if !ix.names[name] {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	val, err := ix.backend.Get(name)
	if err != nil {
		if errors.Is(err, secret.ErrNotFound) {
			return "", fmt.Errorf("%w: %q listed but has no stored secret", ErrCorrupt, name)
		}
		return "", err
	}
	return val, nil
}

// Set writes the secret to the backend, then records the name. A failed
// backend write leaves the index unchanged.
func (ix *Index) Set(name, value string) error {
	if err := ix.backend.Set(name, value); err != nil {
		return err
	}
	ix.names[name] = true
	return nil
}

// Remove deletes the account's secret from the backend, then drops the
// name, returning the removed secret. A failed backend call leaves the
// name in place.
func (ix *Index) Remove(name string) (string, error) {
	if !ix.names[name] {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	val, err := ix.backend.Get(name)
	if err != nil {
		if errors.Is(err, secret.ErrNotFound) {
			return "", fmt.Errorf("%w: %q listed but has no stored secret", ErrCorrupt, name)
		}
		return "", err
	}
	if err := ix.backend.Delete(name); err != nil {
		return "", err
	}
	delete(ix.names, name)
	return val, nil
}

// Save persists the name set as {"accounts": [...]} at path, creating the
// parent directory as needed. The file is written to a temp path and
// renamed into place with owner-only permissions.
func (ix *Index) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating index directory: %w", err)
	}

	data, err := json.MarshalIndent(indexFile{Accounts: ix.Names()}, "", "  ")
	if err != nil {
		return err
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, FileMode); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
