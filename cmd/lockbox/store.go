package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/benaskins/lockbox/internal/audit"
	"github.com/benaskins/lockbox/internal/config"
	"github.com/benaskins/lockbox/internal/index"
	"github.com/benaskins/lockbox/internal/secret"
	"github.com/charmbracelet/log"
)

// withIndex loads the config and the persisted account index, runs fn, and
// persists the index afterwards whether or not fn succeeded. Persisting is
// best-effort: a failed save is reported as a warning, not as the command's
// result.
func withIndex(fn func(cfg *config.Config, ix *index.Index) error) error {
	home, err := lockboxHome()
	if err != nil {
		return fmt.Errorf("locating home directory: %w", err)
	}
	if err := os.MkdirAll(home, 0700); err != nil {
		return fmt.Errorf("creating %s: %w", home, err)
	}

	cfg, err := config.Load(filepath.Join(home, "config.yaml"))
	if err != nil {
		log.Warn("ignoring unreadable config", "error", err)
		cfg = &config.Config{}
	}

	var backend secret.Backend = secret.NewSystemStore()
	auditLog, err := audit.NewLogger(filepath.Join(home, "audit.log"))
	if err != nil {
		log.Warn("audit log unavailable", "error", err)
	} else {
		defer auditLog.Close()
		backend = secret.NewAuditedStore(backend, auditLog)
	}

	path := filepath.Join(home, "accounts.json")
	ix, err := index.Load(path, backend)
	if err != nil {
		return err
	}

	runErr := fn(cfg, ix)

	if err := ix.Save(path); err != nil {
		log.Warn("could not persist account index", "path", path, "error", err)
	}
	return runErr
}
