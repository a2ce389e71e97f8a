package secret

import (
	"fmt"

	"github.com/benaskins/lockbox/internal/audit"
)

// AuditedStore wraps a Backend and records every operation to the audit log.
type AuditedStore struct {
	inner Backend
	audit *audit.Logger
}

// NewAuditedStore wraps an existing backend with audit logging.
func NewAuditedStore(inner Backend, auditLog *audit.Logger) *AuditedStore {
	return &AuditedStore{inner: inner, audit: auditLog}
}

func (s *AuditedStore) Set(account, value string) error {
	if err := s.inner.Set(account, value); err != nil {
		return fmt.Errorf("audited store set: %w", err)
	}

	// Audit logging is best-effort — a failure to log should not block the operation.
	s.audit.Log(audit.Entry{
		Action:  audit.ActionWrite,
		Account: account,
	})
	return nil
}

func (s *AuditedStore) Get(account string) (string, error) {
	val, err := s.inner.Get(account)
	if err != nil {
		return "", err
	}

	// Audit logging is best-effort — a failure to log should not block the operation.
	s.audit.Log(audit.Entry{
		Action:  audit.ActionRead,
		Account: account,
	})
	return val, nil
}

func (s *AuditedStore) Delete(account string) error {
	if err := s.inner.Delete(account); err != nil {
		return fmt.Errorf("audited store delete: %w", err)
	}

	// Audit logging is best-effort — a failure to log should not block the operation.
	s.audit.Log(audit.Entry{
		Action:  audit.ActionDelete,
		Account: account,
	})
	return nil
}
