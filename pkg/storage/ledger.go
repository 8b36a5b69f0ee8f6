package storage

import (
	"context"

	"github.com/chris/savings-vaults/pkg/models"
)

// AuditLogReader defines the interface for reading the append-only audit
// ledger.
type AuditLogReader interface {
	// ListLedgerEntries retrieves the most recent audit entries.
	ListLedgerEntries(ctx context.Context, limit int32) ([]models.LedgerEntry, error)
}
