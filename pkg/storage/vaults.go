package storage

import (
	"context"

	"github.com/chris/savings-vaults/pkg/models"
)

// VaultReader defines the interface for reading vault records.
type VaultReader interface {
	// GetVault retrieves a vault by its id. Returns ErrVaultNotFound for ids
	// that were never assigned.
	GetVault(ctx context.Context, vaultID uint64) (*models.Vault, error)

	// ListVaults retrieves a best-effort snapshot of all vaults, terminal
	// ones included.
	ListVaults(ctx context.Context) ([]models.Vault, error)
}

// VaultWriter defines the mutation primitives of the ledger. Every method is
// all-or-nothing: the vault record, the aggregate counters, and the audit
// entry commit together or not at all.
type VaultWriter interface {
	// CreateVault allocates the next vault id from the aggregate record and
	// inserts the vault with a zero balance. The returned vault carries the
	// assigned id and initial version.
	CreateVault(ctx context.Context, vault *models.Vault) (*models.Vault, error)

	// ApplyDeposit credits entry.Net to the vault, adds entry.Fee and
	// entry.Net to the aggregate counters, and appends the audit entry.
	// Deposits are additive, so concurrent deposits to one vault all land;
	// the write fails only if the vault went inactive or the credit would
	// overflow the balance.
	ApplyDeposit(ctx context.Context, vault *models.Vault, entry *models.LedgerEntry) (*models.Vault, error)

	// ApplyWithdrawal empties the vault, flips it inactive, adds entry.Net
	// to the aggregate withdrawal counter, and appends the audit entry.
	// Conditioned on the snapshot version; a concurrent commit surfaces as
	// ErrVersionConflict.
	ApplyWithdrawal(ctx context.Context, vault *models.Vault, entry *models.LedgerEntry) (*models.Vault, error)
}

// VaultStore combines the reader and writer interfaces.
type VaultStore interface {
	VaultReader
	VaultWriter
}
