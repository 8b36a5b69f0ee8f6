// Package mapping converts between the domain models and the API types.
package mapping

import (
	"time"

	"github.com/chris/savings-vaults/pkg/api"
	"github.com/chris/savings-vaults/pkg/eligibility"
	"github.com/chris/savings-vaults/pkg/ledger"
	"github.com/chris/savings-vaults/pkg/models"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ToApiVault converts a domain Vault to its API projection, including the
// lock-status explanation evaluated at the given instant.
func ToApiVault(vault *models.Vault, now time.Time) *api.Vault {
	status := eligibility.Evaluate(vault, now)
	return &api.Vault{
		Id:          vault.Id,
		Owner:       vault.Owner,
		Name:        vault.Name,
		Description: vault.Description,
		Balance:     vault.Balance,
		GoalAmount:  vault.GoalAmount,
		UnlockAt:    vault.UnlockAt,
		IsActive:    vault.IsActive,
		LockStatus: api.LockStatus{
			TimeGateOpen: status.TimeGateOpen,
			GoalGateOpen: status.GoalGateOpen,
			Eligible:     status.Eligible(),
		},
		CreatedAt: vault.CreatedAt,
		UpdatedAt: vault.UpdatedAt,
	}
}

// ToCreateVaultParams converts an API NewVault request to the ledger's
// creation parameters. The owner comes from the caller identity.
func ToCreateVaultParams(newVault *api.NewVault, owner string) ledger.CreateVaultParams {
	return ledger.CreateVaultParams{
		Owner:       owner,
		Name:        newVault.Name,
		Description: newVault.Description,
		GoalAmount:  newVault.GoalAmount,
		UnlockAt:    newVault.UnlockAt,
	}
}

// ToApiStats converts the domain accounting record to its API projection.
func ToApiStats(stats *models.AggregateStats) *api.AggregateStats {
	return &api.AggregateStats{
		VaultCounter:       stats.VaultCounter,
		TotalFeesCollected: stats.TotalFeesCollected,
		TotalNetDeposited:  stats.TotalNetDeposited,
		TotalWithdrawn:     stats.TotalWithdrawn,
		FeeBps:             stats.FeeBps,
	}
}

// ToApiLedgerEntry converts a domain audit entry to its API projection.
func ToApiLedgerEntry(entry *models.LedgerEntry) *api.LedgerEntry {
	id, _ := uuid.Parse(entry.EntryID)
	out := &api.LedgerEntry{
		EntryId:     openapi_types.UUID(id),
		VaultId:     entry.VaultID,
		Actor:       entry.Actor,
		Kind:        string(entry.Kind),
		Net:         entry.Net,
		Description: entry.Description,
		Timestamp:   entry.Timestamp,
	}
	if entry.Kind == models.EntryDeposit {
		out.Gross = &entry.Gross
		out.Fee = &entry.Fee
	}
	return out
}
