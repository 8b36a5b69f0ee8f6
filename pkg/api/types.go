// Package api defines the request and response types of the HTTP surface.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// NewVault is the request body for creating a vault. The owner is taken
// from the caller identity header, not the body.
type NewVault struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	GoalAmount  int64  `json:"goal_amount,omitempty"`
	UnlockAt    int64  `json:"unlock_at,omitempty"`
}

// LockStatus explains why a vault is (or is not) withdrawable right now.
type LockStatus struct {
	TimeGateOpen bool `json:"time_gate_open"`
	GoalGateOpen bool `json:"goal_gate_open"`
	Eligible     bool `json:"eligible"`
}

// Vault is the API projection of a vault record.
type Vault struct {
	Id          uint64     `json:"id"`
	Owner       string     `json:"owner"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Balance     int64      `json:"balance"`
	GoalAmount  int64      `json:"goal_amount"`
	UnlockAt    int64      `json:"unlock_at"`
	IsActive    bool       `json:"is_active"`
	LockStatus  LockStatus `json:"lock_status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewDeposit is the request body for funding a vault.
type NewDeposit struct {
	Amount int64 `json:"amount"`
}

// DepositReceipt reports the fee split of a completed deposit.
type DepositReceipt struct {
	Gross int64  `json:"gross"`
	Fee   int64  `json:"fee"`
	Net   int64  `json:"net"`
	Vault *Vault `json:"vault"`
}

// WithdrawalReceipt reports a completed withdrawal.
type WithdrawalReceipt struct {
	Amount int64  `json:"amount"`
	Vault  *Vault `json:"vault"`
}

// AggregateStats is the API projection of the accounting record.
type AggregateStats struct {
	VaultCounter       uint64 `json:"vault_counter"`
	TotalFeesCollected int64  `json:"total_fees_collected"`
	TotalNetDeposited  int64  `json:"total_net_deposited"`
	TotalWithdrawn     int64  `json:"total_withdrawn"`
	FeeBps             int64  `json:"fee_bps"`
}

// FeeUpdate is the request body for the operator fee-rate update.
type FeeUpdate struct {
	FeeBps int64 `json:"fee_bps"`
}

// LedgerEntry is the API projection of an audit ledger entry.
type LedgerEntry struct {
	EntryId     openapi_types.UUID `json:"entry_id"`
	VaultId     uint64             `json:"vault_id"`
	Actor       string             `json:"actor"`
	Kind        string             `json:"kind"`
	Gross       *int64             `json:"gross,omitempty"`
	Fee         *int64             `json:"fee,omitempty"`
	Net         int64              `json:"net"`
	Description string             `json:"description"`
	Timestamp   time.Time          `json:"timestamp"`
}
