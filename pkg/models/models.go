package models

import (
	"time"
)

// Vault represents the internal domain model for a savings vault.
// It includes dynamodbav tags for marshalling.
type Vault struct {
	Id          uint64    `json:"id" dynamodbav:"id"`
	Owner       string    `json:"owner" dynamodbav:"owner"`
	Name        string    `json:"name" dynamodbav:"name"`
	Description string    `json:"description,omitempty" dynamodbav:"description,omitempty"`
	Balance     int64     `json:"balance" dynamodbav:"balance"`
	GoalAmount  int64     `json:"goal_amount" dynamodbav:"goal_amount"`
	UnlockAt    int64     `json:"unlock_at" dynamodbav:"unlock_at"`
	IsActive    bool      `json:"is_active" dynamodbav:"is_active"`
	Version     int64     `json:"version" dynamodbav:"version"`
	CreatedAt   time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// AggregateStats is the process-wide accounting record. Exactly one item
// exists per deployment; every counter on it mutates only in the same
// atomic commit as the vault mutation it describes.
type AggregateStats struct {
	VaultCounter       uint64 `json:"vault_counter" dynamodbav:"vault_counter"`
	TotalFeesCollected int64  `json:"total_fees_collected" dynamodbav:"total_fees_collected"`
	TotalNetDeposited  int64  `json:"total_net_deposited" dynamodbav:"total_net_deposited"`
	TotalWithdrawn     int64  `json:"total_withdrawn" dynamodbav:"total_withdrawn"`
	FeeBps             int64  `json:"fee_bps" dynamodbav:"fee_bps"`
	Version            int64  `json:"version" dynamodbav:"version"`
}

// EntryKind classifies an audit ledger entry.
type EntryKind string

const (
	EntryDeposit             EntryKind = "DEPOSIT"
	EntryWithdrawal          EntryKind = "WITHDRAWAL"
	EntryEmergencyWithdrawal EntryKind = "EMERGENCY_WITHDRAWAL"
)

// LedgerEntry is a single immutable row in the append-only audit ledger.
// One entry is written in the same commit as every balance mutation.
type LedgerEntry struct {
	EntryID     string    `dynamodbav:"entry_id"`
	VaultID     uint64    `dynamodbav:"vault_id"`
	Actor       string    `dynamodbav:"actor"`
	Kind        EntryKind `dynamodbav:"kind"`
	Gross       int64     `dynamodbav:"gross,omitempty"`
	Fee         int64     `dynamodbav:"fee,omitempty"`
	Net         int64     `dynamodbav:"net"`
	Description string    `dynamodbav:"description"`
	Timestamp   time.Time `dynamodbav:"timestamp"`
	GSI1PK      string    `dynamodbav:"gsi1pk"`
}
