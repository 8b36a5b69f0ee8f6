// Package notify carries the completion signals emitted after every
// successful ledger command. Consumers (analytics, dashboards) subscribe to
// the stream; the ledger itself never depends on delivery.
package notify

import (
	"context"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// EventType identifies which ledger command completed.
type EventType string

const (
	EventVaultCreated            EventType = "VAULT_CREATED"
	EventVaultDeposited          EventType = "VAULT_DEPOSITED"
	EventVaultWithdrawn          EventType = "VAULT_WITHDRAWN"
	EventVaultEmergencyWithdrawn EventType = "VAULT_EMERGENCY_WITHDRAWN"
)

// VaultEvent is the structured notification for one completed command.
type VaultEvent struct {
	EventID    openapi_types.UUID `json:"event_id"`
	Type       EventType          `json:"type"`
	VaultID    uint64             `json:"vault_id"`
	Actor      string             `json:"actor"`
	Owner      string             `json:"owner"`
	Gross      int64              `json:"gross,omitempty"`
	Fee        int64              `json:"fee,omitempty"`
	Net        int64              `json:"net"`
	NewBalance int64              `json:"new_balance"`
	Timestamp  time.Time          `json:"timestamp"`
}

// Notifier defines the interface for publishing vault events.
type Notifier interface {
	// PublishVaultEvent emits one completion signal.
	PublishVaultEvent(ctx context.Context, event *VaultEvent) error
}

// NoOpNotifier discards all events. Used in tests and local setups without
// an event stream.
type NoOpNotifier struct{}

// PublishVaultEvent does nothing.
func (n *NoOpNotifier) PublishVaultEvent(ctx context.Context, event *VaultEvent) error {
	return nil
}
