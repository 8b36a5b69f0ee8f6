package storage

import (
	"context"

	"github.com/chris/savings-vaults/pkg/models"
)

// AggregateStore defines the interface for the singleton accounting record.
type AggregateStore interface {
	// GetAggregateStats retrieves the current accounting snapshot. A
	// deployment that has never mutated anything reports zero counters.
	GetAggregateStats(ctx context.Context) (*models.AggregateStats, error)

	// SetFeeBps updates the protocol fee rate. Bounds checking is the
	// caller's responsibility; the store only persists the value.
	SetFeeBps(ctx context.Context, feeBps int64) error
}
