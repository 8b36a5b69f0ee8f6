// Package memory implements the storage interfaces with an in-process table
// guarded by a single mutex. One lock over the whole table is the simplest
// arrangement that serializes every read-modify-write on a vault; it is the
// default backend for local development and for the ledger tests.
package memory

import (
	"context"
	"math"
	"sync"

	"github.com/chris/savings-vaults/pkg/models"
	"github.com/chris/savings-vaults/pkg/storage"
)

// Store holds all vault state in process memory. Snapshots returned to
// callers are value copies; internal pointers never escape the lock.
type Store struct {
	mu          sync.RWMutex
	vaults      map[uint64]*models.Vault
	stats       models.AggregateStats
	entries     []models.LedgerEntry
	connections map[string]struct{}
}

// New creates an empty Store with the given initial fee rate.
func New(feeBps int64) *Store {
	return &Store{
		vaults: make(map[uint64]*models.Vault),
		stats:  models.AggregateStats{FeeBps: feeBps},
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// CreateVault assigns the next id and inserts the vault. The counter and the
// insert happen under the same critical section, so the counter advances
// exactly once per created vault.
func (s *Store) CreateVault(ctx context.Context, vault *models.Vault) (*models.Vault, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.VaultCounter++
	v := *vault
	v.Id = s.stats.VaultCounter
	v.Balance = 0
	v.IsActive = true
	v.Version = 1
	s.vaults[v.Id] = &v

	cp := v
	return &cp, nil
}

// GetVault returns a snapshot of the vault, or ErrVaultNotFound.
func (s *Store) GetVault(ctx context.Context, vaultID uint64) (*models.Vault, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.vaults[vaultID]
	if !ok {
		return nil, storage.ErrVaultNotFound
	}
	cp := *v
	return &cp, nil
}

// ListVaults returns snapshots of every vault, terminal ones included.
func (s *Store) ListVaults(ctx context.Context) ([]models.Vault, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Vault, 0, len(s.vaults))
	for _, v := range s.vaults {
		out = append(out, *v)
	}
	return out, nil
}

// ApplyDeposit credits the vault and updates the aggregate counters and the
// audit ledger in one critical section. Deposits are additive: no version
// condition, so concurrent deposits to one vault all land.
func (s *Store) ApplyDeposit(ctx context.Context, vault *models.Vault, entry *models.LedgerEntry) (*models.Vault, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vaults[vault.Id]
	if !ok {
		return nil, storage.ErrVaultNotFound
	}
	if !v.IsActive {
		return nil, storage.ErrVaultInactive
	}
	if v.Balance > math.MaxInt64-entry.Net {
		return nil, storage.ErrBalanceOverflow
	}

	v.Balance += entry.Net
	v.Version++
	v.UpdatedAt = entry.Timestamp
	s.stats.TotalFeesCollected += entry.Fee
	s.stats.TotalNetDeposited += entry.Net
	s.entries = append(s.entries, *entry)

	cp := *v
	return &cp, nil
}

// ApplyWithdrawal empties the vault and retires it. Terminal: no later
// operation reactivates the record.
func (s *Store) ApplyWithdrawal(ctx context.Context, vault *models.Vault, entry *models.LedgerEntry) (*models.Vault, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vaults[vault.Id]
	if !ok {
		return nil, storage.ErrVaultNotFound
	}
	if !v.IsActive {
		return nil, storage.ErrVaultInactive
	}
	if v.Version != vault.Version {
		return nil, storage.ErrVersionConflict
	}

	v.Balance = 0
	v.IsActive = false
	v.Version++
	v.UpdatedAt = entry.Timestamp
	s.stats.TotalWithdrawn += entry.Net
	s.entries = append(s.entries, *entry)

	cp := *v
	return &cp, nil
}

// GetAggregateStats returns a snapshot of the accounting record.
func (s *Store) GetAggregateStats(ctx context.Context) (*models.AggregateStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := s.stats
	return &cp, nil
}

// SetFeeBps updates the fee rate applied to subsequent deposits.
func (s *Store) SetFeeBps(ctx context.Context, feeBps int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.FeeBps = feeBps
	s.stats.Version++
	return nil
}

// ListLedgerEntries returns the most recent audit entries, newest first.
func (s *Store) ListLedgerEntries(ctx context.Context, limit int32) ([]models.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.entries)
	count := int(limit)
	if count <= 0 || count > n {
		count = n
	}
	out := make([]models.LedgerEntry, 0, count)
	for i := n - 1; i >= n-count; i-- {
		out = append(out, s.entries[i])
	}
	return out, nil
}
