package memory

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/chris/savings-vaults/pkg/models"
	"github.com/chris/savings-vaults/pkg/storage"
	"github.com/stretchr/testify/assert"
)

func TestCreateVault(t *testing.T) {
	store := New(50)

	first, err := store.CreateVault(context.Background(), &models.Vault{Owner: "alice", Name: "rainy day"})
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), first.Id)
	assert.Equal(t, int64(0), first.Balance)
	assert.True(t, first.IsActive)
	assert.Equal(t, int64(1), first.Version)

	second, err := store.CreateVault(context.Background(), &models.Vault{Owner: "bob"})
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), second.Id)

	stats, err := store.GetAggregateStats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), stats.VaultCounter)
}

func TestGetVault(t *testing.T) {
	store := New(50)

	t.Run("Not Found", func(t *testing.T) {
		_, err := store.GetVault(context.Background(), 42)
		assert.ErrorIs(t, err, storage.ErrVaultNotFound)
	})

	t.Run("Snapshot Is A Copy", func(t *testing.T) {
		created, err := store.CreateVault(context.Background(), &models.Vault{Owner: "alice"})
		assert.NoError(t, err)

		snap, err := store.GetVault(context.Background(), created.Id)
		assert.NoError(t, err)
		snap.Balance = 999999

		again, err := store.GetVault(context.Background(), created.Id)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), again.Balance)
	})
}

func TestApplyDeposit(t *testing.T) {
	store := New(50)
	created, _ := store.CreateVault(context.Background(), &models.Vault{Owner: "alice"})
	entry := &models.LedgerEntry{
		VaultID: created.Id, Kind: models.EntryDeposit,
		Gross: 1000, Fee: 5, Net: 995, Timestamp: time.Now(),
	}

	t.Run("Success", func(t *testing.T) {
		updated, err := store.ApplyDeposit(context.Background(), created, entry)
		assert.NoError(t, err)
		assert.Equal(t, int64(995), updated.Balance)
		assert.Equal(t, created.Version+1, updated.Version)

		stats, _ := store.GetAggregateStats(context.Background())
		assert.Equal(t, int64(5), stats.TotalFeesCollected)
		assert.Equal(t, int64(995), stats.TotalNetDeposited)
	})

	t.Run("Additive With Stale Snapshot", func(t *testing.T) {
		// Deposits carry no version condition, so a stale snapshot still
		// credits the live balance.
		updated, err := store.ApplyDeposit(context.Background(), created, entry)
		assert.NoError(t, err)
		assert.Equal(t, int64(1990), updated.Balance)
	})

	t.Run("Balance Overflow", func(t *testing.T) {
		huge := &models.LedgerEntry{VaultID: created.Id, Kind: models.EntryDeposit, Net: math.MaxInt64}
		_, err := store.ApplyDeposit(context.Background(), created, huge)
		assert.ErrorIs(t, err, storage.ErrBalanceOverflow)
	})

	t.Run("Not Found", func(t *testing.T) {
		missing := &models.Vault{Id: 42, Version: 1}
		_, err := store.ApplyDeposit(context.Background(), missing, entry)
		assert.ErrorIs(t, err, storage.ErrVaultNotFound)
	})
}

func TestApplyWithdrawal(t *testing.T) {
	store := New(50)
	created, _ := store.CreateVault(context.Background(), &models.Vault{Owner: "alice"})
	deposited, _ := store.ApplyDeposit(context.Background(), created, &models.LedgerEntry{
		VaultID: created.Id, Kind: models.EntryDeposit, Gross: 1000, Fee: 5, Net: 995, Timestamp: time.Now(),
	})

	t.Run("Success And Terminal", func(t *testing.T) {
		updated, err := store.ApplyWithdrawal(context.Background(), deposited, &models.LedgerEntry{
			VaultID: created.Id, Kind: models.EntryWithdrawal, Net: 995, Timestamp: time.Now(),
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(0), updated.Balance)
		assert.False(t, updated.IsActive)

		stats, _ := store.GetAggregateStats(context.Background())
		assert.Equal(t, int64(995), stats.TotalWithdrawn)

		// Any further mutation against the retired vault is rejected.
		_, err = store.ApplyDeposit(context.Background(), updated, &models.LedgerEntry{Net: 1})
		assert.ErrorIs(t, err, storage.ErrVaultInactive)
		_, err = store.ApplyWithdrawal(context.Background(), updated, &models.LedgerEntry{})
		assert.ErrorIs(t, err, storage.ErrVaultInactive)
	})
}

func TestListLedgerEntries(t *testing.T) {
	store := New(50)
	created, _ := store.CreateVault(context.Background(), &models.Vault{Owner: "alice"})

	vault := created
	for i := 0; i < 3; i++ {
		var err error
		vault, err = store.ApplyDeposit(context.Background(), vault, &models.LedgerEntry{
			EntryID: string(rune('a' + i)), VaultID: created.Id, Kind: models.EntryDeposit, Net: 100,
		})
		assert.NoError(t, err)
	}

	entries, err := store.ListLedgerEntries(context.Background(), 2)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "c", entries[0].EntryID) // newest first
	assert.Equal(t, "b", entries[1].EntryID)

	all, err := store.ListLedgerEntries(context.Background(), 0)
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}
