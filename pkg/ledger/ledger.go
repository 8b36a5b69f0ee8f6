// Package ledger implements the savings-vault accounting protocol: vault
// creation, fee-charged deposits, gated withdrawals, and the unconditional
// emergency exit. The storage layer provides the atomic commit primitives;
// this package owns validation, authorization, fee computation, and the
// withdrawal-eligibility state machine.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/chris/savings-vaults/pkg/eligibility"
	"github.com/chris/savings-vaults/pkg/fees"
	"github.com/chris/savings-vaults/pkg/models"
	"github.com/chris/savings-vaults/pkg/notify"
	"github.com/chris/savings-vaults/pkg/storage"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// maxCommitAttempts bounds the re-read-and-retry loop around lost
// conditional writes. Contention on a single vault resolves within a couple
// of rounds; anything beyond this is surfaced to the caller.
const maxCommitAttempts = 5

// Authorizer decides whether an actor may perform an owner-restricted
// operation on a vault. It is pluggable so delegation or multisig schemes
// can replace the default without touching the ledger contract.
type Authorizer func(actor string, vault *models.Vault) bool

// OwnerOnly permits exactly the vault owner.
func OwnerOnly(actor string, vault *models.Vault) bool {
	return actor != "" && actor == vault.Owner
}

// CreateVaultParams carries the caller-supplied fields of a new vault. Goal
// and unlock constraints are immutable after creation.
type CreateVaultParams struct {
	Owner       string
	Name        string
	Description string
	GoalAmount  int64
	UnlockAt    int64
}

// DepositResult reports the fee split of a successful deposit.
type DepositResult struct {
	Fee   int64
	Net   int64
	Vault *models.Vault
}

// WithdrawResult reports a successful withdrawal.
type WithdrawResult struct {
	Amount int64
	Vault  *models.Vault
}

// Ledger is the command/query surface consumed by transport layers.
type Ledger interface {
	CreateVault(ctx context.Context, params CreateVaultParams) (*models.Vault, error)
	Deposit(ctx context.Context, vaultID uint64, caller string, gross int64) (*DepositResult, error)
	Withdraw(ctx context.Context, vaultID uint64, caller string) (*WithdrawResult, error)
	EmergencyWithdraw(ctx context.Context, vaultID uint64, caller string) (*WithdrawResult, error)
	GetVault(ctx context.Context, vaultID uint64) (*models.Vault, error)
	ListVaults(ctx context.Context) ([]models.Vault, error)
	GetAggregateStats(ctx context.Context) (*models.AggregateStats, error)
	ListLedgerEntries(ctx context.Context, limit int32) ([]models.LedgerEntry, error)
	SetFeeBps(ctx context.Context, caller string, feeBps int64) error
}

// Service implements Ledger on top of a storage backend.
type Service struct {
	Store      storage.Storage
	Notifier   notify.Notifier
	OperatorID string
	Authorize  Authorizer
	Now        func() time.Time
}

// NewService creates a Service with the default owner-only authorizer and
// wall-clock time source.
func NewService(store storage.Storage, notifier notify.Notifier, operatorID string) *Service {
	return &Service{
		Store:      store,
		Notifier:   notifier,
		OperatorID: operatorID,
		Authorize:  OwnerOnly,
		Now:        time.Now,
	}
}

// Make sure we conform to the interface
var _ Ledger = (*Service)(nil)

// CreateVault validates the parameters and inserts a new empty vault. The id
// comes from the aggregate counter and advances exactly once per success.
func (s *Service) CreateVault(ctx context.Context, params CreateVaultParams) (*models.Vault, error) {
	if params.Owner == "" {
		return nil, fmt.Errorf("%w: owner must not be empty", ErrInvalidArgument)
	}
	if params.GoalAmount < 0 {
		return nil, fmt.Errorf("%w: goal amount must be non-negative", ErrInvalidArgument)
	}
	if params.UnlockAt < 0 {
		return nil, fmt.Errorf("%w: unlock time must be non-negative", ErrInvalidArgument)
	}

	now := s.Now()
	if params.UnlockAt != 0 && params.UnlockAt <= now.Unix() {
		return nil, ErrPastUnlockTime
	}

	vault := &models.Vault{
		Owner:       params.Owner,
		Name:        params.Name,
		Description: params.Description,
		GoalAmount:  params.GoalAmount,
		UnlockAt:    params.UnlockAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created *models.Vault
	var err error
	for attempt := 0; attempt < maxCommitAttempts; attempt++ {
		created, err = s.Store.CreateVault(ctx, vault)
		if errors.Is(err, storage.ErrVersionConflict) {
			continue // lost the id allocation race, re-read the counter
		}
		break
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create vault: %w", err)
	}

	s.publish(ctx, &notify.VaultEvent{
		Type:      notify.EventVaultCreated,
		VaultID:   created.Id,
		Actor:     created.Owner,
		Owner:     created.Owner,
		Timestamp: now,
	})

	return created, nil
}

// Deposit charges the protocol fee at the current rate and credits the net
// amount. Anyone may fund any active vault.
func (s *Service) Deposit(ctx context.Context, vaultID uint64, caller string, gross int64) (*DepositResult, error) {
	if gross < 0 {
		return nil, fmt.Errorf("%w: deposit amount must be non-negative", ErrInvalidArgument)
	}
	if gross == 0 {
		return nil, ErrZeroAmount
	}
	if caller == "" {
		return nil, fmt.Errorf("%w: caller identity must not be empty", ErrInvalidArgument)
	}

	for attempt := 0; attempt < maxCommitAttempts; attempt++ {
		vault, err := s.Store.GetVault(ctx, vaultID)
		if err != nil {
			return nil, err
		}
		if !vault.IsActive {
			return nil, storage.ErrVaultInactive
		}

		stats, err := s.Store.GetAggregateStats(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read fee rate: %w", err)
		}

		fee, err := fees.CalculateFee(gross, stats.FeeBps)
		if err != nil {
			return nil, err
		}
		net := gross - fee
		if vault.Balance > math.MaxInt64-net {
			return nil, fees.ErrAmountOverflow
		}

		now := s.Now()
		entry := &models.LedgerEntry{
			EntryID:     uuid.New().String(),
			VaultID:     vault.Id,
			Actor:       caller,
			Kind:        models.EntryDeposit,
			Gross:       gross,
			Fee:         fee,
			Net:         net,
			Description: fmt.Sprintf("Deposit into vault %d", vault.Id),
			Timestamp:   now,
		}

		updated, err := s.Store.ApplyDeposit(ctx, vault, entry)
		if errors.Is(err, storage.ErrVersionConflict) {
			continue // concurrent mutation won, re-read and retry
		}
		if err != nil {
			return nil, fmt.Errorf("failed to apply deposit: %w", err)
		}

		s.publish(ctx, &notify.VaultEvent{
			Type:       notify.EventVaultDeposited,
			VaultID:    updated.Id,
			Actor:      caller,
			Owner:      updated.Owner,
			Gross:      gross,
			Fee:        fee,
			Net:        net,
			NewBalance: updated.Balance,
			Timestamp:  now,
		})

		return &DepositResult{Fee: fee, Net: net, Vault: updated}, nil
	}

	return nil, fmt.Errorf("deposit on vault %d: %w", vaultID, storage.ErrVersionConflict)
}

// Withdraw empties the vault through the ordinary path. Both the time gate
// and the goal gate must be open; the vault is terminal afterwards.
func (s *Service) Withdraw(ctx context.Context, vaultID uint64, caller string) (*WithdrawResult, error) {
	return s.withdraw(ctx, vaultID, caller, false)
}

// EmergencyWithdraw empties the vault regardless of its lock or goal state.
// It exists so funds are never provably stuck; only the owner gate applies.
func (s *Service) EmergencyWithdraw(ctx context.Context, vaultID uint64, caller string) (*WithdrawResult, error) {
	return s.withdraw(ctx, vaultID, caller, true)
}

func (s *Service) withdraw(ctx context.Context, vaultID uint64, caller string, emergency bool) (*WithdrawResult, error) {
	for attempt := 0; attempt < maxCommitAttempts; attempt++ {
		vault, err := s.Store.GetVault(ctx, vaultID)
		if err != nil {
			return nil, err
		}
		if !vault.IsActive {
			return nil, storage.ErrVaultInactive
		}
		if !s.Authorize(caller, vault) {
			return nil, ErrNotOwner
		}
		if vault.Balance == 0 {
			return nil, ErrZeroAmount
		}

		now := s.Now()
		if !emergency && !eligibility.Evaluate(vault, now).Eligible() {
			return nil, ErrNotEligible
		}

		kind := models.EntryWithdrawal
		eventType := notify.EventVaultWithdrawn
		description := fmt.Sprintf("Withdrawal from vault %d", vault.Id)
		if emergency {
			kind = models.EntryEmergencyWithdrawal
			eventType = notify.EventVaultEmergencyWithdrawn
			description = fmt.Sprintf("Emergency withdrawal from vault %d", vault.Id)
		}

		amount := vault.Balance
		entry := &models.LedgerEntry{
			EntryID:     uuid.New().String(),
			VaultID:     vault.Id,
			Actor:       caller,
			Kind:        kind,
			Net:         amount,
			Description: description,
			Timestamp:   now,
		}

		updated, err := s.Store.ApplyWithdrawal(ctx, vault, entry)
		if errors.Is(err, storage.ErrVersionConflict) {
			continue // a concurrent deposit changed the balance, re-read
		}
		if err != nil {
			return nil, fmt.Errorf("failed to apply withdrawal: %w", err)
		}

		s.publish(ctx, &notify.VaultEvent{
			Type:       eventType,
			VaultID:    updated.Id,
			Actor:      caller,
			Owner:      updated.Owner,
			Net:        amount,
			NewBalance: 0,
			Timestamp:  now,
		})

		return &WithdrawResult{Amount: amount, Vault: updated}, nil
	}

	return nil, fmt.Errorf("withdrawal on vault %d: %w", vaultID, storage.ErrVersionConflict)
}

// GetVault returns a read-only snapshot of the vault.
func (s *Service) GetVault(ctx context.Context, vaultID uint64) (*models.Vault, error) {
	return s.Store.GetVault(ctx, vaultID)
}

// ListVaults returns a best-effort snapshot of all vaults.
func (s *Service) ListVaults(ctx context.Context) ([]models.Vault, error) {
	return s.Store.ListVaults(ctx)
}

// GetAggregateStats returns a snapshot of the accounting record.
func (s *Service) GetAggregateStats(ctx context.Context) (*models.AggregateStats, error) {
	return s.Store.GetAggregateStats(ctx)
}

// ListLedgerEntries returns the most recent audit entries.
func (s *Service) ListLedgerEntries(ctx context.Context, limit int32) ([]models.LedgerEntry, error) {
	return s.Store.ListLedgerEntries(ctx, limit)
}

// SetFeeBps updates the protocol fee rate. Restricted to the configured
// operator and bounded by the protocol ceiling.
func (s *Service) SetFeeBps(ctx context.Context, caller string, feeBps int64) error {
	if caller != s.OperatorID || s.OperatorID == "" {
		return ErrNotOperator
	}
	if feeBps < 0 || feeBps > fees.MaxFeeBps {
		return ErrInvalidFeeRate
	}
	return s.Store.SetFeeBps(ctx, feeBps)
}

// publish emits a completion signal after the commit. Delivery is best
// effort: a failed publish is logged, never rolled back into the command.
func (s *Service) publish(ctx context.Context, event *notify.VaultEvent) {
	if s.Notifier == nil {
		return
	}
	event.EventID = openapi_types.UUID(uuid.New())
	if err := s.Notifier.PublishVaultEvent(ctx, event); err != nil {
		slog.Error("failed to publish vault event", "type", event.Type, "vaultId", event.VaultID, "error", err)
	}
}
