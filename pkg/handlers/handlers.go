package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/chris/savings-vaults/pkg/api"
	"github.com/chris/savings-vaults/pkg/fees"
	"github.com/chris/savings-vaults/pkg/ledger"
	"github.com/chris/savings-vaults/pkg/mapping"
	"github.com/chris/savings-vaults/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// actorHeader carries the caller identity. The service sits behind a
// trusted edge that authenticates callers and stamps this header.
const actorHeader = "X-Actor-Id"

// defaultLedgerLimit caps GET /ledger responses when no limit is given.
const defaultLedgerLimit = 50

// ApiHandler holds the application's dependencies for the HTTP surface.
type ApiHandler struct {
	Ledger ledger.Ledger
}

// NewApiHandler creates a new ApiHandler with a ledger dependency.
func NewApiHandler(l ledger.Ledger) *ApiHandler {
	return &ApiHandler{Ledger: l}
}

// CreateVault handles the logic for creating a new vault.
func (h *ApiHandler) CreateVault(w http.ResponseWriter, r *http.Request) {
	actor := r.Header.Get(actorHeader)
	if actor == "" {
		http.Error(w, "Missing "+actorHeader+" header", http.StatusUnauthorized)
		return
	}

	var newVault api.NewVault
	if err := json.NewDecoder(r.Body).Decode(&newVault); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	vault, err := h.Ledger.CreateVault(r.Context(), mapping.ToCreateVaultParams(&newVault, actor))
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, mapping.ToApiVault(vault, time.Now()))
}

// GetVaultById handles the logic for retrieving a vault by its id.
func (h *ApiHandler) GetVaultById(w http.ResponseWriter, r *http.Request) {
	vaultID, ok := vaultIDParam(w, r)
	if !ok {
		return
	}

	vault, err := h.Ledger.GetVault(r.Context(), vaultID)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiVault(vault, time.Now()))
}

// ListVaults handles the logic for retrieving all vaults.
func (h *ApiHandler) ListVaults(w http.ResponseWriter, r *http.Request) {
	vaults, err := h.Ledger.ListVaults(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve vaults: %v", err), http.StatusInternalServerError)
		return
	}

	// Sort vaults by id so the listing is stable across backends.
	sort.Slice(vaults, func(i, j int) bool {
		return vaults[i].Id < vaults[j].Id
	})

	now := time.Now()
	apiVaults := make([]*api.Vault, len(vaults))
	for i, vault := range vaults {
		apiVaults[i] = mapping.ToApiVault(&vault, now)
	}

	respondJSON(w, http.StatusOK, apiVaults)
}

// Deposit handles the logic for funding a vault.
func (h *ApiHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	vaultID, ok := vaultIDParam(w, r)
	if !ok {
		return
	}
	actor := r.Header.Get(actorHeader)
	if actor == "" {
		http.Error(w, "Missing "+actorHeader+" header", http.StatusUnauthorized)
		return
	}

	var newDeposit api.NewDeposit
	if err := json.NewDecoder(r.Body).Decode(&newDeposit); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	result, err := h.Ledger.Deposit(r.Context(), vaultID, actor, newDeposit.Amount)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, &api.DepositReceipt{
		Gross: newDeposit.Amount,
		Fee:   result.Fee,
		Net:   result.Net,
		Vault: mapping.ToApiVault(result.Vault, time.Now()),
	})
}

// Withdraw handles the ordinary, eligibility-gated withdrawal path.
func (h *ApiHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.handleWithdrawal(w, r, h.Ledger.Withdraw)
}

// EmergencyWithdraw handles the unconditional withdrawal path.
func (h *ApiHandler) EmergencyWithdraw(w http.ResponseWriter, r *http.Request) {
	h.handleWithdrawal(w, r, h.Ledger.EmergencyWithdraw)
}

func (h *ApiHandler) handleWithdrawal(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, vaultID uint64, caller string) (*ledger.WithdrawResult, error)) {
	vaultID, ok := vaultIDParam(w, r)
	if !ok {
		return
	}
	actor := r.Header.Get(actorHeader)
	if actor == "" {
		http.Error(w, "Missing "+actorHeader+" header", http.StatusUnauthorized)
		return
	}

	result, err := op(r.Context(), vaultID, actor)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, &api.WithdrawalReceipt{
		Amount: result.Amount,
		Vault:  mapping.ToApiVault(result.Vault, time.Now()),
	})
}

// GetStats handles the logic for retrieving the aggregate accounting record.
func (h *ApiHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Ledger.GetAggregateStats(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve stats: %v", err), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiStats(stats))
}

// UpdateFeeRate handles the operator-only fee-rate update.
func (h *ApiHandler) UpdateFeeRate(w http.ResponseWriter, r *http.Request) {
	actor := r.Header.Get(actorHeader)
	if actor == "" {
		http.Error(w, "Missing "+actorHeader+" header", http.StatusUnauthorized)
		return
	}

	var update api.FeeUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.Ledger.SetFeeBps(r.Context(), actor, update.FeeBps); err != nil {
		writeLedgerError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListLedgerEntries handles the logic for retrieving recent audit entries.
func (h *ApiHandler) ListLedgerEntries(w http.ResponseWriter, r *http.Request) {
	limit := int32(defaultLedgerLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = int32(parsed)
	}

	entries, err := h.Ledger.ListLedgerEntries(r.Context(), limit)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve ledger entries: %v", err), http.StatusInternalServerError)
		return
	}

	apiEntries := make([]*api.LedgerEntry, len(entries))
	for i, entry := range entries {
		apiEntries[i] = mapping.ToApiLedgerEntry(&entry)
	}

	respondJSON(w, http.StatusOK, apiEntries)
}

// vaultIDParam parses the vault id path parameter. Id zero is never
// assigned, so it is rejected up front.
func vaultIDParam(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	raw := chi.URLParam(r, "vaultId")
	vaultID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || vaultID == 0 {
		http.Error(w, fmt.Sprintf("Invalid vault id %q", raw), http.StatusBadRequest)
		return 0, false
	}
	return vaultID, true
}

// writeLedgerError maps the ledger's error taxonomy to HTTP statuses.
func writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrVaultNotFound):
		http.Error(w, "Vault not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrVaultInactive):
		http.Error(w, "Vault is no longer active", http.StatusConflict)
	case errors.Is(err, ledger.ErrNotEligible):
		http.Error(w, "Vault is not eligible for withdrawal", http.StatusConflict)
	case errors.Is(err, ledger.ErrNotOwner), errors.Is(err, ledger.ErrNotOperator):
		http.Error(w, "Forbidden", http.StatusForbidden)
	case errors.Is(err, ledger.ErrZeroAmount),
		errors.Is(err, ledger.ErrInvalidFeeRate),
		errors.Is(err, ledger.ErrPastUnlockTime),
		errors.Is(err, ledger.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, fees.ErrAmountOverflow), errors.Is(err, storage.ErrBalanceOverflow):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, fmt.Sprintf("Internal error: %v", err), http.StatusInternalServerError)
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
