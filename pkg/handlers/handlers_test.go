package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chris/savings-vaults/pkg/api"
	"github.com/chris/savings-vaults/pkg/ledger"
	"github.com/chris/savings-vaults/pkg/ledger/mocks"
	"github.com/chris/savings-vaults/pkg/models"
	"github.com/chris/savings-vaults/pkg/storage"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// newVaultRequest builds a request carrying a chi route context with the
// vaultId path parameter, the way the router would.
func newVaultRequest(method, target, vaultID string, body []byte) *http.Request {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader([]byte{})
	} else {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("vaultId", vaultID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateVaultHandler(t *testing.T) {
	newApiVault := api.NewVault{
		Name:        "Holiday fund",
		Description: "Two weeks in Lisbon",
		GoalAmount:  50_000,
	}
	expectedVault := &models.Vault{
		Id:         1,
		Owner:      "user-a",
		Name:       newApiVault.Name,
		Balance:    0,
		GoalAmount: newApiVault.GoalAmount,
		IsActive:   true,
		Version:    1,
		CreatedAt:  time.Now(),
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockLedger := new(mocks.Ledger)
		mockLedger.On("CreateVault", mock.Anything, mock.MatchedBy(func(p ledger.CreateVaultParams) bool {
			return p.Owner == "user-a" && p.GoalAmount == newApiVault.GoalAmount
		})).Return(expectedVault, nil)

		h := NewApiHandler(mockLedger)

		body, _ := json.Marshal(newApiVault)
		req := httptest.NewRequest(http.MethodPost, "/vaults", bytes.NewReader(body))
		req.Header.Set(actorHeader, "user-a")
		rr := httptest.NewRecorder()

		// Act
		h.CreateVault(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var returned api.Vault
		json.Unmarshal(rr.Body.Bytes(), &returned)
		assert.Equal(t, expectedVault.Id, returned.Id)
		assert.Equal(t, expectedVault.Owner, returned.Owner)
		assert.Equal(t, expectedVault.GoalAmount, returned.GoalAmount)

		mockLedger.AssertExpectations(t)
	})

	t.Run("Missing Actor Header", func(t *testing.T) {
		// Arrange
		mockLedger := new(mocks.Ledger)
		h := NewApiHandler(mockLedger)

		body, _ := json.Marshal(newApiVault)
		req := httptest.NewRequest(http.MethodPost, "/vaults", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		// Act
		h.CreateVault(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Bad Request - Invalid JSON", func(t *testing.T) {
		// Arrange
		mockLedger := new(mocks.Ledger)
		h := NewApiHandler(mockLedger)

		req := httptest.NewRequest(http.MethodPost, "/vaults", strings.NewReader("not-json"))
		req.Header.Set(actorHeader, "user-a")
		rr := httptest.NewRecorder()

		// Act
		h.CreateVault(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Unlock Time In The Past", func(t *testing.T) {
		// Arrange
		mockLedger := new(mocks.Ledger)
		mockLedger.On("CreateVault", mock.Anything, mock.Anything).Return(nil, ledger.ErrPastUnlockTime)

		h := NewApiHandler(mockLedger)

		body, _ := json.Marshal(newApiVault)
		req := httptest.NewRequest(http.MethodPost, "/vaults", bytes.NewReader(body))
		req.Header.Set(actorHeader, "user-a")
		rr := httptest.NewRecorder()

		// Act
		h.CreateVault(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockLedger.AssertExpectations(t)
	})
}

func TestGetVaultByIdHandler(t *testing.T) {
	expectedVault := &models.Vault{
		Id:       7,
		Owner:    "user-a",
		Balance:  1234,
		IsActive: true,
		Version:  3,
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockLedger := new(mocks.Ledger)
		mockLedger.On("GetVault", mock.Anything, uint64(7)).Return(expectedVault, nil)

		h := NewApiHandler(mockLedger)
		req := newVaultRequest(http.MethodGet, "/vaults/7", "7", nil)
		rr := httptest.NewRecorder()

		// Act
		h.GetVaultById(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var returned api.Vault
		json.Unmarshal(rr.Body.Bytes(), &returned)
		assert.Equal(t, expectedVault.Id, returned.Id)
		assert.Equal(t, expectedVault.Balance, returned.Balance)
		mockLedger.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		// Arrange
		mockLedger := new(mocks.Ledger)
		mockLedger.On("GetVault", mock.Anything, uint64(99)).Return(nil, storage.ErrVaultNotFound)

		h := NewApiHandler(mockLedger)
		req := newVaultRequest(http.MethodGet, "/vaults/99", "99", nil)
		rr := httptest.NewRecorder()

		// Act
		h.GetVaultById(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockLedger.AssertExpectations(t)
	})

	t.Run("Invalid Id", func(t *testing.T) {
		// Arrange
		mockLedger := new(mocks.Ledger)
		h := NewApiHandler(mockLedger)
		req := newVaultRequest(http.MethodGet, "/vaults/abc", "abc", nil)
		rr := httptest.NewRecorder()

		// Act
		h.GetVaultById(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDepositHandler(t *testing.T) {
	newDeposit := api.NewDeposit{Amount: 1000}
	result := &ledger.DepositResult{
		Fee: 5,
		Net: 995,
		Vault: &models.Vault{
			Id:       3,
			Owner:    "user-a",
			Balance:  995,
			IsActive: true,
			Version:  1,
		},
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockLedger := new(mocks.Ledger)
		mockLedger.On("Deposit", mock.Anything, uint64(3), "user-b", int64(1000)).Return(result, nil)

		h := NewApiHandler(mockLedger)

		body, _ := json.Marshal(newDeposit)
		req := newVaultRequest(http.MethodPost, "/vaults/3/deposits", "3", body)
		req.Header.Set(actorHeader, "user-b")
		rr := httptest.NewRecorder()

		// Act
		h.Deposit(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var receipt api.DepositReceipt
		json.Unmarshal(rr.Body.Bytes(), &receipt)
		assert.Equal(t, int64(1000), receipt.Gross)
		assert.Equal(t, int64(5), receipt.Fee)
		assert.Equal(t, int64(995), receipt.Net)
		assert.Equal(t, int64(995), receipt.Vault.Balance)
		mockLedger.AssertExpectations(t)
	})

	t.Run("Zero Amount", func(t *testing.T) {
		// Arrange
		mockLedger := new(mocks.Ledger)
		mockLedger.On("Deposit", mock.Anything, uint64(3), "user-b", int64(0)).Return(nil, ledger.ErrZeroAmount)

		h := NewApiHandler(mockLedger)

		body, _ := json.Marshal(api.NewDeposit{Amount: 0})
		req := newVaultRequest(http.MethodPost, "/vaults/3/deposits", "3", body)
		req.Header.Set(actorHeader, "user-b")
		rr := httptest.NewRecorder()

		// Act
		h.Deposit(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockLedger.AssertExpectations(t)
	})

	t.Run("Inactive Vault", func(t *testing.T) {
		// Arrange
		mockLedger := new(mocks.Ledger)
		mockLedger.On("Deposit", mock.Anything, uint64(3), "user-b", int64(1000)).Return(nil, storage.ErrVaultInactive)

		h := NewApiHandler(mockLedger)

		body, _ := json.Marshal(newDeposit)
		req := newVaultRequest(http.MethodPost, "/vaults/3/deposits", "3", body)
		req.Header.Set(actorHeader, "user-b")
		rr := httptest.NewRecorder()

		// Act
		h.Deposit(rr, req)

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)
		mockLedger.AssertExpectations(t)
	})

	t.Run("Balance Overflow", func(t *testing.T) {
		// Arrange
		mockLedger := new(mocks.Ledger)
		mockLedger.On("Deposit", mock.Anything, uint64(3), "user-b", int64(1000)).Return(nil, storage.ErrBalanceOverflow)

		h := NewApiHandler(mockLedger)

		body, _ := json.Marshal(newDeposit)
		req := newVaultRequest(http.MethodPost, "/vaults/3/deposits", "3", body)
		req.Header.Set(actorHeader, "user-b")
		rr := httptest.NewRecorder()

		// Act
		h.Deposit(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		mockLedger.AssertExpectations(t)
	})
}

func TestWithdrawHandler(t *testing.T) {
	result := &ledger.WithdrawResult{
		Amount: 995,
		Vault: &models.Vault{
			Id:       3,
			Owner:    "user-a",
			Balance:  0,
			IsActive: false,
			Version:  2,
		},
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockLedger := new(mocks.Ledger)
		mockLedger.On("Withdraw", mock.Anything, uint64(3), "user-a").Return(result, nil)

		h := NewApiHandler(mockLedger)
		req := newVaultRequest(http.MethodPost, "/vaults/3/withdrawal", "3", nil)
		req.Header.Set(actorHeader, "user-a")
		rr := httptest.NewRecorder()

		// Act
		h.Withdraw(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var receipt api.WithdrawalReceipt
		json.Unmarshal(rr.Body.Bytes(), &receipt)
		assert.Equal(t, int64(995), receipt.Amount)
		assert.False(t, receipt.Vault.IsActive)
		mockLedger.AssertExpectations(t)
	})

	t.Run("Not Eligible", func(t *testing.T) {
		// Arrange
		mockLedger := new(mocks.Ledger)
		mockLedger.On("Withdraw", mock.Anything, uint64(3), "user-a").Return(nil, ledger.ErrNotEligible)

		h := NewApiHandler(mockLedger)
		req := newVaultRequest(http.MethodPost, "/vaults/3/withdrawal", "3", nil)
		req.Header.Set(actorHeader, "user-a")
		rr := httptest.NewRecorder()

		// Act
		h.Withdraw(rr, req)

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)
		mockLedger.AssertExpectations(t)
	})

	t.Run("Not Owner", func(t *testing.T) {
		// Arrange
		mockLedger := new(mocks.Ledger)
		mockLedger.On("Withdraw", mock.Anything, uint64(3), "user-b").Return(nil, ledger.ErrNotOwner)

		h := NewApiHandler(mockLedger)
		req := newVaultRequest(http.MethodPost, "/vaults/3/withdrawal", "3", nil)
		req.Header.Set(actorHeader, "user-b")
		rr := httptest.NewRecorder()

		// Act
		h.Withdraw(rr, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockLedger.AssertExpectations(t)
	})

	t.Run("Emergency Bypasses Eligibility", func(t *testing.T) {
		// Arrange
		mockLedger := new(mocks.Ledger)
		mockLedger.On("EmergencyWithdraw", mock.Anything, uint64(3), "user-a").Return(result, nil)

		h := NewApiHandler(mockLedger)
		req := newVaultRequest(http.MethodPost, "/vaults/3/emergency-withdrawal", "3", nil)
		req.Header.Set(actorHeader, "user-a")
		rr := httptest.NewRecorder()

		// Act
		h.EmergencyWithdraw(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockLedger.AssertExpectations(t)
	})
}

func TestGetStatsHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockLedger := new(mocks.Ledger)
		mockLedger.On("GetAggregateStats", mock.Anything).Return(&models.AggregateStats{
			VaultCounter:       4,
			TotalFeesCollected: 55,
			FeeBps:             50,
		}, nil)

		h := NewApiHandler(mockLedger)
		req := httptest.NewRequest(http.MethodGet, "/stats", nil)
		rr := httptest.NewRecorder()

		// Act
		h.GetStats(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var stats api.AggregateStats
		json.Unmarshal(rr.Body.Bytes(), &stats)
		assert.Equal(t, uint64(4), stats.VaultCounter)
		assert.Equal(t, int64(55), stats.TotalFeesCollected)
		mockLedger.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		// Arrange
		mockLedger := new(mocks.Ledger)
		mockLedger.On("GetAggregateStats", mock.Anything).Return(nil, errors.New("dynamodb unavailable"))

		h := NewApiHandler(mockLedger)
		req := httptest.NewRequest(http.MethodGet, "/stats", nil)
		rr := httptest.NewRecorder()

		// Act
		h.GetStats(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		mockLedger.AssertExpectations(t)
	})
}

func TestUpdateFeeRateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockLedger := new(mocks.Ledger)
		mockLedger.On("SetFeeBps", mock.Anything, "operator-1", int64(75)).Return(nil)

		h := NewApiHandler(mockLedger)

		body, _ := json.Marshal(api.FeeUpdate{FeeBps: 75})
		req := httptest.NewRequest(http.MethodPut, "/fees", bytes.NewReader(body))
		req.Header.Set(actorHeader, "operator-1")
		rr := httptest.NewRecorder()

		// Act
		h.UpdateFeeRate(rr, req)

		// Assert
		assert.Equal(t, http.StatusNoContent, rr.Code)
		mockLedger.AssertExpectations(t)
	})

	t.Run("Not Operator", func(t *testing.T) {
		// Arrange
		mockLedger := new(mocks.Ledger)
		mockLedger.On("SetFeeBps", mock.Anything, "user-a", int64(75)).Return(ledger.ErrNotOperator)

		h := NewApiHandler(mockLedger)

		body, _ := json.Marshal(api.FeeUpdate{FeeBps: 75})
		req := httptest.NewRequest(http.MethodPut, "/fees", bytes.NewReader(body))
		req.Header.Set(actorHeader, "user-a")
		rr := httptest.NewRecorder()

		// Act
		h.UpdateFeeRate(rr, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockLedger.AssertExpectations(t)
	})

	t.Run("Rate Out Of Bounds", func(t *testing.T) {
		// Arrange
		mockLedger := new(mocks.Ledger)
		mockLedger.On("SetFeeBps", mock.Anything, "operator-1", int64(9999)).Return(ledger.ErrInvalidFeeRate)

		h := NewApiHandler(mockLedger)

		body, _ := json.Marshal(api.FeeUpdate{FeeBps: 9999})
		req := httptest.NewRequest(http.MethodPut, "/fees", bytes.NewReader(body))
		req.Header.Set(actorHeader, "operator-1")
		rr := httptest.NewRecorder()

		// Act
		h.UpdateFeeRate(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockLedger.AssertExpectations(t)
	})
}

func TestListLedgerEntriesHandler(t *testing.T) {
	entries := []models.LedgerEntry{
		{EntryID: "b5b1b9d0-8f6a-4f1e-9a2b-1c3d4e5f6a7b", VaultID: 1, Actor: "user-a", Kind: models.EntryDeposit, Gross: 1000, Fee: 5, Net: 995},
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockLedger := new(mocks.Ledger)
		mockLedger.On("ListLedgerEntries", mock.Anything, int32(defaultLedgerLimit)).Return(entries, nil)

		h := NewApiHandler(mockLedger)
		req := httptest.NewRequest(http.MethodGet, "/ledger", nil)
		rr := httptest.NewRecorder()

		// Act
		h.ListLedgerEntries(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var returned []api.LedgerEntry
		json.Unmarshal(rr.Body.Bytes(), &returned)
		assert.Len(t, returned, 1)
		assert.Equal(t, uint64(1), returned[0].VaultId)
		mockLedger.AssertExpectations(t)
	})

	t.Run("Custom Limit", func(t *testing.T) {
		// Arrange
		mockLedger := new(mocks.Ledger)
		mockLedger.On("ListLedgerEntries", mock.Anything, int32(5)).Return(entries, nil)

		h := NewApiHandler(mockLedger)
		req := httptest.NewRequest(http.MethodGet, "/ledger?limit=5", nil)
		rr := httptest.NewRecorder()

		// Act
		h.ListLedgerEntries(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockLedger.AssertExpectations(t)
	})

	t.Run("Invalid Limit", func(t *testing.T) {
		// Arrange
		mockLedger := new(mocks.Ledger)
		h := NewApiHandler(mockLedger)
		req := httptest.NewRequest(http.MethodGet, "/ledger?limit=zero", nil)
		rr := httptest.NewRecorder()

		// Act
		h.ListLedgerEntries(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
