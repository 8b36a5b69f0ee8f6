// Package eligibility evaluates whether a vault may be withdrawn through
// the ordinary path. It is a pure predicate over the vault's constraints,
// its balance, and the current time; it holds no state of its own.
package eligibility

import (
	"time"

	"github.com/chris/savings-vaults/pkg/models"
)

// Status reports the two withdrawal gates individually so callers can
// explain why a vault is still locked.
type Status struct {
	TimeGateOpen bool `json:"time_gate_open"`
	GoalGateOpen bool `json:"goal_gate_open"`
}

// Eligible reports whether both gates are open.
func (s Status) Eligible() bool {
	return s.TimeGateOpen && s.GoalGateOpen
}

// Evaluate computes the gate status for a vault at the given instant.
// A zero UnlockAt means no time constraint; a zero GoalAmount means no
// goal constraint. A vault with neither constraint is always eligible.
func Evaluate(vault *models.Vault, now time.Time) Status {
	return Status{
		TimeGateOpen: vault.UnlockAt == 0 || now.Unix() >= vault.UnlockAt,
		GoalGateOpen: vault.GoalAmount == 0 || vault.Balance >= vault.GoalAmount,
	}
}
