package eligibility

import (
	"testing"
	"time"

	"github.com/chris/savings-vaults/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name     string
		balance  int64
		goal     int64
		unlockAt int64
		timeOpen bool
		goalOpen bool
	}{
		{"no constraints", 100, 0, 0, true, true},
		{"time lock in future", 100, 0, now.Unix() + 3600, false, true},
		{"time lock reached exactly", 100, 0, now.Unix(), true, true},
		{"time lock in past", 100, 0, now.Unix() - 1, true, true},
		{"goal not reached", 100, 200, 0, true, false},
		{"goal reached exactly", 200, 200, 0, true, true},
		{"goal exceeded", 300, 200, 0, true, true},
		{"goal reached but still locked", 300, 200, now.Unix() + 3600, false, true},
		{"unlocked but goal not reached", 100, 200, now.Unix() - 1, true, false},
		{"both gates closed", 100, 200, now.Unix() + 3600, false, false},
		{"empty vault with no constraints", 0, 0, 0, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vault := &models.Vault{Balance: tt.balance, GoalAmount: tt.goal, UnlockAt: tt.unlockAt}
			status := Evaluate(vault, now)
			assert.Equal(t, tt.timeOpen, status.TimeGateOpen)
			assert.Equal(t, tt.goalOpen, status.GoalGateOpen)
			assert.Equal(t, tt.timeOpen && tt.goalOpen, status.Eligible())
		})
	}
}
