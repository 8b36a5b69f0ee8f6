package fees

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateFee(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		tests := []struct {
			name     string
			amount   int64
			feeBps   int64
			expected int64
		}{
			{"fifty bps on 1000", 1000, 50, 5},
			{"rounds toward zero", 999, 50, 4},
			{"zero amount", 0, 50, 0},
			{"zero rate", 1000, 0, 0},
			{"ceiling rate", 10000, MaxFeeBps, 200},
			{"tiny amount below one fee unit", 1, 50, 0},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				fee, err := CalculateFee(tt.amount, tt.feeBps)
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, fee)
			})
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		_, err := CalculateFee(math.MaxInt64, 50)
		assert.ErrorIs(t, err, ErrAmountOverflow)
	})

	t.Run("Negative Amount", func(t *testing.T) {
		_, err := CalculateFee(-1, 50)
		assert.Error(t, err)
	})

	t.Run("Rate Above Ceiling", func(t *testing.T) {
		_, err := CalculateFee(1000, MaxFeeBps+1)
		assert.Error(t, err)
	})
}

func TestAmountAfterFee(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		net, err := AmountAfterFee(1000, 50)
		assert.NoError(t, err)
		assert.Equal(t, int64(995), net)
	})

	t.Run("Overflow", func(t *testing.T) {
		_, err := AmountAfterFee(math.MaxInt64, 1)
		assert.ErrorIs(t, err, ErrAmountOverflow)
	})
}

// Fee and net must reassemble the gross amount exactly for every rate.
func TestFeeExactness(t *testing.T) {
	amounts := []int64{0, 1, 7, 99, 1000, 12345, 999999999, math.MaxInt64 / BpsDenominator}
	for _, amount := range amounts {
		for feeBps := int64(0); feeBps <= MaxFeeBps; feeBps++ {
			fee, err := CalculateFee(amount, feeBps)
			assert.NoError(t, err)
			net, err := AmountAfterFee(amount, feeBps)
			assert.NoError(t, err)
			assert.Equal(t, amount, fee+net, "amount=%d feeBps=%d", amount, feeBps)
			assert.GreaterOrEqual(t, fee, int64(0))
			assert.GreaterOrEqual(t, net, int64(0))
		}
	}
}
