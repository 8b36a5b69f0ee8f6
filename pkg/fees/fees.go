// Package fees implements the protocol fee arithmetic. All functions are
// pure and exact: for any valid input, CalculateFee + AmountAfterFee
// reassemble the gross amount with no dust created or destroyed.
package fees

import (
	"errors"
	"fmt"
	"math"
)

const (
	// BpsDenominator is the basis-point scale: 10000 bps = 100%.
	BpsDenominator = 10000

	// MaxFeeBps is the protocol ceiling on the fee rate (200 bps = 2%).
	// Operator updates above this value are rejected.
	MaxFeeBps = 200
)

// ErrAmountOverflow is returned when a fee computation would exceed the
// representable int64 range. The amount is rejected rather than wrapped.
var ErrAmountOverflow = errors.New("amount overflows fee arithmetic")

// CalculateFee returns floor(amount * feeBps / 10000).
func CalculateFee(amount, feeBps int64) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("amount must be non-negative, got %d", amount)
	}
	if feeBps < 0 || feeBps > MaxFeeBps {
		return 0, fmt.Errorf("fee rate must be in [0, %d] bps, got %d", MaxFeeBps, feeBps)
	}
	if feeBps == 0 || amount == 0 {
		return 0, nil
	}
	// The product must fit in int64 before dividing.
	if amount > math.MaxInt64/feeBps {
		return 0, ErrAmountOverflow
	}
	return amount * feeBps / BpsDenominator, nil
}

// AmountAfterFee returns the net amount credited after the protocol fee.
// The fee is floored, so net + fee == amount exactly.
func AmountAfterFee(amount, feeBps int64) (int64, error) {
	fee, err := CalculateFee(amount, feeBps)
	if err != nil {
		return 0, err
	}
	return amount - fee, nil
}
