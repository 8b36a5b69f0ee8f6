package ledger

import "errors"

// ErrNotOwner is returned when the caller is not the vault owner on an
// owner-restricted operation.
var ErrNotOwner = errors.New("caller is not the vault owner")

// ErrNotOperator is returned when a fee-rate update comes from an identity
// other than the configured operator.
var ErrNotOperator = errors.New("caller is not the protocol operator")

// ErrNotEligible is returned when an ordinary withdrawal is attempted before
// the unlock time is reached and/or the savings goal is met.
var ErrNotEligible = errors.New("vault is not eligible for withdrawal")

// ErrZeroAmount is returned for a zero deposit or a withdrawal from an empty
// vault; a zero-value movement is never meaningful.
var ErrZeroAmount = errors.New("amount must be greater than zero")

// ErrInvalidFeeRate is returned when an operator tries to set the fee above
// the protocol ceiling.
var ErrInvalidFeeRate = errors.New("fee rate exceeds the protocol ceiling")

// ErrPastUnlockTime is returned when a vault is created with a nonzero
// unlock time that is not in the future.
var ErrPastUnlockTime = errors.New("unlock time must be in the future")

// ErrInvalidArgument wraps request validation failures (empty owner,
// negative amounts) that have no more specific kind.
var ErrInvalidArgument = errors.New("invalid argument")
