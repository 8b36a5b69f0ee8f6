package storage

import "errors"

// ErrVaultNotFound is returned when the referenced vault id was never created.
var ErrVaultNotFound = errors.New("vault not found")

// ErrVaultInactive is returned when a mutation targets a vault that has
// already been emptied and closed. Closed vaults are terminal.
var ErrVaultInactive = errors.New("vault is no longer active")

// ErrVersionConflict is returned when a conditional write lost a race with a
// concurrent mutation of the same record. Callers re-read and retry.
var ErrVersionConflict = errors.New("record version conflict")

// ErrBalanceOverflow is returned when crediting a vault would push its
// balance past the representable range. The deposit is rejected, never
// wrapped.
var ErrBalanceOverflow = errors.New("balance overflow")
