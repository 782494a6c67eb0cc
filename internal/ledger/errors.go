package ledger

import "errors"

// Posting and query failures. Store errors are wrapped in
// ErrStoreUnavailable so callers can match with errors.Is.
var (
	ErrInvalidAmount     = errors.New("amount is not a valid number")
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrStoreUnavailable  = errors.New("store unavailable")
)
