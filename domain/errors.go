package domain

import "fmt"

// LendingError is a stable, numbered failure mode of the lending core.
// Codes are part of the wire contract: off-chain consumers match on them
// across releases, so existing codes are never renumbered.
type LendingError struct {
	Code uint
	Msg  string
}

func (e *LendingError) Error() string {
	return fmt.Sprintf("%s (err u%d)", e.Msg, e.Code)
}

var (
	ErrUnauthorized        = &LendingError{Code: 100, Msg: "unauthorized"}
	ErrInsufficientBalance = &LendingError{Code: 101, Msg: "insufficient balance"}
	ErrInvalidAmount       = &LendingError{Code: 102, Msg: "invalid amount"}
	ErrLoanNotFound        = &LendingError{Code: 103, Msg: "loan not found"}
	ErrLoanDefaulted       = &LendingError{Code: 104, Msg: "loan defaulted"}
	ErrInsufficientScore   = &LendingError{Code: 105, Msg: "insufficient credit score"}
	ErrTooManyActiveLoans  = &LendingError{Code: 106, Msg: "too many active loans"}
	ErrNotDue              = &LendingError{Code: 107, Msg: "loan not past due"}
	ErrInvalidDuration     = &LendingError{Code: 108, Msg: "invalid duration"}
	ErrInvalidLoanID       = &LendingError{Code: 109, Msg: "invalid loan id"}
	ErrAlreadyDefaulted    = &LendingError{Code: 110, Msg: "loan already defaulted"}
	ErrProfileNotFound     = &LendingError{Code: 111, Msg: "credit profile not found"}
	ErrStaleHeight         = &LendingError{Code: 112, Msg: "stale ledger height"}
)
