package config

// Event names emitted for off-chain consumers
const (
	// Credit registry events
	EventScoreInitialized = "ScoreInitialized"
	EventScoreUpdated     = "ScoreUpdated"

	// Loan lifecycle events
	EventLoanRequested     = "LoanRequested"
	EventRepaymentReceived = "RepaymentReceived"
	EventLoanRepaid        = "LoanRepaid"
	EventLoanDefaulted     = "LoanDefaulted"

	// Administrative events
	EventLedgerHeightAnchored = "LedgerHeightAnchored"
	EventAccountFunded        = "AccountFunded"
)
