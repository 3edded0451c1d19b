package domain

// InitializeScoreRequest opens a credit profile for the calling principal
type InitializeScoreRequest struct {
	ActorID string `json:"actorID"`
}

// LoanRequest asks for a new collateralized loan
type LoanRequest struct {
	Amount         uint64 `json:"amount"`
	Collateral     uint64 `json:"collateral"`
	DurationBlocks uint64 `json:"durationBlocks"`
	ActorID        string `json:"actorID"`
}

// RepaymentRequest pays down an active loan
type RepaymentRequest struct {
	LoanID  uint64 `json:"loanID"`
	Amount  uint64 `json:"amount"`
	ActorID string `json:"actorID"`
}

// DefaultRequest marks a past-due loan as defaulted (owner only)
type DefaultRequest struct {
	LoanID  uint64 `json:"loanID"`
	ActorID string `json:"actorID"`
}

// AnchorHeightRequest advances the anchored ledger height (owner only)
type AnchorHeightRequest struct {
	Height  uint64 `json:"height"`
	ActorID string `json:"actorID"`
}

// FundRequest provisions balance on the token ledger (owner only)
type FundRequest struct {
	Account string `json:"account"`
	Amount  uint64 `json:"amount"`
	ActorID string `json:"actorID"`
}

// RepaymentResult reports the outcome of a repayment
type RepaymentResult struct {
	LoanID             uint64 `json:"loanID"`
	RepaidAmount       uint64 `json:"repaidAmount"`
	Outstanding        uint64 `json:"outstanding"`
	FullyRepaid        bool   `json:"fullyRepaid"`
	CollateralReturned uint64 `json:"collateralReturned"`
}

// ScoreResult reports a user's current credit score
type ScoreResult struct {
	User  string `json:"user"`
	Score uint64 `json:"score"`
}

// PlatformStats aggregates the global lending counters
type PlatformStats struct {
	LoansIssued         uint64 `json:"loansIssued"`
	LockedCollateral    uint64 `json:"lockedCollateral"`
	ForfeitedCollateral uint64 `json:"forfeitedCollateral"`
	LedgerHeight        uint64 `json:"ledgerHeight"`
}

// BalanceResult reports a token ledger balance
type BalanceResult struct {
	Account string `json:"account"`
	Balance uint64 `json:"balance"`
}
