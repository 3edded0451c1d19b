package config

// Credit scoring rules
const (
	// Score bounds
	BaselineScore = uint64(50)
	MinScore      = uint64(50)
	MaxScore      = uint64(100)

	// Borrowing is gated on score
	MinBorrowScore = uint64(70)

	// Score adjustments
	RepaymentScoreReward = uint64(2)
	DefaultScorePenalty  = uint64(10)
)

// Loan book rules
const (
	// Largest loan principal in micro-units. Bounds the intermediate
	// products of the risk arithmetic so they stay within uint64.
	MaxLoanAmount = uint64(1_000_000_000_000_000)

	// Concurrent active loans per borrower
	MaxActiveLoans = 5

	// Hard bound on a borrower's active-loan set
	MaxLoanSlots = 20

	// Longest loan term in ledger blocks (roughly one year)
	MaxLoanDurationBlocks = uint64(52560)
)

// ContractAccount is the principal that holds escrowed collateral and
// the disbursement pool on the token ledger.
const ContractAccount = "microcredit-contract"
