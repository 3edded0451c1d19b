package config

// Entity prefixes for consistent key generation
const (
	// Per-user records
	CreditProfilePrefix = "CREDIT_"
	ActiveLoanSetPrefix = "ACTIVE_"

	// Per-loan records
	LoanPrefix = "MLOAN_"

	// Token ledger balances
	BalancePrefix = "BAL_"

	// History entries (composite key object type)
	LoanHistoryObjectType = "LHIST"
	LoanHistoryPrefix     = "LHIST"
)

// Singleton state keys
const (
	OwnerKey               = "CONTRACT_OWNER"
	NextLoanIDKey          = "NEXT_LOAN_ID"
	LockedCollateralKey    = "TOTAL_LOCKED"
	ForfeitedCollateralKey = "TOTAL_FORFEITED"
	LedgerHeightKey        = "LEDGER_HEIGHT"
)
