package domain

// Loan history change types
const (
	HistoryLoanRequested = "REQUESTED"
	HistoryRepayment     = "REPAYMENT"
	HistoryLoanClosed    = "CLOSED"
	HistoryLoanDefaulted = "DEFAULTED"
)

// LoanHistoryEntry records one lifecycle transition of a loan
type LoanHistoryEntry struct {
	HistoryID     string `json:"historyID"`
	LoanID        uint64 `json:"loanID"`
	ChangeType    string `json:"changeType"`
	Amount        uint64 `json:"amount"`
	ActorID       string `json:"actorID"`
	Timestamp     string `json:"timestamp"`
	TransactionID string `json:"transactionID"`
}
