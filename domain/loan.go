package domain

import "github.com/bright-beep/stacks-credit/shared/config"

// Loan represents a single collateralized loan. Amount, collateral,
// due height and rate are fixed at creation; only the repayment running
// total and the two lifecycle flags ever change.
type Loan struct {
	LoanID        uint64 `json:"loanID"`
	Borrower      string `json:"borrower"`
	Amount        uint64 `json:"amount"`
	Collateral    uint64 `json:"collateral"`
	DueHeight     uint64 `json:"dueHeight"`
	InterestRate  uint64 `json:"interestRate"`
	IsActive      bool   `json:"isActive"`
	IsDefaulted   bool   `json:"isDefaulted"`
	RepaidAmount  uint64 `json:"repaidAmount"`
	CreatedHeight uint64 `json:"createdHeight"`
}

// TotalDue returns principal plus the simple interest fixed at creation
func (l *Loan) TotalDue() uint64 {
	return TotalDue(l.Amount, l.InterestRate)
}

// Outstanding returns the amount still owed before the loan closes
func (l *Loan) Outstanding() uint64 {
	due := l.TotalDue()
	if l.RepaidAmount >= due {
		return 0
	}
	return due - l.RepaidAmount
}

// PastDue reports whether the loan is eligible for default marking
func (l *Loan) PastDue(height uint64) bool {
	return height > l.DueHeight
}

// ActiveLoanSet is a borrower's set of currently active loan ids. Closed
// loans are removed so a long-lived account never exhausts its slots;
// ordering of the remaining ids is not significant.
type ActiveLoanSet struct {
	User    string   `json:"user"`
	LoanIDs []uint64 `json:"loanIDs"`
}

// NewActiveLoanSet creates an empty set for a borrower
func NewActiveLoanSet(user string) *ActiveLoanSet {
	return &ActiveLoanSet{User: user}
}

// Count returns the number of active loans
func (s *ActiveLoanSet) Count() int {
	return len(s.LoanIDs)
}

// Contains reports whether a loan id is in the set
func (s *ActiveLoanSet) Contains(loanID uint64) bool {
	for _, id := range s.LoanIDs {
		if id == loanID {
			return true
		}
	}
	return false
}

// Add appends a loan id, enforcing the hard slot bound
func (s *ActiveLoanSet) Add(loanID uint64) error {
	if len(s.LoanIDs) >= config.MaxLoanSlots {
		return ErrTooManyActiveLoans
	}
	s.LoanIDs = append(s.LoanIDs, loanID)
	return nil
}

// Remove deletes a loan id by swapping in the last element
func (s *ActiveLoanSet) Remove(loanID uint64) bool {
	for i, id := range s.LoanIDs {
		if id == loanID {
			last := len(s.LoanIDs) - 1
			s.LoanIDs[i] = s.LoanIDs[last]
			s.LoanIDs = s.LoanIDs[:last]
			return true
		}
	}
	return false
}
