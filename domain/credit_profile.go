package domain

import "github.com/bright-beep/stacks-credit/shared/config"

// CreditProfile tracks a borrower's reputation and lifetime lending stats.
// Created once per user and never deleted; the score only moves on full
// repayment or default, clamped to [MinScore, MaxScore].
type CreditProfile struct {
	User          string `json:"user"`
	Score         uint64 `json:"score"`
	TotalBorrowed uint64 `json:"totalBorrowed"`
	TotalRepaid   uint64 `json:"totalRepaid"`
	LoansTaken    uint64 `json:"loansTaken"`
	LoansRepaid   uint64 `json:"loansRepaid"`
	LastUpdated   uint64 `json:"lastUpdated"` // ledger height
}

// NewCreditProfile creates a profile at the baseline score
func NewCreditProfile(user string, height uint64) *CreditProfile {
	return &CreditProfile{
		User:        user,
		Score:       config.BaselineScore,
		LastUpdated: height,
	}
}

// CanBorrow reports whether the score clears the borrowing gate
func (p *CreditProfile) CanBorrow() bool {
	return p.Score >= config.MinBorrowScore
}

// RecordBorrow updates lifetime stats when a loan is issued
func (p *CreditProfile) RecordBorrow(amount, height uint64) {
	p.TotalBorrowed += amount
	p.LoansTaken++
	p.LastUpdated = height
}

// RecordRepayment rewards a fully repaid loan
func (p *CreditProfile) RecordRepayment(repaid, height uint64) {
	p.Score += config.RepaymentScoreReward
	if p.Score > config.MaxScore {
		p.Score = config.MaxScore
	}
	p.TotalRepaid += repaid
	p.LoansRepaid++
	p.LastUpdated = height
}

// RecordDefault penalizes a defaulted loan
func (p *CreditProfile) RecordDefault(height uint64) {
	if p.Score < config.MinScore+config.DefaultScorePenalty {
		p.Score = config.MinScore
	} else {
		p.Score -= config.DefaultScorePenalty
	}
	p.LastUpdated = height
}
