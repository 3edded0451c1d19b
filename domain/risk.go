package domain

// Risk parameters are pure functions of the credit score, computed with
// truncating integer arithmetic so results are identical on every peer.

// RequiredCollateral returns the minimum collateral for a principal at a
// given score: 75% of the amount at score 50, falling to 50% at score 100.
func RequiredCollateral(amount, score uint64) uint64 {
	discount := score * 50 / 100
	return amount * (100 - discount) / 100
}

// InterestRate returns the whole-percent interest rate for a score:
// 7% at score 50, 6% at score 70, 5% at score 100.
func InterestRate(score uint64) uint64 {
	return (1000 - score*5) / 100
}

// TotalDue returns principal plus simple interest at a whole-percent rate.
// Interest accrues once at creation and is not proportional to elapsed time.
func TotalDue(amount, rate uint64) uint64 {
	return amount + amount*rate/100
}
