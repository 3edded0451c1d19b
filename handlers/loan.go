package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/bright-beep/stacks-credit/domain"
	"github.com/bright-beep/stacks-credit/services"
	"github.com/bright-beep/stacks-credit/shared/config"
	"github.com/bright-beep/stacks-credit/shared/interfaces"
	sharedservices "github.com/bright-beep/stacks-credit/shared/services"
	"github.com/bright-beep/stacks-credit/shared/utils"
)

// LoanHandler handles the loan lifecycle: request, repayment and queries
type LoanHandler struct {
	persistence  interfaces.PersistenceService
	eventService *services.EventService
	ledger       interfaces.LedgerGateway
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(ledger interfaces.LedgerGateway) *LoanHandler {
	return &LoanHandler{
		persistence:  sharedservices.NewPersistenceService(),
		eventService: services.NewEventService(),
		ledger:       ledger,
	}
}

// RequestLoan creates a new loan: collateral moves into escrow, the
// principal is disbursed, and the loan is recorded as active. All
// preconditions are checked before anything moves, so a rejected request
// leaves no observable state change.
func (h *LoanHandler) RequestLoan(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 1, got %d", len(args))
	}

	var req domain.LoanRequest
	if err := json.Unmarshal([]byte(args[0]), &req); err != nil {
		return nil, fmt.Errorf("failed to parse loan request: %v", err)
	}
	if req.ActorID == "" {
		return nil, fmt.Errorf("actorID is required: %w", domain.ErrUnauthorized)
	}

	profile, err := loadProfile(h.persistence, stub, req.ActorID)
	if err != nil {
		return nil, err
	}
	if !profile.CanBorrow() {
		return nil, fmt.Errorf("score %d below borrowing gate %d: %w", profile.Score, config.MinBorrowScore, domain.ErrInsufficientScore)
	}

	activeSet, err := loadActiveSet(h.persistence, stub, req.ActorID)
	if err != nil {
		return nil, err
	}
	if activeSet.Count() >= config.MaxActiveLoans {
		return nil, fmt.Errorf("%d loans already active: %w", activeSet.Count(), domain.ErrTooManyActiveLoans)
	}

	if req.Amount == 0 || req.Amount > config.MaxLoanAmount {
		return nil, fmt.Errorf("principal %d outside (0, %d]: %w", req.Amount, config.MaxLoanAmount, domain.ErrInvalidAmount)
	}
	if req.DurationBlocks == 0 || req.DurationBlocks > config.MaxLoanDurationBlocks {
		return nil, fmt.Errorf("duration %d outside (0, %d]: %w", req.DurationBlocks, config.MaxLoanDurationBlocks, domain.ErrInvalidDuration)
	}

	required := domain.RequiredCollateral(req.Amount, profile.Score)
	if req.Collateral < required {
		return nil, fmt.Errorf("collateral %d below required %d: %w", req.Collateral, required, domain.ErrInsufficientBalance)
	}

	height, err := ledgerHeight(h.persistence, stub)
	if err != nil {
		return nil, err
	}
	loanID, err := nextLoanID(h.persistence, stub)
	if err != nil {
		return nil, err
	}

	// Both transfer legs are verified before the first one runs; a failed
	// request must not leave collateral stranded in escrow.
	borrowerBalance, err := h.ledger.Balance(stub, req.ActorID)
	if err != nil {
		return nil, err
	}
	if borrowerBalance < req.Collateral {
		return nil, fmt.Errorf("account %s holds %d, needs %d collateral: %w", req.ActorID, borrowerBalance, req.Collateral, domain.ErrInsufficientBalance)
	}
	contractBalance, err := h.ledger.Balance(stub, config.ContractAccount)
	if err != nil {
		return nil, err
	}
	if req.Amount > req.Collateral && contractBalance < req.Amount-req.Collateral {
		return nil, fmt.Errorf("disbursement pool holds %d, needs %d: %w", contractBalance, req.Amount, domain.ErrInsufficientBalance)
	}

	if err := h.ledger.Transfer(stub, req.ActorID, config.ContractAccount, req.Collateral); err != nil {
		return nil, err
	}
	if err := h.ledger.Transfer(stub, config.ContractAccount, req.ActorID, req.Amount); err != nil {
		return nil, err
	}

	loan := &domain.Loan{
		LoanID:        loanID,
		Borrower:      req.ActorID,
		Amount:        req.Amount,
		Collateral:    req.Collateral,
		DueHeight:     height + req.DurationBlocks,
		InterestRate:  domain.InterestRate(profile.Score),
		IsActive:      true,
		CreatedHeight: height,
	}
	if err := saveLoan(h.persistence, stub, loan); err != nil {
		return nil, err
	}

	if err := activeSet.Add(loanID); err != nil {
		return nil, err
	}
	if err := saveActiveSet(h.persistence, stub, activeSet); err != nil {
		return nil, err
	}

	if err := h.persistence.Put(stub, config.NextLoanIDKey, loanID+1); err != nil {
		return nil, err
	}
	if err := h.adjustLockedCollateral(stub, req.Collateral, 0); err != nil {
		return nil, err
	}

	profile.RecordBorrow(req.Amount, height)
	if err := saveProfile(h.persistence, stub, profile); err != nil {
		return nil, err
	}

	if err := recordLoanHistory(h.persistence, stub, loanID, domain.HistoryLoanRequested, req.Amount, req.ActorID); err != nil {
		return nil, err
	}
	if err := h.eventService.EmitLoanRequested(stub, loan); err != nil {
		return nil, err
	}

	return utils.MarshalJSON(loan)
}

// RepayLoan pays down an active loan. Payments beyond the outstanding
// balance are capped, so a closed loan never records more than its total
// due. Full repayment closes the loan, returns the collateral and rewards
// the borrower's score.
func (h *LoanHandler) RepayLoan(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 1, got %d", len(args))
	}

	var req domain.RepaymentRequest
	if err := json.Unmarshal([]byte(args[0]), &req); err != nil {
		return nil, fmt.Errorf("failed to parse repayment request: %v", err)
	}
	if req.ActorID == "" {
		return nil, fmt.Errorf("actorID is required: %w", domain.ErrUnauthorized)
	}

	seq, err := nextLoanID(h.persistence, stub)
	if err != nil {
		return nil, err
	}
	if req.LoanID == 0 || req.LoanID >= seq {
		return nil, fmt.Errorf("loan id %d outside issued range: %w", req.LoanID, domain.ErrInvalidLoanID)
	}

	loan, err := loadLoan(h.persistence, stub, req.LoanID)
	if err != nil {
		return nil, err
	}
	if loan.Borrower != req.ActorID {
		return nil, fmt.Errorf("%s is not the borrower of loan %d: %w", req.ActorID, loan.LoanID, domain.ErrUnauthorized)
	}
	if loan.IsDefaulted {
		return nil, fmt.Errorf("loan %d: %w", loan.LoanID, domain.ErrLoanDefaulted)
	}
	if !loan.IsActive {
		return nil, fmt.Errorf("loan %d already closed: %w", loan.LoanID, domain.ErrLoanNotFound)
	}
	if req.Amount == 0 {
		return nil, fmt.Errorf("repayment must be positive: %w", domain.ErrInvalidAmount)
	}

	payment := req.Amount
	if outstanding := loan.Outstanding(); payment > outstanding {
		payment = outstanding
	}

	if err := h.ledger.Transfer(stub, req.ActorID, config.ContractAccount, payment); err != nil {
		return nil, err
	}
	loan.RepaidAmount += payment

	result := domain.RepaymentResult{
		LoanID:       loan.LoanID,
		RepaidAmount: loan.RepaidAmount,
		Outstanding:  loan.Outstanding(),
	}

	if loan.Outstanding() == 0 {
		if err := h.closeLoan(stub, loan, req.ActorID); err != nil {
			return nil, err
		}
		result.FullyRepaid = true
		result.CollateralReturned = loan.Collateral
	} else {
		if err := saveLoan(h.persistence, stub, loan); err != nil {
			return nil, err
		}
		if err := recordLoanHistory(h.persistence, stub, loan.LoanID, domain.HistoryRepayment, payment, req.ActorID); err != nil {
			return nil, err
		}
		if err := h.eventService.EmitRepaymentReceived(stub, loan, payment); err != nil {
			return nil, err
		}
	}

	return utils.MarshalJSON(result)
}

// closeLoan settles a fully repaid loan: the collateral goes back to the
// borrower, the locked counter drops, and the credit registry is rewarded.
func (h *LoanHandler) closeLoan(stub shim.ChaincodeStubInterface, loan *domain.Loan, actorID string) error {
	loan.IsActive = false
	if err := saveLoan(h.persistence, stub, loan); err != nil {
		return err
	}

	if err := h.ledger.Transfer(stub, config.ContractAccount, loan.Borrower, loan.Collateral); err != nil {
		return err
	}
	if err := h.adjustLockedCollateral(stub, 0, loan.Collateral); err != nil {
		return err
	}

	height, err := ledgerHeight(h.persistence, stub)
	if err != nil {
		return err
	}

	profile, err := loadProfile(h.persistence, stub, loan.Borrower)
	if err != nil {
		return err
	}
	profile.RecordRepayment(loan.RepaidAmount, height)
	if err := saveProfile(h.persistence, stub, profile); err != nil {
		return err
	}
	// Emitted before the lifecycle event; the host keeps only the last
	// event of a transaction.
	if err := h.eventService.EmitScoreUpdated(stub, profile, actorID, "repayment"); err != nil {
		return err
	}

	activeSet, err := loadActiveSet(h.persistence, stub, loan.Borrower)
	if err != nil {
		return err
	}
	activeSet.Remove(loan.LoanID)
	if err := saveActiveSet(h.persistence, stub, activeSet); err != nil {
		return err
	}

	if err := recordLoanHistory(h.persistence, stub, loan.LoanID, domain.HistoryLoanClosed, loan.RepaidAmount, actorID); err != nil {
		return err
	}
	return h.eventService.EmitLoanRepaid(stub, loan, profile.Score)
}

func (h *LoanHandler) adjustLockedCollateral(stub shim.ChaincodeStubInterface, add, sub uint64) error {
	locked, err := readCounter(h.persistence, stub, config.LockedCollateralKey, 0)
	if err != nil {
		return err
	}
	return h.persistence.Put(stub, config.LockedCollateralKey, locked+add-sub)
}

// GetLoan retrieves a loan by id
func (h *LoanHandler) GetLoan(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 1, got %d", len(args))
	}

	loanID, err := utils.ParseUintArg("loanID", args[0])
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrInvalidLoanID)
	}

	loan, err := loadLoan(h.persistence, stub, loanID)
	if err != nil {
		return nil, err
	}
	return utils.MarshalJSON(loan)
}

// GetUserActiveLoans retrieves the ids of a user's currently active loans
func (h *LoanHandler) GetUserActiveLoans(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 1, got %d", len(args))
	}

	// A user without a profile has no loan book to inspect.
	if _, err := loadProfile(h.persistence, stub, args[0]); err != nil {
		return nil, err
	}

	activeSet, err := loadActiveSet(h.persistence, stub, args[0])
	if err != nil {
		return nil, err
	}
	return utils.MarshalJSON(activeSet)
}

// GetLoanHistory retrieves the recorded lifecycle transitions of a loan
func (h *LoanHandler) GetLoanHistory(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 1, got %d", len(args))
	}

	loanID, err := utils.ParseUintArg("loanID", args[0])
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrInvalidLoanID)
	}

	if _, err := loadLoan(h.persistence, stub, loanID); err != nil {
		return nil, err
	}

	history, err := loanHistory(h.persistence, stub, loanID)
	if err != nil {
		return nil, err
	}
	return utils.MarshalJSON(history)
}
