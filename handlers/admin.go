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

// AdminHandler handles owner-gated operations and platform queries
type AdminHandler struct {
	persistence  interfaces.PersistenceService
	eventService *services.EventService
	ledger       interfaces.LedgerGateway
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(ledger interfaces.LedgerGateway) *AdminHandler {
	return &AdminHandler{
		persistence:  sharedservices.NewPersistenceService(),
		eventService: services.NewEventService(),
		ledger:       ledger,
	}
}

func (h *AdminHandler) requireOwner(stub shim.ChaincodeStubInterface, actorID string) error {
	owner, err := contractOwner(h.persistence, stub)
	if err != nil {
		return err
	}
	if actorID != owner {
		return fmt.Errorf("%s is not the contract owner: %w", actorID, domain.ErrUnauthorized)
	}
	return nil
}

// MarkLoanDefaulted marks a past-due loan as defaulted. The collateral is
// forfeited: it stays with the contract account and moves from the locked
// counter to the forfeited counter.
func (h *AdminHandler) MarkLoanDefaulted(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 1, got %d", len(args))
	}

	var req domain.DefaultRequest
	if err := json.Unmarshal([]byte(args[0]), &req); err != nil {
		return nil, fmt.Errorf("failed to parse default request: %v", err)
	}
	if err := h.requireOwner(stub, req.ActorID); err != nil {
		return nil, err
	}

	loan, err := loadLoan(h.persistence, stub, req.LoanID)
	if err != nil {
		return nil, err
	}
	if loan.IsDefaulted {
		return nil, fmt.Errorf("loan %d: %w", loan.LoanID, domain.ErrAlreadyDefaulted)
	}
	if !loan.IsActive {
		return nil, fmt.Errorf("loan %d already closed: %w", loan.LoanID, domain.ErrLoanNotFound)
	}

	height, err := ledgerHeight(h.persistence, stub)
	if err != nil {
		return nil, err
	}
	if !loan.PastDue(height) {
		return nil, fmt.Errorf("loan %d due at height %d, current %d: %w", loan.LoanID, loan.DueHeight, height, domain.ErrNotDue)
	}

	loan.IsActive = false
	loan.IsDefaulted = true
	if err := saveLoan(h.persistence, stub, loan); err != nil {
		return nil, err
	}

	profile, err := loadProfile(h.persistence, stub, loan.Borrower)
	if err != nil {
		return nil, err
	}
	profile.RecordDefault(height)
	if err := saveProfile(h.persistence, stub, profile); err != nil {
		return nil, err
	}
	if err := h.eventService.EmitScoreUpdated(stub, profile, req.ActorID, "default"); err != nil {
		return nil, err
	}

	activeSet, err := loadActiveSet(h.persistence, stub, loan.Borrower)
	if err != nil {
		return nil, err
	}
	activeSet.Remove(loan.LoanID)
	if err := saveActiveSet(h.persistence, stub, activeSet); err != nil {
		return nil, err
	}

	if err := h.moveLockedToForfeited(stub, loan.Collateral); err != nil {
		return nil, err
	}

	if err := recordLoanHistory(h.persistence, stub, loan.LoanID, domain.HistoryLoanDefaulted, loan.Collateral, req.ActorID); err != nil {
		return nil, err
	}
	if err := h.eventService.EmitLoanDefaulted(stub, loan, req.ActorID, profile.Score); err != nil {
		return nil, err
	}

	return utils.MarshalJSON(loan)
}

// moveLockedToForfeited keeps the two collateral counters consistent:
// locked always equals the sum of collateral on active loans, forfeited
// accumulates what defaults have seized.
func (h *AdminHandler) moveLockedToForfeited(stub shim.ChaincodeStubInterface, collateral uint64) error {
	locked, err := readCounter(h.persistence, stub, config.LockedCollateralKey, 0)
	if err != nil {
		return err
	}
	if err := h.persistence.Put(stub, config.LockedCollateralKey, locked-collateral); err != nil {
		return err
	}

	forfeited, err := readCounter(h.persistence, stub, config.ForfeitedCollateralKey, 0)
	if err != nil {
		return err
	}
	return h.persistence.Put(stub, config.ForfeitedCollateralKey, forfeited+collateral)
}

// AnchorLedgerHeight advances the anchored ledger height. The chain host
// does not expose block height to chaincode, so an off-chain anchor feeds
// it in; regressions are rejected to keep due heights meaningful.
func (h *AdminHandler) AnchorLedgerHeight(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 1, got %d", len(args))
	}

	var req domain.AnchorHeightRequest
	if err := json.Unmarshal([]byte(args[0]), &req); err != nil {
		return nil, fmt.Errorf("failed to parse anchor height request: %v", err)
	}
	if err := h.requireOwner(stub, req.ActorID); err != nil {
		return nil, err
	}

	current, err := ledgerHeight(h.persistence, stub)
	if err != nil {
		return nil, err
	}
	if req.Height < current {
		return nil, fmt.Errorf("height %d behind anchored %d: %w", req.Height, current, domain.ErrStaleHeight)
	}

	if err := h.persistence.Put(stub, config.LedgerHeightKey, req.Height); err != nil {
		return nil, err
	}
	if err := h.eventService.EmitLedgerHeightAnchored(stub, req.Height, req.ActorID); err != nil {
		return nil, err
	}

	return utils.MarshalJSON(req.Height)
}

// FundAccount provisions balance on the built-in token ledger
func (h *AdminHandler) FundAccount(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 1, got %d", len(args))
	}

	var req domain.FundRequest
	if err := json.Unmarshal([]byte(args[0]), &req); err != nil {
		return nil, fmt.Errorf("failed to parse fund request: %v", err)
	}
	if err := h.requireOwner(stub, req.ActorID); err != nil {
		return nil, err
	}
	if err := utils.ValidateRequired(map[string]string{"account": req.Account}); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrInvalidAmount)
	}

	if err := h.ledger.Credit(stub, req.Account, req.Amount); err != nil {
		return nil, err
	}
	if err := h.eventService.EmitAccountFunded(stub, req.Account, req.Amount, req.ActorID); err != nil {
		return nil, err
	}

	balance, err := h.ledger.Balance(stub, req.Account)
	if err != nil {
		return nil, err
	}
	return utils.MarshalJSON(domain.BalanceResult{Account: req.Account, Balance: balance})
}

// GetPlatformStats aggregates the global lending counters
func (h *AdminHandler) GetPlatformStats(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 0, got %d", len(args))
	}

	seq, err := nextLoanID(h.persistence, stub)
	if err != nil {
		return nil, err
	}
	locked, err := readCounter(h.persistence, stub, config.LockedCollateralKey, 0)
	if err != nil {
		return nil, err
	}
	forfeited, err := readCounter(h.persistence, stub, config.ForfeitedCollateralKey, 0)
	if err != nil {
		return nil, err
	}
	height, err := ledgerHeight(h.persistence, stub)
	if err != nil {
		return nil, err
	}

	stats := domain.PlatformStats{
		LoansIssued:         seq - 1,
		LockedCollateral:    locked,
		ForfeitedCollateral: forfeited,
		LedgerHeight:        height,
	}
	return utils.MarshalJSON(stats)
}

// GetBalance reports a token ledger balance
func (h *AdminHandler) GetBalance(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 1, got %d", len(args))
	}

	balance, err := h.ledger.Balance(stub, args[0])
	if err != nil {
		return nil, err
	}
	return utils.MarshalJSON(domain.BalanceResult{Account: args[0], Balance: balance})
}
