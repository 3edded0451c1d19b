package services

import (
	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/bright-beep/stacks-credit/domain"
	"github.com/bright-beep/stacks-credit/shared/config"
	"github.com/bright-beep/stacks-credit/shared/interfaces"
	sharedservices "github.com/bright-beep/stacks-credit/shared/services"
	"github.com/bright-beep/stacks-credit/shared/utils"
)

// EventService handles event emission for lending operations
type EventService struct {
	interfaces.EventEmitter
}

// NewEventService creates a new event service
func NewEventService() *EventService {
	return &EventService{
		EventEmitter: sharedservices.NewBaseEventService(),
	}
}

// EmitScoreInitialized emits an event for a newly opened credit profile
func (es *EventService) EmitScoreInitialized(stub shim.ChaincodeStubInterface, profile *domain.CreditProfile) error {
	payload := es.CreateEventPayload(
		config.EventScoreInitialized,
		profile.User,
		"CreditProfile",
		profile.User,
		profile,
	)
	return es.EmitEvent(stub, config.EventScoreInitialized, payload)
}

// EmitScoreUpdated emits an event for a score transition on a credit profile
func (es *EventService) EmitScoreUpdated(stub shim.ChaincodeStubInterface, profile *domain.CreditProfile, actorID, reason string) error {
	metadata := map[string]string{
		"reason": reason,
		"score":  utils.FormatUint(profile.Score),
	}

	payload := es.CreateEventPayloadWithMetadata(
		config.EventScoreUpdated,
		profile.User,
		"CreditProfile",
		actorID,
		profile,
		metadata,
	)
	return es.EmitEvent(stub, config.EventScoreUpdated, payload)
}

// EmitLoanRequested emits a loan requested event
func (es *EventService) EmitLoanRequested(stub shim.ChaincodeStubInterface, loan *domain.Loan) error {
	metadata := map[string]string{
		"borrower":     loan.Borrower,
		"amount":       utils.FormatUint(loan.Amount),
		"collateral":   utils.FormatUint(loan.Collateral),
		"dueHeight":    utils.FormatUint(loan.DueHeight),
		"interestRate": utils.FormatUint(loan.InterestRate),
	}

	payload := es.CreateEventPayloadWithMetadata(
		config.EventLoanRequested,
		utils.FormatUint(loan.LoanID),
		"Loan",
		loan.Borrower,
		loan,
		metadata,
	)
	return es.EmitEvent(stub, config.EventLoanRequested, payload)
}

// EmitRepaymentReceived emits an event for a partial repayment
func (es *EventService) EmitRepaymentReceived(stub shim.ChaincodeStubInterface, loan *domain.Loan, amount uint64) error {
	metadata := map[string]string{
		"borrower":    loan.Borrower,
		"amount":      utils.FormatUint(amount),
		"outstanding": utils.FormatUint(loan.Outstanding()),
	}

	payload := es.CreateEventPayloadWithMetadata(
		config.EventRepaymentReceived,
		utils.FormatUint(loan.LoanID),
		"Loan",
		loan.Borrower,
		loan,
		metadata,
	)
	return es.EmitEvent(stub, config.EventRepaymentReceived, payload)
}

// EmitLoanRepaid emits an event for a fully repaid, closed loan
func (es *EventService) EmitLoanRepaid(stub shim.ChaincodeStubInterface, loan *domain.Loan, newScore uint64) error {
	metadata := map[string]string{
		"borrower":           loan.Borrower,
		"repaidAmount":       utils.FormatUint(loan.RepaidAmount),
		"collateralReturned": utils.FormatUint(loan.Collateral),
		"newScore":           utils.FormatUint(newScore),
	}

	payload := es.CreateEventPayloadWithMetadata(
		config.EventLoanRepaid,
		utils.FormatUint(loan.LoanID),
		"Loan",
		loan.Borrower,
		loan,
		metadata,
	)
	return es.EmitEvent(stub, config.EventLoanRepaid, payload)
}

// EmitLoanDefaulted emits an event for a defaulted loan
func (es *EventService) EmitLoanDefaulted(stub shim.ChaincodeStubInterface, loan *domain.Loan, actorID string, newScore uint64) error {
	metadata := map[string]string{
		"borrower":            loan.Borrower,
		"collateralForfeited": utils.FormatUint(loan.Collateral),
		"newScore":            utils.FormatUint(newScore),
	}

	payload := es.CreateEventPayloadWithMetadata(
		config.EventLoanDefaulted,
		utils.FormatUint(loan.LoanID),
		"Loan",
		actorID,
		loan,
		metadata,
	)
	return es.EmitEvent(stub, config.EventLoanDefaulted, payload)
}

// EmitLedgerHeightAnchored emits an event for an advanced ledger height
func (es *EventService) EmitLedgerHeightAnchored(stub shim.ChaincodeStubInterface, height uint64, actorID string) error {
	payload := es.CreateEventPayload(
		config.EventLedgerHeightAnchored,
		utils.FormatUint(height),
		"LedgerHeight",
		actorID,
		height,
	)
	return es.EmitEvent(stub, config.EventLedgerHeightAnchored, payload)
}

// EmitAccountFunded emits an event for a provisioned ledger balance
func (es *EventService) EmitAccountFunded(stub shim.ChaincodeStubInterface, account string, amount uint64, actorID string) error {
	metadata := map[string]string{
		"amount": utils.FormatUint(amount),
	}

	payload := es.CreateEventPayloadWithMetadata(
		config.EventAccountFunded,
		account,
		"Account",
		actorID,
		amount,
		metadata,
	)
	return es.EmitEvent(stub, config.EventAccountFunded, payload)
}
