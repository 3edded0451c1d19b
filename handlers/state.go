package handlers

import (
	"errors"
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/bright-beep/stacks-credit/domain"
	"github.com/bright-beep/stacks-credit/shared/config"
	"github.com/bright-beep/stacks-credit/shared/interfaces"
	sharedservices "github.com/bright-beep/stacks-credit/shared/services"
	"github.com/bright-beep/stacks-credit/shared/utils"
)

// State access helpers shared by the lending handlers. Missing singleton
// counters fall back to their genesis values so a freshly instantiated
// chaincode behaves the same as an explicitly initialized one.

func readCounter(ps interfaces.PersistenceService, stub shim.ChaincodeStubInterface, key string, genesis uint64) (uint64, error) {
	var value uint64
	err := ps.Get(stub, key, &value)
	if errors.Is(err, sharedservices.ErrStateNotFound) {
		return genesis, nil
	}
	if err != nil {
		return 0, err
	}
	return value, nil
}

func ledgerHeight(ps interfaces.PersistenceService, stub shim.ChaincodeStubInterface) (uint64, error) {
	return readCounter(ps, stub, config.LedgerHeightKey, 0)
}

func nextLoanID(ps interfaces.PersistenceService, stub shim.ChaincodeStubInterface) (uint64, error) {
	return readCounter(ps, stub, config.NextLoanIDKey, 1)
}

func contractOwner(ps interfaces.PersistenceService, stub shim.ChaincodeStubInterface) (string, error) {
	var owner string
	if err := ps.Get(stub, config.OwnerKey, &owner); err != nil {
		return "", fmt.Errorf("contract owner not set: %v", err)
	}
	return owner, nil
}

func loadProfile(ps interfaces.PersistenceService, stub shim.ChaincodeStubInterface, user string) (*domain.CreditProfile, error) {
	var profile domain.CreditProfile
	err := ps.Get(stub, config.CreditProfilePrefix+user, &profile)
	if errors.Is(err, sharedservices.ErrStateNotFound) {
		return nil, fmt.Errorf("user %s: %w", user, domain.ErrProfileNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func saveProfile(ps interfaces.PersistenceService, stub shim.ChaincodeStubInterface, profile *domain.CreditProfile) error {
	return ps.Put(stub, config.CreditProfilePrefix+profile.User, profile)
}

func loadLoan(ps interfaces.PersistenceService, stub shim.ChaincodeStubInterface, loanID uint64) (*domain.Loan, error) {
	var loan domain.Loan
	err := ps.Get(stub, loanKey(loanID), &loan)
	if errors.Is(err, sharedservices.ErrStateNotFound) {
		return nil, fmt.Errorf("loan %d: %w", loanID, domain.ErrLoanNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

func saveLoan(ps interfaces.PersistenceService, stub shim.ChaincodeStubInterface, loan *domain.Loan) error {
	return ps.Put(stub, loanKey(loan.LoanID), loan)
}

func loanKey(loanID uint64) string {
	return config.LoanPrefix + utils.FormatUint(loanID)
}

func loadActiveSet(ps interfaces.PersistenceService, stub shim.ChaincodeStubInterface, user string) (*domain.ActiveLoanSet, error) {
	var set domain.ActiveLoanSet
	err := ps.Get(stub, config.ActiveLoanSetPrefix+user, &set)
	if errors.Is(err, sharedservices.ErrStateNotFound) {
		return domain.NewActiveLoanSet(user), nil
	}
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func saveActiveSet(ps interfaces.PersistenceService, stub shim.ChaincodeStubInterface, set *domain.ActiveLoanSet) error {
	return ps.Put(stub, config.ActiveLoanSetPrefix+set.User, set)
}

func recordLoanHistory(ps interfaces.PersistenceService, stub shim.ChaincodeStubInterface, loanID uint64, changeType string, amount uint64, actorID string) error {
	entry := domain.LoanHistoryEntry{
		HistoryID:     utils.GenerateID(config.LoanHistoryPrefix),
		LoanID:        loanID,
		ChangeType:    changeType,
		Amount:        amount,
		ActorID:       actorID,
		Timestamp:     utils.GetCurrentTimeString(),
		TransactionID: stub.GetTxID(),
	}

	key, err := ps.CreateCompositeKey(stub, config.LoanHistoryObjectType, []string{utils.FormatUint(loanID), entry.HistoryID})
	if err != nil {
		return fmt.Errorf("failed to create history key: %v", err)
	}
	return ps.Put(stub, key, entry)
}

func loanHistory(ps interfaces.PersistenceService, stub shim.ChaincodeStubInterface, loanID uint64) ([]domain.LoanHistoryEntry, error) {
	values, err := ps.GetByPartialCompositeKey(stub, config.LoanHistoryObjectType, []string{utils.FormatUint(loanID)})
	if err != nil {
		return nil, err
	}

	history := make([]domain.LoanHistoryEntry, 0, len(values))
	for _, value := range values {
		var entry domain.LoanHistoryEntry
		if err := utils.UnmarshalJSON(value, &entry); err != nil {
			return nil, err
		}
		history = append(history, entry)
	}
	return history, nil
}
