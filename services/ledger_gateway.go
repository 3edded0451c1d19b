package services

import (
	"errors"
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/bright-beep/stacks-credit/domain"
	"github.com/bright-beep/stacks-credit/shared/config"
	sharedservices "github.com/bright-beep/stacks-credit/shared/services"
)

// TokenLedger is the default LedgerGateway backed by balance records in
// chaincode state. Each Transfer validates fully before writing either
// side, so a rejected transfer leaves no residue.
type TokenLedger struct {
	persistence *sharedservices.PersistenceService
}

// NewTokenLedger creates a new token ledger
func NewTokenLedger() *TokenLedger {
	return &TokenLedger{
		persistence: sharedservices.NewPersistenceService(),
	}
}

// Transfer moves amount between accounts
func (tl *TokenLedger) Transfer(stub shim.ChaincodeStubInterface, from, to string, amount uint64) error {
	if amount == 0 {
		return domain.ErrInvalidAmount
	}
	if from == to {
		return fmt.Errorf("transfer from %s to itself: %w", from, domain.ErrUnauthorized)
	}

	fromBalance, err := tl.Balance(stub, from)
	if err != nil {
		return err
	}
	if fromBalance < amount {
		return fmt.Errorf("account %s holds %d, needs %d: %w", from, fromBalance, amount, domain.ErrInsufficientBalance)
	}

	toBalance, err := tl.Balance(stub, to)
	if err != nil {
		return err
	}

	if err := tl.putBalance(stub, from, fromBalance-amount); err != nil {
		return err
	}
	return tl.putBalance(stub, to, toBalance+amount)
}

// Credit provisions amount into an account
func (tl *TokenLedger) Credit(stub shim.ChaincodeStubInterface, account string, amount uint64) error {
	if amount == 0 {
		return domain.ErrInvalidAmount
	}

	balance, err := tl.Balance(stub, account)
	if err != nil {
		return err
	}
	return tl.putBalance(stub, account, balance+amount)
}

// Balance reports the spendable balance of an account; unknown accounts
// hold zero.
func (tl *TokenLedger) Balance(stub shim.ChaincodeStubInterface, account string) (uint64, error) {
	var balance uint64
	err := tl.persistence.Get(stub, config.BalancePrefix+account, &balance)
	if errors.Is(err, sharedservices.ErrStateNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (tl *TokenLedger) putBalance(stub shim.ChaincodeStubInterface, account string, balance uint64) error {
	return tl.persistence.Put(stub, config.BalancePrefix+account, balance)
}
