package chaincode

import (
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-protos-go/peer"

	"github.com/bright-beep/stacks-credit/shared/chaincode"
	"github.com/bright-beep/stacks-credit/shared/config"
	sharedservices "github.com/bright-beep/stacks-credit/shared/services"
)

// MicroCreditContract implements the chaincode interface for the
// collateralized micro-lending ledger
type MicroCreditContract struct {
	chaincode.BaseContract
}

// NewMicroCreditContract creates a new micro-credit contract
func NewMicroCreditContract() *MicroCreditContract {
	return &MicroCreditContract{
		BaseContract: chaincode.BaseContract{Name: "microcredit"},
	}
}

// Init stores the contract owner and seeds the global counters. The owner
// principal is fixed at deployment and gates the administrative functions.
func (cc *MicroCreditContract) Init(stub shim.ChaincodeStubInterface) peer.Response {
	_, params := stub.GetFunctionAndParameters()
	if len(params) != 1 || params[0] == "" {
		return shim.Error("Init requires exactly one argument: the contract owner principal")
	}

	ps := sharedservices.NewPersistenceService()
	if err := ps.Put(stub, config.OwnerKey, params[0]); err != nil {
		return shim.Error(fmt.Sprintf("failed to store contract owner: %v", err))
	}
	if err := ps.Put(stub, config.NextLoanIDKey, uint64(1)); err != nil {
		return shim.Error(fmt.Sprintf("failed to seed loan sequence: %v", err))
	}
	if err := ps.Put(stub, config.LockedCollateralKey, uint64(0)); err != nil {
		return shim.Error(fmt.Sprintf("failed to seed locked counter: %v", err))
	}
	if err := ps.Put(stub, config.ForfeitedCollateralKey, uint64(0)); err != nil {
		return shim.Error(fmt.Sprintf("failed to seed forfeited counter: %v", err))
	}
	if err := ps.Put(stub, config.LedgerHeightKey, uint64(0)); err != nil {
		return shim.Error(fmt.Sprintf("failed to seed ledger height: %v", err))
	}

	return shim.Success(nil)
}

// Invoke handles chaincode invocations
func (cc *MicroCreditContract) Invoke(stub shim.ChaincodeStubInterface) peer.Response {
	router := NewRouter()
	return cc.InvokeWithRouter(stub, router)
}
