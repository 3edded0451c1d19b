package interfaces

import "github.com/hyperledger/fabric-chaincode-go/shim"

// LedgerGateway moves the underlying asset between principals. Custody is a
// collaborator concern: the loan book only ever asks for synchronous
// transfers and treats any failure as grounds to abort the whole operation.
type LedgerGateway interface {
	// Transfer moves amount from one account to another.
	Transfer(stub shim.ChaincodeStubInterface, from, to string, amount uint64) error

	// Credit provisions amount into an account (owner-gated upstream).
	Credit(stub shim.ChaincodeStubInterface, account string, amount uint64) error

	// Balance reports the spendable balance of an account.
	Balance(stub shim.ChaincodeStubInterface, account string) (uint64, error)
}
