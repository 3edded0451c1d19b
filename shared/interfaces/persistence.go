package interfaces

import "github.com/hyperledger/fabric-chaincode-go/shim"

// PersistenceService defines common persistence operations
type PersistenceService interface {
	Get(stub shim.ChaincodeStubInterface, key string, result interface{}) error
	Put(stub shim.ChaincodeStubInterface, key string, value interface{}) error
	Exists(stub shim.ChaincodeStubInterface, key string) (bool, error)

	// Query operations
	GetByPartialCompositeKey(stub shim.ChaincodeStubInterface, objectType string, attributes []string) ([][]byte, error)
	CreateCompositeKey(stub shim.ChaincodeStubInterface, objectType string, attributes []string) (string, error)
}
