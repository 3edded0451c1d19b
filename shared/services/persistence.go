package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"
)

// ErrStateNotFound reports that a key has no data on the ledger. Callers
// match it with errors.Is to map missing records onto domain errors.
var ErrStateNotFound = errors.New("state not found")

// PersistenceService provides data persistence operations
type PersistenceService struct{}

// NewPersistenceService creates a new persistence service
func NewPersistenceService() *PersistenceService {
	return &PersistenceService{}
}

// Get retrieves and unmarshals data from the ledger
func (ps *PersistenceService) Get(stub shim.ChaincodeStubInterface, key string, result interface{}) error {
	data, err := stub.GetState(key)
	if err != nil {
		return fmt.Errorf("failed to get state for key %s: %v", key, err)
	}
	if data == nil {
		return fmt.Errorf("key %s: %w", key, ErrStateNotFound)
	}

	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("failed to unmarshal data for key %s: %v", key, err)
	}

	return nil
}

// Put marshals and stores data to the ledger
func (ps *PersistenceService) Put(stub shim.ChaincodeStubInterface, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal data for key %s: %v", key, err)
	}

	if err := stub.PutState(key, data); err != nil {
		return fmt.Errorf("failed to put state for key %s: %v", key, err)
	}

	return nil
}

// Exists checks if a key exists in the ledger
func (ps *PersistenceService) Exists(stub shim.ChaincodeStubInterface, key string) (bool, error) {
	data, err := stub.GetState(key)
	if err != nil {
		return false, fmt.Errorf("failed to check existence for key %s: %v", key, err)
	}
	return data != nil, nil
}

// GetByPartialCompositeKey retrieves raw values using a partial composite key
func (ps *PersistenceService) GetByPartialCompositeKey(stub shim.ChaincodeStubInterface, objectType string, attributes []string) ([][]byte, error) {
	iterator, err := stub.GetStateByPartialCompositeKey(objectType, attributes)
	if err != nil {
		return nil, fmt.Errorf("failed to get state by partial composite key: %v", err)
	}
	defer iterator.Close()

	var results [][]byte
	for iterator.HasNext() {
		response, err := iterator.Next()
		if err != nil {
			return nil, fmt.Errorf("failed to iterate partial composite key results: %v", err)
		}
		results = append(results, response.Value)
	}

	return results, nil
}

// CreateCompositeKey creates a composite key
func (ps *PersistenceService) CreateCompositeKey(stub shim.ChaincodeStubInterface, objectType string, attributes []string) (string, error) {
	return stub.CreateCompositeKey(objectType, attributes)
}
