package handlers_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-chaincode-go/shimtest"
	"github.com/hyperledger/fabric-protos-go/peer"
	"github.com/stretchr/testify/require"

	"github.com/bright-beep/stacks-credit/chaincode"
	"github.com/bright-beep/stacks-credit/domain"
	"github.com/bright-beep/stacks-credit/shared/config"
)

const ownerID = "platform-admin"

var txCounter int

func nextTxID() string {
	txCounter++
	return fmt.Sprintf("tx%d", txCounter)
}

// newLendingStub instantiates the chaincode with ownerID as the contract owner
func newLendingStub(t *testing.T) *shimtest.MockStub {
	t.Helper()

	stub := shimtest.NewMockStub("microcredit", chaincode.NewMicroCreditContract())
	response := stub.MockInit(nextTxID(), [][]byte{[]byte("init"), []byte(ownerID)})
	require.Equal(t, int32(shim.OK), response.Status, "init failed: %s", response.Message)

	return stub
}

// invoke calls a chaincode function with a single JSON request argument
func invoke(t *testing.T, stub *shimtest.MockStub, function string, request interface{}) peer.Response {
	t.Helper()

	payload, err := json.Marshal(request)
	require.NoError(t, err)

	return stub.MockInvoke(nextTxID(), [][]byte{[]byte(function), payload})
}

// query calls a chaincode function with positional string arguments
func query(t *testing.T, stub *shimtest.MockStub, function string, args ...string) peer.Response {
	t.Helper()

	invokeArgs := [][]byte{[]byte(function)}
	for _, arg := range args {
		invokeArgs = append(invokeArgs, []byte(arg))
	}
	return stub.MockInvoke(nextTxID(), invokeArgs)
}

// unmarshalPayload decodes a successful response payload
func unmarshalPayload(t *testing.T, response peer.Response, result interface{}) {
	t.Helper()

	require.Equal(t, int32(shim.OK), response.Status, "unexpected failure: %s", response.Message)
	require.NoError(t, json.Unmarshal(response.Payload, result))
}

// seedState writes a JSON value directly into chaincode state
func seedState(t *testing.T, stub *shimtest.MockStub, key string, value interface{}) {
	t.Helper()

	data, err := json.Marshal(value)
	require.NoError(t, err)

	txID := nextTxID()
	stub.MockTransactionStart(txID)
	require.NoError(t, stub.PutState(key, data))
	stub.MockTransactionEnd(txID)
}

// seedProfile stores a credit profile at the given score
func seedProfile(t *testing.T, stub *shimtest.MockStub, user string, score uint64) {
	t.Helper()

	profile := domain.CreditProfile{User: user, Score: score}
	seedState(t, stub, config.CreditProfilePrefix+user, &profile)
}

// seedBalance funds an account on the token ledger
func seedBalance(t *testing.T, stub *shimtest.MockStub, account string, amount uint64) {
	t.Helper()
	seedState(t, stub, config.BalancePrefix+account, amount)
}

// seedHeight anchors the ledger height directly
func seedHeight(t *testing.T, stub *shimtest.MockStub, height uint64) {
	t.Helper()
	seedState(t, stub, config.LedgerHeightKey, height)
}

// drainEventNames empties the stub's event channel and returns the names
// of the events emitted so far
func drainEventNames(stub *shimtest.MockStub) []string {
	var names []string
	for {
		select {
		case event := <-stub.ChaincodeEventsChannel:
			names = append(names, event.EventName)
		default:
			return names
		}
	}
}

// getBalance reads an account balance through the chaincode query
func getBalance(t *testing.T, stub *shimtest.MockStub, account string) uint64 {
	t.Helper()

	var result domain.BalanceResult
	unmarshalPayload(t, query(t, stub, "GetBalance", account), &result)
	return result.Balance
}

// getScore reads a user's score through the chaincode query
func getScore(t *testing.T, stub *shimtest.MockStub, user string) uint64 {
	t.Helper()

	var result domain.ScoreResult
	unmarshalPayload(t, query(t, stub, "GetUserScore", user), &result)
	return result.Score
}
