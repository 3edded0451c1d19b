package services

import (
	"testing"

	"github.com/hyperledger/fabric-chaincode-go/shimtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bright-beep/stacks-credit/domain"
)

func TestTokenLedgerCreditAndBalance(t *testing.T) {
	stub := shimtest.NewMockStub("ledger_test", nil)
	ledger := NewTokenLedger()

	balance, err := ledger.Balance(stub, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), balance, "unknown accounts hold zero")

	stub.MockTransactionStart("tx1")
	require.NoError(t, ledger.Credit(stub, "alice", 500))
	require.NoError(t, ledger.Credit(stub, "alice", 250))
	stub.MockTransactionEnd("tx1")

	balance, err = ledger.Balance(stub, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(750), balance)
}

func TestTokenLedgerCreditZeroAmount(t *testing.T) {
	stub := shimtest.NewMockStub("ledger_test", nil)
	ledger := NewTokenLedger()

	stub.MockTransactionStart("tx1")
	err := ledger.Credit(stub, "alice", 0)
	stub.MockTransactionEnd("tx1")

	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestTokenLedgerTransfer(t *testing.T) {
	stub := shimtest.NewMockStub("ledger_test", nil)
	ledger := NewTokenLedger()

	stub.MockTransactionStart("tx1")
	require.NoError(t, ledger.Credit(stub, "alice", 1000))
	require.NoError(t, ledger.Transfer(stub, "alice", "bob", 400))
	stub.MockTransactionEnd("tx1")

	aliceBalance, err := ledger.Balance(stub, "alice")
	require.NoError(t, err)
	bobBalance, err := ledger.Balance(stub, "bob")
	require.NoError(t, err)

	assert.Equal(t, uint64(600), aliceBalance)
	assert.Equal(t, uint64(400), bobBalance)
}

func TestTokenLedgerTransferValidation(t *testing.T) {
	stub := shimtest.NewMockStub("ledger_test", nil)
	ledger := NewTokenLedger()

	stub.MockTransactionStart("tx1")
	require.NoError(t, ledger.Credit(stub, "alice", 100))
	stub.MockTransactionEnd("tx1")

	tests := []struct {
		name    string
		from    string
		to      string
		amount  uint64
		wantErr error
	}{
		{"zero amount", "alice", "bob", 0, domain.ErrInvalidAmount},
		{"insufficient balance", "alice", "bob", 101, domain.ErrInsufficientBalance},
		{"unknown sender", "carol", "bob", 1, domain.ErrInsufficientBalance},
		{"self transfer", "alice", "alice", 10, domain.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub.MockTransactionStart("tx_" + tt.name)
			err := ledger.Transfer(stub, tt.from, tt.to, tt.amount)
			stub.MockTransactionEnd("tx_" + tt.name)

			assert.ErrorIs(t, err, tt.wantErr)

			// A rejected transfer must leave balances untouched
			aliceBalance, balErr := ledger.Balance(stub, "alice")
			require.NoError(t, balErr)
			assert.Equal(t, uint64(100), aliceBalance)
		})
	}
}
