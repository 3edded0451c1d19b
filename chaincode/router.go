package chaincode

import (
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/bright-beep/stacks-credit/handlers"
	"github.com/bright-beep/stacks-credit/services"
)

// Router handles function routing for the micro-credit chaincode
type Router struct {
	handlers map[string]func(shim.ChaincodeStubInterface, []string) ([]byte, error)
}

// NewRouter creates a new router with all handler mappings
func NewRouter() *Router {
	ledger := services.NewTokenLedger()
	creditHandler := handlers.NewCreditScoreHandler()
	loanHandler := handlers.NewLoanHandler(ledger)
	adminHandler := handlers.NewAdminHandler(ledger)

	return &Router{
		handlers: map[string]func(shim.ChaincodeStubInterface, []string) ([]byte, error){
			// Credit registry functions
			"InitializeScore": creditHandler.InitializeScore,
			"GetUserScore":    creditHandler.GetUserScore,
			"GetUserProfile":  creditHandler.GetUserProfile,

			// Loan lifecycle functions
			"RequestLoan":        loanHandler.RequestLoan,
			"RepayLoan":          loanHandler.RepayLoan,
			"GetLoan":            loanHandler.GetLoan,
			"GetUserActiveLoans": loanHandler.GetUserActiveLoans,
			"GetLoanHistory":     loanHandler.GetLoanHistory,

			// Administrative functions
			"MarkLoanDefaulted":  adminHandler.MarkLoanDefaulted,
			"AnchorLedgerHeight": adminHandler.AnchorLedgerHeight,
			"FundAccount":        adminHandler.FundAccount,
			"GetPlatformStats":   adminHandler.GetPlatformStats,
			"GetBalance":         adminHandler.GetBalance,
		},
	}
}

// Route routes the function call to the appropriate handler
func (r *Router) Route(stub shim.ChaincodeStubInterface, function string, args []string) ([]byte, error) {
	handler, exists := r.handlers[function]
	if !exists {
		return nil, fmt.Errorf("function %s not found", function)
	}

	return handler(stub, args)
}
