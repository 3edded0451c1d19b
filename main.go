package main

import (
	"log"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/bright-beep/stacks-credit/chaincode"
)

func main() {
	microCreditChaincode := chaincode.NewMicroCreditContract()

	if err := shim.Start(microCreditChaincode); err != nil {
		log.Fatalf("Error starting MicroCredit chaincode: %v", err)
	}
}
