package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/bright-beep/stacks-credit/domain"
	"github.com/bright-beep/stacks-credit/services"
	"github.com/bright-beep/stacks-credit/shared/config"
	"github.com/bright-beep/stacks-credit/shared/interfaces"
	sharedservices "github.com/bright-beep/stacks-credit/shared/services"
	"github.com/bright-beep/stacks-credit/shared/utils"
)

// CreditScoreHandler handles credit registry operations
type CreditScoreHandler struct {
	persistence  interfaces.PersistenceService
	eventService *services.EventService
}

// NewCreditScoreHandler creates a new credit score handler
func NewCreditScoreHandler() *CreditScoreHandler {
	return &CreditScoreHandler{
		persistence:  sharedservices.NewPersistenceService(),
		eventService: services.NewEventService(),
	}
}

// InitializeScore opens a credit profile for the calling principal at the
// baseline score. A principal gets exactly one profile, ever.
func (h *CreditScoreHandler) InitializeScore(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 1, got %d", len(args))
	}

	var req domain.InitializeScoreRequest
	if err := json.Unmarshal([]byte(args[0]), &req); err != nil {
		return nil, fmt.Errorf("failed to parse initialize score request: %v", err)
	}
	if req.ActorID == "" {
		return nil, fmt.Errorf("actorID is required: %w", domain.ErrUnauthorized)
	}

	exists, err := h.persistence.Exists(stub, config.CreditProfilePrefix+req.ActorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("profile already exists for %s: %w", req.ActorID, domain.ErrUnauthorized)
	}

	height, err := ledgerHeight(h.persistence, stub)
	if err != nil {
		return nil, err
	}

	profile := domain.NewCreditProfile(req.ActorID, height)
	if err := saveProfile(h.persistence, stub, profile); err != nil {
		return nil, err
	}

	if err := h.eventService.EmitScoreInitialized(stub, profile); err != nil {
		return nil, err
	}

	return utils.MarshalJSON(profile)
}

// GetUserScore retrieves the credit score of a user
func (h *CreditScoreHandler) GetUserScore(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 1, got %d", len(args))
	}

	profile, err := loadProfile(h.persistence, stub, args[0])
	if err != nil {
		return nil, err
	}

	return utils.MarshalJSON(domain.ScoreResult{User: profile.User, Score: profile.Score})
}

// GetUserProfile retrieves the full credit profile of a user
func (h *CreditScoreHandler) GetUserProfile(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 1, got %d", len(args))
	}

	profile, err := loadProfile(h.persistence, stub, args[0])
	if err != nil {
		return nil, err
	}

	return utils.MarshalJSON(profile)
}
