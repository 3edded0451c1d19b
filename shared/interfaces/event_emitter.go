package interfaces

import "github.com/hyperledger/fabric-chaincode-go/shim"

// EventPayload represents the structure of an event payload
type EventPayload struct {
	EventType  string            `json:"eventType"`
	EntityID   string            `json:"entityID"`
	EntityType string            `json:"entityType"`
	ActorID    string            `json:"actorID"`
	Timestamp  string            `json:"timestamp"`
	Data       interface{}       `json:"data"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// EventEmitter defines the interface for emitting chaincode events
type EventEmitter interface {
	EmitEvent(stub shim.ChaincodeStubInterface, eventName string, payload EventPayload) error
	CreateEventPayload(eventType, entityID, entityType, actorID string, data interface{}) EventPayload
	CreateEventPayloadWithMetadata(eventType, entityID, entityType, actorID string, data interface{}, metadata map[string]string) EventPayload
}
