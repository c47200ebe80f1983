package messaging

import (
	"encoding/json"
	"time"
)

// Ledger mutations announced on the exchange.
const (
	ActionAdd   = "add"
	ActionUndo  = "undo"
	ActionReset = "reset"
)

// LedgerChangedMessage is a lightweight notification that the ledger was mutated.
// Consumers fetch the current state from the API; only counts travel on the wire.
type LedgerChangedMessage struct {
	Action           string    `json:"action"`
	Added            int       `json:"added,omitempty"`
	TransactionCount int       `json:"transactionCount"`
	HistoryDepth     int       `json:"historyDepth"`
	Timestamp        time.Time `json:"timestamp"`
}

// NewLedgerChangedMessage creates a notification stamped with the current time
func NewLedgerChangedMessage(action string, added, transactionCount, historyDepth int) *LedgerChangedMessage {
	return &LedgerChangedMessage{
		Action:           action,
		Added:            added,
		TransactionCount: transactionCount,
		HistoryDepth:     historyDepth,
		Timestamp:        time.Now().UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *LedgerChangedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// LedgerChangedMessageFromJSON creates a message from JSON bytes
func LedgerChangedMessageFromJSON(data []byte) (*LedgerChangedMessage, error) {
	var msg LedgerChangedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
