package events

import "time"

// Event types
const (
	TransferCompleted = "transfer.completed"
)

// Event is the envelope written to the stream under the "event" field.
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type TransferCompletedEvent struct {
	TransactionID      string    `json:"transactionId"`
	SourceAccountID    uint      `json:"sourceAccountId"`
	PayeeAccountID     uint      `json:"payeeAccountId"`
	PayeeAccountNumber string    `json:"payeeAccountNumber"`
	Amount             string    `json:"amount"`
	TransactionType    string    `json:"transactionType"`
	Date               time.Time `json:"date"`
}
