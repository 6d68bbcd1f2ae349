// Package audit captures a durable record of every validation decision.
//
// Events never carry the raw account number. The account is stored as a
// SHA-256 hash so a decision can be traced back to an input without the
// audit trail becoming a store of bank account PII.
package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// Event is emitted after each validation. Keep it transport-agnostic so
// stores and sinks can fan out.
type Event struct {
	ID          uuid.UUID `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	SortCode    string    `json:"sort_code"`
	AccountHash string    `json:"account_hash"`
	Verdict     string    `json:"verdict"`
	Attempts    int       `json:"attempts"`
	RequestID   string    `json:"request_id,omitempty"`
	ClientIP    string    `json:"client_ip,omitempty"`
}

// HashAccount returns the hex-encoded SHA-256 digest of an account number.
func HashAccount(accountNumber string) string {
	sum := sha256.Sum256([]byte(accountNumber))
	return hex.EncodeToString(sum[:])
}

// Appender is the write side of an audit destination. Fire-and-forget
// sinks (message brokers) implement only this.
type Appender interface {
	Append(ctx context.Context, event Event) error
}

// Store is a queryable audit destination.
type Store interface {
	Appender
	ListRecent(ctx context.Context, limit int) ([]Event, error)
}
