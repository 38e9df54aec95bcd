// Package events defines the envelope for domain events emitted after
// successful writes, and the Publisher the services send them through.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const (
	UserCreated  = "UserCreated"
	UserUpdated  = "UserUpdated"
	UserDeleted  = "UserDeleted"
	OrderCreated = "OrderCreated"
	OrderUpdated = "OrderUpdated"
	OrderDeleted = "OrderDeleted"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // entity id
	Payload       json.RawMessage `json:"payload"`
}

// Publisher delivers an envelope to topic. Delivery is fire-and-forget:
// the write it describes has already been committed.
type Publisher interface {
	Publish(topic string, key []byte, ev Envelope)
}

type Nop struct{}

func (Nop) Publish(string, []byte, Envelope) {}

// New builds a v1 envelope. The trace id is the request id carried by ctx.
func New(ctx context.Context, eventType, producer string, entityID int64, payload any) (Envelope, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      producer,
		TraceID:       middleware.GetReqID(ctx),
		CorrelationID: strconv.FormatInt(entityID, 10),
		Payload:       b,
	}, nil
}

// Key is the partition key for an entity, so all events of one entity
// stay ordered.
func Key(entityID int64) []byte { return []byte(strconv.FormatInt(entityID, 10)) }
