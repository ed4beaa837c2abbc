package crm

import (
	"encoding/json"
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

const (
	EventOrderCreated = "OrderCreated"
	EventOrderUpdated = "OrderUpdated"
	EventOrderDeleted = "OrderDeleted"
)

// All order lifecycle events share one topic; consumers switch on the
// x-event-type header.
const TopicOrderEvents = "crm.order.events"

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id"` // order id
	Payload       json.RawMessage `json:"payload"`
}

type OrderEventPayload struct {
	OrderID  string      `json:"order_id"`
	SellerID string      `json:"seller_id"`
	ClientID string      `json:"client_id"`
	Items    []OrderItem `json:"items,omitempty"`
	Total    float64     `json:"total"`
	Status   Status      `json:"status"`
}

// Partition key = order id so events for one order keep their order.
func PartitionKey(orderID string) []byte { return []byte(orderID) }

// EventPublisher is satisfied by kafkax.Producer. A nil publisher
// disables eventing.
type EventPublisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}
