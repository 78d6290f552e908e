package kafka

import "time"

// EventType определяет тип события
type EventType string

const (
	// События жизненного цикла ордера аллокации
	EventTypeOrderCreated    EventType = "allocation.order.created"
	EventTypeStatusChanged   EventType = "allocation.order.status_changed"
	EventTypeCommentAdded    EventType = "allocation.order.comment_added"
	EventTypeFileAttached    EventType = "allocation.order.file_attached"
	EventTypeFavoriteToggled EventType = "allocation.order.favorite_toggled"
)

// Topics для Kafka
const (
	TopicOrderEvents     = "allocations.order.events"
	TopicDeadLetterQueue = "allocations.dlq" // Dead Letter Queue для failed messages
)

// Kafka headers для retry логики
const (
	HeaderRetryCount    = "x-retry-count"
	HeaderOriginalTopic = "x-original-topic"
	HeaderErrorMessage  = "x-error-message"
	HeaderFailedAt      = "x-failed-at"
)

// OrderEvent представляет событие ордера аллокации
type OrderEvent struct {
	EventType EventType              `json:"event_type"`
	OrderID   string                 `json:"order_id"`
	Account   string                 `json:"account"`
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// NewOrderEvent создает новое событие ордера
func NewOrderEvent(eventType EventType, orderID, account, status string, metadata map[string]interface{}) *OrderEvent {
	return &OrderEvent{
		EventType: eventType,
		OrderID:   orderID,
		Account:   account,
		Status:    status,
		Timestamp: time.Now(),
		Metadata:  metadata,
	}
}
