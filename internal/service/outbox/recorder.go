package outbox

import (
	"encoding/json"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/anovainvest/allocations/internal/domain"
)

// Recorder складывает события жизненного цикла ордера в outbox.
// Ошибка постановки в очередь логируется и не прерывает операцию:
// экспорт событий вторичен по отношению к самой мутации.
type Recorder struct {
	repo   domain.OutboxRepository
	logger *log.Entry
	now    func() time.Time
}

// NewRecorder создаёт recorder поверх репозитория outbox. Nil-репозиторий
// допустим: все записи становятся no-op (Kafka-экспорт выключен).
func NewRecorder(repo domain.OutboxRepository) *Recorder {
	return &Recorder{
		repo:   repo,
		logger: log.WithField("component", "outbox-recorder"),
		now:    time.Now,
	}
}

type orderEventPayload struct {
	EventType string    `json:"event_type"`
	OrderID   string    `json:"order_id"`
	Account   string    `json:"account"`
	Status    string    `json:"status"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// RecordOrderEvent ставит событие ордера в очередь на публикацию.
func (r *Recorder) RecordOrderEvent(eventType string, order domain.Order, detail string) {
	if r == nil || r.repo == nil {
		return
	}

	payload, err := json.Marshal(orderEventPayload{
		EventType: eventType,
		OrderID:   order.ID,
		Account:   order.Account,
		Status:    string(order.Status),
		Detail:    detail,
		Timestamp: r.now().UTC(),
	})
	if err != nil {
		r.logger.WithError(err).WithField("order_id", order.ID).Warn("failed to marshal order event")
		return
	}

	if _, err := r.repo.Enqueue(domain.OutboxMessage{
		AggregateType: "order",
		AggregateID:   order.ID,
		EventType:     eventType,
		Payload:       payload,
	}); err != nil {
		r.logger.WithError(err).WithFields(log.Fields{
			"order_id":   order.ID,
			"event_type": eventType,
		}).Warn("failed to enqueue order event")
	}
}
