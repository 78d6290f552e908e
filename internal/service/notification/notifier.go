// Package notification реализует порт уведомлений оператора.
package notification

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/anovainvest/allocations/internal/domain"
)

// LogNotifier пишет уведомления в структурированный лог и хранит
// ограниченную историю последних сообщений.
type LogNotifier struct {
	logger  *log.Entry
	mu      sync.Mutex
	history []Notification
	limit   int
}

// Notification — одно показанное уведомление.
type Notification struct {
	Message string
	Kind    domain.NotificationKind
}

// NewLogNotifier создаёт notifier с историей на limit сообщений.
func NewLogNotifier(limit int) *LogNotifier {
	if limit <= 0 {
		limit = 50
	}
	return &LogNotifier{
		logger: log.WithField("component", "notifier"),
		limit:  limit,
	}
}

// Show публикует уведомление. Ошибки уходят в Error-лог, остальное в Info.
func (n *LogNotifier) Show(message string, kind domain.NotificationKind) {
	entry := n.logger.WithField("kind", string(kind))
	if kind == domain.NotificationError {
		entry.Error(message)
	} else {
		entry.Info(message)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.history = append(n.history, Notification{Message: message, Kind: kind})
	if len(n.history) > n.limit {
		n.history = n.history[len(n.history)-n.limit:]
	}
}

// History возвращает копию истории уведомлений, старые первыми.
func (n *LogNotifier) History() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	result := make([]Notification, len(n.history))
	copy(result, n.history)
	return result
}

var _ domain.Notifier = (*LogNotifier)(nil)
