package domain

import "time"

// OrderStore — единственная точка чтения и мутаций по ордерам.
// Мутации по отсутствующему идентификатору — тихий no-op: вызывающая
// сторона, которой важно отличить отсутствие, обязана сначала проверить
// GetByID.
type OrderStore interface {
	// CreateOrder создаёт ордер из предвалидированного входа и возвращает его.
	CreateOrder(input CreateOrderInput) Order
	// UpdateStatus меняет статус без проверки легальности перехода
	// и дописывает ровно одно Log-событие.
	UpdateStatus(orderID string, status OrderStatus, reason string)
	// AddComment дописывает ровно одно Comment-событие; пустой текст — no-op.
	AddComment(orderID, author, text string)
	// AttachFile дописывает ровно одно File-событие; пустое имя файла — no-op.
	AttachFile(orderID, author, fileName, content string)
	// ToggleFavorite переключает флаг избранного, не трогая таймлайн.
	ToggleFavorite(orderID string)
	// GetByID возвращает ордер или ErrOrderNotFound.
	GetByID(orderID string) (Order, error)
	// List возвращает снапшот текущего списка, новые ордера в начале.
	List() []*Order
}

// CreateOrderInput — данные для создания ордера. Суммы и клиент считаются
// предвалидированными вызывающей стороной.
type CreateOrderInput struct {
	Account       string
	ClientName    string
	Assessor      string
	Hub           string
	Subject       string
	Kind          string
	Status        OrderStatus
	TotalCentavos int64
	Assets        []AssetAllocation
}

// ReferenceDataRepository отдаёт справочные данные только на чтение;
// обратного пути записи из ядра нет.
type ReferenceDataRepository interface {
	ListClients() []Client
	GetClient(account string) (Client, error)
	ListAssets() []Asset
	GetAsset(id string) (Asset, error)
}

// AnnotationRepository хранит заметки по клиенту (key-value по счёту).
type AnnotationRepository interface {
	Save(account, text string) error
	Get(account string) (string, error)
	Delete(account string) error
}

// NotificationKind — вид уведомления.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notifier показывает уведомление пользователю. Fire-and-forget:
// результат вызова не используется.
type Notifier interface {
	Show(message string, kind NotificationKind)
}

// OutboxPublisher публикует события из transactional outbox.
type OutboxPublisher interface {
	// Publish передаёт событие наружу; должен быть идемпотентным.
	Publish(event OutboxMessage) error
}

// OutboxRepository позволяет сохранять события ордеров для последующей публикации.
type OutboxRepository interface {
	Enqueue(msg OutboxMessage) (OutboxMessage, error)
	PullPending(limit int) ([]OutboxMessage, error)
	Stats() (OutboxStats, error)
	MarkSent(id string) error
	MarkFailed(id string) error
}

// OutboxMessage хранит данные для публикуемого события.
type OutboxMessage struct {
	ID            string
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
}

// OutboxStats описывает текущее состояние backlog transactional outbox.
type OutboxStats struct {
	PendingCount    int
	OldestPendingAt time.Time
}
