package memory

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/anovainvest/allocations/internal/domain"
)

const (
	systemAuthor   = "Sistema"
	defaultHub     = "Matriz"
	defaultSubject = "Renda Fixa"
	defaultKind    = "Aplicação"
)

// OrderStore — in-memory хранилище ордеров аллокаций, единственный владелец
// канонического списка. Список упорядочен: новые ордера в начале.
//
// Обновления copy-on-write: мутация заменяет только указатель затронутого
// ордера на свежую копию (со своим слайсом таймлайна); указатели остальных
// ордеров не меняются, на этом держится change detection у потребителей.
type OrderStore struct {
	mu     sync.RWMutex
	orders []*domain.Order
	now    func() time.Time
}

// Option настраивает OrderStore.
type Option func(*OrderStore)

// WithClock подменяет источник времени (для тестов и фикстур).
func WithClock(now func() time.Time) Option {
	return func(s *OrderStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewOrderStore создаёт пустое хранилище ордеров.
func NewOrderStore(options ...Option) *OrderStore {
	s := &OrderStore{now: time.Now}
	for _, option := range options {
		option(s)
	}
	return s
}

// Load заменяет содержимое хранилища готовым списком (seed, тесты).
// Ордеры копируются, внешние ссылки на вход не удерживаются.
func (s *OrderStore) Load(orders []domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = make([]*domain.Order, 0, len(orders))
	for i := range orders {
		s.orders = append(s.orders, orders[i].Clone())
	}
}

// CreateOrder создаёт ордер из предвалидированного входа: присваивает
// последовательный id ORD-NNN, ставит текущую дату, favorite=false и пишет
// первое Log-событие. Новый ордер встаёт в начало списка.
func (s *OrderStore) CreateOrder(input domain.CreateOrderInput) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := domain.FormatCreatedDate(s.now())

	order := &domain.Order{
		ID:            fmt.Sprintf("ORD-%03d", len(s.orders)+1),
		Account:       input.Account,
		ClientName:    input.ClientName,
		Assessor:      input.Assessor,
		Hub:           orDefault(input.Hub, defaultHub),
		Subject:       orDefault(input.Subject, defaultSubject),
		Kind:          orDefault(input.Kind, defaultKind),
		Status:        input.Status,
		TotalCentavos: input.TotalCentavos,
		Assets:        append([]domain.AssetAllocation(nil), input.Assets...),
		IsFavorite:    false,
		CreatedDate:   now,
		Timeline: []domain.TimelineEvent{
			{
				Seq:       1,
				Kind:      domain.EventKindLog,
				Author:    systemAuthor,
				Timestamp: now,
				Content:   fmt.Sprintf("Ordem criada por %s.", input.Assessor),
			},
		},
	}
	if order.Status == "" {
		order.Status = domain.OrderStatusOpen
	}

	s.orders = append([]*domain.Order{order}, s.orders...)
	return *order.Clone()
}

// UpdateStatus устанавливает новый статус и дописывает ровно одно Log-событие.
// Легальность перехода сознательно не проверяется: любой статус может перейти
// в любой. Отсутствующий id — тихий no-op.
func (s *OrderStore) UpdateStatus(orderID string, status domain.OrderStatus, reason string) {
	content := fmt.Sprintf("Status alterado para %s.", status)
	if reason != "" {
		content = fmt.Sprintf("Status alterado para %s: %s", status, reason)
	}

	s.mutate(orderID, func(order *domain.Order) {
		order.Status = status
		s.appendEventLocked(order, domain.EventKindLog, systemAuthor, content, "")
	})
}

// AddComment дописывает ровно одно Comment-событие. Пустой (после trim)
// текст — тихий no-op, таймлайн не меняется.
func (s *OrderStore) AddComment(orderID, author, text string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}

	s.mutate(orderID, func(order *domain.Order) {
		s.appendEventLocked(order, domain.EventKindComment, author, trimmed, "")
	})
}

// AttachFile дописывает одно File-событие с именем приложенного документа.
// Пустое имя файла — тихий no-op.
func (s *OrderStore) AttachFile(orderID, author, fileName, content string) {
	if strings.TrimSpace(fileName) == "" {
		return
	}

	s.mutate(orderID, func(order *domain.Order) {
		s.appendEventLocked(order, domain.EventKindFile, author, content, fileName)
	})
}

// ToggleFavorite переключает флаг избранного. Таймлайн не трогается,
// на статус не влияет. Отсутствующий id — тихий no-op.
func (s *OrderStore) ToggleFavorite(orderID string) {
	s.mutate(orderID, func(order *domain.Order) {
		order.IsFavorite = !order.IsFavorite
	})
}

// GetByID возвращает копию ордера или ErrOrderNotFound.
func (s *OrderStore) GetByID(orderID string) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, order := range s.orders {
		if order.ID == orderID {
			return *order.Clone(), nil
		}
	}
	return domain.Order{}, domain.ErrOrderNotFound
}

// List возвращает снапшот текущего списка. Слайс — копия, элементы —
// те же указатели, что в хранилище: потребители обязаны считать их
// неизменяемыми.
func (s *OrderStore) List() []*domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Order, len(s.orders))
	copy(result, s.orders)
	return result
}

// mutate находит ордер, клонирует его, применяет apply и заменяет указатель.
// Отсутствующий id — тихий no-op по контракту хранилища.
func (s *OrderStore) mutate(orderID string, apply func(order *domain.Order)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, order := range s.orders {
		if order.ID != orderID {
			continue
		}
		clone := order.Clone()
		apply(clone)
		s.orders[i] = clone
		return
	}
}

// appendEventLocked дописывает событие в конец таймлайна клона.
// Seq = len+1: счётчик последовательности, события не удаляются.
func (s *OrderStore) appendEventLocked(order *domain.Order, kind domain.EventKind, author, content, fileName string) {
	order.Timeline = append(order.Timeline, domain.TimelineEvent{
		Seq:       len(order.Timeline) + 1,
		Kind:      kind,
		Author:    author,
		Timestamp: domain.FormatCreatedDate(s.now()),
		Content:   content,
		FileName:  fileName,
	})
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

var _ domain.OrderStore = (*OrderStore)(nil)
