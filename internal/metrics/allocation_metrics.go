package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/anovainvest/allocations/internal/domain"
)

// AllocationMetrics содержит метрики жизненного цикла ордеров аллокаций.
type AllocationMetrics struct {
	// Счётчики операций
	ordersCreated    prometheus.Counter
	statusChanges    *prometheus.CounterVec
	commentsAdded    prometheus.Counter
	filesAttached    prometheus.Counter
	favoriteToggles  prometheus.Counter
	timelineEvents   prometheus.Counter
	outboxEvents     prometheus.Counter
	staleAIResponses prometheus.Counter

	// Гистограмма длительности операций хранилища
	operationDuration *prometheus.HistogramVec

	// Gauge по статусам для карточек дашборда
	ordersByStatus *prometheus.GaugeVec
}

// NewAllocationMetrics создаёт метрики на default-регистраторе.
func NewAllocationMetrics() *AllocationMetrics {
	return newAllocationMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newAllocationMetricsWithRegisterer(registerer prometheus.Registerer) *AllocationMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &AllocationMetrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "alloc_orders_created_total",
			Help: "Total number of allocation orders created",
		}),
		statusChanges: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "alloc_status_changes_total",
			Help: "Total number of order status changes",
		}, []string{"status"}),
		commentsAdded: registerCounter(registerer, prometheus.CounterOpts{
			Name: "alloc_comments_added_total",
			Help: "Total number of timeline comments added",
		}),
		filesAttached: registerCounter(registerer, prometheus.CounterOpts{
			Name: "alloc_files_attached_total",
			Help: "Total number of files attached to orders",
		}),
		favoriteToggles: registerCounter(registerer, prometheus.CounterOpts{
			Name: "alloc_favorite_toggles_total",
			Help: "Total number of favorite flag toggles",
		}),
		timelineEvents: registerCounter(registerer, prometheus.CounterOpts{
			Name: "alloc_timeline_events_total",
			Help: "Total number of timeline events recorded",
		}),
		outboxEvents: registerCounter(registerer, prometheus.CounterOpts{
			Name: "alloc_outbox_events_total",
			Help: "Total number of outbox events enqueued",
		}),
		staleAIResponses: registerCounter(registerer, prometheus.CounterOpts{
			Name: "alloc_ai_stale_responses_total",
			Help: "Total number of AI responses discarded as stale",
		}),
		operationDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "alloc_store_operation_duration_seconds",
			Help:    "Duration of order store operations in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
		}, []string{"operation"}),
		ordersByStatus: registerGaugeVec(registerer, prometheus.GaugeOpts{
			Name: "alloc_orders_by_status",
			Help: "Current number of orders per status",
		}, []string{"status"}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerGaugeVec(registerer prometheus.Registerer, opts prometheus.GaugeOpts, labels []string) *prometheus.GaugeVec {
	collector := prometheus.NewGaugeVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.GaugeVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOrderCreated увеличивает счётчик созданных ордеров.
func (m *AllocationMetrics) RecordOrderCreated() {
	m.ordersCreated.Inc()
	m.timelineEvents.Inc()
}

// RecordStatusChange увеличивает счётчик смен статуса с меткой нового статуса.
func (m *AllocationMetrics) RecordStatusChange(status domain.OrderStatus) {
	m.statusChanges.WithLabelValues(string(status)).Inc()
	m.timelineEvents.Inc()
}

// RecordCommentAdded увеличивает счётчик комментариев.
func (m *AllocationMetrics) RecordCommentAdded() {
	m.commentsAdded.Inc()
	m.timelineEvents.Inc()
}

// RecordFileAttached увеличивает счётчик приложенных файлов.
func (m *AllocationMetrics) RecordFileAttached() {
	m.filesAttached.Inc()
	m.timelineEvents.Inc()
}

// RecordFavoriteToggle увеличивает счётчик переключений избранного.
func (m *AllocationMetrics) RecordFavoriteToggle() {
	m.favoriteToggles.Inc()
}

// RecordOutboxEvent увеличивает счётчик событий outbox.
func (m *AllocationMetrics) RecordOutboxEvent() {
	m.outboxEvents.Inc()
}

// RecordStaleAIResponse увеличивает счётчик отброшенных устаревших AI-ответов.
func (m *AllocationMetrics) RecordStaleAIResponse() {
	m.staleAIResponses.Inc()
}

// RecordOperationDuration записывает длительность операции хранилища.
func (m *AllocationMetrics) RecordOperationDuration(operation string, duration time.Duration) {
	m.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetOrdersByStatus выставляет gauge текущего распределения ордеров по статусам.
func (m *AllocationMetrics) SetOrdersByStatus(counts map[domain.OrderStatus]int) {
	for status, count := range counts {
		m.ordersByStatus.WithLabelValues(string(status)).Set(float64(count))
	}
}
