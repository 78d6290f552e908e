package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"

	"github.com/anovainvest/allocations/internal/domain"
	"github.com/anovainvest/allocations/internal/messaging/kafka"
	"github.com/anovainvest/allocations/internal/metrics"
	"github.com/anovainvest/allocations/internal/service/annotations"
	"github.com/anovainvest/allocations/internal/service/cep"
	"github.com/anovainvest/allocations/internal/service/genai"
	"github.com/anovainvest/allocations/internal/service/notification"
	"github.com/anovainvest/allocations/internal/service/outbox"
	"github.com/anovainvest/allocations/internal/storage/memory"
	"github.com/anovainvest/allocations/internal/storage/postgres"
)

const (
	notificationHistoryLimit = 50
	consumerGroupID          = "allocations-notifier"
	consumerMaxRetries       = 3
)

// Dependencies содержит все зависимости приложения.
type Dependencies struct {
	Store      *memory.OrderStore
	RefData    domain.ReferenceDataRepository
	OutboxRepo domain.OutboxRepository
	Recorder   *outbox.Recorder
	Notifier   domain.Notifier
	Metrics    *metrics.AllocationMetrics

	OutboxWorker *outbox.Worker
	Autosaver    *annotations.Autosaver

	Producer *kafka.Producer
	Consumer *kafka.Consumer
	Postgres *postgres.Store
	AI       *genai.Client
	CEP      *cep.Client

	Logger *log.Entry
}

// NewDependencies создаёт и инициализирует зависимости приложения.
// Хранилище ордеров поднимается с демонстрационным набором данных;
// Kafka, Postgres и Gemini подключаются только если заданы в конфиге.
func NewDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*Dependencies, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	store := memory.NewOrderStore()
	store.Load(memory.SeedOrders())

	outboxRepo := memory.NewOutboxRepository()

	deps := &Dependencies{
		Store:      store,
		RefData:    memory.NewReferenceDataRepository(memory.SeedClients(), memory.SeedAssets()),
		OutboxRepo: outboxRepo,
		Recorder:   outbox.NewRecorder(outboxRepo),
		Notifier:   notification.NewLogNotifier(notificationHistoryLimit),
		Metrics:    metrics.NewAllocationMetrics(),
		CEP:        cep.NewClient(),
		Logger:     logger,
	}

	producer, err := initKafkaProducer(cfg.KafkaBrokers, logger)
	if err == nil && producer != nil {
		deps.Producer = producer
		deps.OutboxWorker = outbox.NewWorker(
			outboxRepo,
			kafka.NewTopicPublisher(producer, kafka.TopicOrderEvents),
			outbox.WithLogger(logger.WithField("component", "outbox-worker")),
		)

		consumer, err := kafka.NewConsumerWithDLQ(
			strings.Split(cfg.KafkaBrokers, ","),
			consumerGroupID,
			[]string{kafka.TopicOrderEvents},
			notifyOnOrderEvent(deps.Notifier),
			producer,
			consumerMaxRetries,
		)
		if err != nil {
			logger.WithError(err).Warn("failed to create kafka consumer, continuing without notifications feed")
		} else {
			deps.Consumer = consumer
		}
	}

	annotationRepo, pgStore, err := initAnnotationStorage(ctx, cfg.PostgresDSN, logger)
	if err != nil {
		return nil, err
	}
	deps.Postgres = pgStore
	deps.Autosaver = annotations.NewAutosaver(
		annotationRepo,
		annotations.WithLogger(logger.WithField("component", "annotations")),
		annotations.WithFlushInterval(cfg.AutosaveInterval),
	)

	if cfg.GeminiAPIKey != "" {
		aiClient, err := genai.NewClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			logger.WithError(err).Warn("failed to create gemini client, continuing without AI assistant")
		} else {
			deps.AI = aiClient
			logger.Info("gemini client initialized")
		}
	}

	return deps, nil
}

// Close освобождает внешние ресурсы.
func (d *Dependencies) Close(logger *log.Entry) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	if d.Consumer != nil {
		if err := d.Consumer.Stop(); err != nil {
			logger.WithError(err).Warn("failed to stop kafka consumer")
		}
	}
	closeKafka(d.Producer, logger)

	if d.Postgres != nil {
		if err := d.Postgres.Close(); err != nil {
			logger.WithError(err).Warn("failed to close postgres store")
		}
	}
}

// notifyOnOrderEvent превращает события ордеров из Kafka в уведомления.
func notifyOnOrderEvent(notifier domain.Notifier) kafka.MessageHandler {
	return func(_ context.Context, message *sarama.ConsumerMessage) error {
		event, err := kafka.ParseOrderEvent(message)
		if err != nil {
			return err
		}
		notifier.Show(fmt.Sprintf("Ordem %s: %s", event.OrderID, event.EventType), domain.NotificationSuccess)
		return nil
	}
}

// initKafkaProducer инициализирует Kafka producer если brokers не пустой.
// Возвращает nil, nil если brokers пустой или если произошла ошибка.
func initKafkaProducer(brokers string, logger *log.Entry) (*kafka.Producer, error) {
	if brokers == "" {
		return nil, nil
	}

	brokerList := strings.Split(brokers, ",")
	producer, err := kafka.NewProducer(brokerList)
	if err != nil {
		logger.WithError(err).Warn("failed to create kafka producer, continuing without kafka")
		return nil, err
	}

	logger.WithField("brokers", brokerList).Info("kafka producer initialized")
	return producer, nil
}

// closeKafka закрывает Kafka producer если он не nil.
func closeKafka(producer *kafka.Producer, logger *log.Entry) {
	if producer == nil {
		return
	}

	if err := producer.Close(); err != nil {
		logger.WithError(err).Warn("failed to close kafka producer")
	} else {
		logger.Info("kafka producer closed")
	}
}

// initAnnotationStorage выбирает хранилище заметок: Postgres при заданном
// DSN, иначе in-memory. Схема применяется на старте.
func initAnnotationStorage(ctx context.Context, dsn string, logger *log.Entry) (domain.AnnotationRepository, *postgres.Store, error) {
	if dsn == "" {
		return memory.NewAnnotationRepository(), nil, nil
	}

	store, err := postgres.Open(ctx, dsn)
	if err != nil {
		return nil, nil, err
	}
	if err := store.EnsureSchema(ctx); err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	logger.Info("postgres annotation storage initialized")
	return postgres.NewAnnotationRepository(store), store, nil
}
