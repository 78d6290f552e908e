package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/anovainvest/allocations/internal/domain"
	"github.com/anovainvest/allocations/internal/service/annotations"
	"github.com/anovainvest/allocations/internal/service/cep"
	grpcsvc "github.com/anovainvest/allocations/internal/service/grpc"
	"github.com/anovainvest/allocations/internal/service/notification"
	"github.com/anovainvest/allocations/internal/service/outbox"
	"github.com/anovainvest/allocations/internal/storage/memory"
	allocationsv1 "github.com/anovainvest/allocations/proto/allocations/v1"
)

// AllocationLifecycleTestSuite тестирует полный жизненный цикл ордера
// аллокации: создание, смену статусов, таймлайн и публикацию событий.
type AllocationLifecycleTestSuite struct {
	suite.Suite
	service    *grpcsvc.AllocationService
	store      *memory.OrderStore
	outboxRepo domain.OutboxRepository
	notifier   *notification.LogNotifier
}

func (suite *AllocationLifecycleTestSuite) SetupTest() {
	baseLogger := log.New()
	baseLogger.SetLevel(log.WarnLevel) // Уменьшаем шум в тестах
	logger := baseLogger.WithField("component", "integration-test")

	suite.store = memory.NewOrderStore()
	suite.store.Load(memory.SeedOrders())
	suite.outboxRepo = memory.NewOutboxRepository()
	suite.notifier = notification.NewLogNotifier(20)

	suite.service = grpcsvc.NewAllocationService(
		suite.store,
		memory.NewReferenceDataRepository(memory.SeedClients(), memory.SeedAssets()),
		outbox.NewRecorder(suite.outboxRepo),
		suite.notifier,
		nil,
		logger,
	)
}

func (suite *AllocationLifecycleTestSuite) TestFullOrderLifecycle() {
	ctx := context.Background()

	// 1. Создаём ордер
	createResp, err := suite.service.CreateOrder(ctx, &allocationsv1.CreateOrderRequest{
		Account:       "8574921",
		Assessor:      "Ana Costa",
		TotalCentavos: 2500000, // R$ 25.000,00
		Assets: []*allocationsv1.AssetAllocation{
			{AssetId: "CDB001", AmountCentavos: 1500000},
			{AssetId: "LCI001", AmountCentavos: 1000000},
		},
	})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "ORD-007", createResp.Order.Id)
	require.Equal(suite.T(), allocationsv1.OrderStatus_ORDER_STATUS_OPEN, createResp.Order.Status)
	require.Len(suite.T(), createResp.Order.Timeline, 1)

	orderID := createResp.Order.Id

	// 2. Берём ордер в обработку
	statusResp, err := suite.service.UpdateOrderStatus(ctx, &allocationsv1.UpdateOrderStatusRequest{
		OrderId: orderID,
		Status:  allocationsv1.OrderStatus_ORDER_STATUS_IN_TREATMENT,
	})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), allocationsv1.OrderStatus_ORDER_STATUS_IN_TREATMENT, statusResp.Order.Status)
	require.Len(suite.T(), statusResp.Order.Timeline, 2)
	require.Equal(suite.T(), "Status alterado para Em Tratamento.", statusResp.Order.Timeline[1].Content)

	// 3. Комментарий и документ
	_, err = suite.service.AddComment(ctx, &allocationsv1.AddCommentRequest{
		OrderId: orderID,
		Author:  "Ana Costa",
		Text:    "Cliente confirmou a alocação por telefone.",
	})
	require.NoError(suite.T(), err)

	fileResp, err := suite.service.AttachFile(ctx, &allocationsv1.AttachFileRequest{
		OrderId:  orderID,
		Author:   "Ana Costa",
		FileName: "termo-de-adesao.pdf",
	})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), fileResp.Order.Timeline, 4)

	// 4. Исполняем с причиной
	execResp, err := suite.service.UpdateOrderStatus(ctx, &allocationsv1.UpdateOrderStatusRequest{
		OrderId: orderID,
		Status:  allocationsv1.OrderStatus_ORDER_STATUS_EXECUTED,
		Reason:  "liquidação confirmada",
	})
	require.NoError(suite.T(), err)

	last := execResp.Order.Timeline[len(execResp.Order.Timeline)-1]
	require.Equal(suite.T(), "Status alterado para Executada: liquidação confirmada", last.Content)
	require.Equal(suite.T(), int32(5), last.Seq)

	// 5. Избранное и финальное состояние
	_, err = suite.service.ToggleFavorite(ctx, &allocationsv1.ToggleFavoriteRequest{OrderId: orderID})
	require.NoError(suite.T(), err)

	getResp, err := suite.service.GetOrder(ctx, &allocationsv1.GetOrderRequest{OrderId: orderID})
	require.NoError(suite.T(), err)
	require.True(suite.T(), getResp.Order.IsFavorite)
	require.Equal(suite.T(), allocationsv1.OrderStatus_ORDER_STATUS_EXECUTED, getResp.Order.Status)
	require.Len(suite.T(), getResp.Order.Timeline, 5)

	// 6. Каждая операция оставила событие в outbox
	stats, err := suite.outboxRepo.Stats()
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 6, stats.PendingCount)
}

func (suite *AllocationLifecycleTestSuite) TestOutboxDelivery() {
	ctx := context.Background()

	_, err := suite.service.UpdateOrderStatus(ctx, &allocationsv1.UpdateOrderStatusRequest{
		OrderId: "ORD-002",
		Status:  allocationsv1.OrderStatus_ORDER_STATUS_EXECUTED,
		Reason:  "cliente confirmou",
	})
	require.NoError(suite.T(), err)

	// Публикуем накопленные события через воркер с publisher-заглушкой.
	published := &capturingPublisher{}
	worker := outbox.NewWorker(suite.outboxRepo, published)
	worker.ProcessOnce(ctx)

	require.Len(suite.T(), published.events, 1)
	require.Equal(suite.T(), "allocation.order.status_changed", published.events[0].EventType)
	require.Equal(suite.T(), "ORD-002", published.events[0].AggregateID)

	stats, err := suite.outboxRepo.Stats()
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 0, stats.PendingCount)
}

func (suite *AllocationLifecycleTestSuite) TestDashboardViewAfterMutations() {
	ctx := context.Background()

	// Закрываем открытый ордер и проверяем, что счётчики согласованы.
	_, err := suite.service.UpdateOrderStatus(ctx, &allocationsv1.UpdateOrderStatusRequest{
		OrderId: "ORD-002",
		Status:  allocationsv1.OrderStatus_ORDER_STATUS_CLOSED,
	})
	require.NoError(suite.T(), err)

	counts, err := suite.service.GetStatusCounts(ctx, &allocationsv1.GetStatusCountsRequest{})
	require.NoError(suite.T(), err)

	var total int32
	for _, count := range counts.Counts {
		total += count.Count

		filtered, err := suite.service.ListOrders(ctx, &allocationsv1.ListOrdersRequest{StatusFilter: count.Status})
		require.NoError(suite.T(), err)
		require.Equal(suite.T(), int(count.Count), len(filtered.Orders))
	}
	require.Equal(suite.T(), int32(6), total)
}

func (suite *AllocationLifecycleTestSuite) TestAssistantAnnotationsAndCep() {
	ctx := context.Background()

	viacep := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"cep":"01310-100","logradouro":"Avenida Paulista","bairro":"Bela Vista","localidade":"São Paulo","uf":"SP"}`))
	}))
	defer viacep.Close()

	notes := annotations.NewAutosaver(memory.NewAnnotationRepository())
	assistant := grpcsvc.NewAssistantService(
		nil,
		cep.NewClient(cep.WithBaseURL(viacep.URL)),
		notes,
		nil,
	)

	// Черновик заметки буферизуется, финальная версия сохраняется сразу.
	_, err := assistant.SaveAnnotation(ctx, &allocationsv1.SaveAnnotationRequest{
		Account: "8574921",
		Text:    "rascunho",
	})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 1, notes.Pending())

	_, err = assistant.SaveAnnotation(ctx, &allocationsv1.SaveAnnotationRequest{
		Account: "8574921",
		Text:    "Cliente quer migrar para renda fixa.",
		Final:   true,
	})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 0, notes.Pending())

	noteResp, err := assistant.GetAnnotation(ctx, &allocationsv1.GetAnnotationRequest{Account: "8574921"})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "Cliente quer migrar para renda fixa.", noteResp.Text)

	// Поиск адреса проходит через настоящий HTTP-клиент ViaCEP.
	cepResp, err := assistant.LookupCep(ctx, &allocationsv1.LookupCepRequest{Cep: "01310-100"})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "Avenida Paulista", cepResp.Address.Street)
	require.Equal(suite.T(), "SP", cepResp.Address.State)

	// Без сконфигурированного Gemini операции ассистента отвечают
	// FailedPrecondition, а не падают.
	_, err = assistant.AnalyzeDocument(ctx, &allocationsv1.AnalyzeDocumentRequest{
		Data:     []byte("fake"),
		MimeType: "image/png",
	})
	require.Equal(suite.T(), codes.FailedPrecondition, status.Code(err))
}

type capturingPublisher struct {
	events []domain.OutboxMessage
}

func (p *capturingPublisher) Publish(event domain.OutboxMessage) error {
	p.events = append(p.events, event)
	return nil
}

func TestAllocationLifecycle(t *testing.T) {
	suite.Run(t, new(AllocationLifecycleTestSuite))
}
