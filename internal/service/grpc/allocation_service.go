package grpcsvc

import (
	"context"
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/anovainvest/allocations/internal/domain"
	"github.com/anovainvest/allocations/internal/messaging/kafka"
	"github.com/anovainvest/allocations/internal/metrics"
	"github.com/anovainvest/allocations/internal/service/outbox"
	"github.com/anovainvest/allocations/internal/view"
	allocationsv1 "github.com/anovainvest/allocations/proto/allocations/v1"
)

// AllocationService реализует gRPC API поверх хранилища ордеров.
// Хранилище доверяет входу, поэтому вся валидация выполняется здесь,
// до мутации: тихие no-op хранилища не должны маскировать ошибки клиента.
type AllocationService struct {
	allocationsv1.UnimplementedAllocationServiceServer

	store    domain.OrderStore
	refdata  domain.ReferenceDataRepository
	recorder *outbox.Recorder
	notifier domain.Notifier
	metrics  *metrics.AllocationMetrics
	logger   *log.Entry
}

// NewAllocationService конструирует сервис с зависимостями. store и refdata
// обязательны; recorder, notifier и metrics опциональны: nil отключает
// соответствующий канал.
func NewAllocationService(
	store domain.OrderStore,
	refdata domain.ReferenceDataRepository,
	recorder *outbox.Recorder,
	notifier domain.Notifier,
	allocMetrics *metrics.AllocationMetrics,
	logger *log.Entry,
) *AllocationService {
	if logger == nil {
		logger = log.New().WithField("component", "allocation-service")
	}
	return &AllocationService{
		store:    store,
		refdata:  refdata,
		recorder: recorder,
		notifier: notifier,
		metrics:  allocMetrics,
		logger:   logger,
	}
}

// CreateOrder создаёт ордер аллокации для существующего клиента.
func (s *AllocationService) CreateOrder(_ context.Context, req *allocationsv1.CreateOrderRequest) (*allocationsv1.CreateOrderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.Account == "" {
		return nil, status.Error(codes.InvalidArgument, "account is required")
	}

	client, err := s.refdata.GetClient(req.Account)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return nil, status.Error(codes.NotFound, domain.ErrClientNotFound.Error())
		}
		s.logger.WithError(err).WithField("account", req.Account).Error("failed to resolve client")
		return nil, status.Error(codes.Internal, "failed to resolve client")
	}

	assets := make([]domain.AssetAllocation, 0, len(req.Assets))
	for idx, alloc := range req.Assets {
		if alloc == nil {
			return nil, status.Errorf(codes.InvalidArgument, "assets[%d] is nil", idx)
		}
		if _, err := s.refdata.GetAsset(alloc.AssetId); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "assets[%d]: unknown asset %q", idx, alloc.AssetId)
		}
		assets = append(assets, domain.AssetAllocation{
			AssetID:        alloc.AssetId,
			AmountCentavos: alloc.AmountCentavos,
		})
	}

	assessor := req.Assessor
	if assessor == "" {
		assessor = client.Assessor
	}

	orderStatus := fromProtoStatus(req.Status)
	if req.Status != allocationsv1.OrderStatus_ORDER_STATUS_UNSPECIFIED && orderStatus == "" {
		return nil, status.Error(codes.InvalidArgument, "unknown order status")
	}

	candidate := domain.Order{
		Account:       req.Account,
		ClientName:    client.Name,
		Assessor:      assessor,
		Status:        orderStatus,
		TotalCentavos: req.TotalCentavos,
		Assets:        assets,
	}
	if errs := candidate.ValidateInvariants(); len(errs) > 0 {
		return nil, status.Error(codes.InvalidArgument, joinErrors(errs))
	}

	started := time.Now()
	order := s.store.CreateOrder(domain.CreateOrderInput{
		Account:       req.Account,
		ClientName:    client.Name,
		Assessor:      assessor,
		Hub:           req.Hub,
		Subject:       req.Subject,
		Kind:          req.Kind,
		Status:        orderStatus,
		TotalCentavos: req.TotalCentavos,
		Assets:        assets,
	})
	s.observe("create_order", started)

	if s.metrics != nil {
		s.metrics.RecordOrderCreated()
	}
	s.recordEvent(kafka.EventTypeOrderCreated, order, "")
	s.notify("Ordem criada com sucesso!", domain.NotificationSuccess)

	return &allocationsv1.CreateOrderResponse{Order: toProtoOrder(order)}, nil
}

// GetOrder возвращает ордер вместе с таймлайном.
func (s *AllocationService) GetOrder(_ context.Context, req *allocationsv1.GetOrderRequest) (*allocationsv1.GetOrderResponse, error) {
	if req == nil || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	order, err := s.loadOrder(req.OrderId, "GetOrder")
	if err != nil {
		return nil, err
	}

	return &allocationsv1.GetOrderResponse{Order: toProtoOrder(order)}, nil
}

// ListOrders возвращает отфильтрованный и отсортированный список:
// избранные выше, внутри групп новые выше.
func (s *AllocationService) ListOrders(_ context.Context, req *allocationsv1.ListOrdersRequest) (*allocationsv1.ListOrdersResponse, error) {
	if req == nil {
		req = &allocationsv1.ListOrdersRequest{}
	}

	filter := view.Filter{
		Status: fromProtoStatus(req.StatusFilter),
		Term:   req.Term,
	}

	orders := view.FilterAndSort(s.store.List(), filter)
	result := make([]*allocationsv1.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, toProtoOrder(*order))
	}

	return &allocationsv1.ListOrdersResponse{Orders: result}, nil
}

// UpdateOrderStatus переводит ордер в новый статус. Переход разрешён из
// любого статуса в любой; причина, если задана, попадает в запись таймлайна.
func (s *AllocationService) UpdateOrderStatus(_ context.Context, req *allocationsv1.UpdateOrderStatusRequest) (*allocationsv1.UpdateOrderStatusResponse, error) {
	if req == nil || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	newStatus := fromProtoStatus(req.Status)
	if newStatus == "" {
		return nil, status.Error(codes.InvalidArgument, "status is required")
	}

	if _, err := s.loadOrder(req.OrderId, "UpdateOrderStatus"); err != nil {
		return nil, err
	}

	started := time.Now()
	s.store.UpdateStatus(req.OrderId, newStatus, strings.TrimSpace(req.Reason))
	s.observe("update_status", started)

	order, err := s.loadOrder(req.OrderId, "UpdateOrderStatusReload")
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordStatusChange(newStatus)
	}
	s.recordEvent(kafka.EventTypeStatusChanged, order, string(newStatus))
	s.notify("Status atualizado para "+string(newStatus)+".", domain.NotificationSuccess)

	return &allocationsv1.UpdateOrderStatusResponse{Order: toProtoOrder(order)}, nil
}

// AddComment дописывает комментарий в таймлайн ордера.
func (s *AllocationService) AddComment(_ context.Context, req *allocationsv1.AddCommentRequest) (*allocationsv1.AddCommentResponse, error) {
	if req == nil || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, status.Error(codes.InvalidArgument, "comment text is required")
	}

	if _, err := s.loadOrder(req.OrderId, "AddComment"); err != nil {
		return nil, err
	}

	started := time.Now()
	s.store.AddComment(req.OrderId, req.Author, req.Text)
	s.observe("add_comment", started)

	order, err := s.loadOrder(req.OrderId, "AddCommentReload")
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordCommentAdded()
	}
	s.recordEvent(kafka.EventTypeCommentAdded, order, "")

	return &allocationsv1.AddCommentResponse{Order: toProtoOrder(order)}, nil
}

// AttachFile регистрирует приложенный документ в таймлайне ордера.
func (s *AllocationService) AttachFile(_ context.Context, req *allocationsv1.AttachFileRequest) (*allocationsv1.AttachFileResponse, error) {
	if req == nil || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}
	if strings.TrimSpace(req.FileName) == "" {
		return nil, status.Error(codes.InvalidArgument, "file_name is required")
	}

	if _, err := s.loadOrder(req.OrderId, "AttachFile"); err != nil {
		return nil, err
	}

	started := time.Now()
	s.store.AttachFile(req.OrderId, req.Author, req.FileName, req.Description)
	s.observe("attach_file", started)

	order, err := s.loadOrder(req.OrderId, "AttachFileReload")
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordFileAttached()
	}
	s.recordEvent(kafka.EventTypeFileAttached, order, req.FileName)

	return &allocationsv1.AttachFileResponse{Order: toProtoOrder(order)}, nil
}

// ToggleFavorite переключает флаг избранного; таймлайн не меняется.
func (s *AllocationService) ToggleFavorite(_ context.Context, req *allocationsv1.ToggleFavoriteRequest) (*allocationsv1.ToggleFavoriteResponse, error) {
	if req == nil || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	if _, err := s.loadOrder(req.OrderId, "ToggleFavorite"); err != nil {
		return nil, err
	}

	s.store.ToggleFavorite(req.OrderId)

	order, err := s.loadOrder(req.OrderId, "ToggleFavoriteReload")
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordFavoriteToggle()
	}
	s.recordEvent(kafka.EventTypeFavoriteToggled, order, "")

	return &allocationsv1.ToggleFavoriteResponse{Order: toProtoOrder(order)}, nil
}

// GetStatusCounts возвращает счётчики для карточек дашборда.
// Все шесть статусов присутствуют всегда, в том числе с нулями.
func (s *AllocationService) GetStatusCounts(_ context.Context, _ *allocationsv1.GetStatusCountsRequest) (*allocationsv1.GetStatusCountsResponse, error) {
	counts := view.StatusCounts(s.store.List())
	if s.metrics != nil {
		s.metrics.SetOrdersByStatus(counts)
	}

	result := make([]*allocationsv1.StatusCount, 0, len(counts))
	for _, orderStatus := range domain.AllOrderStatuses() {
		result = append(result, &allocationsv1.StatusCount{
			Status: toProtoStatus(orderStatus),
			Count:  int32(counts[orderStatus]),
		})
	}

	return &allocationsv1.GetStatusCountsResponse{Counts: result}, nil
}

// ListClients возвращает справочник клиентов.
func (s *AllocationService) ListClients(_ context.Context, _ *allocationsv1.ListClientsRequest) (*allocationsv1.ListClientsResponse, error) {
	clients := s.refdata.ListClients()
	result := make([]*allocationsv1.Client, 0, len(clients))
	for _, client := range clients {
		result = append(result, toProtoClient(client))
	}
	return &allocationsv1.ListClientsResponse{Clients: result}, nil
}

// ListAssets возвращает справочник активов.
func (s *AllocationService) ListAssets(_ context.Context, _ *allocationsv1.ListAssetsRequest) (*allocationsv1.ListAssetsResponse, error) {
	assets := s.refdata.ListAssets()
	result := make([]*allocationsv1.Asset, 0, len(assets))
	for _, asset := range assets {
		result = append(result, toProtoAsset(asset))
	}
	return &allocationsv1.ListAssetsResponse{Assets: result}, nil
}

func (s *AllocationService) loadOrder(orderID, operation string) (domain.Order, error) {
	order, err := s.store.GetByID(orderID)
	if err == nil {
		return order, nil
	}

	s.logger.WithError(err).WithFields(log.Fields{
		"operation": operation,
		"order_id":  orderID,
	}).Warn("failed to load order")

	if errors.Is(err, domain.ErrOrderNotFound) {
		return domain.Order{}, status.Error(codes.NotFound, domain.ErrOrderNotFound.Error())
	}
	return domain.Order{}, status.Error(codes.Internal, "failed to load order")
}

func (s *AllocationService) recordEvent(eventType kafka.EventType, order domain.Order, detail string) {
	if s.recorder == nil {
		return
	}
	s.recorder.RecordOrderEvent(string(eventType), order, detail)
	if s.metrics != nil {
		s.metrics.RecordOutboxEvent()
	}
}

func (s *AllocationService) notify(message string, kind domain.NotificationKind) {
	if s.notifier == nil {
		return
	}
	s.notifier.Show(message, kind)
}

func (s *AllocationService) observe(operation string, started time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordOperationDuration(operation, time.Since(started))
}

func joinErrors(errs []error) string {
	builder := strings.Builder{}
	for i, err := range errs {
		builder.WriteString(err.Error())
		if i < len(errs)-1 {
			builder.WriteString("; ")
		}
	}
	return builder.String()
}

func toProtoOrder(order domain.Order) *allocationsv1.Order {
	assets := make([]*allocationsv1.AssetAllocation, 0, len(order.Assets))
	for _, alloc := range order.Assets {
		assets = append(assets, &allocationsv1.AssetAllocation{
			AssetId:        alloc.AssetID,
			AmountCentavos: alloc.AmountCentavos,
		})
	}

	timeline := make([]*allocationsv1.TimelineEvent, 0, len(order.Timeline))
	for _, event := range order.Timeline {
		timeline = append(timeline, &allocationsv1.TimelineEvent{
			Seq:       int32(event.Seq),
			Kind:      string(event.Kind),
			Author:    event.Author,
			Timestamp: event.Timestamp,
			Content:   event.Content,
			FileName:  event.FileName,
		})
	}

	return &allocationsv1.Order{
		Id:            order.ID,
		Account:       order.Account,
		ClientName:    order.ClientName,
		Assessor:      order.Assessor,
		Hub:           order.Hub,
		Subject:       order.Subject,
		Kind:          order.Kind,
		Status:        toProtoStatus(order.Status),
		TotalCentavos: order.TotalCentavos,
		Assets:        assets,
		IsFavorite:    order.IsFavorite,
		CreatedDate:   order.CreatedDate,
		Timeline:      timeline,
	}
}

func toProtoClient(client domain.Client) *allocationsv1.Client {
	return &allocationsv1.Client{
		Account:           client.Account,
		Name:              client.Name,
		Assessor:          client.Assessor,
		OnboardingStatus:  string(client.Status),
		Progress:          int32(client.Progress),
		TotalSteps:        int32(client.TotalSteps),
		BalanceCentavos:   client.BalanceCentavos,
		PatrimonyCentavos: client.PatrimonyCentavos,
		RegistrationDate:  client.RegistrationDate,
		RiskProfile:       client.RiskProfile,
	}
}

func toProtoAsset(asset domain.Asset) *allocationsv1.Asset {
	return &allocationsv1.Asset{
		Id:                asset.ID,
		Name:              asset.Name,
		Type:              asset.Type,
		Issuer:            asset.Issuer,
		Rate:              asset.Rate,
		Category:          asset.Category,
		Risk:              asset.Risk,
		MinAmountCentavos: asset.MinAmountCentavos,
		Expiry:            asset.Expiry,
	}
}

func toProtoStatus(orderStatus domain.OrderStatus) allocationsv1.OrderStatus {
	switch orderStatus {
	case domain.OrderStatusOpen:
		return allocationsv1.OrderStatus_ORDER_STATUS_OPEN
	case domain.OrderStatusPending:
		return allocationsv1.OrderStatus_ORDER_STATUS_PENDING_ISSUE
	case domain.OrderStatusInTreatment:
		return allocationsv1.OrderStatus_ORDER_STATUS_IN_TREATMENT
	case domain.OrderStatusExecuted:
		return allocationsv1.OrderStatus_ORDER_STATUS_EXECUTED
	case domain.OrderStatusRejected:
		return allocationsv1.OrderStatus_ORDER_STATUS_REJECTED
	case domain.OrderStatusClosed:
		return allocationsv1.OrderStatus_ORDER_STATUS_CLOSED
	default:
		return allocationsv1.OrderStatus_ORDER_STATUS_UNSPECIFIED
	}
}

func fromProtoStatus(protoStatus allocationsv1.OrderStatus) domain.OrderStatus {
	switch protoStatus {
	case allocationsv1.OrderStatus_ORDER_STATUS_OPEN:
		return domain.OrderStatusOpen
	case allocationsv1.OrderStatus_ORDER_STATUS_PENDING_ISSUE:
		return domain.OrderStatusPending
	case allocationsv1.OrderStatus_ORDER_STATUS_IN_TREATMENT:
		return domain.OrderStatusInTreatment
	case allocationsv1.OrderStatus_ORDER_STATUS_EXECUTED:
		return domain.OrderStatusExecuted
	case allocationsv1.OrderStatus_ORDER_STATUS_REJECTED:
		return domain.OrderStatusRejected
	case allocationsv1.OrderStatus_ORDER_STATUS_CLOSED:
		return domain.OrderStatusClosed
	default:
		return ""
	}
}
