package domain

// OrderStatus описывает статус ордера аллокации. Значения совпадают с
// отображаемыми метками (pt-BR) — именно они пишутся в таймлайн и уходят
// наружу, поэтому enum хранит метку, а не технический код.
type OrderStatus string

const (
	// OrderStatusOpen — ордер создан и ещё не взят в работу.
	OrderStatusOpen OrderStatus = "Aberta"
	// OrderStatusPending — по ордеру есть нерешённый вопрос к клиенту или эмитенту.
	OrderStatusPending OrderStatus = "Com Pendência"
	// OrderStatusInTreatment — ордер в обработке у бэк-офиса.
	OrderStatusInTreatment OrderStatus = "Em Tratamento"
	// OrderStatusExecuted — аллокация исполнена.
	OrderStatusExecuted OrderStatus = "Executada"
	// OrderStatusRejected — ордер отклонён.
	OrderStatusRejected OrderStatus = "Rejeitada"
	// OrderStatusClosed — ордер закрыт без дальнейших действий.
	OrderStatusClosed OrderStatus = "Fechada"
)

// AllOrderStatuses возвращает фиксированный порядок шести статусов,
// используемый карточками-счётчиками дашборда.
func AllOrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusOpen,
		OrderStatusPending,
		OrderStatusInTreatment,
		OrderStatusExecuted,
		OrderStatusRejected,
		OrderStatusClosed,
	}
}

// IsValidOrderStatus проверяет, входит ли значение в закрытый набор статусов.
func IsValidOrderStatus(status OrderStatus) bool {
	for _, s := range AllOrderStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

// AssetAllocation — одна позиция ордера: актив и размещаемая сумма
// в минимальных денежных единицах (сентаво).
type AssetAllocation struct {
	AssetID        string
	AmountCentavos int64
}

// Order агрегирует состояние ордера аллокации и его таймлайн.
// Метаданные клиента (Account, ClientName, Assessor) и описательные поля
// (Hub, Subject, Kind) неизменяемы после создания.
type Order struct {
	ID            string
	Account       string
	ClientName    string
	Assessor      string
	Hub           string
	Subject       string
	Kind          string
	Status        OrderStatus
	TotalCentavos int64
	Assets        []AssetAllocation
	IsFavorite    bool
	CreatedDate   string
	Timeline      []TimelineEvent
}

// Clone возвращает копию ордера с собственными слайсами таймлайна и позиций.
func (o *Order) Clone() *Order {
	clone := *o
	clone.Timeline = make([]TimelineEvent, len(o.Timeline))
	copy(clone.Timeline, o.Timeline)
	clone.Assets = make([]AssetAllocation, len(o.Assets))
	copy(clone.Assets, o.Assets)
	return &clone
}

// ValidateInvariants проверяет базовые инварианты ордера и возвращает список замечаний.
// Хранилище ордеров доверяет входу; проверка выполняется вызывающей стороной
// (gRPC-слоем) до мутации.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.Account == "" {
		errs = append(errs, ErrAccountRequired)
	}
	if len(o.Assets) == 0 {
		errs = append(errs, ErrAssetsRequired)
	}
	if o.TotalCentavos < 0 {
		errs = append(errs, ErrTotalNegative)
	}

	// Сверяем итог ордера с суммой позиций.
	var calc int64
	for _, alloc := range o.Assets {
		if alloc.AssetID == "" {
			errs = append(errs, ErrAssetIDRequired)
		}
		if alloc.AmountCentavos <= 0 {
			errs = append(errs, ErrAllocationAmountInvalid)
		}
		calc += alloc.AmountCentavos
	}
	if calc != o.TotalCentavos {
		errs = append(errs, ErrTotalMismatch)
	}

	return errs
}
